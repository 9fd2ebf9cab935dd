// seehuhn.de/go/genera - a procedural art generator
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/genera/shape"
	"seehuhn.de/go/genera/surface"
)

// shapeCases are element outlines as drawn by the generator.
var shapeCases = []TestCase{
	{
		Name:   "hexagon",
		Path:   surface.Polygon(shape.Hexagon().Points, 24),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Matrix{1, 0, 0, 1, 32, 32},
		Area:   3 * math.Sqrt(3) / 2 * 24 * 24,
	},
	{
		Name:   "hexagon_outline",
		Path:   surface.Polygon(shape.Hexagon().Points, 24),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 2, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
		CTM:    matrix.Matrix{1, 0, 0, 1, 32, 32},
		Area:   hexagonRingArea(24, 2),
		Tol:    0.001,
	},
	{
		Name:   "cross",
		Path:   join(surface.Rect(-24, -4.8, 48, 9.6), surface.Rect(-4.8, -24, 9.6, 48)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Matrix{1, 0, 0, 1, 32, 32},
		Area:   2*48*9.6 - 9.6*9.6,
		Tol:    0.001,
	},
	{
		Name:   "rings",
		Path:   join(surface.Circle(0, 0, 24), surface.Circle(0, 0, 16), surface.Circle(0, 0, 8)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
		CTM:    matrix.Matrix{1, 0, 0, 1, 32, 32},
		Area:   math.Pi * (24*24 - 16*16 + 8*8),
		Tol:    0.03,
	},
	{
		Name:   "dot_cluster",
		Path:   join(surface.Circle(-10, 0, 8), surface.Circle(10, 0, 8), surface.Circle(0, 12, 6)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Matrix{1, 0, 0, 1, 32, 32},
		Area:   math.Pi * (8*8 + 8*8 + 6*6),
		Tol:    0.05,
	},
}

// hexagonRingArea is the area of a miter-joined stroke of width w around a
// regular hexagon with circumradius r.
func hexagonRingArea(r, w float64) float64 {
	// the apothem moves by w/2 on either side
	a := r * math.Sqrt(3) / 2
	outer := a + w/2
	inner := a - w/2
	return 2 * math.Sqrt(3) * (outer*outer - inner*inner)
}
