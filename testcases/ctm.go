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
)

var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Path:   rectangle(5, 5, 25, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Matrix{2, 0, 0, 2, 0, 0},
		Area:   40 * 40,
	},
	{
		Name:   "rotate_45deg",
		Path:   rectangle(-10, -10, 10, 10),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Matrix{math.Sqrt2 / 2, math.Sqrt2 / 2, -math.Sqrt2 / 2, math.Sqrt2 / 2, 32, 32},
		Area:   400,
	},
	{
		Name:   "shear_horizontal",
		Path:   rectangle(0, 0, 20, 40),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 10, 10},
		Area:   800,
	},
	{
		Name:   "circle_to_ellipse",
		Path:   circle(0, 0, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Matrix{2, 0, 0, 1, 32, 32},
		Area:   2 * math.Pi * 144,
		Tol:    0.02,
	},
	{
		Name:   "stroke_scaled",
		Path:   line(0, 0, 20, 0),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
		CTM:    matrix.Matrix{2, 0, 0, 2, 10, 32},
		Area:   40 * 8,
	},
	{
		Name:   "stroke_rotated",
		Path:   rectangle(-10, -10, 10, 10),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
		CTM:    matrix.Matrix{0.8, 0.6, -0.6, 0.8, 32, 32},
		Area:   24*24 - 16*16,
		Tol:    0.001, // overlapping join pieces
	},
}
