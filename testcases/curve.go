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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

// k is the control point distance for a unit quarter circle.
const k = 0.5522847498

var curveCases = []TestCase{
	{
		Name:   "circle",
		Path:   circle(32, 32, 24),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   math.Pi * 24 * 24,
		Tol:    0.02,
	},
	{
		Name:   "circle_small",
		Path:   circle(8, 8, 3),
		Width:  16,
		Height: 16,
		Op:     Fill{Rule: NonZero},
		Area:   math.Pi * 9,
		Tol:    0.06,
	},
	{
		Name:   "circle_stroked",
		Path:   circle(32, 32, 20),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
		Area:   math.Pi * (23*23 - 17*17),
		Tol:    0.03,
	},
	{
		Name:   "annulus_evenodd",
		Path:   join(circle(32, 32, 24), circle(32, 32, 12)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
		Area:   math.Pi * (24*24 - 12*12),
		Tol:    0.02,
	},
	{
		Name:   "annulus_nonzero",
		Path:   join(circle(32, 32, 24), circle(32, 32, 12)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   math.Pi * 24 * 24,
		Tol:    0.02,
	},
	{
		// The area under y = 4x(1-x) on [0, 1] is 2/3.
		Name: "quadratic",
		Path: (&path.Data{}).
			MoveTo(pt(8, 56)).
			QuadTo(pt(32, -40), pt(56, 56)).
			Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   48 * 48 * 2 / 3,
		Tol:    0.01,
	},
	{
		Name: "cubic_loop",
		Path: (&path.Data{}).
			MoveTo(pt(10, 50)).
			CubeTo(pt(70, 0), pt(-6, 0), pt(54, 50)).
			Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
}

// circle builds a circle from four cubic Bézier curves.
func circle(cx, cy, r float64) *path.Data {
	c := k * r
	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-c), pt(cx+c, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-c, cy-r), pt(cx-r, cy-c), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+c), pt(cx-c, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+c, cy+r), pt(cx+r, cy+c), pt(cx+r, cy)).
		Close()
}
