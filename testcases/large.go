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
)

// largeCases have bounding boxes of more than 65536 pixels, so that the
// active edge list is used.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Path:   rectangle(50, 50, 462, 462),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: NonZero},
		Area:   412 * 412,
	},
	{
		Name:   "large_concentric_nonzero",
		Path:   join(rectangle(56, 56, 456, 456), rectangle(156, 156, 356, 356)),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: NonZero},
		Area:   400 * 400,
	},
	{
		Name:   "large_concentric_evenodd",
		Path:   join(rectangle(56, 56, 456, 456), rectangle(156, 156, 356, 356)),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: EvenOdd},
		Area:   400*400 - 200*200,
	},
	{
		Name:   "large_diamond",
		Path:   diamond(256, 256, 180),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: NonZero},
		Area:   2 * 180 * 180,
	},
	{
		Name:   "large_star",
		Path:   fivePointStar(256, 256, 200),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: NonZero},
		Area:   starArea(200),
	},
	{
		Name:   "large_circle",
		Path:   circle(256, 256, 200),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: NonZero},
		Area:   math.Pi * 200 * 200,
		Tol:    0.02,
	},
}

func diamond(cx, cy, r float64) *path.Data {
	return polygon(pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy))
}
