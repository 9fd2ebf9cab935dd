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
	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Path:   polygon(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   880,
	},
	{
		Name:   "triangle_evenodd",
		Path:   polygon(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
		Area:   880,
	},
	{
		Name:   "triangle_open",
		Path:   (&path.Data{}).MoveTo(pt(10, 50)).LineTo(pt(32, 10)).LineTo(pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   880,
	},
	{
		Name:   "star_nonzero",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   starArea(25),
		Tol:    0.002, // winding is clamped per pixel near the inner corners
	},
	{
		Name:   "star_evenodd",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
		Area:   starArea(25) - innerPentagonArea(25),
		Tol:    0.005,
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   44 * 44,
	},
	{
		Name:   "rectangle_fractional",
		Path:   rectangle(10.25, 10.5, 53.75, 20.125),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   43.5 * 9.625,
	},
	{
		Name: "two_open_subpaths",
		Path: (&path.Data{}).
			MoveTo(pt(4, 4)).LineTo(pt(28, 4)).LineTo(pt(28, 28)).
			MoveTo(pt(36, 36)).LineTo(pt(60, 36)).LineTo(pt(60, 60)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   2 * 24 * 24 / 2,
	},
	{
		Name:   "overlap_nonzero",
		Path:   join(rectangle(8, 8, 40, 40), rectangle(24, 24, 56, 56)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   2*32*32 - 16*16,
	},
	{
		Name:   "overlap_evenodd",
		Path:   join(rectangle(8, 8, 40, 40), rectangle(24, 24, 56, 56)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
		Area:   2*32*32 - 2*16*16,
	},
	{
		Name:   "clipped",
		Path:   rectangle(-20, -20, 32, 32),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   32 * 32,
	},
}

// fivePointStar builds a self-intersecting five-pointed star.
func fivePointStar(cx, cy, r float64) *path.Data {
	pts := make([]vec.Vec2, 5)
	for i, k := range []int{0, 2, 4, 1, 3} {
		angle := float64(k)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return polygon(pts...)
}

// starInnerRadius is the circumradius of the pentagon in the middle of a
// star with circumradius r.
func starInnerRadius(r float64) float64 {
	return r * math.Cos(2*math.Pi/5) / math.Cos(math.Pi/5)
}

func starArea(r float64) float64 {
	return 5 * r * starInnerRadius(r) * math.Sin(math.Pi/5)
}

func innerPentagonArea(r float64) float64 {
	ri := starInnerRadius(r)
	return 2.5 * ri * ri * math.Sin(2*math.Pi/5)
}
