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

var (
	butt   = Stroke{Width: 8, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10}
	square = Stroke{Width: 8, Cap: graphics.LineCapSquare, Join: graphics.LineJoinMiter, MiterLimit: 10}
	round  = Stroke{Width: 8, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound, MiterLimit: 10}
	bevel  = Stroke{Width: 8, Cap: graphics.LineCapButt, Join: graphics.LineJoinBevel, MiterLimit: 10}
)

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Path:   line(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op:     butt,
		Area:   44 * 8,
	},
	{
		Name:   "line_square",
		Path:   line(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op:     square,
		Area:   52 * 8,
	},
	{
		Name:   "line_round",
		Path:   line(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op:     round,
		Area:   44*8 + math.Pi*16,
		Tol:    0.02,
	},
	{
		Name:   "line_diagonal",
		Path:   line(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, MiterLimit: 10},
		Area:   44 * math.Sqrt2 * 6,
	},
	{
		Name:   "square_miter",
		Path:   rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     butt,
		Area:   40*40 - 24*24,
	},
	{
		Name:   "square_bevel",
		Path:   rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     bevel,
		Area:   40*40 - 24*24 - 8*8/2,
	},
	{
		Name:   "square_round",
		Path:   rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     round,
		Area:   40*40 - 24*24 - (4-math.Pi)*16,
		Tol:    0.01,
	},
	{
		Name:   "corner_miter",
		Path:   (&path.Data{}).MoveTo(pt(10, 10)).LineTo(pt(50, 10)).LineTo(pt(50, 50)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
		Area:   42*4 + 4*38,
	},
	{
		Name:   "dot_round",
		Path:   (&path.Data{}).MoveTo(pt(32, 32)).LineTo(pt(32, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 10, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound, MiterLimit: 10},
		Area:   math.Pi * 25,
		Tol:    0.08,
	},
	{
		// Segments shorter than the stroke width, turning sharply.
		Name:   "zigzag_thick",
		Path:   (&path.Data{}).MoveTo(pt(8, 40)).LineTo(pt(12, 24)).LineTo(pt(16, 40)).LineTo(pt(20, 24)).LineTo(pt(56, 24)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 10, Cap: graphics.LineCapButt, Join: graphics.LineJoinBevel, MiterLimit: 10},
	},
}

func line(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).MoveTo(pt(x1, y1)).LineTo(pt(x2, y2))
}
