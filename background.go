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

package genera

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/genera/palette"
	"seehuhn.de/go/genera/rng"
	"seehuhn.de/go/genera/surface"
)

// Base colours of the background.
var (
	darkBase  = surface.MustHex("#0c0c0e")
	lightBase = surface.MustHex("#f5f2ec")
)

// DrawBackground fills the canvas with the base colour.  Unless style is
// BackgroundFlat, two to four soft radial washes in palette colours are
// added on top.
func DrawBackground(s surface.Surface, w, h float64, pal palette.Palette, src *rng.Source, dark bool, style BackgroundStyle) {
	base := lightBase
	if dark {
		base = darkBase
	}
	full := surface.Rect(0, 0, w, h)
	s.Fill(full, base)
	if style == BackgroundFlat {
		return
	}

	innerAlpha, outerAlpha := 0.35, 0.15
	if style == BackgroundSubtle {
		innerAlpha, outerAlpha = 0.15, 0.06
	}

	points := src.Int(2, 4)
	for range points {
		cx := src.Uniform(w*0.1, w*0.9)
		cy := src.Uniform(h*0.1, h*0.9)
		radius := src.Uniform(math.Min(w, h)*0.3, math.Max(w, h)*0.8)
		c := rng.Pick(src, pal[:])

		var innerL, outerL float64
		if dark {
			innerL, outerL = c.L*0.25, c.L*0.12
		} else {
			innerL, outerL = rng.Lerp(c.L, 95, 0.7), rng.Lerp(c.L, 95, 0.85)
		}
		centre := vec.Vec2{X: cx, Y: cy}
		s.Fill(full, &surface.RadialGradient{
			C0: centre,
			C1: centre,
			R1: radius,
			Stops: []surface.Stop{
				{Offset: 0, Color: surface.HSLA(c.H, c.S*0.6, innerL, innerAlpha)},
				{Offset: 0.6, Color: surface.HSLA(c.H, c.S*0.3, outerL, outerAlpha)},
				{Offset: 1, Color: surface.Transparent},
			},
		})
	}
}
