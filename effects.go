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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/genera/noise"
	"seehuhn.de/go/genera/palette"
	"seehuhn.de/go/genera/rng"
	"seehuhn.de/go/genera/surface"
)

// drawBeadChain draws a trail of small discs which follows the noise
// field from a random starting point.
func drawBeadChain(s surface.Surface, src *rng.Source, field *noise.Field, w, h float64, c palette.HSL, light Light, gradientFills bool) {
	cx := src.Uniform(0, w)
	cy := src.Uniform(0, h)
	beads := src.Int(15, 80)
	beadSize := src.Uniform(2, 6)
	spacing := src.Uniform(5, 12)
	angle := src.Angle()
	curvature := src.Uniform(0.02, 0.12)

	for i := range beads {
		n := field.At(cx*0.008, cy*0.008)
		angle += (n - 0.5) * curvature * 2

		s.Save()
		s.SetAlpha(rng.Clamp(0.6+float64(i)/float64(beads)*0.3, 0, 1))
		paint := beadPaint(c, vec.Vec2{X: cx, Y: cy}, beadSize, light, gradientFills)
		r := beadSize * (0.6 + src.Next()*0.4)
		s.Fill(surface.Circle(cx, cy, r), paint)
		s.Restore()

		cx += math.Cos(angle) * spacing
		cy += math.Sin(angle) * spacing
	}
}

// beadPaint returns the paint for a bead of the given radius centred at
// c, lit from the direction of the light.
func beadPaint(col palette.HSL, c vec.Vec2, radius float64, light Light, gradientFills bool) surface.Paint {
	if !gradientFills {
		return surface.HSL(col.H, col.S, col.L)
	}
	off := radius * 0.2 * light.Intensity
	return &surface.RadialGradient{
		C0: vec.Vec2{X: c.X + math.Cos(light.Angle)*off, Y: c.Y + math.Sin(light.Angle)*off},
		C1: c,
		R1: radius,
		Stops: []surface.Stop{
			{Offset: 0, Color: surface.HSL(col.H, col.S, math.Min(97, col.L+20))},
			{Offset: 1, Color: surface.HSL(col.H, col.S*0.8, math.Max(10, col.L-10))},
		},
	}
}

// drawTangles draws count meandering Bézier lines, each followed by a
// walk which drops small nodes along a second, unrelated path.
func drawTangles(s surface.Surface, src *rng.Source, field *noise.Field, w, h float64, pal palette.Palette, count int, outlineWeight float64) {
	for range count {
		c := rng.Pick(src, pal[:])

		segs := src.Int(8, 30)
		cx := src.Uniform(-0.1*w, 1.1*w)
		cy := src.Uniform(-0.1*h, 1.1*h)
		angle := src.Angle()
		lw := src.Uniform(0.5, 2.5+outlineWeight*2)
		drift := src.Uniform(30, 120)
		alpha := rng.Clamp(src.Uniform(0.3, 0.85), 0, 1)

		line := (&path.Data{}).MoveTo(vec.Vec2{X: cx, Y: cy})
		for range segs {
			nv := field.At(cx*0.006, cy*0.006)
			angle += (nv-0.5)*1.8 + (src.Next()-0.5)*0.6

			step := drift * (0.5 + src.Next())
			a1 := angle + src.Next()*0.8
			cp1x := cx + math.Cos(a1)*step*0.6
			a1 = angle + src.Next()*0.8
			cp1y := cy + math.Sin(a1)*step*0.6
			nx := cx + math.Cos(angle)*step
			ny := cy + math.Sin(angle)*step
			a2 := angle + src.Next()*0.8
			cp2x := nx - math.Cos(a2)*step*0.3
			a2 = angle + src.Next()*0.8
			cp2y := ny - math.Sin(a2)*step*0.3

			line.CubeTo(vec.Vec2{X: cp1x, Y: cp1y}, vec.Vec2{X: cp2x, Y: cp2y}, vec.Vec2{X: nx, Y: ny})
			cx, cy = nx, ny
		}

		s.Save()
		s.SetAlpha(alpha)
		s.Stroke(line, surface.HSL(c.H, c.S*0.9, c.L), surface.RoundLine(lw))
		if outlineWeight > 0.2 {
			s.SetAlpha(alpha * 0.3)
			dark := surface.HSL(c.H, c.S*0.6, math.Max(5, c.L-20))
			s.Stroke(line, dark, surface.RoundLine(lw+outlineWeight*1.5))
		}
		s.Restore()

		nodeChance := 0.3 + outlineWeight*0.3
		cx = src.Uniform(-0.1*w, 1.1*w)
		cy = src.Uniform(-0.1*h, 1.1*h)
		angle = src.Angle()
		for range segs {
			nv := field.At(cx*0.006, cy*0.006)
			angle += (nv-0.5)*1.8 + (src.Next()-0.5)*0.6
			step := drift * (0.5 + src.Next())
			cx += math.Cos(angle) * step
			cy += math.Sin(angle) * step

			if src.Next() >= nodeChance {
				continue
			}
			nr := src.Uniform(1.5, 5)
			s.Save()
			s.SetAlpha(src.Uniform(0.4, 0.9))
			dot := surface.Circle(cx, cy, nr)
			s.Fill(dot, surface.HSL(c.H, c.S, math.Min(95, c.L+15)))
			if outlineWeight > 0 {
				ring := surface.HSL(c.H, c.S*0.7, math.Max(5, c.L-20))
				s.Stroke(dot, ring, surface.Line(math.Max(0.3, outlineWeight)))
			}
			s.Restore()
		}
	}
}

var (
	scatterGlyphs = []string{"×", "+", "•", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0"}
	scatterSizes  = []float64{8, 10, 12, 14, 18, 22, 28}
)

// drawTypoScatter sprinkles small, slightly rotated glyphs over the canvas.
func drawTypoScatter(s surface.Surface, src *rng.Source, w, h float64, pal palette.Palette, count int) {
	for range count {
		x := src.Uniform(-20, w+20)
		y := src.Uniform(-20, h+20)
		glyph := rng.Pick(src, scatterGlyphs)
		size := rng.Pick(src, scatterSizes)
		c := rng.Pick(src, pal[:])
		op := src.Uniform(0.15, 0.65)

		s.Save()
		s.Translate(x, y)
		s.Rotate(src.Uniform(-0.4, 0.4))
		s.SetAlpha(op)
		s.FillText(glyph, 0, 0, size, surface.HSL(c.H, c.S, c.L))
		s.Restore()
	}
}
