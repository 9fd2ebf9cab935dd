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

	"seehuhn.de/go/genera/palette"
	"seehuhn.de/go/genera/rng"
	"seehuhn.de/go/genera/surface"
)

// drawClouds adds large, faint radial washes which may extend past the
// canvas edges.
func drawClouds(s surface.Surface, src *rng.Source, w, h float64, pal palette.Palette, intensity float64) {
	count := roundCount(intensity * 8)
	minDim, maxDim := math.Min(w, h), math.Max(w, h)
	full := surface.Rect(0, 0, w, h)
	for range count {
		c := rng.Pick(src, pal[:])
		centre := vec.Vec2{
			X: src.Uniform(-0.1*w, 1.1*w),
			Y: src.Uniform(-0.1*h, 1.1*h),
		}
		radius := src.Uniform(minDim*0.2, maxDim*0.6)
		alpha := src.Uniform(0.06, 0.18) * intensity
		sat := c.S * 0.4

		s.Fill(full, &surface.RadialGradient{
			C0: centre,
			C1: centre,
			R1: radius,
			Stops: []surface.Stop{
				{Offset: 0, Color: surface.HSLA(c.H, sat, c.L, alpha)},
				{Offset: 0.4, Color: surface.HSLA(c.H, sat*0.8, c.L, alpha*0.6)},
				{Offset: 0.7, Color: surface.HSLA(c.H, sat*0.5, c.L, alpha*0.2)},
				{Offset: 1, Color: surface.Transparent},
			},
		})
	}
}

// drawRibbons strokes wide, soft curves across the canvas.  Each ribbon is
// drawn in several passes of increasing width and decreasing opacity; the
// first pass casts a blurred shadow.
func drawRibbons(s surface.Surface, src *rng.Source, w, h float64, pal palette.Palette, intensity float64) {
	count := roundCount(intensity * 5)
	for range count {
		c := rng.Pick(src, pal[:])
		sat := c.S * 0.5
		baseWidth := src.Uniform(20, 80)

		pts := make([]vec.Vec2, src.Int(3, 5))
		for j := range pts {
			pts[j] = vec.Vec2{
				X: src.Uniform(-0.1*w, 1.1*w),
				Y: src.Uniform(-0.1*h, 1.1*h),
			}
		}
		curve := ribbonPath(pts)

		passes := src.Int(5, 8)
		for p := range passes {
			frac := float64(p) / float64(passes)
			s.Save()
			s.SetAlpha(rng.Lerp(0.12, 0.02, frac) * intensity)
			if p == 0 {
				blur := src.Uniform(20, 60)
				s.SetShadow(blur, surface.HSLA(c.H, sat, c.L, 0.3))
			}
			width := baseWidth * rng.Lerp(0.3, 2.5, frac)
			s.Stroke(curve, surface.HSLA(c.H, sat, c.L, 1), surface.RoundLine(width))
			s.Restore()
		}
	}
}

// ribbonPath joins the points with quadratic curves, using alternate
// points as control points.
func ribbonPath(pts []vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	if len(pts) == 3 {
		return p.QuadTo(pts[1], pts[2])
	}
	for j := 1; j < len(pts)-1; j += 2 {
		p.QuadTo(pts[j], pts[j+1])
	}
	if len(pts)%2 == 0 {
		p.LineTo(pts[len(pts)-1])
	}
	return p
}

// drawBlooms scatters clusters of small radial washes.  Offsets within a
// cluster are the sum of two uniform draws, concentrating the circles
// near the cluster centre.
func drawBlooms(s surface.Surface, src *rng.Source, w, h float64, pal palette.Palette, intensity float64) {
	count := roundCount(intensity * 6)
	full := surface.Rect(0, 0, w, h)
	for range count {
		c := rng.Pick(src, pal[:])
		cx := src.Uniform(w*0.05, w*0.95)
		cy := src.Uniform(h*0.05, h*0.95)
		clusterR := src.Uniform(30, math.Min(w, h)*0.2)
		n := src.Int(8, 25)
		sat := c.S * 0.5

		for range n {
			dx := (src.Next() + src.Next() - 1) * clusterR
			dy := (src.Next() + src.Next() - 1) * clusterR
			r := src.Uniform(10, 60)
			alpha := src.Uniform(0.03, 0.08) * intensity

			centre := vec.Vec2{X: cx + dx, Y: cy + dy}
			s.Fill(full, &surface.RadialGradient{
				C0: centre,
				C1: centre,
				R1: r,
				Stops: []surface.Stop{
					{Offset: 0, Color: surface.HSLA(c.H, sat, c.L, alpha)},
					{Offset: 0.5, Color: surface.HSLA(c.H, sat*0.7, c.L, alpha*0.5)},
					{Offset: 1, Color: surface.Transparent},
				},
			})
		}
	}
}

// drawLightRays adds thin additive triangles which fan out from a point
// outside the canvas, on the side of the light.
func drawLightRays(s surface.Surface, src *rng.Source, w, h, lightAngle, intensity float64) {
	count := roundCount(intensity * 12)
	if count == 0 {
		return
	}

	maxDim := math.Max(w, h)
	source := vec.Vec2{
		X: w/2 + math.Cos(lightAngle)*maxDim*0.6,
		Y: h/2 + math.Sin(lightAngle)*maxDim*0.6,
	}
	maxLen := math.Hypot(w, h) * 1.2

	s.Save()
	defer s.Restore()
	s.SetComposite(surface.Lighter)

	for range count {
		angle := lightAngle + math.Pi + src.Uniform(-0.5, 0.5)
		spread := src.Uniform(0.01, 0.06)
		length := src.Uniform(maxLen*0.4, maxLen)
		alpha := src.Uniform(0.02, 0.05) * intensity

		dir := vec.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
		end := source.Add(dir.Mul(length))
		// dir rotated by ±π/2
		perp := vec.Vec2{X: -dir.Y, Y: dir.X}.Mul(length * spread)

		tri := (&path.Data{}).
			MoveTo(source).
			LineTo(end.Add(perp)).
			LineTo(end.Sub(perp)).
			Close()
		s.Fill(tri, &surface.LinearGradient{
			P0: source,
			P1: end,
			Stops: []surface.Stop{
				{Offset: 0, Color: surface.RGBA(255, 248, 230, alpha)},
				{Offset: 0.3, Color: surface.RGBA(255, 240, 210, alpha*0.6)},
				{Offset: 1, Color: surface.Transparent},
			},
		})
	}
}
