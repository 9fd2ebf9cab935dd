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
	"seehuhn.de/go/genera/shape"
	"seehuhn.de/go/genera/surface"
)

// Element is a shape instance, ready to be drawn.
type Element struct {
	Shape      shape.Shape
	X, Y       float64 // centre, in canvas units
	Rotation   float64 // in radians
	Size       float64 // diameter of the unit frame, in canvas units
	Color      palette.HSL
	Opacity    float64
	StrokeOnly bool    // draw the outline only, without fill
	LineWidth  float64 // line width for stroke-only elements
}

// Light describes the direction and strength of the shading.
type Light struct {
	Angle     float64 // direction towards the light, in radians
	Intensity float64 // in [0, 1]
}

// RenderElement draws a single element onto s.
//
// If gradientFills is set, filled shapes are shaded with a radial gradient
// whose highlight is offset towards the light.  A positive outlineWeight
// adds a darker outline to filled shapes.
func RenderElement(s surface.Surface, el *Element, light Light, gradientFills bool, outlineWeight float64) {
	s.Save()
	defer s.Restore()

	s.Translate(el.X, el.Y)
	s.Rotate(el.Rotation)
	s.SetAlpha(rng.Clamp(el.Opacity, 0, 1))

	r := &elementRenderer{
		s:           s,
		el:          el,
		h:           el.Color.H,
		sat:         el.Color.S,
		l:           el.Color.L,
		half:        el.Size / 2,
		li:          light.Intensity,
		gradient:    gradientFills && !el.StrokeOnly,
		drawOutline: outlineWeight > 0 && !el.StrokeOnly,
		outlineLw:   math.Max(0.5, outlineWeight*3),
	}
	r.lightDx, r.lightDy = math.Cos(light.Angle), math.Sin(light.Angle)
	r.outline = surface.HSL(r.h, r.sat*0.7, math.Max(5, r.l-25))

	half := r.half
	switch sh := el.Shape.(type) {
	case shape.Circle:
		r.fillAndOutline(surface.Circle(0, 0, half))

	case shape.Polygon:
		r.fillAndOutline(surface.Polygon(sh.Points, half))

	case shape.Blob:
		r.fillAndOutline(blobPath(sh, half))

	case shape.Rings:
		base := surface.HSL(r.h, r.sat, r.l)
		for _, ring := range sh.Rings {
			s.Stroke(surface.Circle(0, 0, ring.Radius*half), base, surface.Line(ring.Width*el.Size))
		}

	case shape.Target:
		r.target(sh.Rings)

	case shape.Cross:
		t := sh.Thickness * el.Size
		bars := []*path.Data{
			surface.Rect(-half, -t/2, el.Size, t),
			surface.Rect(-t/2, -half, t, el.Size),
		}
		base := surface.HSL(r.h, r.sat, r.l)
		for _, bar := range bars {
			s.Fill(bar, base)
		}
		if r.drawOutline {
			for _, bar := range bars {
				s.Stroke(bar, r.outline, surface.Line(r.outlineLw))
			}
		}

	case shape.CloudCluster:
		fill := r.fill()
		for _, c := range sh.Circles {
			p := surface.Circle(c.Center.X*half, c.Center.Y*half, c.R*half)
			if el.StrokeOnly {
				s.Stroke(p, r.strokeColor(), surface.Line(el.LineWidth))
				continue
			}
			s.Fill(p, fill)
			s.Stroke(p, r.outline, surface.Line(math.Max(0.5, r.outlineLw*0.7)))
		}

	case shape.Petal:
		r.fillAndOutline(petalPath(sh, half))
	}
}

type elementRenderer struct {
	s  surface.Surface
	el *Element

	h, sat, l float64
	half      float64

	li               float64
	lightDx, lightDy float64
	gradient         bool

	drawOutline bool
	outlineLw   float64
	outline     surface.Color
}

// fill returns the paint for filled shapes.
func (r *elementRenderer) fill() surface.Paint {
	base := surface.HSL(r.h, r.sat, r.l)
	if !r.gradient {
		return base
	}
	off := r.half * 0.3 * r.li
	return &surface.RadialGradient{
		C0: vec.Vec2{X: r.lightDx * off, Y: r.lightDy * off},
		C1: vec.Vec2{},
		R1: r.half,
		Stops: []surface.Stop{
			{Offset: 0, Color: surface.HSL(r.h, math.Min(100, r.sat*1.1), math.Min(97, r.l+r.li*25))},
			{Offset: 0.5, Color: base},
			{Offset: 1, Color: surface.HSL(r.h, r.sat*0.8, math.Max(5, r.l-r.li*20))},
		},
	}
}

func (r *elementRenderer) strokeColor() surface.Color {
	return surface.HSL(r.h, r.sat, math.Min(90, r.l+12))
}

func (r *elementRenderer) fillAndOutline(p *path.Data) {
	if r.el.StrokeOnly {
		r.s.Stroke(p, r.strokeColor(), surface.Line(r.el.LineWidth))
		return
	}
	r.s.Fill(p, r.fill())
	if r.drawOutline {
		r.s.Stroke(p, r.outline, surface.Line(r.outlineLw))
	}
}

// target draws filled discs from the outside in, alternating between a
// lighter and a darker tone.
func (r *elementRenderer) target(rings int) {
	for i := rings; i >= 1; i-- {
		rad := float64(i) / float64(rings) * r.half
		var tl float64
		if i%2 == 0 {
			tl = math.Min(95, r.l+20)
		} else {
			tl = math.Max(10, r.l-15)
		}

		var paint surface.Paint = surface.HSL(r.h, r.sat, tl)
		if r.gradient {
			off := rad * 0.2 * r.li
			paint = &surface.RadialGradient{
				C0: vec.Vec2{X: r.lightDx * off, Y: r.lightDy * off},
				R1: rad,
				Stops: []surface.Stop{
					{Offset: 0, Color: surface.HSL(r.h, r.sat, math.Min(97, tl+r.li*15))},
					{Offset: 1, Color: surface.HSL(r.h, r.sat*0.9, tl)},
				},
			}
		}

		disc := surface.Circle(0, 0, rad)
		r.s.Fill(disc, paint)
		lw := 0.8
		if r.drawOutline {
			lw = r.outlineLw
		}
		r.s.Stroke(disc, surface.HSL(r.h, r.sat*0.6, math.Max(5, tl-10)), surface.Line(lw))
	}
}

func blobPath(b shape.Blob, half float64) *path.Data {
	p := &path.Data{}
	n := len(b.Segments)
	if n == 0 {
		return p
	}
	p.MoveTo(b.Segments[0].Point.Mul(half))
	for i, seg := range b.Segments {
		next := b.Segments[(i+1)%n]
		p.QuadTo(seg.Control.Mul(half), next.Point.Mul(half))
	}
	return p.Close()
}

func petalPath(pt shape.Petal, half float64) *path.Data {
	tipY := -half
	baseY := half * pt.Taper
	bulgeX := half * pt.Bulge
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: tipY}).
		CubeTo(vec.Vec2{X: bulgeX * 0.6, Y: tipY * 0.5}, vec.Vec2{X: bulgeX, Y: baseY * 0.2}, vec.Vec2{X: 0, Y: baseY}).
		CubeTo(vec.Vec2{X: -bulgeX, Y: baseY * 0.2}, vec.Vec2{X: -bulgeX * 0.6, Y: tipY * 0.5}, vec.Vec2{X: 0, Y: tipY}).
		Close()
}
