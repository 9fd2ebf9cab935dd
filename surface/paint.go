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

package surface

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Paint is the source of colour for a fill or stroke.
// It is one of Color, *LinearGradient or *RadialGradient.
type Paint interface {
	isPaint()
}

// Stop is a colour stop of a gradient.
type Stop struct {
	Offset float64 // in [0, 1]
	Color  Color
}

// LinearGradient varies colour along the line from P0 to P1.
// Coordinates are in user space at the time the gradient is used.
type LinearGradient struct {
	P0, P1 vec.Vec2
	Stops  []Stop
}

func (*LinearGradient) isPaint() {}

// Param returns the gradient parameter at user-space point p.
// The result is not clamped.
func (g *LinearGradient) Param(p vec.Vec2) float64 {
	d := g.P1.Sub(g.P0)
	dd := d.Dot(d)
	if dd == 0 {
		return 0
	}
	return p.Sub(g.P0).Dot(d) / dd
}

// ColorAt returns the colour at gradient parameter t.
func (g *LinearGradient) ColorAt(t float64) Color {
	return colorAt(g.Stops, t)
}

// RadialGradient is a two-circle gradient.  Colour at parameter t is
// painted on the circle with centre C0 + t·(C1-C0) and radius
// R0 + t·(R1-R0); where several circles cover a point, the one with the
// largest t wins.
type RadialGradient struct {
	C0    vec.Vec2
	R0    float64
	C1    vec.Vec2
	R1    float64
	Stops []Stop
}

func (*RadialGradient) isPaint() {}

// Param returns the gradient parameter at user-space point p.
// If no circle of the gradient passes through p, ok is false and the point
// is not painted.  The result is not clamped.
func (g *RadialGradient) Param(p vec.Vec2) (t float64, ok bool) {
	cd := g.C1.Sub(g.C0)
	pd := p.Sub(g.C0)
	dr := g.R1 - g.R0

	a := cd.Dot(cd) - dr*dr
	b := pd.Dot(cd) + g.R0*dr
	c := pd.Dot(pd) - g.R0*g.R0

	if math.Abs(a) < 1e-12 {
		// the circles touch internally; the equation is linear
		if b == 0 {
			return 0, false
		}
		t = c / (2 * b)
		return t, g.R0+t*dr >= 0
	}

	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1 := (b + sq) / a
	t2 := (b - sq) / a
	if t1 < t2 {
		t1, t2 = t2, t1
	}
	if g.R0+t1*dr >= 0 {
		return t1, true
	}
	if g.R0+t2*dr >= 0 {
		return t2, true
	}
	return 0, false
}

// ColorAt returns the colour at gradient parameter t.
func (g *RadialGradient) ColorAt(t float64) Color {
	return colorAt(g.Stops, t)
}

// colorAt evaluates a list of stops, padding beyond the first and last
// stop.  Interpolation is done on premultiplied components, so that
// transparent stops do not darken their neighbours.
func colorAt(stops []Stop, t float64) Color {
	switch {
	case len(stops) == 0:
		return Transparent
	case t <= stops[0].Offset:
		return stops[0].Color
	case t >= stops[len(stops)-1].Offset:
		return stops[len(stops)-1].Color
	}

	i := 1
	for i < len(stops)-1 && stops[i].Offset < t {
		i++
	}
	s0, s1 := stops[i-1], stops[i]
	span := s1.Offset - s0.Offset
	if span <= 0 {
		return s1.Color
	}
	u := (t - s0.Offset) / span

	r0, g0, b0, a0 := s0.Color.Premultiplied()
	r1, g1, b1, a1 := s1.Color.Premultiplied()
	a := a0 + (a1-a0)*u
	if a <= 0 {
		return Transparent
	}
	return Color{
		R: (r0 + (r1-r0)*u) / a,
		G: (g0 + (g1-g0)*u) / a,
		B: (b0 + (b1-b0)*u) / a,
		A: a,
	}
}
