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

// Package shape defines the geometric primitives of a composition and
// synthesises random instances of them.
//
// All geometry is given in a unit frame: the shape is centred on the
// origin and roughly fills the disc of radius 1.  Renderers scale the
// unit frame by half the element size.
package shape

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/genera/rng"
)

// Shape is one of Circle, Polygon, Blob, Rings, Target, Cross,
// CloudCluster or Petal.
type Shape interface {
	// Kind returns a short lower-case name for the shape type.
	Kind() string

	isShape()
}

// Circle is the unit circle.
type Circle struct{}

// Polygon is a closed polygon.  Regular polygons, star polygons and
// hexagons are all represented by this type.
type Polygon struct {
	Points []vec.Vec2
}

// BlobSegment is one vertex of a Blob together with the control point of
// the quadratic curve which ends at the following vertex.
type BlobSegment struct {
	Point   vec.Vec2
	Control vec.Vec2
}

// Blob is a closed curve made of quadratic Bézier segments.
type Blob struct {
	Segments []BlobSegment
}

// Ring is a concentric circle outline.
type Ring struct {
	Radius float64 // in (0, 1]
	Width  float64 // line width as a fraction of the element size
}

// Rings is a set of concentric circle outlines.
type Rings struct {
	Rings []Ring
}

// Target is a set of filled concentric discs with alternating lightness.
type Target struct {
	Rings int
}

// Cross is a plus sign made of two bars.
type Cross struct {
	Thickness float64 // bar thickness as a fraction of the element size
}

// Disc is a circle in the unit frame.
type Disc struct {
	Center vec.Vec2
	R      float64
}

// CloudCluster is a group of overlapping circles.
type CloudCluster struct {
	Circles []Disc
}

// Petal is a teardrop shape, pointing up.
type Petal struct {
	Bulge float64 // half-width relative to the radius
	Taper float64 // position of the rounded end below the centre
}

func (Circle) Kind() string       { return "circle" }
func (Polygon) Kind() string      { return "poly" }
func (Blob) Kind() string         { return "blob" }
func (Rings) Kind() string        { return "rings" }
func (Target) Kind() string       { return "target" }
func (Cross) Kind() string        { return "cross" }
func (CloudCluster) Kind() string { return "cloudCluster" }
func (Petal) Kind() string        { return "petal" }

func (Circle) isShape()       {}
func (Polygon) isShape()      {}
func (Blob) isShape()         {}
func (Rings) isShape()        {}
func (Target) isShape()       {}
func (Cross) isShape()        {}
func (CloudCluster) isShape() {}
func (Petal) isShape()        {}

// Make draws a random shape from src.
//
// Complexity in [0, 1] raises the number of sides, arms, segments, rings
// and circles.  Organicness in [0, 1] raises irregularity.
func Make(src *rng.Source, complexity, organicness float64) Shape {
	t := src.Next()
	switch {
	case t < 0.14:
		return Circle{}
	case t < 0.24:
		return makePolygon(src, complexity, organicness)
	case t < 0.34:
		return makeStar(src, complexity, organicness)
	case t < 0.44:
		return makeBlob(src, complexity, organicness)
	case t < 0.52:
		rc := src.Int(2, 3+int(math.Floor(complexity*3)))
		rings := make([]Ring, rc)
		for i := range rings {
			rings[i] = Ring{
				Radius: float64(i+1) / float64(rc),
				Width:  src.Uniform(0.02, 0.07),
			}
		}
		return Rings{Rings: rings}
	case t < 0.60:
		return Target{Rings: src.Int(2, 5)}
	case t < 0.66:
		return Hexagon()
	case t < 0.72:
		return Cross{Thickness: src.Uniform(0.1, 0.25)}
	case t < 0.86:
		return makeCloud(src, complexity, organicness)
	default:
		return Petal{
			Bulge: src.Uniform(0.4, 0.9) * (0.6 + float64(organicness*0.4)),
			Taper: src.Uniform(0.15, 0.4),
		}
	}
}

// Hexagon returns the regular hexagon with a vertex at (1, 0).
func Hexagon() Polygon {
	pts := make([]vec.Vec2, 6)
	for i := range pts {
		a := float64(i) / 6 * rng.Tau
		pts[i] = vec.Vec2{X: math.Cos(a), Y: math.Sin(a)}
	}
	return Polygon{Points: pts}
}

func makePolygon(src *rng.Source, complexity, organicness float64) Polygon {
	sides := src.Int(3, 3+int(math.Floor(complexity*8)))
	pts := make([]vec.Vec2, sides)
	for i := range pts {
		a := float64(float64(i)/float64(sides)*rng.Tau) - math.Pi/2
		w := 1 + float64((src.Next()-0.5)*organicness*0.6)
		pts[i] = vec.Vec2{X: math.Cos(a) * w, Y: math.Sin(a) * w}
	}
	return Polygon{Points: pts}
}

func makeStar(src *rng.Source, complexity, organicness float64) Polygon {
	arms := src.Int(3, 6+int(math.Floor(complexity*5)))
	inner := src.Uniform(0.25, 0.5)
	pts := make([]vec.Vec2, 2*arms)
	for i := range pts {
		a := float64(float64(i)/float64(2*arms)*rng.Tau) - math.Pi/2
		r := 1.0
		if i%2 == 1 {
			r = inner
		}
		x := math.Cos(a) * r * (1 + float64((src.Next()-0.5)*organicness*0.3))
		y := math.Sin(a) * r * (1 + float64((src.Next()-0.5)*organicness*0.3))
		pts[i] = vec.Vec2{X: x, Y: y}
	}
	return Polygon{Points: pts}
}

func makeBlob(src *rng.Source, complexity, organicness float64) Blob {
	segs := src.Int(3, 5+int(math.Floor(complexity*3)))
	out := make([]BlobSegment, segs)
	for i := range out {
		a := float64(i) / float64(segs) * rng.Tau
		na := float64(i+1) / float64(segs) * rng.Tau
		ma := (a + na) / 2
		x := math.Cos(a) * (1 + float64((src.Next()-0.5)*organicness))
		y := math.Sin(a) * (1 + float64((src.Next()-0.5)*organicness))
		cpx := math.Cos(ma) * src.Uniform(0.5, 1.4) * (0.4 + float64(organicness*0.6))
		cpy := math.Sin(ma) * src.Uniform(0.5, 1.4) * (0.4 + float64(organicness*0.6))
		out[i] = BlobSegment{
			Point:   vec.Vec2{X: x, Y: y},
			Control: vec.Vec2{X: cpx, Y: cpy},
		}
	}
	return Blob{Segments: out}
}

// makeCloud grows a cluster by attaching each new circle next to a
// randomly chosen earlier one.
func makeCloud(src *rng.Source, complexity, organicness float64) CloudCluster {
	count := src.Int(3, 6+int(math.Floor(complexity*4)))
	circles := make([]Disc, 1, count)
	circles[0] = Disc{R: src.Uniform(0.4, 0.7)}
	for len(circles) < count {
		parent := circles[int(math.Floor(src.Next()*float64(len(circles))))]
		angle := src.Uniform(0, rng.Tau)
		r := float64(src.Uniform(0.25, 0.65) * (1 + float64(organicness*0.3)))
		dist := parent.R + float64(r*src.Uniform(0.3, 0.7))
		circles = append(circles, Disc{
			Center: vec.Vec2{
				X: parent.Center.X + float64(math.Cos(angle)*dist),
				Y: parent.Center.Y + float64(math.Sin(angle)*dist),
			},
			R: r,
		})
	}
	return CloudCluster{Circles: circles}
}
