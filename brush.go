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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/genera/palette"
	"seehuhn.de/go/genera/rng"
	"seehuhn.de/go/genera/shape"
	"seehuhn.de/go/genera/surface"
)

// BrushType selects what a Brush paints.
type BrushType string

// These are the supported brush types.
const (
	BrushScatter BrushType = "scatter" // a few random shapes
	BrushChain   BrushType = "chain"   // a single shaded bead
	BrushSpray   BrushType = "spray"   // a cloud of small dots
	BrushEraser  BrushType = "eraser"  // clears a disc
)

// ParseBrushType converts a brush name into a BrushType.
func ParseBrushType(s string) (BrushType, error) {
	switch t := BrushType(s); t {
	case BrushScatter, BrushChain, BrushSpray, BrushEraser:
		return t, nil
	}
	return "", fmt.Errorf("unknown brush type %q", s)
}

// BrushContext holds the settings used by a Brush.
type BrushContext struct {
	Type           BrushType
	Size           float64 // brush diameter, in canvas units
	Opacity        float64
	Palette        palette.Palette
	Complexity     float64
	Organicness    float64
	LightAngle     float64 // in degrees
	LightIntensity float64
	GradientShapes bool
	Dark           bool
}

// Brush paints stamps along pointer paths.
//
// Each stamp draws from its own random stream, seeded with a counter which
// is advanced for every stamp.  Replaying the same points after the same
// Reseed call therefore paints the same stamps.
type Brush struct {
	Context BrushContext

	seed int32
}

// NewBrush returns a brush whose first stamp uses seed+1.
func NewBrush(bc BrushContext, seed int32) *Brush {
	return &Brush{Context: bc, seed: seed}
}

// Reseed restarts the stamp counter.  Front-ends call this at the start of
// every pointer stroke.
func (b *Brush) Reseed(seed int32) {
	b.seed = seed
}

// Spacing returns the distance between stamps along a stroke.
func (b *Brush) Spacing() float64 {
	return math.Max(minSpacing, b.Context.Size*0.3)
}

// StrokeTo paints stamps along the segment from the previous pointer
// position to the new one, excluding from itself.
func (b *Brush) StrokeTo(s surface.Surface, from, to vec.Vec2) {
	for _, p := range InterpolatePoints(from, to, b.Spacing()) {
		b.PaintAt(s, p)
	}
}

// PaintAt paints a single stamp centred at p.
func (b *Brush) PaintAt(s surface.Surface, p vec.Vec2) {
	b.seed++
	switch b.Context.Type {
	case BrushScatter:
		b.paintScatter(s, p, rng.New(b.seed))
	case BrushChain:
		b.paintChain(s, p, rng.New(b.seed))
	case BrushSpray:
		b.paintSpray(s, p, rng.New(b.seed))
	case BrushEraser:
		b.paintEraser(s, p)
	}
}

func (b *Brush) paintScatter(s surface.Surface, p vec.Vec2, src *rng.Source) {
	bc := &b.Context
	pool := palette.NewPool(bc.Palette, src)
	n := max(1, roundCount(1+float64(src.Next()*2)))
	light := Light{Angle: bc.LightAngle / 360 * rng.Tau, Intensity: bc.LightIntensity}

	for range n {
		sh := shape.Make(src, bc.Complexity, bc.Organicness)
		size := bc.Size * src.Uniform(0.3, 1)
		offX := float64((src.Next() - 0.5) * bc.Size * 0.5)
		offY := float64((src.Next() - 0.5) * bc.Size * 0.5)

		el := Element{
			Shape: sh,
			X:     p.X + offX,
			Y:     p.Y + offY,
			Size:  size,
		}
		el.Rotation = src.Angle()
		el.Color = pool.Next()
		el.Opacity = bc.Opacity * src.Uniform(0.5, 1)
		el.StrokeOnly = src.Next() < 0.2
		el.LineWidth = src.Uniform(0.8, 2.5)
		RenderElement(s, &el, light, bc.GradientShapes, 0)
	}
}

func (b *Brush) paintChain(s surface.Surface, p vec.Vec2, src *rng.Source) {
	bc := &b.Context
	c := rng.Pick(src, bc.Palette[:])
	beadSize := bc.Size * src.Uniform(0.08, 0.2)

	s.Save()
	defer s.Restore()
	s.SetAlpha(bc.Opacity * src.Uniform(0.6, 1))
	light := Light{Angle: bc.LightAngle / 360 * rng.Tau, Intensity: bc.LightIntensity}
	paint := beadPaint(c, p, beadSize, light, bc.GradientShapes)
	s.Fill(surface.Circle(p.X, p.Y, beadSize*(0.7+float64(src.Next()*0.3))), paint)
}

func (b *Brush) paintSpray(s surface.Surface, p vec.Vec2, src *rng.Source) {
	bc := &b.Context
	n := max(3, roundCount(bc.Size*0.3))
	radius := bc.Size / 2

	for range n {
		angle := src.Angle()
		dist := float64(src.Uniform(0, radius) * src.Next())
		x := p.X + float64(math.Cos(angle)*dist)
		y := p.Y + float64(math.Sin(angle)*dist)
		c := rng.Pick(src, bc.Palette[:])
		dot := src.Uniform(1, 4)

		s.Save()
		s.SetAlpha(bc.Opacity * src.Uniform(0.15, 0.5))
		s.Fill(surface.Circle(x, y, dot), surface.HSL(c.H, c.S, c.L))
		s.Restore()
	}
}

func (b *Brush) paintEraser(s surface.Surface, p vec.Vec2) {
	s.Save()
	defer s.Restore()
	s.SetComposite(surface.DestinationOut)
	s.SetAlpha(b.Context.Opacity)
	s.Fill(surface.Circle(p.X, p.Y, b.Context.Size/2), surface.RGBA(0, 0, 0, 1))
}

// minSpacing is the smallest distance between interpolated points.
const minSpacing = 2

// InterpolatePoints returns evenly spaced points on the segment from
// from to to, excluding from and including to.  Consecutive points are at
// most spacing apart; spacing is raised to 2 if it is smaller.  If the
// segment is shorter than spacing, or not finite, only to is returned.
func InterpolatePoints(from, to vec.Vec2, spacing float64) []vec.Vec2 {
	if !(spacing >= minSpacing) {
		spacing = minSpacing
	}
	d := to.Sub(from)
	dist := math.Hypot(d.X, d.Y)
	if !(dist >= spacing) || math.IsInf(dist, 0) {
		return []vec.Vec2{to}
	}

	steps := int(math.Ceil(dist / spacing))
	pts := make([]vec.Vec2, steps)
	for i := range steps {
		t := float64(i+1) / float64(steps)
		pts[i] = vec.Vec2{X: from.X + d.X*t, Y: from.Y + d.Y*t}
	}
	return pts
}

// PaletteFor returns the palette used by brushes for the given mode and
// seed.
func PaletteFor(mode palette.Mode, seed int32) palette.Palette {
	return palette.Generate(rng.New(seed), mode)
}
