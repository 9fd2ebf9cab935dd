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
	"reflect"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/genera/palette"
	"seehuhn.de/go/genera/raster"
	"seehuhn.de/go/genera/rng"
	"seehuhn.de/go/genera/shape"
	"seehuhn.de/go/genera/surface"
)

func TestInterpolatePoints(t *testing.T) {
	cases := []struct {
		from, to vec.Vec2
		spacing  float64
		want     []vec.Vec2
	}{
		{
			from: vec.Vec2{X: 0, Y: 0}, to: vec.Vec2{X: 10, Y: 0}, spacing: 5,
			want: []vec.Vec2{{X: 5, Y: 0}, {X: 10, Y: 0}},
		},
		{
			from: vec.Vec2{X: 0, Y: 0}, to: vec.Vec2{X: 3, Y: 4}, spacing: 10,
			want: []vec.Vec2{{X: 3, Y: 4}},
		},
		{ // spacing below the minimum
			from: vec.Vec2{X: 0, Y: 0}, to: vec.Vec2{X: 0, Y: 4}, spacing: 0,
			want: []vec.Vec2{{X: 0, Y: 2}, {X: 0, Y: 4}},
		},
		{
			from: vec.Vec2{X: 1, Y: 1}, to: vec.Vec2{X: 1, Y: 1}, spacing: 3,
			want: []vec.Vec2{{X: 1, Y: 1}},
		},
		{ // non-finite input
			from: vec.Vec2{X: math.NaN(), Y: 0}, to: vec.Vec2{X: 3, Y: 4}, spacing: 2,
			want: []vec.Vec2{{X: 3, Y: 4}},
		},
		{
			from: vec.Vec2{X: math.Inf(-1), Y: 0}, to: vec.Vec2{X: 3, Y: 4}, spacing: 2,
			want: []vec.Vec2{{X: 3, Y: 4}},
		},
		{
			from: vec.Vec2{X: 0, Y: 0}, to: vec.Vec2{X: 0, Y: 4}, spacing: math.NaN(),
			want: []vec.Vec2{{X: 0, Y: 2}, {X: 0, Y: 4}},
		},
	}
	for _, tc := range cases {
		got := InterpolatePoints(tc.from, tc.to, tc.spacing)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("InterpolatePoints(%v, %v, %g) = %v, want %v",
				tc.from, tc.to, tc.spacing, got, tc.want)
		}
	}
}

func testBrush(bt BrushType) *Brush {
	return NewBrush(BrushContext{
		Type:           bt,
		Size:           30,
		Opacity:        0.8,
		Palette:        PaletteFor(palette.Neon, 9),
		Complexity:     0.5,
		Organicness:    0.3,
		LightAngle:     315,
		LightIntensity: 0.5,
		GradientShapes: true,
	}, 100)
}

func TestBrushReplay(t *testing.T) {
	for _, bt := range []BrushType{BrushScatter, BrushChain, BrushSpray, BrushEraser} {
		b := testBrush(bt)
		from, to := vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 90, Y: 40}

		first := newRecorder()
		b.PaintAt(first, from)
		b.StrokeTo(first, from, to)

		b.Reseed(100)
		second := newRecorder()
		b.PaintAt(second, from)
		b.StrokeTo(second, from, to)

		if len(first.ops) == 0 {
			t.Errorf("%s: nothing painted", bt)
		}
		if !reflect.DeepEqual(first.ops, second.ops) {
			t.Errorf("%s: replay after Reseed differs", bt)
		}
		if first.Depth() != 0 {
			t.Errorf("%s: unbalanced Save/Restore", bt)
		}
	}
}

func TestBrushStampsDiffer(t *testing.T) {
	b := testBrush(BrushSpray)
	r := newRecorder()
	b.PaintAt(r, vec.Vec2{X: 50, Y: 50})
	n := len(r.ops)
	b.PaintAt(r, vec.Vec2{X: 50, Y: 50})
	if reflect.DeepEqual(r.ops[:n], r.ops[n:]) {
		t.Error("consecutive stamps are identical")
	}
}

func TestBrushEraser(t *testing.T) {
	c := raster.New(40, 40)
	c.Fill(surface.Rect(0, 0, 40, 40), surface.RGBA(200, 100, 50, 1))

	b := testBrush(BrushEraser)
	b.Context.Opacity = 1
	b.PaintAt(c, vec.Vec2{X: 20, Y: 20})

	img := c.Image()
	if a := img.RGBAAt(20, 20).A; a != 0 {
		t.Errorf("centre alpha %d, want 0", a)
	}
	if a := img.RGBAAt(2, 2).A; a != 255 {
		t.Errorf("corner alpha %d, want 255", a)
	}
}

func TestParseBrushType(t *testing.T) {
	if bt, err := ParseBrushType("chain"); err != nil || bt != BrushChain {
		t.Errorf("chain: got %q, %v", bt, err)
	}
	if _, err := ParseBrushType("pencil"); err == nil {
		t.Error("unknown brush accepted")
	}
}

// Every shape type must leave the state stack balanced and draw at least
// one command.
func TestRenderElementShapes(t *testing.T) {
	seen := make(map[string]bool)
	for seed := int32(1); len(seen) < 8 && seed < 1000; seed++ {
		sh := shape.Make(rng.New(seed), 0.7, 0.5)
		if seen[sh.Kind()] {
			continue
		}
		seen[sh.Kind()] = true

		for _, strokeOnly := range []bool{false, true} {
			r := newRecorder()
			el := &Element{
				Shape:      sh,
				X:          50,
				Y:          50,
				Size:       40,
				Color:      palette.HSL{H: 200, S: 60, L: 50},
				Opacity:    0.7,
				StrokeOnly: strokeOnly,
				LineWidth:  1.5,
			}
			RenderElement(r, el, Light{Angle: 1, Intensity: 0.5}, true, 0.5)
			if len(r.ops) == 0 {
				t.Errorf("%s: nothing drawn", sh.Kind())
			}
			if r.Depth() != 0 || r.maxDepth != 1 {
				t.Errorf("%s: depth %d, max depth %d", sh.Kind(), r.Depth(), r.maxDepth)
			}
			if r.Current.Alpha != 1 {
				t.Errorf("%s: alpha not restored", sh.Kind())
			}
		}
	}
	if len(seen) != 8 {
		t.Errorf("only %d shape types generated", len(seen))
	}
}

func TestRenderElementStrokeOnly(t *testing.T) {
	r := newRecorder()
	el := &Element{
		Shape:      shape.Circle{},
		Size:       20,
		Color:      palette.HSL{H: 10, S: 50, L: 50},
		Opacity:    1,
		StrokeOnly: true,
		LineWidth:  2,
	}
	RenderElement(r, el, Light{}, true, 1)
	if len(r.ops) != 1 || r.ops[0].Kind != "stroke" || r.ops[0].Style.Width != 2 {
		t.Errorf("got %+v", r.ops)
	}
}
