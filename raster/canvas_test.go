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

package raster

import (
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/genera/surface"
)

func pixel(c *Canvas, x, y int) [4]byte {
	img := c.Image()
	i := img.PixOffset(x, y)
	return [4]byte(img.Pix[i : i+4])
}

func near(a, b byte, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestCanvasFillSolid(t *testing.T) {
	c := New(32, 32)
	c.Fill(surface.Rect(8, 8, 16, 16), surface.RGBA(255, 0, 0, 1))

	if got := pixel(c, 16, 16); got != [4]byte{255, 0, 0, 255} {
		t.Errorf("inside: got %v", got)
	}
	if got := pixel(c, 2, 2); got != [4]byte{} {
		t.Errorf("outside: got %v", got)
	}
}

func TestCanvasAlpha(t *testing.T) {
	c := New(16, 16)
	c.SetAlpha(0.5)
	c.Fill(surface.Rect(0, 0, 16, 16), surface.RGBA(255, 255, 255, 1))

	got := pixel(c, 8, 8)
	if !near(got[3], 128, 1) || !near(got[0], 128, 1) {
		t.Errorf("got %v, want half-transparent white", got)
	}
}

func TestCanvasComposite(t *testing.T) {
	c := New(16, 16)
	grey := surface.RGBA(100, 100, 100, 1)
	c.Fill(surface.Rect(0, 0, 16, 16), grey)

	c.SetComposite(surface.Lighter)
	c.Fill(surface.Rect(0, 0, 8, 16), grey)
	if got := pixel(c, 4, 4); !near(got[0], 200, 1) {
		t.Errorf("lighter: got %v", got)
	}

	c.SetComposite(surface.DestinationOut)
	c.Fill(surface.Rect(8, 0, 8, 16), surface.RGBA(0, 0, 0, 1))
	if got := pixel(c, 12, 4); got != [4]byte{} {
		t.Errorf("destination-out: got %v", got)
	}
	if got := pixel(c, 4, 4); !near(got[0], 200, 1) {
		t.Errorf("destination-out changed other pixels: %v", got)
	}
}

func TestCanvasTransform(t *testing.T) {
	c := New(32, 32)
	c.Save()
	c.Translate(16, 16)
	c.Rotate(0.25 * 3.141592653589793 * 2) // quarter turn
	c.Fill(surface.Rect(2, -1, 10, 2), surface.RGBA(0, 255, 0, 1))
	c.Restore()

	// after a quarter turn, the bar points down from the centre
	if got := pixel(c, 16, 24); got[1] != 255 {
		t.Errorf("rotated bar missing: %v", got)
	}
	if got := pixel(c, 24, 16); got[3] != 0 {
		t.Errorf("unrotated position painted: %v", got)
	}
	if c.Depth() != 0 {
		t.Errorf("unbalanced stack: depth %d", c.Depth())
	}
}

func TestCanvasScaled(t *testing.T) {
	c := NewScaled(10, 20, 2)
	b := c.Image().Bounds()
	if b.Dx() != 20 || b.Dy() != 40 {
		t.Fatalf("size %v", b)
	}
	c.Fill(surface.Rect(5, 10, 5, 10), surface.RGBA(0, 0, 255, 1))
	if got := pixel(c, 15, 30); got[2] != 255 {
		t.Errorf("got %v", got)
	}
	if got := pixel(c, 9, 19); got[3] != 0 {
		t.Errorf("got %v", got)
	}
}

func TestCanvasLinearGradient(t *testing.T) {
	c := New(100, 10)
	g := &surface.LinearGradient{
		P0: vec.Vec2{X: 0, Y: 0},
		P1: vec.Vec2{X: 100, Y: 0},
		Stops: []surface.Stop{
			{Offset: 0, Color: surface.RGBA(0, 0, 0, 1)},
			{Offset: 1, Color: surface.RGBA(255, 255, 255, 1)},
		},
	}
	c.Fill(surface.Rect(0, 0, 100, 10), g)

	if got := pixel(c, 0, 5); got[0] > 3 {
		t.Errorf("left end: %v", got)
	}
	if got := pixel(c, 49, 5); !near(got[0], 127, 2) {
		t.Errorf("middle: %v", got)
	}
	if got := pixel(c, 99, 5); got[0] < 252 {
		t.Errorf("right end: %v", got)
	}
}

func TestCanvasRadialGradient(t *testing.T) {
	c := New(64, 64)
	g := &surface.RadialGradient{
		C0: vec.Vec2{X: 32, Y: 32}, R0: 0,
		C1: vec.Vec2{X: 32, Y: 32}, R1: 16,
		Stops: []surface.Stop{
			{Offset: 0, Color: surface.RGBA(255, 255, 255, 1)},
			{Offset: 1, Color: surface.Transparent},
		},
	}
	c.Fill(surface.Rect(0, 0, 64, 64), g)

	if got := pixel(c, 32, 32); got[3] < 240 {
		t.Errorf("centre: %v", got)
	}
	if got := pixel(c, 40, 32); !near(got[3], 128, 12) {
		t.Errorf("half radius: %v", got)
	}
	if got := pixel(c, 2, 2); got != [4]byte{} {
		t.Errorf("corner: %v", got)
	}
}

func TestCanvasShadow(t *testing.T) {
	c := New(64, 64)
	c.SetShadow(8, surface.RGBA(0, 0, 0, 1))
	c.Fill(surface.Rect(24, 24, 16, 16), surface.RGBA(255, 255, 255, 1))

	if got := pixel(c, 32, 32); got != [4]byte{255, 255, 255, 255} {
		t.Errorf("shape: %v", got)
	}
	if got := pixel(c, 22, 32); got[3] == 0 {
		t.Error("no shadow next to the shape")
	}
	if got := pixel(c, 2, 2); got[3] != 0 {
		t.Errorf("shadow reaches the corner: %v", got)
	}
}

func TestCanvasStroke(t *testing.T) {
	c := New(32, 32)
	c.Stroke(surface.Rect(8, 8, 16, 16), surface.RGBA(255, 255, 255, 1), surface.Line(2))
	if got := pixel(c, 8, 16); got[3] != 255 {
		t.Errorf("outline: %v", got)
	}
	if got := pixel(c, 16, 16); got[3] != 0 {
		t.Errorf("interior: %v", got)
	}

	c.Stroke(surface.Rect(0, 0, 4, 4), surface.RGBA(255, 255, 255, 1), surface.Line(0))
	if got := pixel(c, 0, 2); got[3] != 0 {
		t.Errorf("zero width stroke drew: %v", got)
	}
}

func TestCanvasFillText(t *testing.T) {
	c := New(64, 64)
	c.FillText("+", 32, 32, 40, surface.RGBA(255, 255, 255, 1))
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}
	var painted int
	for y := range 64 {
		for x := range 64 {
			if pixel(c, x, y)[3] > 0 {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("text not drawn")
	}
}

func BenchmarkCanvasFill(b *testing.B) {
	c := New(512, 512)
	p := surface.Circle(256, 256, 200)
	paint := surface.RGBA(200, 100, 50, 0.5)
	for b.Loop() {
		c.Fill(p, paint)
	}
}
