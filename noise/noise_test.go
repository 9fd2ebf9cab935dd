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

package noise

import (
	"math"
	"testing"
)

func TestKnownValues(t *testing.T) {
	f := New(42)
	cases := []struct {
		x, y, want float64
	}{
		{0.5, 0.5, 0.4375},
		{3.7, 1.2, 0.5871905171199999},
		{-2.25, 10.5, 0.2392578125},
		{0, 0, 0.5},
	}
	for _, c := range cases {
		got := f.At(c.x, c.y)
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("At(%g, %g) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

// TestFadeRounding checks that fade rounds every intermediate product.
// With a fused multiply-add the result would be 0x1.576815c97813dp-1.
func TestFadeRounding(t *testing.T) {
	got := fade(0.5931837303800576)
	if want := 0x1.576815c97813ep-1; got != want {
		t.Errorf("fade = %x, want %x", got, want)
	}
}

func TestRange(t *testing.T) {
	f := New(7)
	for i := range 200 {
		for j := range 200 {
			v := f.At(float64(i)*0.173-5, float64(j)*0.091+3)
			if v < 0 || v > 1 {
				t.Fatalf("value %v outside [0, 1]", v)
			}
		}
	}
}

func TestLatticePoints(t *testing.T) {
	f := New(3)
	for i := -10; i < 10; i++ {
		if v := f.At(float64(i), float64(2*i)); v != 0.5 {
			t.Errorf("At(%d, %d) = %v, want 0.5", i, 2*i, v)
		}
	}
}

func TestContinuity(t *testing.T) {
	f := New(11)
	const eps = 1e-6
	for i := range 1000 {
		x := float64(i) * 0.0371
		y := float64(i) * 0.0197
		d := math.Abs(f.At(x+eps, y) - f.At(x, y))
		if d > 1e-4 {
			t.Errorf("jump of %g at (%g, %g)", d, x, y)
		}
	}
}

func TestPeriodic(t *testing.T) {
	f := New(5)
	for _, x := range []float64{0.3, 17.8, 100.01} {
		a := f.At(x, 2.4)
		b := f.At(x+256, 2.4)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("At(%g) = %v but At(%g) = %v", x, a, x+256, b)
		}
	}
}

func TestSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)
	differ := false
	for i := range 50 {
		x := float64(i)*0.37 + 0.1
		if a.At(x, x*0.5) != b.At(x, x*0.5) {
			differ = true
			break
		}
	}
	if !differ {
		t.Error("different seeds produced identical fields")
	}
}

func BenchmarkAt(b *testing.B) {
	f := New(1)
	x := 0.0
	for b.Loop() {
		f.At(x, 0.5*x)
		x += 0.01
	}
}
