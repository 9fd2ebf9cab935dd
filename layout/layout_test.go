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

package layout

import (
	"math"
	"testing"

	"seehuhn.de/go/genera/noise"
	"seehuhn.de/go/genera/rng"
)

func TestGridDims(t *testing.T) {
	sizes := [][2]float64{{600, 600}, {1920, 1080}, {300, 900}, {1, 1000}}
	for _, sz := range sizes {
		for n := 1; n <= 1000; n += 7 {
			cols, rows := GridDims(n, sz[0], sz[1])
			if cols < 1 || rows < 1 || cols*rows < n {
				t.Errorf("n=%d, %vx%v: %d cols × %d rows", n, sz[0], sz[1], cols, rows)
			}
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		if got, err := ParseMode(string(m)); err != nil || got != m {
			t.Errorf("ParseMode(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := ParseMode("spiral"); err == nil {
		t.Error("unknown layout accepted")
	}
}

func TestClustersAlwaysDrawn(t *testing.T) {
	for _, m := range Modes {
		e := New(m, rng.New(3), noise.New(3), 800, 600, 100, 1, 0.3)
		if k := len(e.Clusters); k < 2 || k > 5 {
			t.Errorf("%s: %d clusters", m, k)
		}
		for _, c := range e.Clusters {
			if c.X < 800*0.12 || c.X > 800*0.88 || c.Y < 600*0.12 || c.Y > 600*0.88 {
				t.Errorf("%s: cluster centre (%v, %v) outside the central region", m, c.X, c.Y)
			}
			if c.Spread < 50 || c.Spread > 600*0.4 {
				t.Errorf("%s: spread %v", m, c.Spread)
			}
		}
	}
}

func TestPositionBounds(t *testing.T) {
	const w, h = 800.0, 600.0
	const n = 500
	field := noise.New(9)

	cases := []struct {
		mode Mode
		ok   func(e *Engine, x, y float64) bool
	}{
		{Scatter, func(_ *Engine, x, y float64) bool {
			return x >= -30 && x <= w+30 && y >= -30 && y <= h+30
		}},
		{Grid, func(_ *Engine, x, y float64) bool {
			return x >= 0 && x <= w && y >= 0 && y <= h
		}},
		{Radial, func(_ *Engine, x, y float64) bool {
			return math.Hypot(x-w/2, y-h/2) <= min(w, h)*0.45+15
		}},
		{Noise, func(_ *Engine, x, y float64) bool {
			return x >= 0 && x <= w && y >= 0 && y <= h
		}},
		{Cluster, func(e *Engine, x, y float64) bool {
			for _, c := range e.Clusters {
				if math.Hypot(x-c.X, y-c.Y) <= c.Spread+1e-9 {
					return true
				}
			}
			return false
		}},
		{Burst, func(_ *Engine, x, y float64) bool {
			return math.Hypot(x-w/2, y-h/2) <= min(w, h)*0.48+10*math.Sqrt2
		}},
	}
	for _, c := range cases {
		e := New(c.mode, rng.New(21), field, w, h, n, 1, 1)
		for i := range n {
			x, y := e.Position(i)
			if !c.ok(e, x, y) {
				t.Errorf("%s: element %d at (%v, %v)", c.mode, i, x, y)
				break
			}
		}
	}
}

func TestGridWithoutJitter(t *testing.T) {
	e := New(Grid, rng.New(1), noise.New(1), 100, 100, 4, 1, 0)
	want := [][2]float64{{25, 25}, {75, 25}, {25, 75}, {75, 75}}
	for i, p := range want {
		x, y := e.Position(i)
		if x != p[0] || y != p[1] {
			t.Errorf("element %d at (%v, %v), want %v", i, x, y, p)
		}
	}
}

func TestDeterministic(t *testing.T) {
	for _, m := range Modes {
		a := New(m, rng.New(5), noise.New(5), 640, 480, 50, 1.5, 0.4)
		b := New(m, rng.New(5), noise.New(5), 640, 480, 50, 1.5, 0.4)
		for i := range 50 {
			xa, ya := a.Position(i)
			xb, yb := b.Position(i)
			if xa != xb || ya != yb {
				t.Fatalf("%s: element %d differs", m, i)
			}
		}
	}
}

func TestDisplace(t *testing.T) {
	field := noise.New(2)
	for i := range 100 {
		x, y := float64(i)*7.3, float64(i)*3.1
		f := Displace(field, x, y, 1, 0.5)
		if d := math.Hypot(f.X-x, f.Y-y); math.Abs(d-22.5) > 1e-9 {
			t.Errorf("displacement %v, want 22.5", d)
		}
		if f.Angle < 0 || f.Angle > 2*rng.Tau {
			t.Errorf("flow angle %v", f.Angle)
		}
		if f.Angle != f.Primary*rng.Tau*2 {
			t.Errorf("angle %v does not match noise %v", f.Angle, f.Primary)
		}
	}

	f := Displace(field, 10, 20, 1, 0)
	if f.X != 10 || f.Y != 20 {
		t.Errorf("zero influence moved the point to (%v, %v)", f.X, f.Y)
	}
}
