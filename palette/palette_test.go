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

package palette

import (
	"math"
	"testing"

	"seehuhn.de/go/genera/rng"
)

func TestWarmKnown(t *testing.T) {
	p := Generate(rng.New(42), Warm)
	want := []HSL{
		{6.724358384963125, 89.61898593232036, 54.16951165301725},
		{36.311644837260246, 64.99694936908782, 66.4617650047876},
		{29.371169809019193, 88.49349703639746, 41.536277988925576},
	}
	got := []HSL{p[0], p[1], p[6]}
	for i := range want {
		if !closeHSL(got[i], want[i]) {
			t.Errorf("colour %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestUnknownModeFallsBack(t *testing.T) {
	a := Generate(rng.New(42), Mode("sepia"))
	b := Generate(rng.New(42), Analogous)
	if a != b {
		t.Errorf("unknown mode: got %v, want %v", a, b)
	}
	want := HSL{156.3973506912589, 68.82820347789675, 66.98383697867393}
	if !closeHSL(a[0], want) {
		t.Errorf("first colour %v, want %v", a[0], want)
	}
}

func TestRanges(t *testing.T) {
	for _, mode := range Modes {
		for seed := range int32(50) {
			p := Generate(rng.New(seed), mode)
			for i, c := range p {
				if c.H < 0 || c.H >= 360 {
					t.Errorf("%s/%d: colour %d hue %v", mode, seed, i, c.H)
				}
				if c.S < 0 || c.S > 100 || c.L < 0 || c.L > 100 {
					t.Errorf("%s/%d: colour %d is %v", mode, seed, i, c)
				}
			}
		}
	}
}

func TestMonoLightness(t *testing.T) {
	p := Generate(rng.New(9), Mono)
	for i, c := range p {
		if c.H != p[0].H {
			t.Errorf("colour %d has hue %v, want %v", i, c.H, p[0].H)
		}
		if want := 12 + float64(i)*11; c.L != want {
			t.Errorf("colour %d has lightness %v, want %v", i, c.L, want)
		}
	}
}

func TestComplementaryHues(t *testing.T) {
	p := Generate(rng.New(3), Complementary)
	bh := p[0].H
	want := []float64{bh, bh, math.Mod(bh+180, 360), math.Mod(bh+180, 360),
		math.Mod(bh+90, 360), math.Mod(bh+270, 360), bh}
	for i, h := range want {
		if p[i].H != h {
			t.Errorf("colour %d: hue %v, want %v", i, p[i].H, h)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(string(m))
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := ParseMode("pastel"); err == nil {
		t.Error("ParseMode accepted an unknown mode")
	}
}

func TestPoolWeights(t *testing.T) {
	src := rng.New(17)
	p := Generate(src, Neon)
	pool := NewPool(p, src)

	total := 0
	for _, c := range p {
		w := pool.Weight(c)
		if w < 1 || w > 6 {
			t.Errorf("colour %v has weight %d", c, w)
		}
		total += w
	}
	if total != len(pool.entries) {
		t.Errorf("weights sum to %d, pool has %d entries", total, len(pool.entries))
	}

	for range 100 {
		c := pool.Next()
		if pool.Weight(c) == 0 {
			t.Fatalf("pool returned foreign colour %v", c)
		}
	}
}

func closeHSL(a, b HSL) bool {
	const eps = 1e-9
	return math.Abs(a.H-b.H) < eps && math.Abs(a.S-b.S) < eps && math.Abs(a.L-b.L) < eps
}
