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
	"math"
	"testing"
)

func TestBoxSizes(t *testing.T) {
	for _, sigma := range []float64{2, 3.5, 5, 10, 24} {
		sizes := boxSizes(sigma)
		var variance float64
		for i, n := range sizes {
			if n%2 != 1 {
				t.Errorf("sigma %g: box %d has even width %d", sigma, i, n)
			}
			if i > 0 && n < sizes[i-1] {
				t.Errorf("sigma %g: widths %v not ascending", sigma, sizes)
			}
			variance += float64(n*n-1) / 12
		}
		if rel := math.Abs(variance-sigma*sigma) / (sigma * sigma); rel > 0.2 {
			t.Errorf("sigma %g: boxes %v give variance %g", sigma, sizes, variance)
		}
	}
}

func TestBlurImpulse(t *testing.T) {
	const w = 101
	buf := make([]float32, w*w)
	tmp := make([]float32, w*w)
	c := w / 2
	buf[c*w+c] = 1

	blur(buf, tmp, w, 0, w, 0, w, 3)

	var sum float64
	for _, v := range buf {
		sum += float64(v)
	}
	if math.Abs(sum-1) > 1e-4 {
		t.Errorf("mass %g, want 1", sum)
	}
	peak := buf[c*w+c]
	for d := 1; d < 10; d++ {
		l, r := buf[c*w+c-d], buf[c*w+c+d]
		if math.Abs(float64(l-r)) > 1e-6 {
			t.Errorf("asymmetric at distance %d: %g vs %g", d, l, r)
		}
		if r > peak {
			t.Errorf("value %g at distance %d exceeds peak %g", r, d, peak)
		}
	}
}

func TestBlurNoop(t *testing.T) {
	buf := []float32{0, 1, 0, 0}
	tmp := make([]float32, len(buf))
	blur(buf, tmp, 4, 0, 4, 0, 1, 0)
	if buf[1] != 1 {
		t.Errorf("sigma 0 changed the buffer: %v", buf)
	}
}
