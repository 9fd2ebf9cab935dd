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
	"image"
	"maps"
	"math"
	"slices"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/genera/testcases"
)

// approaches forces one of the two accumulation strategies.
var approaches = []struct {
	name      string
	threshold int
}{
	{"A", 1 << 30}, // 2D buffers
	{"B", 0},       // active edge list
}

// renderCase rasterises a test case into a coverage buffer.
func renderCase(tc testcases.TestCase, threshold int) []float32 {
	w, h := tc.Width, tc.Height
	buf := make([]float32, w*h)

	r := NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)})
	r.smallPathThreshold = threshold
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}

	emit := func(y, xMin int, coverage []float32) {
		copy(buf[y*w+xMin:], coverage)
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		if op.Rule == testcases.EvenOdd {
			r.FillEvenOdd(tc.Path, emit)
		} else {
			r.FillNonZero(tc.Path, emit)
		}
	case testcases.Stroke:
		r.Width = op.Width
		r.Cap = op.Cap
		r.Join = op.Join
		r.MiterLimit = op.MiterLimit
		r.Stroke(tc.Path, emit)
	}
	return buf
}

func allCases() []struct {
	name string
	tc   testcases.TestCase
} {
	var res []struct {
		name string
		tc   testcases.TestCase
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			res = append(res, struct {
				name string
				tc   testcases.TestCase
			}{category + "_" + tc.Name, tc})
		}
	}
	return res
}

func TestCoveredArea(t *testing.T) {
	for _, c := range allCases() {
		for _, approach := range approaches {
			t.Run(c.name+"_"+approach.name, func(t *testing.T) {
				buf := renderCase(c.tc, approach.threshold)

				var sum float64
				for i, v := range buf {
					if v < 0 || v > 1 {
						t.Fatalf("pixel %d: coverage %g out of range", i, v)
					}
					sum += float64(v)
				}
				if sum == 0 {
					t.Fatal("nothing drawn")
				}
				if c.tc.Area == 0 {
					return
				}

				tol := c.tc.Tol
				if tol == 0 {
					tol = 1e-4
				}
				if rel := math.Abs(sum-c.tc.Area) / c.tc.Area; rel > tol {
					t.Errorf("area %.3f, want %.3f (relative error %.4f > %g)",
						sum, c.tc.Area, rel, tol)
				}
			})
		}
	}
}

func TestApproachesAgree(t *testing.T) {
	for _, c := range allCases() {
		t.Run(c.name, func(t *testing.T) {
			a := renderCase(c.tc, approaches[0].threshold)
			b := renderCase(c.tc, approaches[1].threshold)
			for i := range a {
				if d := math.Abs(float64(a[i] - b[i])); d > 1e-4 {
					t.Fatalf("pixel (%d,%d): %g != %g",
						i%c.tc.Width, i/c.tc.Width, a[i], b[i])
				}
			}
		})
	}
}

// TestAgainstVector compares polygon fills with golang.org/x/image/vector,
// which also computes exact area coverage.
func TestAgainstVector(t *testing.T) {
	for _, c := range allCases() {
		op, isFill := c.tc.Op.(testcases.Fill)
		if !isFill || op.Rule != testcases.NonZero || c.tc.CTM != (matrix.Matrix{}) || hasCurves(c.tc.Path) || !inside(c.tc) {
			continue
		}
		t.Run(c.name, func(t *testing.T) {
			w, h := c.tc.Width, c.tc.Height
			ours := renderCase(c.tc, approaches[0].threshold)

			z := vector.NewRasterizer(w, h)
			k := 0
			for _, cmd := range c.tc.Path.Cmds {
				switch cmd {
				case path.CmdMoveTo:
					z.ClosePath()
					p := c.tc.Path.Coords[k]
					z.MoveTo(float32(p.X), float32(p.Y))
					k++
				case path.CmdLineTo:
					p := c.tc.Path.Coords[k]
					z.LineTo(float32(p.X), float32(p.Y))
					k++
				case path.CmdClose:
					z.ClosePath()
				}
			}
			z.ClosePath()
			dst := image.NewAlpha(image.Rect(0, 0, w, h))
			z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

			bad := 0
			for y := range h {
				for x := range w {
					want := float64(dst.AlphaAt(x, y).A) / 255
					got := float64(ours[y*w+x])
					// vector quantises to 8 bits, sloped edges drift by
					// up to about two levels
					if math.Abs(want-got) > 3.0/255 {
						bad++
					}
				}
			}
			if bad > w*h/100 {
				t.Errorf("%d of %d pixels differ", bad, w*h)
			}
		})
	}
}

func inside(tc testcases.TestCase) bool {
	for _, p := range tc.Path.Coords {
		if p.X < 0 || p.Y < 0 || p.X > float64(tc.Width) || p.Y > float64(tc.Height) {
			return false
		}
	}
	return true
}

func hasCurves(p *path.Data) bool {
	for _, cmd := range p.Cmds {
		if cmd == path.CmdQuadTo || cmd == path.CmdCubeTo {
			return true
		}
	}
	return false
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	trianglePath := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasteriser(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 1})

	coverage := make([]float32, 10)
	r.FillNonZero(trianglePath, func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	})

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		if math.Abs(float64(coverage[x]-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, coverage[x])
		}
	}
}

// TestSlopedEdgePixel checks a pixel crossed by a sloped edge against the
// exact area.  In the 64×64 triangle case, the left edge crosses pixel
// (27,18) between x=27.6 at the top and x=27.05 at the bottom.
func TestSlopedEdgePixel(t *testing.T) {
	tc := testcases.All["fill"][0]
	if tc.Name != "triangle_nonzero" {
		t.Fatalf("unexpected first fill case %q", tc.Name)
	}
	for _, approach := range approaches {
		buf := renderCase(tc, approach.threshold)
		got := float64(buf[18*tc.Width+27])
		if math.Abs(got-0.675) > 1e-5 {
			t.Errorf("%s: coverage %.6f, want 0.675", approach.name, got)
		}
	}
}

func TestButtCapDot(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 16, URy: 16})
	r.Width = 4
	p := (&path.Data{}).MoveTo(vec.Vec2{X: 8, Y: 8}).LineTo(vec.Vec2{X: 8, Y: 8})
	r.Stroke(p, func(y, xMin int, coverage []float32) {
		t.Errorf("unexpected output in row %d", y)
	})
}

func TestEmptyPath(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 16, URy: 16})
	emit := func(y, xMin int, coverage []float32) {
		t.Errorf("unexpected output in row %d", y)
	}
	r.FillNonZero(&path.Data{}, emit)
	r.Stroke(&path.Data{}, emit)
	r.FillNonZero((&path.Data{}).MoveTo(vec.Vec2{X: 3, Y: 3}), emit)
}

// BenchmarkRasteriseAll measures steady-state performance by reusing a single
// Rasteriser across all test cases.
func BenchmarkRasteriseAll(b *testing.B) {
	cases := allCases()
	r := NewRasteriser(rect.Rect{})
	emit := func(y, xMin int, coverage []float32) {}

	for b.Loop() {
		for _, c := range cases {
			tc := c.tc
			r.Reset(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
			if tc.CTM != (matrix.Matrix{}) {
				r.CTM = tc.CTM
			}
			switch op := tc.Op.(type) {
			case testcases.Fill:
				if op.Rule == testcases.EvenOdd {
					r.FillEvenOdd(tc.Path, emit)
				} else {
					r.FillNonZero(tc.Path, emit)
				}
			case testcases.Stroke:
				r.Width = op.Width
				r.Cap = op.Cap
				r.Join = op.Join
				r.MiterLimit = op.MiterLimit
				r.Stroke(tc.Path, emit)
			}
		}
	}
}
