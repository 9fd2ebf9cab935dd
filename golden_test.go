//go:build amd64

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
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"seehuhn.de/go/genera/noise"
	"seehuhn.de/go/genera/palette"
	"seehuhn.de/go/genera/rng"
)

var update = flag.Bool("update", false, "rewrite the golden files in testdata")

// composition replays the steps of Generate up to the last shape layer on
// a recorder.  It returns a text summary of the palette and of all layer
// elements, together with the recorded drawing commands.
func composition(w, h int, p Params, seed int32) (string, []op) {
	fw, fh := float64(w), float64(h)
	src := rng.New(seed)
	field := noise.New(seed)
	rec := newRecorder()
	b := &bytes.Buffer{}

	pal := palette.Generate(src, p.PaletteMode)
	pool := palette.NewPool(pal, src)
	for _, c := range pal {
		fmt.Fprintf(b, "palette %.4f %.4f %.4f\n", c.H, c.S, c.L)
	}

	DrawBackground(rec, fw, fh, pal, src, false, p.BgStyle)
	lightRad := p.LightAngle / 360 * rng.Tau
	if p.AtmoRays > 0 {
		drawLightRays(rec, src, fw, fh, lightRad, p.AtmoRays)
	}
	if p.AtmoClouds > 0 {
		drawClouds(rec, src, fw, fh, pal, p.AtmoClouds)
	}
	if p.AtmoBlooms > 0 {
		drawBlooms(rec, src, fw, fh, pal, p.AtmoBlooms)
	}

	light := Light{Angle: lightRad, Intensity: p.LightIntensity}
	count, layers := layerPlan(&p)
	for layer := range layers {
		layerOp := layerOpacity(layer, layers, p.LayerFade)
		els := makeLayer(src, field, pool, &pal, fw, fh, count/layers, layerOp, &p)
		fmt.Fprintf(b, "layer %d %d\n", layer, len(els))
		for i := range els {
			el := &els[i]
			fmt.Fprintf(b, "%s %.4f %.4f %.4f %.4f %.4f %.4f %.4f %.4f %t %.4f\n",
				el.Shape.Kind(), el.X, el.Y, el.Rotation, el.Size,
				el.Color.H, el.Color.S, el.Color.L, el.Opacity, el.StrokeOnly, el.LineWidth)
			RenderElement(rec, el, light, p.GradientShapes, p.OutlineWeight)
		}
	}
	return b.String(), rec.ops
}

// TestGolden compares the palette and element placement of the default
// composition with seed 42 against testdata.  Run with -update after
// intentional changes.
func TestGolden(t *testing.T) {
	p := DefaultParams()
	got, ops := composition(600, 600, p, 42)

	// the replay must agree with Generate command for command
	full := newRecorder()
	Generate(full, 600, 600, p, 42)
	if len(full.ops) < len(ops) {
		t.Fatalf("Generate drew %d commands, replay %d", len(full.ops), len(ops))
	}
	for i := range ops {
		if !reflect.DeepEqual(ops[i], full.ops[i]) {
			t.Fatalf("command %d differs from Generate: %+v vs %+v", i, ops[i], full.ops[i])
		}
	}

	fname := filepath.Join("testdata", "default-42.golden")
	if *update {
		if err := os.WriteFile(fname, []byte(got), 0o644); err != nil {
			t.Fatal(err)
		}
		return
	}
	want, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	gotLines := bytes.Split([]byte(got), []byte("\n"))
	wantLines := bytes.Split(want, []byte("\n"))
	for i := range min(len(gotLines), len(wantLines)) {
		if !bytes.Equal(gotLines[i], wantLines[i]) {
			t.Fatalf("line %d:\n got %s\nwant %s", i+1, gotLines[i], wantLines[i])
		}
	}
	if len(gotLines) != len(wantLines) {
		t.Errorf("got %d lines, want %d", len(gotLines), len(wantLines))
	}
}
