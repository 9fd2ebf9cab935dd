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

package svgcanvas

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/genera/surface"
)

// elements parses the document and counts the start elements by name.
func elements(t *testing.T, doc []byte) map[string]int {
	t.Helper()
	count := make(map[string]int)
	dec := xml.NewDecoder(bytes.NewReader(doc))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("malformed SVG: %v\n%s", err, doc)
		}
		if se, ok := tok.(xml.StartElement); ok {
			count[se.Name.Local]++
		}
	}
	return count
}

func TestDocument(t *testing.T) {
	buf := &bytes.Buffer{}
	c := New(buf, 100, 80)
	c.Fill(surface.Rect(0, 0, 100, 80), surface.MustHex("#f5f2ec"))

	c.Save()
	c.Translate(50, 40)
	c.Rotate(0.5)
	c.SetAlpha(0.5)
	c.Fill(surface.Circle(0, 0, 10), &surface.RadialGradient{
		C0: vec.Vec2{X: -2, Y: -2},
		R1: 10,
		Stops: []surface.Stop{
			{Offset: 0, Color: surface.HSL(30, 80, 70)},
			{Offset: 1, Color: surface.HSL(30, 60, 30)},
		},
	})
	c.Stroke(surface.Circle(0, 0, 10), surface.HSL(30, 50, 20), surface.RoundLine(2))
	c.Restore()

	c.FillText("×", 20, 20, 12, surface.HSL(0, 0, 0))

	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	got := elements(t, buf.Bytes())
	if got["svg"] != 1 || got["path"] != 3 || got["radialGradient"] != 1 || got["text"] != 1 {
		t.Errorf("unexpected elements %v", got)
	}
	out := buf.String()
	for _, want := range []string{`opacity="0.5"`, `stroke-linecap="round"`, `gradientUnits="userSpaceOnUse"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %s", want)
		}
	}
}

func TestCompositeAndShadow(t *testing.T) {
	buf := &bytes.Buffer{}
	c := New(buf, 60, 60)
	c.Fill(surface.Rect(0, 0, 60, 60), surface.RGBA(10, 20, 30, 1))

	c.Save()
	c.SetComposite(surface.Lighter)
	c.Fill(surface.Rect(10, 10, 10, 10), &surface.LinearGradient{
		P1: vec.Vec2{X: 60},
		Stops: []surface.Stop{
			{Offset: 0, Color: surface.RGBA(255, 248, 230, 0.05)},
			{Offset: 1, Color: surface.Transparent},
		},
	})
	c.Restore()

	c.Save()
	c.SetShadow(20, surface.HSLA(200, 50, 50, 0.3))
	c.Stroke(surface.Rect(5, 5, 20, 20), surface.HSL(200, 50, 50), surface.Line(3))
	c.Restore()

	c.Save()
	c.SetComposite(surface.DestinationOut)
	c.Fill(surface.Circle(30, 30, 10), surface.RGBA(0, 0, 0, 1))
	c.Restore()

	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	got := elements(t, buf.Bytes())
	for _, name := range []string{"linearGradient", "filter", "feGaussianBlur", "mask"} {
		if got[name] != 1 {
			t.Errorf("got %d %s elements, want 1", got[name], name)
		}
	}
	out := buf.String()
	if !strings.Contains(out, "plus-lighter") {
		t.Error("lighter composite not mapped to a blend mode")
	}
	// the mask must wrap the earlier content
	if i, j := strings.Index(out, `mask="url(#`), strings.Index(out, `<path d="M0 0`); i < 0 || j < i {
		t.Errorf("mask group at %d, background at %d", i, j)
	}
}

func TestPathData(t *testing.T) {
	p := surface.Rect(0, 0, 1.5, 2)
	if got, want := pathData(p), "M0 0 L1.5 0 L1.5 2 L0 2 Z"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := pathData(nil); got != "" {
		t.Errorf("nil path gave %q", got)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestCloseErrors(t *testing.T) {
	c := New(failWriter{}, 10, 10)
	if err := c.Close(); err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("got %v, want write error", err)
	}
	if err := c.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close: got %v", err)
	}
}
