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

// Package svgcanvas implements a surface.Surface which writes an SVG
// document.
//
// Every drawing command becomes one SVG element, with the current
// transformation attached as a transform attribute.  Gradients use user
// space coordinates and are written to the document's defs section.  The
// Lighter operator maps to the plus-lighter blend mode and DestinationOut
// is implemented by masking everything drawn so far.
//
// Text is set in the viewer's monospace font, so glyph shapes differ from
// raster output.
package svgcanvas

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/genera/surface"
)

// Canvas writes drawing commands as SVG.  The document is complete only
// after Close has been called.
type Canvas struct {
	surface.Stack

	w, h int
	out  io.Writer

	defs, body bytes.Buffer
	dc, bc     *svg.SVG

	ids    int
	closed bool
}

var _ surface.Surface = (*Canvas)(nil)

// New returns a canvas for a w×h document.  Output is written to out when
// Close is called.
func New(out io.Writer, w, h int) *Canvas {
	c := &Canvas{
		Stack: surface.NewStack(matrix.Identity),
		w:     w,
		h:     h,
		out:   out,
	}
	c.dc = svg.New(&c.defs)
	c.bc = svg.New(&c.body)
	return c
}

// ErrClosed is returned when Close is called more than once.
var ErrClosed = errors.New("svgcanvas: already closed")

// Close writes the document to the underlying writer.
func (c *Canvas) Close() error {
	if c.closed {
		return ErrClosed
	}
	c.closed = true

	ew := &errWriter{w: c.out}
	doc := svg.New(ew)
	doc.Start(c.w, c.h)
	if c.defs.Len() > 0 {
		doc.Def()
		ew.Write(c.defs.Bytes())
		doc.DefEnd()
	}
	ew.Write(c.body.Bytes())
	doc.End()
	if ew.err != nil {
		return fmt.Errorf("svgcanvas: %w", ew.err)
	}
	return nil
}

// Fill fills the path.
func (c *Canvas) Fill(p *path.Data, paint surface.Paint) {
	d := pathData(p)
	if d == "" {
		return
	}
	if c.Current.Composite == surface.DestinationOut {
		c.erase(d, paint)
		return
	}
	attrs := append(c.commonAttrs(), c.paintAttrs("fill", paint)...)
	c.bc.Path(d, attrs...)
}

// Stroke strokes the path.
func (c *Canvas) Stroke(p *path.Data, paint surface.Paint, style surface.StrokeStyle) {
	d := pathData(p)
	if d == "" || style.Width <= 0 {
		return
	}
	attrs := append(c.commonAttrs(), `fill="none"`)
	attrs = append(attrs, c.paintAttrs("stroke", paint)...)
	attrs = append(attrs,
		`stroke-width="`+num(style.Width)+`"`,
		`stroke-linecap="`+capName(style.Cap)+`"`,
		`stroke-linejoin="`+joinName(style.Join)+`"`,
	)
	if style.Join == graphics.LineJoinMiter {
		attrs = append(attrs, `stroke-miterlimit="`+num(max(style.MiterLimit, 1))+`"`)
	}
	c.bc.Path(d, attrs...)
}

// FillText draws text centred on (x, y).
func (c *Canvas) FillText(text string, x, y, size float64, paint surface.Paint) {
	if text == "" {
		return
	}
	save := c.Current.CTM
	c.Translate(x, y)
	attrs := append(c.commonAttrs(),
		`font-family="monospace"`,
		`font-size="`+num(size)+`"`,
		`text-anchor="middle"`,
		`dominant-baseline="central"`,
	)
	attrs = append(attrs, c.paintAttrs("fill", paint)...)
	c.Current.CTM = save
	c.bc.Text(0, 0, text, attrs...)
}

// commonAttrs returns the transform, opacity, blend mode and shadow
// attributes for the current state.
func (c *Canvas) commonAttrs() []string {
	st := &c.Current
	var attrs []string
	if st.CTM != matrix.Identity {
		m := st.CTM
		attrs = append(attrs, fmt.Sprintf(`transform="matrix(%s %s %s %s %s %s)"`,
			num(m[0]), num(m[1]), num(m[2]), num(m[3]), num(m[4]), num(m[5])))
	}
	if st.Alpha < 1 {
		attrs = append(attrs, `opacity="`+num(st.Alpha)+`"`)
	}
	if st.Composite == surface.Lighter {
		// attributes without "=" are written as style by svgo
		attrs = append(attrs, "mix-blend-mode:plus-lighter")
	}
	if st.HasShadow() {
		attrs = append(attrs, `filter="url(#`+c.shadowFilter()+`)"`)
	}
	return attrs
}

// paintAttrs returns the attributes which set the given property ("fill"
// or "stroke") to paint.
func (c *Canvas) paintAttrs(prop string, paint surface.Paint) []string {
	switch p := paint.(type) {
	case surface.Color:
		attrs := []string{prop + `="` + p.Hex() + `"`}
		if p.A < 1 {
			attrs = append(attrs, prop+`-opacity="`+num(p.A)+`"`)
		}
		return attrs
	case *surface.LinearGradient:
		id := c.newID("g")
		fmt.Fprintf(&c.defs, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`+"\n",
			id, num(p.P0.X), num(p.P0.Y), num(p.P1.X), num(p.P1.Y))
		writeStops(&c.defs, p.Stops)
		c.defs.WriteString("</linearGradient>\n")
		return []string{prop + `="url(#` + id + `)"`}
	case *surface.RadialGradient:
		id := c.newID("g")
		fmt.Fprintf(&c.defs, `<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" r="%s" fx="%s" fy="%s" fr="%s">`+"\n",
			id, num(p.C1.X), num(p.C1.Y), num(p.R1), num(p.C0.X), num(p.C0.Y), num(p.R0))
		writeStops(&c.defs, p.Stops)
		c.defs.WriteString("</radialGradient>\n")
		return []string{prop + `="url(#` + id + `)"`}
	default:
		return []string{prop + `="none"`}
	}
}

func writeStops(w *bytes.Buffer, stops []surface.Stop) {
	for _, s := range stops {
		fmt.Fprintf(w, `<stop offset="%s" stop-color="%s" stop-opacity="%s"/>`+"\n",
			num(s.Offset), s.Color.Hex(), num(s.Color.A))
	}
}

// shadowFilter defines a drop shadow filter for the current state and
// returns its id.
func (c *Canvas) shadowFilter() string {
	st := &c.Current
	id := c.newID("s")
	// blur is given in device pixels, the filter works in user space
	std := st.ShadowBlur / 2 / surface.Scale(st.CTM)
	c.dc.Filter(id, `x="-50%"`, `y="-50%"`, `width="200%"`, `height="200%"`)
	c.dc.FeFlood(svg.Filterspec{Result: "flood"}, st.ShadowColor.Hex(), st.ShadowColor.A)
	c.dc.FeComposite(svg.Filterspec{In: "flood", In2: "SourceAlpha", Result: "shape"}, "in", 0, 0, 0, 0)
	c.dc.FeGaussianBlur(svg.Filterspec{In: "shape", Result: "shadow"}, std, std)
	c.dc.FeMerge([]string{"shadow", "SourceGraphic"})
	c.dc.Fend()
	return id
}

// erase removes the area covered by the path from everything drawn so
// far, by wrapping the existing content in a mask.
func (c *Canvas) erase(d string, paint surface.Paint) {
	alpha := c.Current.Alpha
	if col, ok := paint.(surface.Color); ok {
		alpha *= col.A
	}
	id := c.newID("m")
	fmt.Fprintf(&c.defs, `<mask id="%s" maskUnits="userSpaceOnUse" x="0" y="0" width="%d" height="%d">`+"\n",
		id, c.w, c.h)
	c.dc.Rect(0, 0, c.w, c.h, `fill="white"`)
	attrs := []string{`fill="black"`}
	if alpha < 1 {
		attrs = append(attrs, `fill-opacity="`+num(alpha)+`"`)
	}
	if m := c.Current.CTM; m != matrix.Identity {
		attrs = append(attrs, fmt.Sprintf(`transform="matrix(%s %s %s %s %s %s)"`,
			num(m[0]), num(m[1]), num(m[2]), num(m[3]), num(m[4]), num(m[5])))
	}
	c.dc.Path(d, attrs...)
	c.defs.WriteString("</mask>\n")

	content := bytes.Clone(c.body.Bytes())
	c.body.Reset()
	c.bc.Group(`mask="url(#` + id + `)"`)
	c.body.Write(content)
	c.bc.Gend()
}

func (c *Canvas) newID(prefix string) string {
	c.ids++
	return prefix + strconv.Itoa(c.ids)
}

// pathData converts p to the d attribute syntax.
func pathData(p *path.Data) string {
	if p == nil || len(p.Cmds) == 0 {
		return ""
	}
	var b strings.Builder
	k := 0
	pt := func() {
		b.WriteString(num(p.Coords[k].X))
		b.WriteByte(' ')
		b.WriteString(num(p.Coords[k].Y))
		k++
	}
	for i, cmd := range p.Cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch cmd {
		case path.CmdMoveTo:
			b.WriteString("M")
			pt()
		case path.CmdLineTo:
			b.WriteString("L")
			pt()
		case path.CmdQuadTo:
			b.WriteString("Q")
			pt()
			b.WriteByte(' ')
			pt()
		case path.CmdCubeTo:
			b.WriteString("C")
			pt()
			b.WriteByte(' ')
			pt()
			b.WriteByte(' ')
			pt()
		case path.CmdClose:
			b.WriteString("Z")
		}
	}
	return b.String()
}

// num formats v with at most three decimals.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		return "0" // avoid "-0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func capName(c graphics.LineCapStyle) string {
	switch c {
	case graphics.LineCapRound:
		return "round"
	case graphics.LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

func joinName(j graphics.LineJoinStyle) string {
	switch j {
	case graphics.LineJoinRound:
		return "round"
	case graphics.LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

// errWriter remembers the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	_, e.err = e.w.Write(p)
	return len(p), nil
}
