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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/genera/internal/glyph"
	"seehuhn.de/go/genera/surface"
)

// Canvas is a surface.Surface which draws into an *image.RGBA.
type Canvas struct {
	surface.Stack

	img   *image.RGBA
	ras   *Rasteriser
	scale float64

	mask []float32 // shadow mask, one value per pixel
	tmp  []float32

	err error
}

var _ surface.Surface = (*Canvas)(nil)

// New returns a transparent canvas of w×h pixels.
func New(w, h int) *Canvas {
	return NewScaled(w, h, 1)
}

// NewScaled returns a transparent canvas for a w×h user-space area,
// where one user-space unit covers scale pixels.
func NewScaled(w, h int, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	pw := max(int(math.Ceil(float64(w)*scale)), 1)
	ph := max(int(math.Ceil(float64(h)*scale)), 1)
	clip := rect.Rect{URx: float64(pw), URy: float64(ph)}
	return &Canvas{
		Stack: surface.NewStack(matrix.Scale(scale, scale)),
		img:   image.NewRGBA(image.Rect(0, 0, pw, ph)),
		ras:   NewRasteriser(clip),
		scale: scale,
	}
}

// Image returns the image the canvas draws into.  The pixel data is
// premultiplied 8-bit RGBA.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Err returns the first error encountered while drawing text, if any.
// Text which cannot be drawn is skipped.
func (c *Canvas) Err() error {
	return c.err
}

// Fill implements the surface.Surface interface.
func (c *Canvas) Fill(p *path.Data, paint surface.Paint) {
	c.draw(paint, func(emit func(y, xMin int, cov []float32)) {
		c.ras.FillNonZero(p, emit)
	})
}

// Stroke implements the surface.Surface interface.
func (c *Canvas) Stroke(p *path.Data, paint surface.Paint, style surface.StrokeStyle) {
	if style.Width <= 0 {
		return
	}
	c.draw(paint, func(emit func(y, xMin int, cov []float32)) {
		c.ras.Width = style.Width
		c.ras.Cap = style.Cap
		c.ras.Join = style.Join
		c.ras.MiterLimit = style.MiterLimit
		if c.ras.MiterLimit < 1 {
			c.ras.MiterLimit = defaultMiterLimit
		}
		c.ras.Stroke(p, emit)
	})
}

// FillText implements the surface.Surface interface.
func (c *Canvas) FillText(text string, x, y, size float64, paint surface.Paint) {
	outline, err := glyph.Outline(text, size)
	if err != nil {
		if c.err == nil {
			c.err = err
		}
		return
	}
	c.Save()
	c.Translate(x, y)
	c.Fill(outline, paint)
	c.Restore()
}

// sampler returns the premultiplied source colour at the centre of a
// device pixel.
type sampler func(x, y int) (r, g, b, a float64)

// draw composites the coverage produced by run, painted with paint, into
// the image.  If the current state has a shadow, the shadow is drawn
// first.
func (c *Canvas) draw(paint surface.Paint, run func(emit func(y, xMin int, cov []float32))) {
	st := &c.Current
	if st.Alpha <= 0 {
		return
	}
	bounds := c.img.Bounds()
	c.ras.Reset(rect.Rect{URx: float64(bounds.Dx()), URy: float64(bounds.Dy())})
	c.ras.CTM = st.CTM

	src, clip, ok := c.sampler(paint)
	if !ok {
		return
	}
	if clip != nil {
		c.ras.Clip = *clip
	}

	if st.HasShadow() {
		c.drawShadow(src, run)
	}

	alpha := st.Alpha
	op := st.Composite
	run(func(y, xMin int, cov []float32) {
		row := c.img.Pix[y*c.img.Stride:]
		for i, cv := range cov {
			x := xMin + i
			r, g, b, a := src(x, y)
			k := float64(cv) * alpha
			compositePixel(row[4*x:4*x+4], op, r*k, g*k, b*k, a*k)
		}
	})
}

// drawShadow renders the blurred shadow of the shape produced by run.
func (c *Canvas) drawShadow(src sampler, run func(emit func(y, xMin int, cov []float32))) {
	st := &c.Current
	w, h := c.img.Bounds().Dx(), c.img.Bounds().Dy()
	n := w * h
	if cap(c.mask) < n {
		c.mask = make([]float32, n)
		c.tmp = make([]float32, n)
	}
	c.mask = c.mask[:n]
	c.tmp = c.tmp[:n]
	clear(c.mask)

	x0, x1, y0, y1 := w, 0, h, 0
	run(func(y, xMin int, cov []float32) {
		row := c.mask[y*w:]
		for i, k := range cov {
			_, _, _, a := src(xMin+i, y)
			row[xMin+i] = k * float32(a)
		}
		x0 = min(x0, xMin)
		x1 = max(x1, xMin+len(cov))
		y0 = min(y0, y)
		y1 = max(y1, y+1)
	})
	if x0 >= x1 {
		return
	}

	sigma := st.ShadowBlur / 2 * c.scale
	pad := int(math.Ceil(3 * sigma))
	x0, x1 = max(x0-pad, 0), min(x1+pad, w)
	y0, y1 = max(y0-pad, 0), min(y1+pad, h)
	blur(c.mask, c.tmp, w, x0, x1, y0, y1, sigma)

	sr, sg, sb, sa := st.ShadowColor.Premultiplied()
	alpha := st.Alpha
	for y := y0; y < y1; y++ {
		row := c.img.Pix[y*c.img.Stride:]
		m := c.mask[y*w:]
		for x := x0; x < x1; x++ {
			k := float64(m[x]) * alpha
			if k <= 0 {
				continue
			}
			compositePixel(row[4*x:4*x+4], st.Composite, sr*k, sg*k, sb*k, sa*k)
		}
	}
}

// sampler constructs the colour source for paint.  For radial gradients
// whose outer colour is transparent, clip restricts drawing to the area
// of the outer circle.  ok is false if nothing would be drawn.
func (c *Canvas) sampler(paint surface.Paint) (src sampler, clip *rect.Rect, ok bool) {
	ctm := c.Current.CTM
	switch p := paint.(type) {
	case surface.Color:
		if p.A <= 0 {
			return nil, nil, false
		}
		r, g, b, a := p.Premultiplied()
		return func(int, int) (float64, float64, float64, float64) {
			return r, g, b, a
		}, nil, true

	case *surface.LinearGradient:
		inv, ok := surface.Inverse(ctm)
		if !ok || len(p.Stops) == 0 {
			return nil, nil, false
		}
		return func(x, y int) (float64, float64, float64, float64) {
			u := inv.Apply(vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5})
			return p.ColorAt(p.Param(u)).Premultiplied()
		}, nil, true

	case *surface.RadialGradient:
		inv, ok := surface.Inverse(ctm)
		if !ok || len(p.Stops) == 0 {
			return nil, nil, false
		}
		src := func(x, y int) (float64, float64, float64, float64) {
			u := inv.Apply(vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5})
			t, ok := p.Param(u)
			if !ok {
				return 0, 0, 0, 0
			}
			return p.ColorAt(t).Premultiplied()
		}
		last := p.Stops[len(p.Stops)-1].Color
		if last.A > 0 || p.C1.Sub(p.C0).Length()+p.R0 > p.R1 {
			return src, nil, true
		}
		ctr := ctm.Apply(p.C1)
		rx := p.R1 * math.Hypot(ctm[0], ctm[2])
		ry := p.R1 * math.Hypot(ctm[1], ctm[3])
		b := c.ras.Clip
		clip := &rect.Rect{
			LLx: max(b.LLx, math.Floor(ctr.X-rx)),
			LLy: max(b.LLy, math.Floor(ctr.Y-ry)),
			URx: min(b.URx, math.Ceil(ctr.X+rx)),
			URy: min(b.URy, math.Ceil(ctr.Y+ry)),
		}
		if clip.LLx >= clip.URx || clip.LLy >= clip.URy {
			return nil, nil, false
		}
		return src, clip, true
	}
	return nil, nil, false
}

// compositePixel combines the premultiplied source (r, g, b, a) with the
// premultiplied 8-bit destination pixel px.
func compositePixel(px []byte, op surface.Composite, r, g, b, a float64) {
	if a <= 0 && r <= 0 && g <= 0 && b <= 0 {
		return
	}
	dr := float64(px[0]) / 255
	dg := float64(px[1]) / 255
	db := float64(px[2]) / 255
	da := float64(px[3]) / 255

	switch op {
	case surface.Lighter:
		dr = min(dr+r, 1)
		dg = min(dg+g, 1)
		db = min(db+b, 1)
		da = min(da+a, 1)
	case surface.DestinationOut:
		k := 1 - a
		dr *= k
		dg *= k
		db *= k
		da *= k
	default:
		k := 1 - a
		dr = r + dr*k
		dg = g + dg*k
		db = b + db*k
		da = a + da*k
	}

	px[0] = toByte(dr)
	px[1] = toByte(dg)
	px[2] = toByte(db)
	px[3] = toByte(da)
}

func toByte(v float64) byte {
	return byte(min(max(v*255+0.5, 0), 255))
}
