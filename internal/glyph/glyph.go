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

// Package glyph converts text into outline paths, using the Go Mono font.
package glyph

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var mono = sync.OnceValues(func() (*sfnt.Font, error) {
	return sfnt.Parse(gomono.TTF)
})

// Outline returns the outline of text set at size pixels per em.
// The outline is centred on the origin: horizontally on the advance width
// and vertically on the middle of the em box.  The y-axis points down.
//
// Runes which are missing from the font are skipped, but still advance the
// pen position.
func Outline(text string, size float64) (*path.Data, error) {
	f, err := mono()
	if err != nil {
		return nil, fmt.Errorf("glyph: loading font: %w", err)
	}

	ppem := fixed.Int26_6(size * 64)
	var buf sfnt.Buffer

	m, err := f.Metrics(&buf, ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("glyph: %w", err)
	}
	dy := float64(m.Ascent-m.Descent) / 2 / 64

	type placed struct {
		segs sfnt.Segments
		x    float64
	}
	var glyphs []placed
	var pen fixed.Int26_6
	for _, r := range text {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return nil, fmt.Errorf("glyph: %q: %w", r, err)
		}
		adv, err := f.GlyphAdvance(&buf, idx, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("glyph: %q: %w", r, err)
		}
		if idx != 0 {
			segs, err := f.LoadGlyph(&buf, idx, ppem, nil)
			if err != nil {
				return nil, fmt.Errorf("glyph: %q: %w", r, err)
			}
			// the segments are only valid until buf is reused
			glyphs = append(glyphs, placed{segs: append(sfnt.Segments(nil), segs...), x: float64(pen) / 64})
		}
		pen += adv
	}

	dx := -float64(pen) / 64 / 2
	p := &path.Data{}
	for _, g := range glyphs {
		open := false
		pt := func(q fixed.Point26_6) vec.Vec2 {
			return vec.Vec2{
				X: float64(q.X)/64 + g.x + dx,
				Y: float64(q.Y)/64 + dy,
			}
		}
		for _, s := range g.segs {
			switch s.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					p.Close()
				}
				p.MoveTo(pt(s.Args[0]))
				open = true
			case sfnt.SegmentOpLineTo:
				p.LineTo(pt(s.Args[0]))
			case sfnt.SegmentOpQuadTo:
				p.QuadTo(pt(s.Args[0]), pt(s.Args[1]))
			case sfnt.SegmentOpCubeTo:
				p.CubeTo(pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2]))
			}
		}
		if open {
			p.Close()
		}
	}
	return p, nil
}
