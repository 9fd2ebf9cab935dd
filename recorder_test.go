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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/genera/surface"
)

// op is a drawing command captured by recorder.
type op struct {
	Kind  string
	State surface.State
	Path  *path.Data
	Paint surface.Paint
	Style surface.StrokeStyle
	Text  string
}

// recorder is a surface which remembers all drawing commands.
type recorder struct {
	surface.Stack
	ops      []op
	maxDepth int
}

func newRecorder() *recorder {
	return &recorder{Stack: surface.NewStack(matrix.Identity)}
}

func (r *recorder) Save() {
	r.Stack.Save()
	r.maxDepth = max(r.maxDepth, r.Depth())
}

func (r *recorder) Fill(p *path.Data, paint surface.Paint) {
	r.ops = append(r.ops, op{Kind: "fill", State: r.Current, Path: p, Paint: paint})
}

func (r *recorder) Stroke(p *path.Data, paint surface.Paint, style surface.StrokeStyle) {
	r.ops = append(r.ops, op{Kind: "stroke", State: r.Current, Path: p, Paint: paint, Style: style})
}

func (r *recorder) FillText(text string, x, y, size float64, paint surface.Paint) {
	r.ops = append(r.ops, op{Kind: "text", State: r.Current, Paint: paint, Text: text})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.Kind == kind {
			n++
		}
	}
	return n
}
