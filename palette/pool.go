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

import "seehuhn.de/go/genera/rng"

// Pool samples palette colours with random integer weights.
// Colours earlier in the palette are not favoured: each colour
// independently receives a weight between 1 and 6.
type Pool struct {
	src     *rng.Source
	entries []HSL
}

// NewPool draws the weights from src and returns the pool.  Later calls to
// Next draw from the same stream.
func NewPool(p Palette, src *rng.Source) *Pool {
	entries := make([]HSL, 0, Size*6)
	for _, c := range p {
		w := src.Int(1, 6)
		for range w {
			entries = append(entries, c)
		}
	}
	return &Pool{src: src, entries: entries}
}

// Next returns a colour from the pool.
func (p *Pool) Next() HSL {
	return rng.Pick(p.src, p.entries)
}

// Weight returns how many pool entries hold the colour c.
func (p *Pool) Weight(c HSL) int {
	n := 0
	for _, e := range p.entries {
		if e == c {
			n++
		}
	}
	return n
}
