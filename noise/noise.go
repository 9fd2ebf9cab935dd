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

// Package noise provides a seeded two-dimensional gradient noise field.
//
// The field has a period of 256 lattice cells in both directions and takes
// values in [0, 1].  Only a single octave is provided.
package noise

import (
	"math"

	"seehuhn.de/go/genera/rng"
)

// gradients are the eight lattice gradient directions.
var gradients = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// Field is a deterministic noise function.
// A Field is immutable after construction and safe for concurrent use.
type Field struct {
	perm [512]uint8
}

// New builds the noise field for the given seed.  The permutation table is
// shuffled with its own random stream, so the field does not depend on (or
// disturb) any other stream seeded with the same value.
func New(seed int32) *Field {
	src := rng.New(seed)
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	for i := 255; i > 0; i-- {
		j := int(math.Floor(src.Next() * float64(i+1)))
		p[i], p[j] = p[j], p[i]
	}

	f := &Field{}
	copy(f.perm[:256], p[:])
	copy(f.perm[256:], p[:])
	return f
}

// At evaluates the field at (x, y).  The result lies in [0, 1] and is 0.5
// at every lattice point.
func (f *Field) At(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	X := int(fx) & 255
	Y := int(fy) & 255
	xf := x - fx
	yf := y - fy
	u := fade(xf)
	v := fade(yf)

	p := &f.perm
	aa := p[int(p[X])+Y]
	ab := p[int(p[X])+Y+1]
	ba := p[int(p[X+1])+Y]
	bb := p[int(p[X+1])+Y+1]

	n := lerp(
		lerp(grad(aa, xf, yf), grad(ba, xf-1, yf), u),
		lerp(grad(ab, xf, yf-1), grad(bb, xf-1, yf-1), u),
		v)
	return float64(n*0.5) + 0.5
}

func fade(t float64) float64 {
	q := float64(t*6) - 15
	q = float64(t*q) + 10
	return t * t * t * q
}

func lerp(a, b, t float64) float64 {
	return a + float64(t*(b-a))
}

func grad(hash uint8, x, y float64) float64 {
	g := &gradients[hash%8]
	return float64(g[0]*x) + float64(g[1]*y)
}
