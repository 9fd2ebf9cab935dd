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

package surface

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a colour with straight (non-premultiplied) alpha.
// All components are in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

// Transparent is fully transparent black.
var Transparent = Color{}

// HSL converts a colour given by hue in degrees and saturation and
// lightness in percent to an opaque Color.  Hues outside [0, 360) wrap
// around; saturation and lightness are clamped to [0, 100].
func HSL(h, s, l float64) Color {
	return HSLA(h, s, l, 1)
}

// HSLA is like HSL, but with an alpha value in [0, 1].
func HSLA(h, s, l, a float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = min(max(s, 0), 100) / 100
	l = min(max(l, 0), 100) / 100
	c := colorful.Hsl(h, s, l).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: min(max(a, 0), 1)}
}

// RGBA returns a colour from 8-bit channel values and an alpha in [0, 1].
func RGBA(r, g, b uint8, a float64) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: min(max(a, 0), 1),
	}
}

// Hex parses a "#rrggbb" colour.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("surface: %w", err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// MustHex is like Hex but panics on malformed input.
// It is intended for colour constants.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with the alpha value multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= min(max(a, 0), 1)
	return c
}

// Premultiplied returns the colour components multiplied by alpha.
func (c Color) Premultiplied() (r, g, b, a float64) {
	return c.R * c.A, c.G * c.A, c.B * c.A, c.A
}

// Hex returns the "#rrggbb" form of the colour, ignoring alpha.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

func (c Color) isPaint() {}
