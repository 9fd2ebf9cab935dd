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

// Package palette generates harmonious seven-colour palettes and samples
// colours from them with random weights.
package palette

import (
	"fmt"
	"math"

	"seehuhn.de/go/genera/rng"
)

// Size is the number of colours in every palette.
const Size = 7

// HSL is a colour given by hue in degrees [0, 360), and saturation and
// lightness in percent.
type HSL struct {
	H, S, L float64
}

// Lerp interpolates each component of the colour separately.
// Hue is interpolated on the number line, not around the circle.
func (c HSL) Lerp(d HSL, t float64) HSL {
	return HSL{
		H: rng.Lerp(c.H, d.H, t),
		S: rng.Lerp(c.S, d.S, t),
		L: rng.Lerp(c.L, d.L, t),
	}
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%.1f, %.1f%%, %.1f%%)", c.H, c.S, c.L)
}

// Palette is an ordered list of colours.
type Palette [Size]HSL

// Mode selects a colour-harmony rule.
type Mode string

// These are the supported palette modes.
const (
	Analogous     Mode = "analogous"
	Complementary Mode = "complementary"
	Triadic       Mode = "triadic"
	Warm          Mode = "warm"
	Neon          Mode = "neon"
	Mono          Mode = "mono"
)

// Modes lists all palette modes in their canonical order.
var Modes = []Mode{Analogous, Complementary, Triadic, Warm, Neon, Mono}

var labels = map[Mode]string{
	Analogous:     "ANA",
	Complementary: "CMP",
	Triadic:       "TRI",
	Warm:          "WRM",
	Neon:          "NEO",
	Mono:          "MON",
}

// Label returns a three-letter abbreviation of the mode.
func (m Mode) Label() string {
	if l, ok := labels[m]; ok {
		return l
	}
	return "???"
}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if _, ok := labels[m]; !ok {
		return "", fmt.Errorf("unknown palette mode %q", s)
	}
	return m, nil
}

// Generate draws a palette from src.
//
// The base hue is always drawn first, even for modes which do not use it.
// Unknown modes are treated as Analogous.
func Generate(src *rng.Source, mode Mode) Palette {
	bh := src.Uniform(0, 360)

	var p Palette
	switch mode {
	case Complementary:
		c := math.Mod(bh+180, 360)
		p[0] = HSL{bh, src.Uniform(60, 90), src.Uniform(42, 65)}
		p[1] = HSL{bh, src.Uniform(45, 75), src.Uniform(58, 78)}
		p[2] = HSL{c, src.Uniform(60, 90), src.Uniform(42, 65)}
		p[3] = HSL{c, src.Uniform(45, 75), src.Uniform(55, 75)}
		p[4] = HSL{math.Mod(bh+90, 360), src.Uniform(35, 55), src.Uniform(50, 70)}
		p[5] = HSL{math.Mod(bh+270, 360), src.Uniform(40, 65), src.Uniform(48, 68)}
		p[6] = HSL{bh, src.Uniform(20, 40), src.Uniform(15, 30)}

	case Triadic:
		offsets := [Size]float64{0, 120, 240, 60, 180, 300, 30}
		for i, o := range offsets {
			p[i] = HSL{math.Mod(bh+o, 360), src.Uniform(48, 88), src.Uniform(40, 68)}
		}

	case Warm:
		// all hues are drawn before any saturation or lightness
		hues := [Size]float64{
			src.Uniform(0, 15), src.Uniform(15, 40), src.Uniform(35, 55),
			src.Uniform(40, 60), src.Uniform(0, 10), src.Uniform(45, 65),
			src.Uniform(20, 35),
		}
		for i, h := range hues {
			p[i] = HSL{h, src.Uniform(55, 95), src.Uniform(40, 70)}
		}

	case Neon:
		for i := range p {
			p[i] = HSL{math.Mod(bh+float64(i)*51, 360), src.Uniform(88, 100), src.Uniform(50, 64)}
		}

	case Mono:
		for i := range p {
			p[i] = HSL{bh, src.Uniform(30, 90), 12 + float64(i)*11}
		}

	default:
		for i := range p {
			h := math.Mod(bh+float64(i)*20-60+360, 360)
			p[i] = HSL{h, src.Uniform(50, 92), src.Uniform(38, 72)}
		}
	}
	return p
}
