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

// Package layout distributes the elements of one composition layer over
// the canvas.
package layout

import (
	"fmt"
	"math"

	"seehuhn.de/go/genera/noise"
	"seehuhn.de/go/genera/rng"
)

// Mode selects a spatial distribution.
type Mode string

// These are the supported layout modes.
const (
	Scatter Mode = "scatter"
	Grid    Mode = "grid"
	Radial  Mode = "radial"
	Noise   Mode = "noise"
	Cluster Mode = "cluster"
	Burst   Mode = "burst"
)

// Modes lists all layout modes in their canonical order.
var Modes = []Mode{Scatter, Grid, Radial, Noise, Cluster, Burst}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown layout %q", s)
}

// maxNoiseAttempts bounds the rejection sampling of the Noise layout.
// When all attempts are rejected, the last candidate is used.
const maxNoiseAttempts = 20

// ClusterCenter is an attraction point of the Cluster layout.
type ClusterCenter struct {
	X, Y   float64
	Spread float64
}

// Engine computes element positions for one layer.
type Engine struct {
	mode  Mode
	src   *rng.Source
	field *noise.Field

	w, h float64
	n    int

	noiseScale     float64
	noiseInfluence float64

	// Clusters are drawn for every layer, whatever the mode, so that the
	// random stream does not depend on the layout.
	Clusters []ClusterCenter

	cols, rows int
	rings      int
}

// New prepares the layout of a layer with n elements on a w×h canvas.
// The cluster centres are drawn from src immediately.
func New(mode Mode, src *rng.Source, field *noise.Field, w, h float64, n int, noiseScale, noiseInfluence float64) *Engine {
	e := &Engine{
		mode:           mode,
		src:            src,
		field:          field,
		w:              w,
		h:              h,
		n:              n,
		noiseScale:     noiseScale,
		noiseInfluence: noiseInfluence,
	}

	k := src.Int(2, 5)
	e.Clusters = make([]ClusterCenter, k)
	for i := range e.Clusters {
		e.Clusters[i] = ClusterCenter{
			X:      src.Uniform(w*0.12, w*0.88),
			Y:      src.Uniform(h*0.12, h*0.88),
			Spread: src.Uniform(50, min(w, h)*0.4),
		}
	}

	switch mode {
	case Grid:
		e.cols, e.rows = GridDims(n, w, h)
	case Radial:
		e.rings = int(math.Ceil(math.Sqrt(float64(n) / 3)))
	}
	return e
}

// GridDims returns the number of columns and rows used by the Grid layout.
// The result always satisfies cols*rows >= n.
func GridDims(n int, w, h float64) (cols, rows int) {
	if n <= 0 {
		return 1, 1
	}
	cols = int(math.Ceil(math.Sqrt(float64(n) * (w / h))))
	cols = max(cols, 1)
	rows = int(math.Ceil(float64(n) / float64(cols)))
	return cols, rows
}

// Position returns the base position of element i, before flow
// displacement.
func (e *Engine) Position(i int) (x, y float64) {
	src := e.src
	w, h := e.w, e.h

	switch e.mode {
	case Grid:
		cw := w / float64(e.cols)
		ch := h / float64(e.rows)
		x = float64(float64(i%e.cols)*cw) + cw/2 + float64(src.Uniform(-cw*0.3, cw*0.3)*e.noiseInfluence)
		y = float64(float64(i/e.cols)*ch) + ch/2 + float64(src.Uniform(-ch*0.3, ch*0.3)*e.noiseInfluence)

	case Radial:
		ring := math.Floor(src.Next() * float64(e.rings))
		r := float64(ring/float64(e.rings)*min(w, h)*0.45) + src.Uniform(-15, 15)
		a := src.Uniform(0, rng.Tau)
		x = w/2 + float64(math.Cos(a)*r)
		y = h/2 + float64(math.Sin(a)*r)

	case Noise:
		for att := 1; ; att++ {
			x = src.Uniform(0, w)
			y = src.Uniform(0, h)
			v := e.field.At(x*e.noiseScale*0.01, y*e.noiseScale*0.01)
			if !(v < src.Next()*0.65) || att >= maxNoiseAttempts {
				break
			}
		}

	case Cluster:
		cl := rng.Pick(src, e.Clusters)
		a := src.Uniform(0, rng.Tau)
		d := float64(src.Uniform(0, cl.Spread) * src.Next())
		x = cl.X + float64(math.Cos(a)*d)
		y = cl.Y + float64(math.Sin(a)*d)

	case Burst:
		a := src.Uniform(0, rng.Tau)
		maxR := min(w, h) * 0.48
		r := float64(maxR * math.Pow(src.Next(), 0.35))
		x = w/2 + float64(math.Cos(a)*r) + src.Uniform(-10, 10)
		y = h/2 + float64(math.Sin(a)*r) + src.Uniform(-10, 10)

	default:
		x = src.Uniform(-30, w+30)
		y = src.Uniform(-30, h+30)
	}
	return x, y
}

// Flow is the result of the noise-driven displacement of a position.
type Flow struct {
	X, Y float64 // displaced position

	// Primary is the noise sample at the original position.  It drives
	// the flow angle, the noise colour strategy and the rotation.
	Primary float64

	// Secondary is an independent noise sample, used to vary sizes.
	Secondary float64

	// Angle is the flow direction in radians, in [0, 4π].
	Angle float64
}

// Displace moves (x, y) along the local flow direction of the field by up
// to 45 units, scaled by influence.
func Displace(field *noise.Field, x, y, scale, influence float64) Flow {
	nv := field.At(x*scale*0.008, y*scale*0.008)
	nv2 := field.At(float64(x*scale*0.012)+100, float64(y*scale*0.012)+100)
	angle := nv * rng.Tau * 2
	return Flow{
		X:         x + float64(math.Cos(angle)*influence*45),
		Y:         y + float64(math.Sin(angle)*influence*45),
		Primary:   nv,
		Secondary: nv2,
		Angle:     angle,
	}
}
