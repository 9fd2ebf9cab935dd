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

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/genera"
)

// options holds the settings shared by all subcommands.
type options struct {
	params genera.Params
	file   string
	seed   int32
	width  int
	height int

	brush        string
	brushSize    float64
	brushOpacity float64
	strokes      string

	verbose    bool
	randomSeed bool
}

func newFlagSet(name string, o *options) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	o.params = genera.DefaultParams()
	fs.StringVar(&o.file, "params", "", "read parameters from a JSON `file`")
	o.seed = 42
	fs.Func("seed", "random `seed`, or \"random\" to pick one (default 42)", o.setSeed)
	fs.IntVar(&o.width, "w", 600, "canvas width")
	fs.IntVar(&o.height, "h", 600, "canvas height")
	fs.StringVar(&o.brush, "brush", "scatter", "brush type for -strokes")
	fs.Float64Var(&o.brushSize, "brush-size", 30, "brush diameter")
	fs.Float64Var(&o.brushOpacity, "brush-opacity", 0.8, "brush opacity")
	fs.StringVar(&o.strokes, "strokes", "", "brush strokes to paint, as \"x,y x,y ...\" separated by ';'")
	fs.BoolVar(&o.verbose, "v", false, "log debug messages")
	bindParams(fs, &o.params)
	return fs
}

// bindParams defines one flag per composition parameter.
func bindParams(fs *flag.FlagSet, p *genera.Params) {
	fs.Float64Var(&p.Density, "density", p.Density, "element density, 0-1")
	fs.Float64Var(&p.Complexity, "complexity", p.Complexity, "shape complexity, 0-1")
	fs.Float64Var(&p.Organicness, "organicness", p.Organicness, "shape irregularity, 0-1")
	fs.Float64Var(&p.SizeMin, "size-min", p.SizeMin, "smallest element size")
	fs.Float64Var(&p.SizeMax, "size-max", p.SizeMax, "largest element size")
	fs.Float64Var(&p.OpacityMin, "opacity-min", p.OpacityMin, "lowest element opacity")
	fs.Float64Var(&p.OpacityMax, "opacity-max", p.OpacityMax, "highest element opacity")
	fs.Float64Var(&p.RotationSpread, "rotation", p.RotationSpread, "alignment with the flow field, 0-1")
	fs.Float64Var(&p.StrokeRatio, "stroke-ratio", p.StrokeRatio, "fraction of outline-only elements")
	fs.StringVar((*string)(&p.PaletteMode), "palette", string(p.PaletteMode), "palette mode")
	fs.StringVar((*string)(&p.Layout), "layout", string(p.Layout), "layout mode")
	fs.Float64Var(&p.NoiseScale, "noise-scale", p.NoiseScale, "noise frequency multiplier")
	fs.Float64Var(&p.NoiseInfluence, "noise-influence", p.NoiseInfluence, "flow displacement, 0-1")
	fs.StringVar((*string)(&p.ColorStrategy), "colors", string(p.ColorStrategy), "colour strategy: pool, noise or field")
	fs.Float64Var(&p.OscillatorFreq, "osc-freq", p.OscillatorFreq, "size oscillator frequency")
	fs.Float64Var(&p.OscillatorAmp, "osc-amp", p.OscillatorAmp, "size oscillator amplitude")
	fs.StringVar((*string)(&p.SymmetryMode), "symmetry", string(p.SymmetryMode), "symmetry: none, bilateral, quad or rotational")
	fs.IntVar(&p.LayerCount, "layers", p.LayerCount, "number of layers, 1-5")
	fs.Float64Var(&p.LayerFade, "layer-fade", p.LayerFade, "opacity reduction of later layers")
	fs.Float64Var(&p.LightAngle, "light-angle", p.LightAngle, "light direction in degrees")
	fs.Float64Var(&p.LightIntensity, "light", p.LightIntensity, "light intensity, 0-1")
	fs.BoolVar(&p.GradientShapes, "gradients", p.GradientShapes, "shade shapes with gradients")
	fs.Float64Var(&p.BeadChains, "beads", p.BeadChains, "bead chain intensity")
	fs.Float64Var(&p.TypoScatter, "glyphs", p.TypoScatter, "glyph scatter intensity")
	fs.StringVar((*string)(&p.BgStyle), "background", string(p.BgStyle), "background: flat, subtle or gradient")
	fs.Float64Var(&p.AtmoClouds, "clouds", p.AtmoClouds, "cloud intensity")
	fs.Float64Var(&p.AtmoRibbons, "ribbons", p.AtmoRibbons, "ribbon intensity")
	fs.Float64Var(&p.AtmoBlooms, "blooms", p.AtmoBlooms, "bloom intensity")
	fs.Float64Var(&p.AtmoRays, "rays", p.AtmoRays, "light ray intensity")
	fs.Float64Var(&p.Tangles, "tangles", p.Tangles, "tangle intensity")
	fs.Float64Var(&p.OutlineWeight, "outline", p.OutlineWeight, "outline weight")
}

// parseOptions parses the command line.  If a parameter file is given,
// it is loaded first and flags set on the command line are applied on
// top.
func parseOptions(fs *flag.FlagSet, o *options, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	l := newLogger(o.verbose)
	slog.SetDefault(l)
	genera.SetLogger(l)

	if o.file != "" {
		p, err := loadParams(o.file)
		if err != nil {
			return err
		}
		over := flag.NewFlagSet("", flag.ContinueOnError)
		bindParams(over, &p)
		fs.Visit(func(f *flag.Flag) {
			if over.Lookup(f.Name) == nil || err != nil {
				return
			}
			err = over.Set(f.Name, f.Value.String())
		})
		if err != nil {
			return err
		}
		o.params = p
	}

	if o.randomSeed {
		o.seed = rand.Int32N(999999)
	}
	if o.width <= 0 || o.height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", o.width, o.height)
	}
	return o.params.Validate()
}

var errSeed = errors.New(`seed must be a 32-bit integer or "random"`)

func (o *options) setSeed(s string) error {
	if s == "random" {
		o.randomSeed = true
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return errSeed
	}
	o.seed, o.randomSeed = int32(n), false
	return nil
}

// loadParams reads a JSON parameter file.  Fields missing from the file
// keep their default values.
func loadParams(fname string) (genera.Params, error) {
	p := genera.DefaultParams()
	data, err := os.ReadFile(fname)
	if err != nil {
		return p, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return p, fmt.Errorf("%s: %w", fname, err)
	}
	return p, nil
}

var errStroke = errors.New("malformed stroke")

// parseStrokes parses a list of polylines of the form
// "x,y x,y ...;x,y ...".
func parseStrokes(s string) ([][]vec.Vec2, error) {
	var strokes [][]vec.Vec2
	for _, part := range strings.Split(s, ";") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		stroke := make([]vec.Vec2, 0, len(fields))
		for _, f := range fields {
			xs, ys, ok := strings.Cut(f, ",")
			if !ok {
				return nil, fmt.Errorf("%w: %q", errStroke, f)
			}
			x, err := strconv.ParseFloat(xs, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", errStroke, f)
			}
			y, err := strconv.ParseFloat(ys, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", errStroke, f)
			}
			stroke = append(stroke, vec.Vec2{X: x, Y: y})
		}
		strokes = append(strokes, stroke)
	}
	return strokes, nil
}
