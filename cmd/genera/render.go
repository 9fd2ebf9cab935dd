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
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"seehuhn.de/go/genera"
	"seehuhn.de/go/genera/raster"
	"seehuhn.de/go/genera/surface"
	"seehuhn.de/go/genera/svgcanvas"
)

var errNoOutput = errors.New("missing output file name")

func runPNG(args []string) error {
	o := &options{}
	fs := newFlagSet("png", o)
	scale := fs.Float64("scale", 1, "pixels per canvas unit")
	thumb := fs.Int("thumb", 0, "also write a thumbnail of the given `width`")
	if err := parseOptions(fs, o, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errNoOutput
	}
	out := fs.Arg(0)

	c := raster.NewScaled(o.width, o.height, *scale)
	if err := compose(c, o); err != nil {
		return err
	}
	if err := c.Err(); err != nil {
		slog.Warn("text was not drawn", "error", err)
	}
	img := c.Image()
	if err := writePNG(out, img); err != nil {
		return err
	}
	slog.Info("wrote image", "file", out, "seed", o.seed)

	if *thumb > 0 {
		name := strings.TrimSuffix(out, filepath.Ext(out)) + ".thumb.png"
		if err := writePNG(name, thumbnail(img, *thumb)); err != nil {
			return err
		}
	}
	return nil
}

func runSVG(args []string) (err error) {
	o := &options{}
	fs := newFlagSet("svg", o)
	if err := parseOptions(fs, o, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errNoOutput
	}
	out := fs.Arg(0)

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	c := svgcanvas.New(f, o.width, o.height)
	if err := compose(c, o); err != nil {
		return err
	}
	if err := c.Close(); err != nil {
		return err
	}
	slog.Info("wrote document", "file", out, "seed", o.seed)
	return nil
}

func runParams(args []string) error {
	o := &options{}
	fs := newFlagSet("params", o)
	if err := parseOptions(fs, o, args); err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(o.params)
}

// compose draws the composition, followed by the brush strokes given on
// the command line.
func compose(s surface.Surface, o *options) error {
	genera.Generate(s, o.width, o.height, o.params, o.seed)
	if o.strokes == "" {
		return nil
	}

	strokes, err := parseStrokes(o.strokes)
	if err != nil {
		return err
	}
	bt, err := genera.ParseBrushType(o.brush)
	if err != nil {
		return err
	}
	p := &o.params
	b := genera.NewBrush(genera.BrushContext{
		Type:           bt,
		Size:           o.brushSize,
		Opacity:        o.brushOpacity,
		Palette:        genera.PaletteFor(p.PaletteMode, o.seed),
		Complexity:     p.Complexity,
		Organicness:    p.Organicness,
		LightAngle:     p.LightAngle,
		LightIntensity: p.LightIntensity,
		GradientShapes: p.GradientShapes,
	}, o.seed)
	for i, stroke := range strokes {
		b.Reseed(o.seed + int32(i)*1000)
		b.PaintAt(s, stroke[0])
		for j := 1; j < len(stroke); j++ {
			b.StrokeTo(s, stroke[j-1], stroke[j])
		}
	}
	return nil
}

// thumbnail scales img to the given width, keeping the aspect ratio.
func thumbnail(img image.Image, width int) *image.RGBA {
	b := img.Bounds()
	height := max(1, b.Dy()*width/max(1, b.Dx()))
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func writePNG(fname string, img image.Image) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}
