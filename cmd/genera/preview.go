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
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/gdamore/tcell/v2"

	"seehuhn.de/go/genera"
	"seehuhn.de/go/genera/internal/dispatch"
	"seehuhn.de/go/genera/layout"
	"seehuhn.de/go/genera/palette"
	"seehuhn.de/go/genera/raster"
)

var layoutModes = []layout.Mode{
	layout.Scatter, layout.Grid, layout.Radial, layout.Noise, layout.Cluster, layout.Burst,
}

// viewer shows compositions in the terminal, two pixels per character
// cell.  Rendering runs in the background; only the image for the most
// recent settings is shown.
type viewer struct {
	screen tcell.Screen
	jobs   *dispatch.Dispatcher[*image.RGBA]
	o      *options

	img    *image.RGBA
	status string
}

func runPreview(args []string) error {
	o := &options{}
	fs := newFlagSet("preview", o)
	if err := parseOptions(fs, o, args); err != nil {
		return err
	}
	// log output would garble the screen
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	genera.SetLogger(nil)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := &viewer{
		screen: screen,
		jobs:   dispatch.New[*image.RGBA](),
		o:      o,
	}
	defer v.jobs.Close()
	return v.run()
}

func (v *viewer) run() error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	v.submit()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				v.screen.Sync()
				v.submit()
			case *tcell.EventKey:
				if !v.handleKey(ev) {
					return nil
				}
			}
		case r := <-v.jobs.Results():
			if r.Value != nil {
				v.img = r.Value
				v.draw()
			}
		}
	}
}

// handleKey reacts to a key press.  It returns false when the viewer
// should exit.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	p := &v.o.params
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'n', ' ':
			v.o.seed = rand.Int32N(999999)
		case 'p':
			p.PaletteMode = next(palette.Modes, p.PaletteMode)
		case 'l':
			p.Layout = next(layoutModes, p.Layout)
		case '+':
			p.Density = min(1, p.Density+0.05)
		case '-':
			p.Density = max(0, p.Density-0.05)
		case 's':
			name := fmt.Sprintf("genera-%d.png", v.o.seed)
			c := raster.New(v.o.width, v.o.height)
			genera.Generate(c, v.o.width, v.o.height, *p, v.o.seed)
			if err := writePNG(name, c.Image()); err != nil {
				v.status = err.Error()
			} else {
				v.status = "saved " + name
			}
			v.draw()
			return true
		default:
			return true
		}
		v.status = ""
		v.submit()
	}
	return true
}

// next returns the element following cur in list, wrapping around.
func next[T comparable](list []T, cur T) T {
	i := slices.Index(list, cur)
	return list[(i+1)%len(list)]
}

// submit starts rendering the current settings at the resolution of the
// terminal.
func (v *viewer) submit() {
	cols, rows := v.screen.Size()
	pw, ph := cols, 2*(rows-1)
	if pw <= 0 || ph <= 0 {
		return
	}
	w, h := v.o.width, v.o.height
	scale := min(float64(pw)/float64(w), float64(ph)/float64(h))
	p := v.o.params
	seed := v.o.seed
	v.jobs.Submit(context.Background(), func(ctx context.Context) *image.RGBA {
		if ctx.Err() != nil {
			return nil
		}
		c := raster.NewScaled(w, h, scale)
		genera.Generate(c, w, h, p, seed)
		return c.Image()
	})
}

// draw shows the latest image with a status line below it.
func (v *viewer) draw() {
	v.screen.Clear()
	if img := v.img; img != nil {
		b := img.Bounds()
		for y := 0; 2*y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				top := cellColor(img, x, 2*y)
				bottom := cellColor(img, x, 2*y+1)
				style := tcell.StyleDefault.Foreground(top).Background(bottom)
				v.screen.SetContent(x, y, '▀', nil, style)
			}
		}
	}

	_, rows := v.screen.Size()
	p := &v.o.params
	line := fmt.Sprintf(" seed %d  %s  %s  density %.2f  [n]ew [p]alette [l]ayout [+/-] [s]ave [q]uit  %s",
		v.o.seed, p.PaletteMode.Label(), p.Layout, p.Density, v.status)
	for i, r := range []rune(line) {
		v.screen.SetContent(i, rows-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
	v.screen.Show()
}

// cellColor returns the colour of the pixel at (x, y), composited over
// black.
func cellColor(img *image.RGBA, x, y int) tcell.Color {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return tcell.ColorBlack
	}
	c := img.RGBAAt(x, y) // premultiplied
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
