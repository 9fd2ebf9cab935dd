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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/genera/layout"
	"seehuhn.de/go/genera/noise"
	"seehuhn.de/go/genera/palette"
	"seehuhn.de/go/genera/rng"
	"seehuhn.de/go/genera/shape"
	"seehuhn.de/go/genera/surface"
)

// maxLayers is the largest supported number of shape layers.
const maxLayers = 5

// Generate draws a complete composition of size w×h onto s.
//
// The drawing order is: background; light rays, clouds and blooms; the
// shape layers, back to front; bead chains, tangles, glyph scatter and
// finally ribbons.  Every random decision is taken from a single stream
// seeded with seed, so that equal inputs give equal drawing commands.
func Generate(s surface.Surface, w, h int, p Params, seed int32) {
	fw, fh := float64(w), float64(h)
	src := rng.New(seed)
	field := noise.New(seed)
	log := Logger()

	pal := palette.Generate(src, p.PaletteMode)
	pool := palette.NewPool(pal, src)
	log.Debug("palette", "seed", seed, "mode", p.PaletteMode, "colors", pal[:])

	DrawBackground(s, fw, fh, pal, src, false, p.BgStyle)

	lightRad := p.LightAngle / 360 * rng.Tau
	if p.AtmoRays > 0 {
		drawLightRays(s, src, fw, fh, lightRad, p.AtmoRays)
	}
	if p.AtmoClouds > 0 {
		drawClouds(s, src, fw, fh, pal, p.AtmoClouds)
	}
	if p.AtmoBlooms > 0 {
		drawBlooms(s, src, fw, fh, pal, p.AtmoBlooms)
	}

	light := Light{Angle: lightRad, Intensity: p.LightIntensity}
	if p.Density > 0 {
		count, layers := layerPlan(&p)
		for layer := range layers {
			layerOp := layerOpacity(layer, layers, p.LayerFade)
			els := makeLayer(src, field, pool, &pal, fw, fh, count/layers, layerOp, &p)
			log.Debug("layer", "index", layer, "elements", len(els))
			for i := range els {
				RenderElement(s, &els[i], light, p.GradientShapes, p.OutlineWeight)
			}
		}
	}

	chains := roundCount(p.BeadChains * 8)
	for range chains {
		drawBeadChain(s, src, field, fw, fh, pool.Next(), light, p.GradientShapes)
	}
	tangles := roundCount(p.Tangles * 12)
	if tangles > 0 {
		drawTangles(s, src, field, fw, fh, pal, tangles, p.OutlineWeight)
	}
	glyphs := roundCount(p.TypoScatter * 80)
	if glyphs > 0 {
		drawTypoScatter(s, src, fw, fh, pal, glyphs)
	}
	if p.AtmoRibbons > 0 {
		drawRibbons(s, src, fw, fh, pal, p.AtmoRibbons)
	}
	log.Debug("effects", "beadChains", chains, "tangles", tangles, "glyphs", glyphs)
}

// layerPlan returns the total number of elements and the number of
// layers they are split into.
func layerPlan(p *Params) (count, layers int) {
	count = int(math.Floor(25 + float64(p.Density*975)))
	layers = min(maxLayers, max(1, p.LayerCount))
	return count, layers
}

// layerOpacity is the opacity multiplier of the given layer.  Later layers
// are fainter.
func layerOpacity(layer, layers int, fade float64) float64 {
	if layers <= 1 {
		return 1
	}
	return 1 - float64(float64(layer)/float64(layers)*fade)
}

// makeLayer synthesises the n elements of one layer, together with their
// symmetric copies, sorted by increasing size.
func makeLayer(src *rng.Source, field *noise.Field, pool *palette.Pool, pal *palette.Palette, w, h float64, n int, layerOp float64, p *Params) []Element {
	shapes := make([]shape.Shape, src.Int(3, 8))
	for i := range shapes {
		shapes[i] = shape.Make(src, p.Complexity, p.Organicness)
	}
	lay := layout.New(p.Layout, src, field, w, h, n, p.NoiseScale, p.NoiseInfluence)

	els := make([]Element, 0, n*symmetryCopies(p.SymmetryMode))
	for i := range n {
		sh := rng.Pick(src, shapes)
		t := float64(i) / float64(n)

		x, y := lay.Position(i)
		flow := layout.Displace(field, x, y, p.NoiseScale, p.NoiseInfluence)

		var col palette.HSL
		switch p.ColorStrategy {
		case ColorNoise:
			col = noiseColor(pal, flow.Primary)
		case ColorField:
			col = fieldColor(pal, flow.X, flow.Y, w, h)
		default:
			col = pool.Next()
		}

		osc := float64(math.Sin(t*p.OscillatorFreq*rng.Tau) * p.OscillatorAmp)
		baseSize := float64(rng.Lerp(p.SizeMin, p.SizeMax, src.Next()) * (0.8 + float64(flow.Secondary*0.5)))
		opacity := float64(rng.Lerp(p.OpacityMin, p.OpacityMax, src.Next())*layerOp) + float64(osc*0.08)
		rot := float64(flow.Angle*p.RotationSpread) + float64((src.Next()-0.5)*(1-p.RotationSpread)*rng.Tau)
		strokeOnly := src.Next() < p.StrokeRatio
		lw := src.Uniform(0.8, 2.5)

		el := Element{
			Shape:      sh,
			X:          flow.X,
			Y:          flow.Y,
			Rotation:   rot,
			Size:       math.Max(2, baseSize+float64(osc*20)),
			Color:      col,
			Opacity:    rng.Clamp(opacity, 0.02, 1),
			StrokeOnly: strokeOnly,
			LineWidth:  lw,
		}
		els = appendSymmetric(els, el, p.SymmetryMode, w, h)
	}

	slices.SortStableFunc(els, func(a, b Element) int {
		return cmp.Compare(a.Size, b.Size)
	})
	return els
}

func symmetryCopies(mode SymmetryMode) int {
	switch mode {
	case SymmetryBilateral:
		return 2
	case SymmetryQuad, SymmetryRotational:
		return 4
	default:
		return 1
	}
}

// appendSymmetric appends el and its mirror images to els.
func appendSymmetric(els []Element, el Element, mode SymmetryMode, w, h float64) []Element {
	els = append(els, el)
	switch mode {
	case SymmetryBilateral, SymmetryQuad:
		m := el
		m.X, m.Rotation = w-el.X, -el.Rotation
		els = append(els, m)
	}
	switch mode {
	case SymmetryQuad:
		m := el
		m.Y, m.Rotation = h-el.Y, -el.Rotation
		els = append(els, m)
		m = el
		m.X, m.Y = w-el.X, h-el.Y
		els = append(els, m)
	case SymmetryRotational:
		cx, cy := w/2, h/2
		dx, dy := el.X-cx, el.Y-cy
		for k := 1; k < 4; k++ {
			a := float64(k) / 4 * rng.Tau
			sin, cos := math.Sincos(a)
			m := el
			m.X = cx + dx*cos - dy*sin
			m.Y = cy + dx*sin + dy*cos
			m.Rotation = el.Rotation + a
			els = append(els, m)
		}
	}
	return els
}

// noiseColor interpolates between two neighbouring palette colours,
// selected by the noise value nv in [0, 1].
func noiseColor(pal *palette.Palette, nv float64) palette.HSL {
	v := nv * palette.Size
	idx := int(math.Floor(v)) % palette.Size
	next := (idx + 1) % palette.Size
	return pal[idx].Lerp(pal[next], math.Mod(v, 1))
}

// fieldColor blends all palette colours, weighted by the inverse distance
// from (x, y) to a fixed attractor point for each colour.
func fieldColor(pal *palette.Palette, x, y, w, h float64) palette.HSL {
	var sum palette.HSL
	total := 0.0
	for j, c := range pal {
		ax := math.Mod(float64(j)*137.5, 360) / 360 * w
		ay := math.Mod(float64(float64(j)*97.3)+50, 360) / 360 * h
		inf := 1 / (1 + float64(math.Hypot(x-ax, y-ay)*0.004))
		sum.H += float64(c.H * inf)
		sum.S += float64(c.S * inf)
		sum.L += float64(c.L * inf)
		total += inf
	}
	return palette.HSL{H: sum.H / total, S: sum.S / total, L: sum.L / total}
}

// roundCount rounds half up, as used for all effect counts.  Negative
// values give 0.
func roundCount(x float64) int {
	return max(0, int(math.Floor(x+0.5)))
}
