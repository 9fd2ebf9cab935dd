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
	"errors"
	"fmt"

	"seehuhn.de/go/genera/layout"
	"seehuhn.de/go/genera/palette"
)

// ColorStrategy selects how element colours are chosen.
type ColorStrategy string

// These are the supported colour strategies.
const (
	// ColorPool draws colours from the weighted palette pool.
	ColorPool ColorStrategy = "pool"

	// ColorNoise interpolates between adjacent palette colours, driven by
	// the flow noise at the element position.
	ColorNoise ColorStrategy = "noise"

	// ColorField blends the palette colours by inverse distance to seven
	// fixed attractor points.
	ColorField ColorStrategy = "field"
)

// SymmetryMode selects how elements are mirrored.
type SymmetryMode string

// These are the supported symmetry modes.
const (
	SymmetryNone       SymmetryMode = "none"
	SymmetryBilateral  SymmetryMode = "bilateral"  // mirror about the vertical axis
	SymmetryQuad       SymmetryMode = "quad"       // mirror about both axes
	SymmetryRotational SymmetryMode = "rotational" // four-fold rotation about the centre
)

// BackgroundStyle selects the background treatment.
type BackgroundStyle string

// These are the supported background styles.
const (
	BackgroundFlat     BackgroundStyle = "flat"
	BackgroundSubtle   BackgroundStyle = "subtle"
	BackgroundGradient BackgroundStyle = "gradient"
)

// Params holds all parameters of a composition.
//
// Fields described as intensities are in [0, 1] and scale the number or
// strength of the corresponding effect; 0 disables the effect.
type Params struct {
	Density        float64 `json:"density"`     // number of elements, in [0, 1]
	Complexity     float64 `json:"complexity"`  // detail of the shapes, in [0, 1]
	Organicness    float64 `json:"organicness"` // irregularity of the shapes, in [0, 1]
	SizeMin        float64 `json:"sizeMin"`
	SizeMax        float64 `json:"sizeMax"`
	OpacityMin     float64 `json:"opacityMin"`
	OpacityMax     float64 `json:"opacityMax"`
	RotationSpread float64 `json:"rotationSpread"` // 1 aligns elements with the flow
	StrokeRatio    float64 `json:"strokeRatio"`    // probability of outline-only elements

	PaletteMode    palette.Mode  `json:"paletteMode"`
	Layout         layout.Mode   `json:"layout"`
	NoiseScale     float64       `json:"noiseScale"`
	NoiseInfluence float64       `json:"noiseInfluence"`
	ColorStrategy  ColorStrategy `json:"colorStrategy"`

	OscillatorFreq float64      `json:"oscillatorFreq"`
	OscillatorAmp  float64      `json:"oscillatorAmp"`
	SymmetryMode   SymmetryMode `json:"symmetryMode"`
	LayerCount     int          `json:"layerCount"`
	LayerFade      float64      `json:"layerFade"`

	LightAngle     float64 `json:"lightAngle"` // in degrees
	LightIntensity float64 `json:"lightIntensity"`
	GradientShapes bool    `json:"gradientShapes"`

	BeadChains  float64         `json:"beadChains"`
	TypoScatter float64         `json:"typoScatter"`
	BgStyle     BackgroundStyle `json:"bgStyle"`
	AtmoClouds  float64         `json:"atmoClouds"`
	AtmoRibbons float64         `json:"atmoRibbons"`
	AtmoBlooms  float64         `json:"atmoBlooms"`
	AtmoRays    float64         `json:"atmoRays"`

	Tangles       float64 `json:"tangles"`
	OutlineWeight float64 `json:"outlineWeight"`
}

// DefaultParams returns the default parameter set.
func DefaultParams() Params {
	return Params{
		Density:        0.35,
		Complexity:     0.5,
		Organicness:    0.3,
		SizeMin:        4,
		SizeMax:        80,
		OpacityMin:     0.1,
		OpacityMax:     0.88,
		RotationSpread: 0.5,
		StrokeRatio:    0.2,
		PaletteMode:    palette.Warm,
		Layout:         layout.Cluster,
		NoiseScale:     1,
		NoiseInfluence: 0.3,
		ColorStrategy:  ColorPool,
		OscillatorFreq: 0,
		OscillatorAmp:  0,
		SymmetryMode:   SymmetryNone,
		LayerCount:     2,
		LayerFade:      0.3,
		LightAngle:     315,
		LightIntensity: 0.5,
		GradientShapes: true,
		BeadChains:     0.3,
		TypoScatter:    0.2,
		BgStyle:        BackgroundGradient,
		AtmoClouds:     0.3,
		AtmoRibbons:    0.2,
		AtmoBlooms:     0.15,
		AtmoRays:       0,
		Tangles:        0.3,
		OutlineWeight:  0.5,
	}
}

// Validate checks the enumerated fields and the ordering of the ranges.
// Generate accepts any Params; Validate is meant for input read from
// files or the command line.
func (p *Params) Validate() error {
	var errs []error
	if _, err := palette.ParseMode(string(p.PaletteMode)); err != nil {
		errs = append(errs, err)
	}
	if _, err := layout.ParseMode(string(p.Layout)); err != nil {
		errs = append(errs, err)
	}
	switch p.ColorStrategy {
	case ColorPool, ColorNoise, ColorField:
	default:
		errs = append(errs, fmt.Errorf("unknown colour strategy %q", p.ColorStrategy))
	}
	switch p.SymmetryMode {
	case SymmetryNone, SymmetryBilateral, SymmetryQuad, SymmetryRotational:
	default:
		errs = append(errs, fmt.Errorf("unknown symmetry mode %q", p.SymmetryMode))
	}
	switch p.BgStyle {
	case BackgroundFlat, BackgroundSubtle, BackgroundGradient:
	default:
		errs = append(errs, fmt.Errorf("unknown background style %q", p.BgStyle))
	}
	if p.SizeMin > p.SizeMax {
		errs = append(errs, fmt.Errorf("sizeMin %g exceeds sizeMax %g", p.SizeMin, p.SizeMax))
	}
	if p.OpacityMin > p.OpacityMax {
		errs = append(errs, fmt.Errorf("opacityMin %g exceeds opacityMax %g", p.OpacityMin, p.OpacityMax))
	}
	if p.LayerCount < 1 || p.LayerCount > maxLayers {
		errs = append(errs, fmt.Errorf("layerCount %d outside [1, %d]", p.LayerCount, maxLayers))
	}
	return errors.Join(errs...)
}
