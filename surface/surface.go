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

// Package surface defines the drawing interface used by the generator.
//
// A Surface accepts filled and stroked paths with solid colours or
// gradients, under an affine user-space transformation.  The model follows
// the immediate-mode 2D canvas: transformations, global alpha, compositing
// operator and shadow are part of a state which can be saved and restored.
//
// Two implementations exist: package raster draws into an *image.RGBA and
// package svgcanvas writes an SVG document.
package surface

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

// Surface is the target of all drawing operations.
type Surface interface {
	// Save pushes a copy of the current state onto the state stack.
	Save()

	// Restore pops the most recently saved state.  Restore without a
	// matching Save is ignored.
	Restore()

	// Translate moves the origin of user space to (dx, dy).
	Translate(dx, dy float64)

	// Rotate rotates user space by angle radians.  Positive angles turn
	// the x-axis towards the y-axis.
	Rotate(angle float64)

	// SetAlpha sets the global opacity which is multiplied into all
	// subsequent drawing.  Values are clamped to [0, 1].
	SetAlpha(alpha float64)

	// SetComposite sets the compositing operator.
	SetComposite(op Composite)

	// SetShadow configures a blurred shadow behind subsequent drawing.
	// A blur of 0 or a transparent colour disables the shadow.
	SetShadow(blur float64, c Color)

	// Fill fills the path using the nonzero winding rule.
	Fill(p *path.Data, paint Paint)

	// Stroke strokes the path.
	Stroke(p *path.Data, paint Paint, style StrokeStyle)

	// FillText draws text centred horizontally and vertically on (x, y),
	// using a monospace face with the given pixel size.
	FillText(text string, x, y, size float64, paint Paint)
}

// Composite is a Porter-Duff style compositing operator.
type Composite int

// These are the supported compositing operators.
const (
	// SourceOver draws the source on top of the destination.
	SourceOver Composite = iota

	// Lighter adds source and destination colours.
	Lighter

	// DestinationOut erases the destination where the source is opaque.
	DestinationOut
)

func (op Composite) String() string {
	switch op {
	case SourceOver:
		return "source-over"
	case Lighter:
		return "lighter"
	case DestinationOut:
		return "destination-out"
	default:
		return "unknown"
	}
}

// StrokeStyle describes how paths are stroked.
type StrokeStyle struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
}

// Line returns the default stroke style of the given width: butt caps,
// miter joins, miter limit 10.
func Line(width float64) StrokeStyle {
	return StrokeStyle{
		Width:      width,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: 10,
	}
}

// RoundLine returns a stroke style of the given width with round caps and
// round joins.
func RoundLine(width float64) StrokeStyle {
	return StrokeStyle{
		Width:      width,
		Cap:        graphics.LineCapRound,
		Join:       graphics.LineJoinRound,
		MiterLimit: 10,
	}
}
