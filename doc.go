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

// Package genera generates abstract compositions from a seed and a set of
// parameters.
//
// [Generate] draws a complete image: a background, atmospheric washes,
// several layers of shape primitives and decorative linework.  All random
// choices are taken from a single [rng.Source] in a fixed order, so that
// the same seed, parameters and canvas size always produce the same
// sequence of drawing commands.
//
// Drawing commands are issued against a [surface.Surface].  Package
// seehuhn.de/go/genera/raster renders into an image, package
// seehuhn.de/go/genera/svgcanvas writes an SVG document.
//
// [Brush] paints individual stamps at pointer positions, for use by
// interactive front-ends.
package genera
