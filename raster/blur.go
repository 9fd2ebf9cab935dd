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

package raster

import "math"

// blur applies an approximate Gaussian blur with standard deviation sigma
// to the region [x0,x1)×[y0,y1) of buf, a row-major image of width w.
// Three successive box blurs are used.  Values outside the region are
// treated as zero.  tmp must have the same size as buf.
func blur(buf, tmp []float32, w, x0, x1, y0, y1 int, sigma float64) {
	if sigma <= 0 || x0 >= x1 || y0 >= y1 {
		return
	}
	for _, size := range boxSizes(sigma) {
		radius := (size - 1) / 2
		if radius <= 0 {
			continue
		}
		boxBlurH(buf, tmp, w, x0, x1, y0, y1, radius)
		boxBlurV(tmp, buf, w, x0, x1, y0, y1, radius)
	}
}

// boxSizes returns the widths of three box filters whose combination
// approximates a Gaussian with standard deviation sigma.
func boxSizes(sigma float64) [3]int {
	const n = 3
	wIdeal := math.Sqrt(12*sigma*sigma/n + 1)
	wl := int(math.Floor(wIdeal))
	if wl%2 == 0 {
		wl--
	}
	wu := wl + 2
	mIdeal := (12*sigma*sigma - n*float64(wl*wl) - 4*n*float64(wl) - 3*n) / (-4*float64(wl) - 4)
	m := int(math.Round(mIdeal))

	var sizes [3]int
	for i := range sizes {
		if i < m {
			sizes[i] = wl
		} else {
			sizes[i] = wu
		}
	}
	return sizes
}

func boxBlurH(src, dst []float32, w, x0, x1, y0, y1, radius int) {
	scale := 1 / float32(2*radius+1)
	for y := y0; y < y1; y++ {
		row := src[y*w:]
		out := dst[y*w:]
		var acc float32
		for x := x0; x < min(x0+radius, x1); x++ {
			acc += row[x]
		}
		for x := x0; x < x1; x++ {
			if in := x + radius; in < x1 {
				acc += row[in]
			}
			if old := x - radius - 1; old >= x0 {
				acc -= row[old]
			}
			out[x] = max(acc*scale, 0)
		}
	}
}

func boxBlurV(src, dst []float32, w, x0, x1, y0, y1, radius int) {
	scale := 1 / float32(2*radius+1)
	for x := x0; x < x1; x++ {
		var acc float32
		for y := y0; y < min(y0+radius, y1); y++ {
			acc += src[y*w+x]
		}
		for y := y0; y < y1; y++ {
			if in := y + radius; in < y1 {
				acc += src[in*w+x]
			}
			if old := y - radius - 1; old >= y0 {
				acc -= src[old*w+x]
			}
			dst[y*w+x] = max(acc*scale, 0)
		}
	}
}
