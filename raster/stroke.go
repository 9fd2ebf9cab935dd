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

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a flattened line segment in user coordinates.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent, A→B
	N    vec.Vec2 // unit normal, 90° CCW from T
	L    float64  // length
}

// Stroke rasterises the outline of p using Width, Cap, Join and
// MiterLimit.  Coverage is delivered row by row through emit; the slice is
// only valid during the call.
func (r *Rasteriser) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.flattenPath(p)
	if len(r.segsOffsets) == 0 && len(r.degeneratePoints) == 0 {
		return
	}

	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]

	// Subpaths without a direction only produce output for round caps.
	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.degeneratePoints {
			start := len(r.stroke)
			r.addArc(pt, r.Width/2, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
			r.strokeOffsets = append(r.strokeOffsets, start)
		}
	}

	for i := range r.segsOffsets {
		start := len(r.stroke)
		r.strokeSubpath(r.subpathSegments(i), r.subpathClosed[i])
		if len(r.stroke)-start >= 3 {
			r.strokeOffsets = append(r.strokeOffsets, start)
		} else {
			r.stroke = r.stroke[:start]
		}
	}

	r.edges = r.edges[:0]
	r.bboxEmpty = true
	for i, start := range r.strokeOffsets {
		end := len(r.stroke)
		if i+1 < len(r.strokeOffsets) {
			end = r.strokeOffsets[i+1]
		}
		poly := r.stroke[start:end]
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}

	// Overlapping outline polygons must be painted once.
	r.rasteriseEdges(NonZero, emit)
}

// subpathSegments returns the segments of flattened subpath i.
func (r *Rasteriser) subpathSegments(i int) []strokeSegment {
	end := len(r.segs)
	if i+1 < len(r.segsOffsets) {
		end = r.segsOffsets[i+1]
	}
	return r.segs[r.segsOffsets[i]:end]
}

// flattenPath converts p into line segments.  The results are stored in
// r.segs, r.segsOffsets, r.subpathClosed and r.degeneratePoints.
func (r *Rasteriser) flattenPath(p *path.Data) {
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.degeneratePoints = r.degeneratePoints[:0]

	var current, start vec.Vec2
	startIdx := 0
	inSubpath := false
	drawn := false

	finish := func(closed bool) {
		if len(r.segs) == startIdx {
			r.degeneratePoints = append(r.degeneratePoints, start)
			return
		}
		r.segsOffsets = append(r.segsOffsets, startIdx)
		r.subpathClosed = append(r.subpathClosed, closed)
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if inSubpath && drawn {
				finish(false)
			}
			current = p.Coords[k]
			start = current
			startIdx = len(r.segs)
			inSubpath = true
			drawn = false
			k++

		case path.CmdLineTo:
			if inSubpath {
				drawn = true
				r.addStrokeSegment(current, p.Coords[k])
				current = p.Coords[k]
			}
			k++

		case path.CmdQuadTo:
			if inSubpath {
				drawn = true
				r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addStrokeSegment)
				current = p.Coords[k+1]
			}
			k += 2

		case path.CmdCubeTo:
			if inSubpath {
				drawn = true
				r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addStrokeSegment)
				current = p.Coords[k+2]
			}
			k += 3

		case path.CmdClose:
			if inSubpath {
				if current != start {
					r.addStrokeSegment(current, start)
				}
				finish(true)
				current = start
				startIdx = len(r.segs)
				inSubpath = false
				drawn = false
			}
		}
	}
	if inSubpath && drawn {
		finish(false)
	}
}

func (r *Rasteriser) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: n, L: length})
}

// strokeSubpath appends the outline polygon of one subpath to r.stroke.
// The outline runs forward along the +N side and back along the -N side.
// Joins are added on the outer side of each corner.
func (r *Rasteriser) strokeSubpath(segs []strokeSegment, closed bool) {
	if len(segs) == 0 {
		return
	}
	d := r.Width / 2

	if closed {
		first := &segs[0]
		last := &segs[len(segs)-1]
		sinClose := cross(last.T, first.T)

		// forward pass, +N side
		r.stroke = append(r.stroke, first.A.Add(first.N.Mul(d)))
		for i := range segs {
			seg := &segs[i]
			next := first
			if i < len(segs)-1 {
				next = &segs[i+1]
			}
			sinTheta := cross(seg.T, next.T)
			switch {
			case math.Abs(sinTheta) < collinearityThreshold:
				r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)), next.A.Add(next.N.Mul(d)))
			case sinTheta > 0:
				r.addInnerCorner(seg, next, seg.B, d, true)
			default:
				r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
				r.addJoin(seg.B, seg.T, next.T, d, true)
				r.stroke = append(r.stroke, next.A.Add(next.N.Mul(d)))
			}
		}

		// backward pass, -N side, starting at the closing corner
		switch {
		case math.Abs(sinClose) < collinearityThreshold:
			r.stroke = append(r.stroke, first.A.Sub(first.N.Mul(d)), last.B.Sub(last.N.Mul(d)))
		case sinClose > 0:
			r.stroke = append(r.stroke, first.A.Sub(first.N.Mul(d)))
			r.addJoin(first.A, last.T, first.T, d, false)
			r.stroke = append(r.stroke, last.B.Sub(last.N.Mul(d)))
		default:
			r.addInnerCorner(last, first, first.A, d, false)
		}
		for i := len(segs) - 1; i > 0; i-- {
			seg := &segs[i]
			prev := &segs[i-1]
			sinTheta := cross(prev.T, seg.T)
			switch {
			case math.Abs(sinTheta) < collinearityThreshold:
				r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)), prev.B.Sub(prev.N.Mul(d)))
			case sinTheta > 0:
				r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
				r.addJoin(seg.A, prev.T, seg.T, d, false)
				r.stroke = append(r.stroke, prev.B.Sub(prev.N.Mul(d)))
			default:
				r.addInnerCorner(prev, seg, seg.A, d, false)
			}
		}
		r.stroke = append(r.stroke, first.A.Sub(first.N.Mul(d)))
		return
	}

	first := &segs[0]
	last := &segs[len(segs)-1]

	r.addCap(first.A, first.T.Mul(-1), d)

	// forward pass, +N side
	skip := false
	for i := range segs {
		seg := &segs[i]
		if !skip {
			r.stroke = append(r.stroke, seg.A.Add(seg.N.Mul(d)))
		}
		skip = false
		if i == len(segs)-1 {
			r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
			break
		}
		next := &segs[i+1]
		sinTheta := cross(seg.T, next.T)
		switch {
		case math.Abs(sinTheta) < collinearityThreshold:
			r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
		case sinTheta > 0:
			skip = r.addInnerCorner(seg, next, seg.B, d, true)
		default:
			r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
			r.addJoin(seg.B, seg.T, next.T, d, true)
		}
	}

	r.addCap(last.B, last.T, d)

	// backward pass, -N side
	skip = false
	for i := len(segs) - 1; i >= 0; i-- {
		seg := &segs[i]
		if !skip {
			r.stroke = append(r.stroke, seg.B.Sub(seg.N.Mul(d)))
		}
		skip = false
		if i == 0 {
			r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
			break
		}
		prev := &segs[i-1]
		sinTheta := cross(prev.T, seg.T)
		switch {
		case math.Abs(sinTheta) < collinearityThreshold:
			r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
		case sinTheta > 0:
			r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
			r.addJoin(seg.A, prev.T, seg.T, d, false)
		default:
			skip = r.addInnerCorner(prev, seg, seg.A, d, false)
		}
	}
}

// cross returns the z component of the cross product of a and b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// addCap adds a line cap at P.  T points away from the line.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.stroke = append(r.stroke, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		r.addArc(P, d, N, -math.Pi, true)
	}
}

// innerIntersection returns the point where the two inner offset lines
// of a corner at P meet.  The point is only usable if it does not reach
// past the far end of either segment.
func innerIntersection(P vec.Vec2, s1, s2 *strokeSegment, d float64, positive bool) (vec.Vec2, bool) {
	cosTheta := s1.T.Dot(s2.T)
	if cosTheta > 1-1e-9 {
		return vec.Vec2{}, false
	}
	cosHalf := math.Sqrt((1 + cosTheta) / 2)
	if cosHalf < 1e-9 {
		return vec.Vec2{}, false
	}

	// distance along each segment from P to the foot of the intersection
	sinHalf := math.Sqrt((1 - cosTheta) / 2)
	if d*sinHalf/cosHalf > min(s1.L, s2.L) {
		return vec.Vec2{}, false
	}

	dir := s1.N.Add(s2.N)
	if !positive {
		dir = dir.Mul(-1)
	}
	l := dir.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(dir.Mul(d / (l * cosHalf))), true
}

// addInnerCorner handles the inner side of a corner between s1 and s2.
// It reports whether the intersection point replaced the offset start of
// the following segment.
func (r *Rasteriser) addInnerCorner(s1, s2 *strokeSegment, P vec.Vec2, d float64, positive bool) bool {
	if pt, ok := innerIntersection(P, s1, s2, d, positive); ok {
		r.stroke = append(r.stroke, pt)
		return true
	}
	if positive {
		r.stroke = append(r.stroke, P.Add(s1.N.Mul(d)), P.Add(s2.N.Mul(d)))
	} else {
		r.stroke = append(r.stroke, P.Sub(s1.N.Mul(d)), P.Sub(s2.N.Mul(d)))
	}
	return false
}

// addJoin adds the outer geometry of a join at P, where the tangent
// changes from T1 to T2.
func (r *Rasteriser) addJoin(P, T1, T2 vec.Vec2, d float64, positive bool) {
	cosTheta := T1.Dot(T2)
	sinTheta := cross(T1, T2)
	if sinTheta > -collinearityThreshold && sinTheta < collinearityThreshold {
		return
	}
	if cosTheta < cuspCosineThreshold {
		r.addCap(P, T1, d)
		r.addCap(P, T2.Mul(-1), d)
		return
	}

	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}

	switch r.Join {
	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/cos(θ/2).
		cosHalf := math.Sqrt((1 + cosTheta) / 2)
		const eps = 1e-10
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+eps {
			bisector := N1.Add(N2)
			if !positive {
				bisector = bisector.Mul(-1)
			}
			if l := bisector.Length(); l > zeroLengthThreshold {
				r.stroke = append(r.stroke, P.Add(bisector.Mul(d/(l*cosHalf))))
			}
		}

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cosTheta)))
		if positive {
			if sinTheta > 0 {
				r.addArc(P, d, N1, angle, false)
			} else {
				r.addArc(P, d, N1, -angle, false)
			}
		} else {
			if sinTheta > 0 {
				r.addArc(P, d, N2.Mul(-1), -angle, false)
			} else {
				r.addArc(P, d, N2.Mul(-1), angle, false)
			}
		}
	}
}

// addArc appends points on a circular arc.  startDir is the unit vector
// from center to the start point, sweep is in radians (positive = CCW).
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length())

	n := 1
	if devRadius >= r.Flatness {
		// a chord over angle θ deviates from the circle by r(1-cos(θ/2))
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step <= 0 || math.IsNaN(step) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	dt := sweep / float64(n)
	i0 := 1
	if includeStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.stroke = append(r.stroke, center.Add(dir.Mul(radius)))
	}
}
