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

// Package rng implements the seeded pseudo-random stream which drives every
// stochastic decision of the generator.
//
// The stream is a 32-bit mulberry-style mixer.  A given seed always
// produces the same sequence of values in [0, 1), on every platform.
package rng

import "math"

// Tau is the full circle in radians.
const Tau = 2 * math.Pi

// Source is a deterministic stream of uniform values in [0, 1).
// A Source is not safe for concurrent use.
type Source struct {
	state uint32
}

// New returns a Source seeded with seed.
func New(seed int32) *Source {
	return &Source{state: uint32(seed)}
}

// Reseed restarts the stream as if the Source had been created by New(seed).
func (s *Source) Reseed(seed int32) {
	s.state = uint32(seed)
}

// Next advances the stream and returns the next value in [0, 1).
func (s *Source) Next() float64 {
	s.state += 0x6d2b79f5
	z := s.state
	t := (z ^ z>>15) * (1 | z)
	t = (t + (t^t>>7)*(61|t)) ^ t
	return float64(t^t>>14) / 4294967296
}

// Uniform returns a value in [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return Lerp(lo, hi, s.Next())
}

// Int returns an integer in [lo, hi], both ends included.
func (s *Source) Int(lo, hi int) int {
	return int(math.Floor(s.Uniform(float64(lo), float64(hi+1))))
}

// Angle returns a direction in [0, 2π).
func (s *Source) Angle() float64 {
	return s.Uniform(0, Tau)
}

// Bool returns true with probability p.
func (s *Source) Bool(p float64) bool {
	return s.Next() < p
}

// Pick returns a uniformly chosen element of a.
// The slice must not be empty.
func Pick[T any](s *Source, a []T) T {
	return a[int(math.Floor(s.Next()*float64(len(a))))]
}

// Lerp interpolates linearly between a and b.
//
// Here and throughout the generator, products which are added to
// something are wrapped in an explicit float64 conversion.  This forces
// rounding of the product, so that the result is the same on
// architectures with fused multiply-add instructions.
func Lerp(a, b, t float64) float64 {
	return a + float64((b-a)*t)
}

// Clamp limits v to the interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return min(hi, max(lo, v))
}
