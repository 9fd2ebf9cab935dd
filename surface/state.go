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

package surface

import (
	"math"

	"seehuhn.de/go/geom/matrix"
)

// State is the part of the drawing state which is affected by Save and
// Restore.
type State struct {
	CTM         matrix.Matrix // user space to device space
	Alpha       float64
	Composite   Composite
	ShadowBlur  float64
	ShadowColor Color
}

// Stack implements the state handling methods of Surface.  Backends embed
// a Stack and consult Current when drawing.
type Stack struct {
	Current State
	saved   []State
}

// NewStack returns a stack whose current state maps user space to device
// space via base.
func NewStack(base matrix.Matrix) Stack {
	return Stack{Current: State{CTM: base, Alpha: 1}}
}

// Save pushes a copy of the current state.
func (s *Stack) Save() {
	s.saved = append(s.saved, s.Current)
}

// Restore pops the most recently saved state.
func (s *Stack) Restore() {
	n := len(s.saved)
	if n == 0 {
		return
	}
	s.Current = s.saved[n-1]
	s.saved = s.saved[:n-1]
}

// Depth returns the number of saved states.
func (s *Stack) Depth() int {
	return len(s.saved)
}

// Translate moves the user-space origin.
func (s *Stack) Translate(dx, dy float64) {
	s.Current.CTM = matrix.Translate(dx, dy).Mul(s.Current.CTM)
}

// Rotate rotates user space by angle radians.
func (s *Stack) Rotate(angle float64) {
	s.Current.CTM = matrix.Rotate(angle).Mul(s.Current.CTM)
}

// SetAlpha sets the global alpha.
func (s *Stack) SetAlpha(alpha float64) {
	s.Current.Alpha = min(max(alpha, 0), 1)
}

// SetComposite sets the compositing operator.
func (s *Stack) SetComposite(op Composite) {
	s.Current.Composite = op
}

// SetShadow sets the shadow parameters.
func (s *Stack) SetShadow(blur float64, c Color) {
	s.Current.ShadowBlur = max(blur, 0)
	s.Current.ShadowColor = c
}

// HasShadow reports whether the current state draws a shadow.
func (s *State) HasShadow() bool {
	return s.ShadowBlur > 0 && s.ShadowColor.A > 0
}

// Inverse returns the inverse of m.  The second return value is false if
// m is singular or not finite.
func Inverse(m matrix.Matrix) (matrix.Matrix, bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return matrix.Matrix{}, false
	}
	return m.Inv(), true
}

// Scale returns the geometric mean of the scale factors of m, i.e. the
// factor by which m changes lengths on average.
func Scale(m matrix.Matrix) float64 {
	return math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
}
