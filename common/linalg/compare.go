// Copyright 2025 quvar Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package linalg

import "math/cmplx"

// AllClose reports whether two matrices have the same shape and every entry
// differs by less than tol in absolute value.
func AllClose(a, b *Matrix, tol float64) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.data {
		if cmplx.Abs(a.data[i]-b.data[i]) >= tol {
			return false
		}
	}
	return true
}

// EqualUpToPhase reports whether b equals a multiplied by some unit scalar
// e^{iα}. The phase is read off at the entry of a with the largest magnitude.
func EqualUpToPhase(a, b *Matrix, tol float64) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	pivot, largest := -1, 0.0
	for i, v := range a.data {
		if abs := cmplx.Abs(v); abs > largest {
			pivot, largest = i, abs
		}
	}
	if pivot < 0 {
		// a is the zero matrix
		return AllClose(a, b, tol)
	}
	ratio := b.data[pivot] / a.data[pivot]
	abs := cmplx.Abs(ratio)
	if abs == 0 {
		return false
	}
	ratio /= complex(abs, 0)
	return AllClose(a.Scale(ratio), b, tol)
}

// IsUnitary reports whether m * m† is the identity within tol.
func IsUnitary(m *Matrix, tol float64) bool {
	if !m.IsSquare() {
		return false
	}
	return AllClose(m.Mul(m.Dagger()), Identity(m.rows), tol)
}
