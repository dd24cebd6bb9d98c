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

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllClose(t *testing.T) {
	a := FromRows([][]complex128{{1, 2}, {3, 4}})
	b := FromRows([][]complex128{{1 + 1e-14, 2}, {3, 4 - 1e-14i}})
	assert.True(t, AllClose(a, b, 1e-12))
	assert.False(t, AllClose(a, b, 1e-15))
	assert.False(t, AllClose(a, New(2, 3), 1))
}

func TestEqualUpToPhase(t *testing.T) {
	phase := cmplx.Exp(0.3i)
	assert.True(t, EqualUpToPhase(hadamard, hadamard.Scale(phase), testEps))
	assert.True(t, EqualUpToPhase(pauliX, pauliX.Scale(-1i), testEps))
	assert.False(t, EqualUpToPhase(pauliX, pauliZ, testEps))
	// matrices that differ by a non-unit scalar are not phase equal
	assert.False(t, EqualUpToPhase(pauliX, pauliX.Scale(2), testEps))
	// the zero matrix is phase equal only to itself
	assert.True(t, EqualUpToPhase(New(2, 2), New(2, 2), testEps))
	assert.False(t, EqualUpToPhase(New(2, 2), pauliX, testEps))
}

func TestIsUnitary(t *testing.T) {
	assert.True(t, IsUnitary(hadamard, 1e-7))
	assert.True(t, IsUnitary(pauliY, 1e-7))
	assert.True(t, IsUnitary(cnot, 1e-7))
	assert.False(t, IsUnitary(Identity(2).Add(hadamard), 1e-7))
	assert.False(t, IsUnitary(New(2, 3), 1e-7))
}
