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

package gate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quvar-io/quvar/common/linalg"
)

func TestTwoQubitGatesAreUnitary(t *testing.T) {
	gates := []Gate{
		NewCNOT("0", "1"),
		NewCZ("0", "1"),
		NewSWAP("0", "1"),
		NewCRX(0.3, "0", "1"),
		NewCRY(-0.8, "0", "1"),
		NewCRZ(1.9, "0", "1"),
	}
	for _, g := range gates {
		assert.True(t, linalg.IsUnitary(g.Matrix(), 1e-10), g.Name())
		assert.Equal(t, Wires{"0", "1"}, g.Wires(), g.Name())
		assert.Equal(t, 4, g.Matrix().Rows(), g.Name())
	}
}

func TestCNOT(t *testing.T) {
	g := NewCNOT("control", "target")
	assert.Equal(t, Wires{"control", "target"}, g.Wires())
	assert.True(t, linalg.AllClose(g.Matrix(), linalg.FromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	}), atol))
	// CNOT is its own inverse
	assert.True(t, linalg.AllClose(g.Matrix().Mul(g.Matrix()), linalg.Identity(4), atol))
}

func TestSWAP(t *testing.T) {
	m := NewSWAP("a", "b").Matrix()
	assert.True(t, linalg.AllClose(m.Mul(m), linalg.Identity(4), atol))
	// SWAP conjugation exchanges the one-qubit factors
	xi := NewPauliX("a").Matrix().Kron(linalg.Identity(2))
	ix := linalg.Identity(2).Kron(NewPauliX("b").Matrix())
	assert.True(t, linalg.AllClose(m.Mul(xi).Mul(m), ix, atol))
}

func TestCRY(t *testing.T) {
	theta := 0.54321
	g := NewCRY(theta, "0", "1")
	assert.Equal(t, []float64{theta}, g.Params())
	assert.Equal(t, theta, g.Theta())
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	assert.True(t, linalg.AllClose(g.Matrix(), linalg.FromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, c, -s},
		{0, 0, s, c},
	}), atol))
}

func TestControlledRotations(t *testing.T) {
	// the target block of a controlled rotation is the plain rotation
	for _, tc := range []struct {
		controlled Gate
		target     Gate
	}{
		{NewCRX(0.7, "0", "1"), NewRX(0.7, "1")},
		{NewCRY(0.7, "0", "1"), NewRY(0.7, "1")},
		{NewCRZ(0.7, "0", "1"), NewRZ(0.7, "1")},
	} {
		big := tc.controlled.Matrix()
		small := tc.target.Matrix()
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				assert.Equal(t, small.At(i, j), big.At(2+i, 2+j), tc.controlled.Name())
			}
		}
		// the control block is the identity
		assert.Equal(t, complex128(1), big.At(0, 0))
		assert.Equal(t, complex128(1), big.At(1, 1))
		assert.Zero(t, big.At(0, 1))
		assert.Zero(t, big.At(1, 0))
	}
}
