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

const atol = 1e-12

func TestSingleQubitGatesAreUnitary(t *testing.T) {
	gates := []Gate{
		NewHadamard("0"),
		NewPauliX("0"),
		NewPauliY("0"),
		NewPauliZ("0"),
		NewS("0"),
		NewT("0"),
		NewRX(0.3, "0"),
		NewRY(-1.2, "0"),
		NewRZ(2.5, "0"),
		NewPhaseShift(0.77, "0"),
		NewRot(0.1, 0.2, 0.3, "0"),
	}
	for _, g := range gates {
		assert.True(t, linalg.IsUnitary(g.Matrix(), 1e-10), g.Name())
		assert.Equal(t, Wires{"0"}, g.Wires(), g.Name())
		assert.Equal(t, 2, g.Matrix().Rows(), g.Name())
	}
}

func TestInvolutions(t *testing.T) {
	for _, g := range []Gate{NewHadamard("0"), NewPauliX("0"), NewPauliY("0"), NewPauliZ("0")} {
		m := g.Matrix()
		assert.True(t, linalg.AllClose(m.Mul(m), linalg.Identity(2), atol), g.Name())
	}
}

func TestPhaseGates(t *testing.T) {
	s := NewS("0").Matrix()
	tGate := NewT("0").Matrix()
	// T² = S and S² = Z
	assert.True(t, linalg.AllClose(tGate.Mul(tGate), s, atol))
	assert.True(t, linalg.AllClose(s.Mul(s), NewPauliZ("0").Matrix(), atol))
}

func TestRZ(t *testing.T) {
	g := NewRZ(math.Pi, "0")
	assert.Equal(t, []float64{math.Pi}, g.Params())
	assert.Equal(t, math.Pi, g.Theta())
	// RZ(π) equals Z up to a global phase
	assert.True(t, linalg.EqualUpToPhase(g.Matrix(), NewPauliZ("0").Matrix(), atol))
	// RZ(0) is the identity
	assert.True(t, linalg.AllClose(NewRZ(0, "0").Matrix(), linalg.Identity(2), atol))
}

func TestRXRY(t *testing.T) {
	assert.True(t, linalg.EqualUpToPhase(NewRX(math.Pi, "0").Matrix(), NewPauliX("0").Matrix(), atol))
	assert.True(t, linalg.EqualUpToPhase(NewRY(math.Pi, "0").Matrix(), NewPauliY("0").Matrix(), atol))
	assert.Equal(t, []float64{0.5}, NewRX(0.5, "0").Params())
	assert.Equal(t, 0.5, NewRY(0.5, "0").Theta())
}

func TestPhaseShift(t *testing.T) {
	g := NewPhaseShift(0.77, "0")
	assert.Equal(t, 0.77, g.Phi())
	// PhaseShift(φ) equals RZ(φ) up to a global phase
	assert.True(t, linalg.EqualUpToPhase(g.Matrix(), NewRZ(0.77, "0").Matrix(), atol))
}

func TestRot(t *testing.T) {
	phi, theta, omega := 0.2, 0.5, -0.3
	g := NewRot(phi, theta, omega, "0")
	assert.Equal(t, []float64{phi, theta, omega}, g.Params())
	gotPhi, gotTheta, gotOmega := g.Angles()
	assert.Equal(t, phi, gotPhi)
	assert.Equal(t, theta, gotTheta)
	assert.Equal(t, omega, gotOmega)
	// the closed form agrees with the explicit product RZ(ω)·RY(θ)·RZ(φ)
	product := NewRZ(omega, "0").Matrix().
		Mul(NewRY(theta, "0").Matrix()).
		Mul(NewRZ(phi, "0").Matrix())
	assert.True(t, linalg.AllClose(g.Matrix(), product, atol))
	// θ = 0 collapses to a single Z rotation
	assert.True(t, linalg.AllClose(NewRot(0.4, 0, 0.3, "0").Matrix(), NewRZ(0.7, "0").Matrix(), atol))
}
