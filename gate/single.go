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

	"github.com/quvar-io/quvar/common/linalg"
)

// expi returns e^{i·a}.
func expi(a float64) complex128 {
	return complex(math.Cos(a), math.Sin(a))
}

// NewHadamard creates a Hadamard gate.
func NewHadamard(wire Wire) Gate {
	inv := complex(1/math.Sqrt2, 0)
	return &fixed{
		base: base{name: "Hadamard", wires: Wires{wire}},
		matrix: linalg.FromRows([][]complex128{
			{inv, inv},
			{inv, -inv},
		}),
	}
}

// NewPauliX creates a Pauli X gate.
func NewPauliX(wire Wire) Gate {
	return &fixed{
		base: base{name: "PauliX", wires: Wires{wire}},
		matrix: linalg.FromRows([][]complex128{
			{0, 1},
			{1, 0},
		}),
	}
}

// NewPauliY creates a Pauli Y gate.
func NewPauliY(wire Wire) Gate {
	return &fixed{
		base: base{name: "PauliY", wires: Wires{wire}},
		matrix: linalg.FromRows([][]complex128{
			{0, -1i},
			{1i, 0},
		}),
	}
}

// NewPauliZ creates a Pauli Z gate.
func NewPauliZ(wire Wire) Gate {
	return &fixed{
		base: base{name: "PauliZ", wires: Wires{wire}},
		matrix: linalg.FromRows([][]complex128{
			{1, 0},
			{0, -1},
		}),
	}
}

// NewS creates the phase gate S = diag(1, i).
func NewS(wire Wire) Gate {
	return &fixed{
		base: base{name: "S", wires: Wires{wire}},
		matrix: linalg.FromRows([][]complex128{
			{1, 0},
			{0, 1i},
		}),
	}
}

// NewT creates the T gate diag(1, e^{iπ/4}).
func NewT(wire Wire) Gate {
	return &fixed{
		base: base{name: "T", wires: Wires{wire}},
		matrix: linalg.FromRows([][]complex128{
			{1, 0},
			{0, expi(math.Pi / 4)},
		}),
	}
}

// RX is a rotation about the X axis.
type RX struct {
	base
	theta float64
}

// NewRX creates an X rotation by theta.
func NewRX(theta float64, wire Wire) *RX {
	return &RX{base: base{name: "RX", wires: Wires{wire}}, theta: theta}
}

// Theta returns the rotation angle.
func (g *RX) Theta() float64 {
	return g.theta
}

func (g *RX) Params() []float64 {
	return []float64{g.theta}
}

func (g *RX) Matrix() *linalg.Matrix {
	c := complex(math.Cos(g.theta/2), 0)
	s := complex(0, -math.Sin(g.theta/2))
	return linalg.FromRows([][]complex128{
		{c, s},
		{s, c},
	})
}

// RY is a rotation about the Y axis.
type RY struct {
	base
	theta float64
}

// NewRY creates a Y rotation by theta.
func NewRY(theta float64, wire Wire) *RY {
	return &RY{base: base{name: "RY", wires: Wires{wire}}, theta: theta}
}

// Theta returns the rotation angle.
func (g *RY) Theta() float64 {
	return g.theta
}

func (g *RY) Params() []float64 {
	return []float64{g.theta}
}

func (g *RY) Matrix() *linalg.Matrix {
	c := complex(math.Cos(g.theta/2), 0)
	s := complex(math.Sin(g.theta/2), 0)
	return linalg.FromRows([][]complex128{
		{c, -s},
		{s, c},
	})
}

// RZ is a rotation about the Z axis: diag(e^{-iθ/2}, e^{iθ/2}).
type RZ struct {
	base
	theta float64
}

// NewRZ creates a Z rotation by theta.
func NewRZ(theta float64, wire Wire) *RZ {
	return &RZ{base: base{name: "RZ", wires: Wires{wire}}, theta: theta}
}

// Theta returns the rotation angle.
func (g *RZ) Theta() float64 {
	return g.theta
}

func (g *RZ) Params() []float64 {
	return []float64{g.theta}
}

func (g *RZ) Matrix() *linalg.Matrix {
	return linalg.FromRows([][]complex128{
		{expi(-g.theta / 2), 0},
		{0, expi(g.theta / 2)},
	})
}

// PhaseShift is the relative phase gate diag(1, e^{iφ}).
type PhaseShift struct {
	base
	phi float64
}

// NewPhaseShift creates a phase shift by phi.
func NewPhaseShift(phi float64, wire Wire) *PhaseShift {
	return &PhaseShift{base: base{name: "PhaseShift", wires: Wires{wire}}, phi: phi}
}

// Phi returns the phase angle.
func (g *PhaseShift) Phi() float64 {
	return g.phi
}

func (g *PhaseShift) Params() []float64 {
	return []float64{g.phi}
}

func (g *PhaseShift) Matrix() *linalg.Matrix {
	return linalg.FromRows([][]complex128{
		{1, 0},
		{0, expi(g.phi)},
	})
}

// Rot is the general single qubit rotation RZ(ω)·RY(θ)·RZ(φ).
type Rot struct {
	base
	phi, theta, omega float64
}

// NewRot creates a general rotation with angles phi, theta, omega.
func NewRot(phi, theta, omega float64, wire Wire) *Rot {
	return &Rot{base: base{name: "Rot", wires: Wires{wire}}, phi: phi, theta: theta, omega: omega}
}

// Angles returns phi, theta and omega.
func (g *Rot) Angles() (phi, theta, omega float64) {
	return g.phi, g.theta, g.omega
}

func (g *Rot) Params() []float64 {
	return []float64{g.phi, g.theta, g.omega}
}

func (g *Rot) Matrix() *linalg.Matrix {
	c := complex(math.Cos(g.theta/2), 0)
	s := complex(math.Sin(g.theta/2), 0)
	return linalg.FromRows([][]complex128{
		{expi(-(g.phi + g.omega) / 2) * c, -expi((g.phi - g.omega) / 2) * s},
		{expi(-(g.phi - g.omega) / 2) * s, expi((g.phi + g.omega) / 2) * c},
	})
}
