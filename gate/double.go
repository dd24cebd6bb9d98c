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

// NewCNOT creates a controlled X gate. The first wire is the control.
func NewCNOT(control, target Wire) Gate {
	return &fixed{
		base: base{name: "CNOT", wires: Wires{control, target}},
		matrix: linalg.FromRows([][]complex128{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 1},
			{0, 0, 1, 0},
		}),
	}
}

// NewCZ creates a controlled Z gate. The first wire is the control.
func NewCZ(control, target Wire) Gate {
	return &fixed{
		base: base{name: "CZ", wires: Wires{control, target}},
		matrix: linalg.FromRows([][]complex128{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, -1},
		}),
	}
}

// NewSWAP creates a gate exchanging two wires.
func NewSWAP(a, b Wire) Gate {
	return &fixed{
		base: base{name: "SWAP", wires: Wires{a, b}},
		matrix: linalg.FromRows([][]complex128{
			{1, 0, 0, 0},
			{0, 0, 1, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 1},
		}),
	}
}

// CRX is a controlled X rotation. The first wire is the control.
type CRX struct {
	base
	theta float64
}

// NewCRX creates a controlled X rotation by theta.
func NewCRX(theta float64, control, target Wire) *CRX {
	return &CRX{base: base{name: "CRX", wires: Wires{control, target}}, theta: theta}
}

// Theta returns the rotation angle.
func (g *CRX) Theta() float64 {
	return g.theta
}

func (g *CRX) Params() []float64 {
	return []float64{g.theta}
}

func (g *CRX) Matrix() *linalg.Matrix {
	c := complex(math.Cos(g.theta/2), 0)
	s := complex(0, -math.Sin(g.theta/2))
	return linalg.FromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, c, s},
		{0, 0, s, c},
	})
}

// CRY is a controlled Y rotation. The first wire is the control.
type CRY struct {
	base
	theta float64
}

// NewCRY creates a controlled Y rotation by theta.
func NewCRY(theta float64, control, target Wire) *CRY {
	return &CRY{base: base{name: "CRY", wires: Wires{control, target}}, theta: theta}
}

// Theta returns the rotation angle.
func (g *CRY) Theta() float64 {
	return g.theta
}

func (g *CRY) Params() []float64 {
	return []float64{g.theta}
}

func (g *CRY) Matrix() *linalg.Matrix {
	c := complex(math.Cos(g.theta/2), 0)
	s := complex(math.Sin(g.theta/2), 0)
	return linalg.FromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, c, -s},
		{0, 0, s, c},
	})
}

// CRZ is a controlled Z rotation. The first wire is the control.
type CRZ struct {
	base
	theta float64
}

// NewCRZ creates a controlled Z rotation by theta.
func NewCRZ(theta float64, control, target Wire) *CRZ {
	return &CRZ{base: base{name: "CRZ", wires: Wires{control, target}}, theta: theta}
}

// Theta returns the rotation angle.
func (g *CRZ) Theta() float64 {
	return g.theta
}

func (g *CRZ) Params() []float64 {
	return []float64{g.theta}
}

func (g *CRZ) Matrix() *linalg.Matrix {
	return linalg.FromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, expi(-g.theta / 2), 0},
		{0, 0, 0, expi(g.theta / 2)},
	})
}
