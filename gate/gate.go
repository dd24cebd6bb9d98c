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

// Package gate defines quantum gates as immutable descriptors: a name, the
// wires acted on, the real parameters, and the matrix in the computational
// basis of those wires.
package gate

import (
	"github.com/juju/errors"

	"github.com/quvar-io/quvar/common/linalg"
)

// UnitaryTol is the tolerance of the unitarity check applied to user supplied
// matrices: ‖U·U† − I‖ must stay below it.
const UnitaryTol = 1e-7

// ErrNotUnitary is returned when a user supplied operator fails the unitarity
// check.
var ErrNotUnitary = errors.New("operator must be unitary")

// Gate is a quantum operation on a fixed list of wires. Implementations are
// immutable after construction.
type Gate interface {
	// Name returns the canonical gate name.
	Name() string
	// Wires returns the wires the gate acts on, most significant bit first.
	Wires() Wires
	// Params returns the real parameters of the gate, nil when it has none.
	Params() []float64
	// Matrix returns a fresh copy of the gate matrix.
	Matrix() *linalg.Matrix
}

// base carries the descriptor fields shared by all gates.
type base struct {
	name  string
	wires Wires
}

func (b *base) Name() string {
	return b.name
}

func (b *base) Wires() Wires {
	return b.wires.Clone()
}

func (b *base) Params() []float64 {
	return nil
}

// fixed is a gate with a constant matrix.
type fixed struct {
	base
	matrix *linalg.Matrix
}

func (g *fixed) Matrix() *linalg.Matrix {
	return g.matrix.Clone()
}

// QubitUnitary applies an arbitrary unitary matrix to its wires.
type QubitUnitary struct {
	base
	matrix *linalg.Matrix
}

// NewQubitUnitary creates a gate from a 2^n by 2^n unitary matrix acting on n
// wires. The matrix is copied.
func NewQubitUnitary(m *linalg.Matrix, wires ...Wire) (*QubitUnitary, error) {
	if len(wires) == 0 {
		return nil, errors.Errorf("QubitUnitary needs at least one wire")
	}
	if !Wires(wires).Unique() {
		return nil, errors.Errorf("QubitUnitary wires must be distinct: %v", wires)
	}
	dim := 1 << len(wires)
	if m.Rows() != dim || m.Cols() != dim {
		return nil, errors.Errorf("expected a %dx%d matrix for %d wires, got %dx%d",
			dim, dim, len(wires), m.Rows(), m.Cols())
	}
	if !linalg.IsUnitary(m, UnitaryTol) {
		return nil, errors.Trace(ErrNotUnitary)
	}
	return &QubitUnitary{
		base:   base{name: "QubitUnitary", wires: Wires(wires).Clone()},
		matrix: m.Clone(),
	}, nil
}

func (g *QubitUnitary) Matrix() *linalg.Matrix {
	return g.matrix.Clone()
}
