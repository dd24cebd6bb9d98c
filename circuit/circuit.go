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

// Package circuit holds ordered gate sequences and evaluates their combined
// unitary matrix over a chosen wire ordering.
package circuit

import (
	"github.com/juju/errors"
	"github.com/samber/lo"

	"github.com/quvar-io/quvar/common/linalg"
	"github.com/quvar-io/quvar/gate"
)

// Circuit is an ordered sequence of gates. Gates appended earlier apply
// earlier.
type Circuit struct {
	gates []gate.Gate
}

// New creates an empty circuit.
func New() *Circuit {
	return &Circuit{}
}

// Append adds gates to the end of the circuit and returns the circuit.
func (c *Circuit) Append(gates ...gate.Gate) *Circuit {
	c.gates = append(c.gates, gates...)
	return c
}

// Len returns the number of gates.
func (c *Circuit) Len() int {
	return len(c.gates)
}

// Gates returns the gates in application order.
func (c *Circuit) Gates() []gate.Gate {
	return c.gates
}

// Wires returns the distinct wires of the circuit in first-appearance order.
func (c *Circuit) Wires() gate.Wires {
	return lo.Uniq(lo.FlatMap(c.gates, func(g gate.Gate, _ int) []gate.Wire {
		return g.Wires()
	}))
}

// Matrix returns the unitary of the whole circuit over the given wire
// ordering. The first wire maps to the most significant bit, matching
// kron(first, second). Gates appended earlier apply earlier, so the result is
// the product of the expanded gate matrices in reverse order.
func (c *Circuit) Matrix(order gate.Wires) (*linalg.Matrix, error) {
	if len(order) == 0 {
		return nil, errors.Errorf("cannot evaluate a circuit over zero wires")
	}
	if !order.Unique() {
		return nil, errors.Errorf("wire ordering must be distinct: %v", order)
	}
	result := linalg.Identity(1 << len(order))
	for _, g := range c.gates {
		expanded, err := Embed(g.Matrix(), g.Wires(), order)
		if err != nil {
			return nil, errors.Annotatef(err, "gate %s", g.Name())
		}
		result = expanded.Mul(result)
	}
	return result, nil
}

// Embed expands a gate matrix on the wires listed in wires to the full
// 2^n-dimensional space of the wire ordering order. The gate's wires may sit
// anywhere in order, in any relative order; the remaining wires receive the
// identity. For a gate on the trailing wires of order this reduces to
// kron(I, m).
func Embed(m *linalg.Matrix, wires, order gate.Wires) (*linalg.Matrix, error) {
	n := len(order)
	gateBits := len(wires)
	if m.Rows() != 1<<gateBits || m.Cols() != 1<<gateBits {
		return nil, errors.Errorf("expected a %dx%d matrix for %d wires, got %dx%d",
			1<<gateBits, 1<<gateBits, gateBits, m.Rows(), m.Cols())
	}
	// bit shift of every gate wire inside the full basis index
	shifts := make([]int, gateBits)
	for k, w := range wires {
		idx := order.Index(w)
		if idx < 0 {
			return nil, errors.Errorf("wire %q is not part of the ordering %v", w, order)
		}
		shifts[k] = n - 1 - idx
	}
	dim := 1 << n
	restMask := dim - 1
	for _, s := range shifts {
		restMask &^= 1 << s
	}
	result := linalg.New(dim, dim)
	for i := 0; i < dim; i++ {
		// the sub-index of the gate wires inside i
		gi := 0
		for k, s := range shifts {
			gi |= ((i >> s) & 1) << (gateBits - 1 - k)
		}
		rest := i & restMask
		for gj := 0; gj < 1<<gateBits; gj++ {
			j := rest
			for k, s := range shifts {
				j |= ((gj >> (gateBits - 1 - k)) & 1) << s
			}
			result.Set(i, j, m.At(gi, gj))
		}
	}
	return result, nil
}
