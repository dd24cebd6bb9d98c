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

// Package transform rewrites gates and circuits: control/target flips, gate
// merging, and whole-circuit passes built on them. All functions are pure;
// inputs are never mutated.
package transform

import (
	"github.com/juju/errors"

	"github.com/quvar-io/quvar/circuit"
	"github.com/quvar-io/quvar/common/linalg"
	"github.com/quvar-io/quvar/decompose"
	"github.com/quvar-io/quvar/gate"
)

// flipPerm relabels the two-qubit basis under the exchange of the qubits:
// |01> and |10> swap, |00> and |11> stay.
var flipPerm = []int{0, 2, 1, 3}

// FlipControlTarget conjugates a two-qubit gate matrix by SWAP, exchanging
// the roles of control and target. The operation is an involution: applying
// it twice returns the original matrix exactly.
func FlipControlTarget(m *linalg.Matrix) (*linalg.Matrix, error) {
	if m.Rows() != 4 || m.Cols() != 4 {
		return nil, errors.Errorf("expected a 4x4 matrix, got %dx%d", m.Rows(), m.Cols())
	}
	return m.PermuteBasis(flipPerm), nil
}

// Merge composes two gates into one. The wires of g2 must all appear among
// the wires of g1; g2 is expanded to g1's wire ordering and the merged gate
// applies g2 first, then g1:
//
//	Merge(g1, g2).Matrix() = g1.Matrix() · expand(g2)
//
// For g2 acting on the last wire of a two-qubit g1 this is
// g1.Matrix() · kron(I, g2.Matrix()).
func Merge(g1, g2 gate.Gate) (gate.Gate, error) {
	w1, w2 := g1.Wires(), g2.Wires()
	if !w2.Set().IsSubset(w1.Set()) {
		return nil, errors.Errorf("cannot merge %s on wires %v into %s on wires %v: not a subset",
			g2.Name(), w2, g1.Name(), w1)
	}
	expanded, err := circuit.Embed(g2.Matrix(), w2, w1)
	if err != nil {
		return nil, errors.Trace(err)
	}
	merged, err := gate.NewQubitUnitary(g1.Matrix().Mul(expanded), w1...)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return merged, nil
}

// DecomposeSingleQubitUnitaries replaces every single-qubit QubitUnitary in
// the circuit with its ZYZ rotation gates, in place of the original and in
// application order. All other gates pass through untouched. The circuit
// matrix is preserved up to a global phase.
func DecomposeSingleQubitUnitaries(c *circuit.Circuit) (*circuit.Circuit, error) {
	result := circuit.New()
	for _, g := range c.Gates() {
		unitary, ok := g.(*gate.QubitUnitary)
		if !ok || len(g.Wires()) != 1 {
			result.Append(g)
			continue
		}
		gates, err := decompose.ZYZ(unitary.Matrix(), g.Wires()[0])
		if err != nil {
			return nil, errors.Trace(err)
		}
		result.Append(gates...)
	}
	return result, nil
}

// MergeAdjacentGates greedily fuses neighboring gates whenever one gate's
// wire set contains the other's, walking the circuit left to right. The
// circuit matrix is preserved exactly.
func MergeAdjacentGates(c *circuit.Circuit) (*circuit.Circuit, error) {
	var merged []gate.Gate
	for _, g := range c.Gates() {
		if len(merged) == 0 {
			merged = append(merged, g)
			continue
		}
		prev := merged[len(merged)-1]
		fused, ok, err := fuse(prev, g)
		if err != nil {
			return nil, errors.Trace(err)
		}
		if ok {
			merged[len(merged)-1] = fused
		} else {
			merged = append(merged, g)
		}
	}
	return circuit.New().Append(merged...), nil
}

// fuse combines the earlier gate a with the later gate b when either wire
// set contains the other. The fused matrix is expand(b) · expand(a) over the
// containing gate's wires, so a still applies first.
func fuse(a, b gate.Gate) (gate.Gate, bool, error) {
	var wires gate.Wires
	switch {
	case b.Wires().Set().IsSubset(a.Wires().Set()):
		wires = a.Wires()
	case a.Wires().Set().IsSubset(b.Wires().Set()):
		wires = b.Wires()
	default:
		return nil, false, nil
	}
	first, err := circuit.Embed(a.Matrix(), a.Wires(), wires)
	if err != nil {
		return nil, false, errors.Trace(err)
	}
	second, err := circuit.Embed(b.Matrix(), b.Wires(), wires)
	if err != nil {
		return nil, false, errors.Trace(err)
	}
	fused, err := gate.NewQubitUnitary(second.Mul(first), wires...)
	if err != nil {
		return nil, false, errors.Trace(err)
	}
	return fused, true, nil
}
