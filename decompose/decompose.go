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

// Package decompose factors single-qubit unitaries into native rotation
// gates. A 2x2 unitary u is first stripped of its global phase, giving an
// SU(2) matrix u'. A diagonal u' is a single RZ; anything else is a single
// Rot carrying the Euler ZYZ angles of
//
//	u' = e^{ig} · RZ(omega) · RY(theta) · RZ(phi)
//
// The produced gates reproduce u up to global phase, which is a documented
// equivalence of this package, not a defect.
package decompose

import (
	"github.com/juju/errors"

	"github.com/quvar-io/quvar/common/linalg"
	"github.com/quvar-io/quvar/common/num"
	"github.com/quvar-io/quvar/gate"
)

// diagTol bounds the off-diagonal magnitudes under which a phase-normalized
// matrix counts as diagonal. Tolerances are fixed constants of the package,
// not per-call parameters.
const diagTol = 1e-8

// Angles is the outcome of the backend generic decomposition core. When
// Diagonal is true the input is a pure phase rotation and Z carries the RZ
// angle; otherwise Phi, Theta and Omega are the Rot angles.
type Angles[T any] struct {
	Diagonal bool
	Z        T
	Phi      T
	Theta    T
	Omega    T
}

// ZYZAngles runs the decomposition over any numeric backend. The input is
// assumed unitary; validation happens in ZYZ, where a tolerance over exact
// complex values is meaningful. The algorithm branches on numeric values
// only, never on the backend, so derivatives flow through unchanged when the
// backend carries them.
func ZYZAngles[T any](ops num.Ops[T], u [2][2]T) Angles[T] {
	// remove the global phase so that det(u') = 1
	det := ops.Sub(ops.Mul(u[0][0], u[1][1]), ops.Mul(u[0][1], u[1][0]))
	phase := ops.ExpI(ops.Scale(ops.Neg(ops.Arg(det)), 0.5))
	a := ops.Mul(phase, u[0][0])
	b := ops.Mul(phase, u[0][1])
	c := ops.Mul(phase, u[1][0])
	d := ops.Mul(phase, u[1][1])
	// diagonal fast path: u' is a pure RZ
	if real(ops.Complex(ops.Abs(c))) < diagTol && real(ops.Complex(ops.Abs(b))) < diagTol {
		return Angles[T]{
			Diagonal: true,
			Z:        ops.Scale(ops.Arg(d), 2),
		}
	}
	// general case: read the angles off the SU(2) parametrization
	//   u' = [ e^{-i(phi+omega)/2}·cos(theta/2)  -e^{ i(phi-omega)/2}·sin(theta/2) ]
	//        [ e^{-i(phi-omega)/2}·sin(theta/2)   e^{ i(phi+omega)/2}·cos(theta/2) ]
	argA := ops.Arg(a)
	argC := ops.Arg(c)
	return Angles[T]{
		Theta: ops.Scale(ops.Atan2(ops.Abs(c), ops.Abs(a)), 2),
		Phi:   ops.Neg(ops.Add(argA, argC)),
		Omega: ops.Sub(argC, argA),
	}
}

// ZYZ decomposes a 2x2 unitary matrix into gates on the given wire. The
// result is always exactly one gate: an RZ for diagonal inputs, a Rot
// otherwise. Non-unitary input fails with gate.ErrNotUnitary before any
// decomposition work.
func ZYZ(u *linalg.Matrix, wire gate.Wire) ([]gate.Gate, error) {
	if u.Rows() != 2 || u.Cols() != 2 {
		return nil, errors.Errorf("expected a 2x2 matrix, got %dx%d", u.Rows(), u.Cols())
	}
	if !linalg.IsUnitary(u, gate.UnitaryTol) {
		return nil, errors.Trace(gate.ErrNotUnitary)
	}
	ops := num.C128{}
	angles := ZYZAngles[complex128](ops, [2][2]complex128{
		{u.At(0, 0), u.At(0, 1)},
		{u.At(1, 0), u.At(1, 1)},
	})
	if angles.Diagonal {
		return []gate.Gate{gate.NewRZ(real(angles.Z), wire)}, nil
	}
	return []gate.Gate{gate.NewRot(real(angles.Phi), real(angles.Theta), real(angles.Omega), wire)}, nil
}
