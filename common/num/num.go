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

// Package num abstracts the scalar arithmetic used by gate decompositions
// behind a small interface, so the same algorithm runs in double precision,
// single precision, or with first-order derivatives attached. Algorithms
// written against Ops must branch on numeric values only, never on the
// backend itself.
package num

import (
	"math"
	"math/cmplx"

	"github.com/chewxy/math32"
)

// Ops is the scalar contract of a numeric backend. Abs, Arg and Atan2 return
// real-valued scalars; ExpI consumes one.
type Ops[T any] interface {
	// FromFloat converts a real constant.
	FromFloat(v float64) T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Neg(a T) T
	// Conj returns the complex conjugate.
	Conj(a T) T
	// Scale multiplies by a real constant.
	Scale(a T, v float64) T
	// Abs returns the magnitude |a|.
	Abs(a T) T
	// Arg returns the phase of a in (-π, π], with Arg(0) = 0.
	Arg(a T) T
	// Atan2 returns the principal arctangent of y/x.
	Atan2(y, x T) T
	// ExpI returns e^{i·a} for real-valued a.
	ExpI(a T) T
	// Complex reports the value of a scalar, dropping any derivative part.
	Complex(a T) complex128
}

// C128 is the complex128 backend.
type C128 struct{}

func (C128) FromFloat(v float64) complex128 { return complex(v, 0) }

func (C128) Add(a, b complex128) complex128 { return a + b }

func (C128) Sub(a, b complex128) complex128 { return a - b }

func (C128) Mul(a, b complex128) complex128 { return a * b }

func (C128) Neg(a complex128) complex128 { return -a }

func (C128) Conj(a complex128) complex128 { return cmplx.Conj(a) }

func (C128) Scale(a complex128, v float64) complex128 { return a * complex(v, 0) }

func (C128) Abs(a complex128) complex128 { return complex(cmplx.Abs(a), 0) }

func (C128) Arg(a complex128) complex128 { return complex(cmplx.Phase(a), 0) }

func (C128) Atan2(y, x complex128) complex128 {
	return complex(math.Atan2(real(y), real(x)), 0)
}

func (C128) ExpI(a complex128) complex128 {
	return complex(math.Cos(real(a)), math.Sin(real(a)))
}

func (C128) Complex(a complex128) complex128 { return a }

// C64 is the complex64 backend. Trigonometry stays in float32 throughout.
type C64 struct{}

func (C64) FromFloat(v float64) complex64 { return complex(float32(v), 0) }

func (C64) Add(a, b complex64) complex64 { return a + b }

func (C64) Sub(a, b complex64) complex64 { return a - b }

func (C64) Mul(a, b complex64) complex64 { return a * b }

func (C64) Neg(a complex64) complex64 { return -a }

func (C64) Conj(a complex64) complex64 { return complex(real(a), -imag(a)) }

func (C64) Scale(a complex64, v float64) complex64 { return a * complex(float32(v), 0) }

func (C64) Abs(a complex64) complex64 {
	return complex(math32.Hypot(real(a), imag(a)), 0)
}

func (C64) Arg(a complex64) complex64 {
	return complex(math32.Atan2(imag(a), real(a)), 0)
}

func (C64) Atan2(y, x complex64) complex64 {
	return complex(math32.Atan2(real(y), real(x)), 0)
}

func (C64) ExpI(a complex64) complex64 {
	return complex(math32.Cos(real(a)), math32.Sin(real(a)))
}

func (C64) Complex(a complex64) complex128 {
	return complex(float64(real(a)), float64(imag(a)))
}
