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

package num

import (
	"math"
	"math/cmplx"
)

// Dual is a forward-mode scalar: a value together with its derivative with
// respect to one real seed variable. The conjugation and magnitude rules below
// hold because the seed is real; duals must not be seeded on complex
// variables.
type Dual struct {
	Val complex128
	Dot complex128
}

// Var returns the differentiation variable: its derivative is one.
func Var(v float64) Dual {
	return Dual{Val: complex(v, 0), Dot: 1}
}

// Const returns a dual constant with zero derivative.
func Const(v complex128) Dual {
	return Dual{Val: v}
}

// Deriv returns the real part of the derivative, which is the derivative
// itself for real-valued duals such as extracted angles.
func (d Dual) Deriv() float64 {
	return real(d.Dot)
}

// DualOps is the forward-mode backend over Dual scalars.
type DualOps struct{}

func (DualOps) FromFloat(v float64) Dual { return Dual{Val: complex(v, 0)} }

func (DualOps) Add(a, b Dual) Dual { return Dual{a.Val + b.Val, a.Dot + b.Dot} }

func (DualOps) Sub(a, b Dual) Dual { return Dual{a.Val - b.Val, a.Dot - b.Dot} }

func (DualOps) Mul(a, b Dual) Dual {
	return Dual{a.Val * b.Val, a.Dot*b.Val + a.Val*b.Dot}
}

func (DualOps) Neg(a Dual) Dual { return Dual{-a.Val, -a.Dot} }

func (DualOps) Conj(a Dual) Dual {
	return Dual{cmplx.Conj(a.Val), cmplx.Conj(a.Dot)}
}

func (DualOps) Scale(a Dual, v float64) Dual {
	c := complex(v, 0)
	return Dual{a.Val * c, a.Dot * c}
}

func (DualOps) Abs(a Dual) Dual {
	abs := cmplx.Abs(a.Val)
	if abs == 0 {
		// one-sided convention at the origin, matching Arg(0) = 0
		return Dual{}
	}
	return Dual{complex(abs, 0), complex(real(cmplx.Conj(a.Val)*a.Dot)/abs, 0)}
}

func (DualOps) Arg(a Dual) Dual {
	phase := cmplx.Phase(a.Val)
	norm := real(a.Val)*real(a.Val) + imag(a.Val)*imag(a.Val)
	if norm == 0 {
		return Dual{Val: complex(phase, 0)}
	}
	return Dual{complex(phase, 0), complex(imag(cmplx.Conj(a.Val)*a.Dot)/norm, 0)}
}

func (DualOps) Atan2(y, x Dual) Dual {
	v := math.Atan2(real(y.Val), real(x.Val))
	norm := real(x.Val)*real(x.Val) + real(y.Val)*real(y.Val)
	if norm == 0 {
		return Dual{Val: complex(v, 0)}
	}
	dot := (real(x.Val)*real(y.Dot) - real(y.Val)*real(x.Dot)) / norm
	return Dual{complex(v, 0), complex(dot, 0)}
}

func (DualOps) ExpI(a Dual) Dual {
	v := complex(math.Cos(real(a.Val)), math.Sin(real(a.Val)))
	return Dual{v, 1i * a.Dot * v}
}

func (DualOps) Complex(a Dual) complex128 { return a.Val }
