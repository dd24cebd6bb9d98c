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

package linalg

import (
	"fmt"
	"math/cmplx"
)

// Mul returns the matrix product m * b.
func (m *Matrix) Mul(b *Matrix) *Matrix {
	if m.cols != b.rows {
		panic(fmt.Sprintf("linalg: dimension mismatch: %dx%d * %dx%d", m.rows, m.cols, b.rows, b.cols))
	}
	c := New(m.rows, b.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			v := m.data[i*m.cols+k]
			if v == 0 {
				continue
			}
			for j := 0; j < b.cols; j++ {
				c.data[i*b.cols+j] += v * b.data[k*b.cols+j]
			}
		}
	}
	return c
}

// Kron returns the Kronecker product m ⊗ b.
func (m *Matrix) Kron(b *Matrix) *Matrix {
	c := New(m.rows*b.rows, m.cols*b.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			v := m.data[i*m.cols+j]
			for k := 0; k < b.rows; k++ {
				for l := 0; l < b.cols; l++ {
					c.data[(i*b.rows+k)*c.cols+j*b.cols+l] = v * b.data[k*b.cols+l]
				}
			}
		}
	}
	return c
}

// Dagger returns the conjugate transpose.
func (m *Matrix) Dagger() *Matrix {
	c := New(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			c.data[j*c.cols+i] = cmplx.Conj(m.data[i*m.cols+j])
		}
	}
	return c
}

// Scale returns the matrix multiplied by a scalar.
func (m *Matrix) Scale(v complex128) *Matrix {
	c := m.Clone()
	for i := range c.data {
		c.data[i] *= v
	}
	return c
}

// Add returns the element-wise sum m + b.
func (m *Matrix) Add(b *Matrix) *Matrix {
	if m.rows != b.rows || m.cols != b.cols {
		panic(fmt.Sprintf("linalg: dimension mismatch: %dx%d + %dx%d", m.rows, m.cols, b.rows, b.cols))
	}
	c := m.Clone()
	for i := range c.data {
		c.data[i] += b.data[i]
	}
	return c
}

// Sub returns the element-wise difference m - b.
func (m *Matrix) Sub(b *Matrix) *Matrix {
	if m.rows != b.rows || m.cols != b.cols {
		panic(fmt.Sprintf("linalg: dimension mismatch: %dx%d - %dx%d", m.rows, m.cols, b.rows, b.cols))
	}
	c := m.Clone()
	for i := range c.data {
		c.data[i] -= b.data[i]
	}
	return c
}

// PermuteBasis returns the matrix with rows and columns simultaneously
// reordered by perm: result[i][j] = m[perm[i]][perm[j]]. This is the relabeling
// of basis states under a permutation of the underlying systems.
func (m *Matrix) PermuteBasis(perm []int) *Matrix {
	if !m.IsSquare() || len(perm) != m.rows {
		panic(fmt.Sprintf("linalg: permutation of length %d does not fit %dx%d matrix", len(perm), m.rows, m.cols))
	}
	seen := make([]bool, len(perm))
	for _, p := range perm {
		if p < 0 || p >= len(perm) || seen[p] {
			panic("linalg: invalid permutation")
		}
		seen[p] = true
	}
	c := New(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			c.data[i*m.cols+j] = m.data[perm[i]*m.cols+perm[j]]
		}
	}
	return c
}

// Det2 returns the determinant of a 2x2 matrix.
func (m *Matrix) Det2() complex128 {
	if m.rows != 2 || m.cols != 2 {
		panic(fmt.Sprintf("linalg: Det2 called on %dx%d matrix", m.rows, m.cols))
	}
	return m.data[0]*m.data[3] - m.data[1]*m.data[2]
}
