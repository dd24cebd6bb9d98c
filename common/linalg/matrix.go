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

// Package linalg implements dense complex matrices and the small amount of
// linear algebra needed for quantum gates: products, Kronecker products,
// conjugate transposes and phase-aware comparisons. Matrices are immutable
// from the point of view of all operations, which allocate fresh results.
// Dimension mismatches are programmer errors and panic, following gonum.
package linalg

import (
	"fmt"
	"strings"
)

// Matrix is a dense complex matrix in row-major order.
type Matrix struct {
	rows, cols int
	data       []complex128
}

// New creates a zero matrix with the given shape.
func New(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic("linalg: non-positive matrix dimension")
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]complex128, rows*cols),
	}
}

// FromRows creates a matrix from a slice of rows.
func FromRows(rows [][]complex128) *Matrix {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("linalg: empty matrix")
	}
	m := New(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != m.cols {
			panic("linalg: ragged rows")
		}
		copy(m.data[i*m.cols:(i+1)*m.cols], row)
	}
	return m
}

// Identity creates the n-by-n identity matrix.
func Identity(n int) *Matrix {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// IsSquare reports whether the matrix is square.
func (m *Matrix) IsSquare() bool {
	return m.rows == m.cols
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) complex128 {
	m.checkBounds(i, j)
	return m.data[i*m.cols+j]
}

// Set assigns the element at row i, column j.
func (m *Matrix) Set(i, j int, v complex128) {
	m.checkBounds(i, j)
	m.data[i*m.cols+j] = v
}

func (m *Matrix) checkBounds(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("linalg: index (%d,%d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	c := New(m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

func (m *Matrix) String() string {
	var builder strings.Builder
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				builder.WriteByte(' ')
			}
			builder.WriteString(fmt.Sprintf("%v", m.At(i, j)))
		}
		builder.WriteByte(']')
	}
	return builder.String()
}
