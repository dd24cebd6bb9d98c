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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	m := New(2, 3)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.False(t, m.IsSquare())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Zero(t, m.At(i, j))
		}
	}
	assert.Panics(t, func() { New(0, 3) })
	assert.Panics(t, func() { New(2, -1) })
}

func TestFromRows(t *testing.T) {
	m := FromRows([][]complex128{
		{1, 2i},
		{3, -4},
	})
	assert.Equal(t, complex128(1), m.At(0, 0))
	assert.Equal(t, complex128(2i), m.At(0, 1))
	assert.Equal(t, complex128(3), m.At(1, 0))
	assert.Equal(t, complex128(-4), m.At(1, 1))
	assert.Panics(t, func() { FromRows(nil) })
	assert.Panics(t, func() { FromRows([][]complex128{{1, 2}, {3}}) })
}

func TestIdentity(t *testing.T) {
	m := Identity(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				assert.Equal(t, complex128(1), m.At(i, j))
			} else {
				assert.Zero(t, m.At(i, j))
			}
		}
	}
}

func TestSet(t *testing.T) {
	m := New(2, 2)
	m.Set(1, 0, 5i)
	assert.Equal(t, complex128(5i), m.At(1, 0))
	assert.Panics(t, func() { m.Set(2, 0, 1) })
	assert.Panics(t, func() { m.At(0, -1) })
}

func TestClone(t *testing.T) {
	m := FromRows([][]complex128{{1, 2}, {3, 4}})
	c := m.Clone()
	c.Set(0, 0, 9)
	assert.Equal(t, complex128(1), m.At(0, 0))
	assert.Equal(t, complex128(9), c.At(0, 0))
}
