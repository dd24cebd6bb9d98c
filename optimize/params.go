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

// Package optimize provides gradient based optimizers over arbitrarily
// nested parameter structures: plain gradient descent and the quantum
// natural gradient, which rescales the step by the pseudo-inverse of a
// metric tensor supplied by the objective.
package optimize

import (
	"github.com/juju/errors"
)

// Params is a tree of real parameters: a Scalar leaf, a Vector leaf, or a
// List of subtrees. Trees flatten to a canonical depth-first vector and are
// restored from it through their Shape.
type Params interface {
	// Shape returns the value-free structure of the tree.
	Shape() Shape
	appendTo(dst []float64) []float64
}

// Scalar is a single parameter leaf.
type Scalar float64

// Vector is a flat run of parameters.
type Vector []float64

// List is an ordered collection of subtrees.
type List []Params

// Flatten lists the leaf values of a tree in canonical depth-first order.
func Flatten(p Params) []float64 {
	return p.appendTo(nil)
}

func (s Scalar) appendTo(dst []float64) []float64 {
	return append(dst, float64(s))
}

func (s Scalar) Shape() Shape {
	return scalarShape{}
}

func (v Vector) appendTo(dst []float64) []float64 {
	return append(dst, v...)
}

func (v Vector) Shape() Shape {
	return vectorShape(len(v))
}

func (l List) appendTo(dst []float64) []float64 {
	for _, child := range l {
		dst = child.appendTo(dst)
	}
	return dst
}

func (l List) Shape() Shape {
	children := make(listShape, len(l))
	for i, child := range l {
		children[i] = child.Shape()
	}
	return children
}

// Shape is the structure of a parameter tree without its values. A shape is
// captured once and reused to restore flattened vectors.
type Shape interface {
	// Size returns the number of leaf values the shape holds.
	Size() int
	build(flat []float64) (Params, []float64)
}

// Unflatten restores a flat vector into the nesting described by the shape.
// The vector length must match the shape size exactly.
func Unflatten(s Shape, flat []float64) (Params, error) {
	if len(flat) != s.Size() {
		return nil, errors.Errorf("expected %d values for the shape, got %d", s.Size(), len(flat))
	}
	params, _ := s.build(flat)
	return params, nil
}

type scalarShape struct{}

func (scalarShape) Size() int {
	return 1
}

func (scalarShape) build(flat []float64) (Params, []float64) {
	return Scalar(flat[0]), flat[1:]
}

type vectorShape int

func (s vectorShape) Size() int {
	return int(s)
}

func (s vectorShape) build(flat []float64) (Params, []float64) {
	v := make(Vector, s)
	copy(v, flat[:s])
	return v, flat[s:]
}

type listShape []Shape

func (s listShape) Size() int {
	size := 0
	for _, child := range s {
		size += child.Size()
	}
	return size
}

func (s listShape) build(flat []float64) (Params, []float64) {
	l := make(List, len(s))
	for i, child := range s {
		l[i], flat = child.build(flat)
	}
	return l, flat
}
