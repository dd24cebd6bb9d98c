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

package optimize

import (
	"github.com/juju/errors"

	"github.com/quvar-io/quvar/common/floats"
)

// defaultStepsize is the stepsize optimizers start with.
const defaultStepsize = 0.01

// GradientDescent walks parameters against the raw gradient:
//
//	x_{t+1} = x_t - eta * grad(x_t)
type GradientDescent struct {
	stepsize float64
}

// NewGradientDescent creates a gradient descent optimizer with the default
// stepsize.
func NewGradientDescent() *GradientDescent {
	return &GradientDescent{stepsize: defaultStepsize}
}

// SetStepsize sets the stepsize and returns the optimizer.
func (o *GradientDescent) SetStepsize(stepsize float64) *GradientDescent {
	o.stepsize = stepsize
	return o
}

// Stepsize returns the current stepsize.
func (o *GradientDescent) Stepsize() float64 {
	return o.stepsize
}

// UpdateStepsize replaces the stepsize between steps.
func (o *GradientDescent) UpdateStepsize(stepsize float64) {
	o.stepsize = stepsize
}

// Step advances the parameters by one update and returns them in the shape
// they arrived in.
func (o *GradientDescent) Step(obj Objective, x Params) (Params, error) {
	grad, err := obj.Gradient(x)
	if err != nil {
		return nil, errors.Trace(err)
	}
	flat, err := o.apply(Flatten(x), Flatten(grad))
	if err != nil {
		return nil, errors.Trace(err)
	}
	next, err := Unflatten(x.Shape(), flat)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return next, nil
}

// StepAndCost advances the parameters and also returns the objective value
// at the point before the step.
func (o *GradientDescent) StepAndCost(obj Objective, x Params) (Params, float64, error) {
	cost, err := obj.Cost(x)
	if err != nil {
		return nil, 0, errors.Trace(err)
	}
	next, err := o.Step(obj, x)
	if err != nil {
		return nil, 0, errors.Trace(err)
	}
	return next, cost, nil
}

// apply computes x - eta * g over flattened vectors.
func (o *GradientDescent) apply(flat, grad []float64) ([]float64, error) {
	if len(grad) != len(flat) {
		return nil, errors.Errorf("gradient has %d values but the parameters have %d", len(grad), len(flat))
	}
	floats.MulConstAddTo(grad, -o.stepsize, flat)
	return flat, nil
}
