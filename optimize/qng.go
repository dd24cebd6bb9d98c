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
	"fmt"

	"github.com/juju/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/quvar-io/quvar/base/log"
)

// ErrNoMetricTensor is returned when the quantum natural gradient is pointed
// at an objective without a metric tensor oracle. The optimizer only handles
// single objectives that expose one.
var ErrNoMetricTensor = errors.New("the objective does not expose a metric tensor")

// QNG is the quantum natural gradient optimizer. The raw gradient is
// rescaled by the pseudo-inverse of the objective's metric tensor:
//
//	x_{t+1} = x_t - eta * pinv(G(x_t)) * grad(x_t)
//
// The inverted tensor is cached between steps when the caller opts out of
// recomputation. An instance is not safe for concurrent use: the cache is a
// single mutable slot.
type QNG struct {
	GradientDescent
	diagApprox bool
	cachedInv  *mat.Dense
}

// NewQNG creates a quantum natural gradient optimizer with the default
// stepsize.
func NewQNG() *QNG {
	return &QNG{GradientDescent: GradientDescent{stepsize: defaultStepsize}}
}

// SetStepsize sets the stepsize and returns the optimizer.
func (o *QNG) SetStepsize(stepsize float64) *QNG {
	o.stepsize = stepsize
	return o
}

// SetDiagApprox requests the diagonal approximation of the metric tensor
// and returns the optimizer.
func (o *QNG) SetDiagApprox(diagApprox bool) *QNG {
	o.diagApprox = diagApprox
	return o
}

// Step advances the parameters by one natural gradient update. When
// recompute is false a previously inverted metric tensor is reused if one is
// cached. The objective must implement MetricObjective, otherwise the step
// fails with ErrNoMetricTensor.
func (o *QNG) Step(obj Objective, x Params, recompute bool) (Params, error) {
	metricObj, ok := obj.(MetricObjective)
	if !ok {
		log.Logger().Error("quantum natural gradient requires a metric tensor oracle",
			zap.String("objective", fmt.Sprintf("%T", obj)))
		return nil, errors.Trace(ErrNoMetricTensor)
	}
	flat := Flatten(x)
	if recompute || o.cachedInv == nil {
		tensor, err := metricObj.MetricTensor(x, o.diagApprox)
		if err != nil {
			return nil, errors.Annotate(err, "metric tensor")
		}
		rows, cols := tensor.Dims()
		if rows != cols || rows != len(flat) {
			return nil, errors.Errorf("expected a %dx%d metric tensor, got %dx%d",
				len(flat), len(flat), rows, cols)
		}
		inv, err := PInv(tensor)
		if err != nil {
			return nil, errors.Trace(err)
		}
		o.cachedInv = inv
	}
	if _, cols := o.cachedInv.Dims(); cols != len(flat) {
		return nil, errors.Errorf("cached metric tensor covers %d parameters but the input has %d",
			cols, len(flat))
	}
	grad, err := obj.Gradient(x)
	if err != nil {
		return nil, errors.Trace(err)
	}
	flatGrad := Flatten(grad)
	if len(flatGrad) != len(flat) {
		return nil, errors.Errorf("gradient has %d values but the parameters have %d",
			len(flatGrad), len(flat))
	}
	natural := mat.NewVecDense(len(flat), nil)
	natural.MulVec(o.cachedInv, mat.NewVecDense(len(flatGrad), flatGrad))
	if _, err := o.apply(flat, natural.RawVector().Data); err != nil {
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
func (o *QNG) StepAndCost(obj Objective, x Params, recompute bool) (Params, float64, error) {
	cost, err := obj.Cost(x)
	if err != nil {
		return nil, 0, errors.Trace(err)
	}
	next, err := o.Step(obj, x, recompute)
	if err != nil {
		return nil, 0, errors.Trace(err)
	}
	return next, cost, nil
}
