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
	"gonum.org/v1/gonum/mat"
)

// Objective is a differentiable cost over a parameter tree. The gradient
// mirrors the shape of its input.
type Objective interface {
	Cost(x Params) (float64, error)
	Gradient(x Params) (Params, error)
}

// MetricObjective is an objective that also exposes the metric tensor of its
// parameter space, the square sensitivity matrix the quantum natural
// gradient rescales by. The matrix dimension equals the flattened parameter
// length. diagApprox requests the cheaper diagonal-only approximation.
type MetricObjective interface {
	Objective
	MetricTensor(x Params, diagApprox bool) (*mat.Dense, error)
}
