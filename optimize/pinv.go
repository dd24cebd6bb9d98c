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
	"gonum.org/v1/gonum/mat"
)

// machineEps is the float64 machine epsilon.
const machineEps = 0x1p-52

// PInv returns the Moore-Penrose pseudo-inverse of a, computed through a
// thin singular value decomposition. Singular values at or below
// max(m, n) · sigma_max · eps are treated as zero. The cutoff is a fixed
// policy of the package, not a per-call parameter.
func PInv(a *mat.Dense) (*mat.Dense, error) {
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return nil, errors.Errorf("singular value decomposition did not converge")
	}
	rows, cols := a.Dims()
	values := svd.Values(nil)
	cutoff := float64(max(rows, cols)) * values[0] * machineEps
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	// pinv = V · diag(1/sigma) · U^T over the kept singular values
	inverted := mat.NewDiagDense(len(values), nil)
	for i, sigma := range values {
		if sigma > cutoff {
			inverted.SetDiag(i, 1/sigma)
		}
	}
	pinv := mat.NewDense(cols, rows, nil)
	var tmp mat.Dense
	tmp.Mul(&v, inverted)
	pinv.Mul(&tmp, u.T())
	return pinv, nil
}
