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

package decompose

import (
	"context"

	"github.com/juju/errors"
	"go.uber.org/zap"

	"github.com/quvar-io/quvar/base/log"
	"github.com/quvar-io/quvar/common/linalg"
	"github.com/quvar-io/quvar/common/parallel"
	"github.com/quvar-io/quvar/gate"
)

// Batch decomposes independent matrices concurrently with up to nJobs
// workers. Inputs and wires pair up by index. Single decompositions are far
// cheaper than channel scheduling, so the inputs are split into one chunk
// per worker and scheduled chunk-wise. One invalid matrix fails the whole
// batch; the context cancels outstanding chunks.
func Batch(ctx context.Context, matrices []*linalg.Matrix, wires []gate.Wire, nJobs int) ([][]gate.Gate, error) {
	if len(matrices) != len(wires) {
		return nil, errors.Errorf("expected one wire per matrix, got %d matrices and %d wires",
			len(matrices), len(wires))
	}
	if len(matrices) == 0 {
		return nil, nil
	}
	if nJobs < 1 {
		nJobs = 1
	}
	results := make([][]gate.Gate, len(matrices))
	chunks := parallel.Split(matrices, nJobs)
	offsets := make([]int, len(chunks))
	for i := 1; i < len(chunks); i++ {
		offsets[i] = offsets[i-1] + len(chunks[i-1])
	}
	err := parallel.Parallel(ctx, len(chunks), nJobs, func(_, chunkId int) error {
		base := offsets[chunkId]
		for i, m := range chunks[chunkId] {
			gates, err := ZYZ(m, wires[base+i])
			if err != nil {
				return errors.Annotatef(err, "matrix %d", base+i)
			}
			results[base+i] = gates
		}
		return nil
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	log.Logger().Debug("decomposed batch",
		zap.Int("matrices", len(matrices)),
		zap.Int("jobs", nJobs))
	return results, nil
}
