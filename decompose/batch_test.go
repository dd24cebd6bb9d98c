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
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quvar-io/quvar/common/linalg"
	"github.com/quvar-io/quvar/gate"
)

func TestBatchMatchesSerial(t *testing.T) {
	var matrices []*linalg.Matrix
	var wires []gate.Wire
	for i := 0; i < 32; i++ {
		x := float64(i) * 0.17
		matrices = append(matrices, gate.NewRot(x, x/2, -x, "0").Matrix())
		wires = append(wires, gate.Wire(strconv.Itoa(i)))
	}
	parallelResults, err := Batch(context.Background(), matrices, wires, 4)
	require.NoError(t, err)
	require.Len(t, parallelResults, len(matrices))
	for i, m := range matrices {
		serial, err := ZYZ(m, wires[i])
		require.NoError(t, err)
		require.Len(t, parallelResults[i], 1)
		assert.Equal(t, serial[0].Name(), parallelResults[i][0].Name())
		assert.Equal(t, serial[0].Params(), parallelResults[i][0].Params())
		assert.Equal(t, gate.Wires{wires[i]}, parallelResults[i][0].Wires())
	}
}

func TestBatchUnevenChunks(t *testing.T) {
	// job counts that do not divide the input still map every result back
	// to its own index
	var matrices []*linalg.Matrix
	var wires []gate.Wire
	for i := 0; i < 7; i++ {
		matrices = append(matrices, gate.NewRZ(float64(i), "0").Matrix())
		wires = append(wires, gate.Wire(strconv.Itoa(i)))
	}
	for _, nJobs := range []int{3, 16, 0} {
		results, err := Batch(context.Background(), matrices, wires, nJobs)
		require.NoError(t, err)
		require.Len(t, results, len(matrices))
		for i, gates := range results {
			require.Len(t, gates, 1)
			rz, ok := gates[0].(*gate.RZ)
			require.True(t, ok)
			assert.InDelta(t, float64(i), rz.Theta(), 1e-10)
			assert.Equal(t, gate.Wires{wires[i]}, gates[0].Wires())
		}
	}
}

func TestBatchEmpty(t *testing.T) {
	results, err := Batch(context.Background(), nil, nil, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBatchInvalidMatrix(t *testing.T) {
	matrices := []*linalg.Matrix{
		linalg.Identity(2),
		linalg.Identity(2).Add(gate.NewHadamard("0").Matrix()),
	}
	_, err := Batch(context.Background(), matrices, []gate.Wire{"a", "b"}, 2)
	assert.ErrorIs(t, err, gate.ErrNotUnitary)
}

func TestBatchLengthMismatch(t *testing.T) {
	_, err := Batch(context.Background(), []*linalg.Matrix{linalg.Identity(2)}, nil, 1)
	assert.Error(t, err)
}

func TestBatchCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	matrices := []*linalg.Matrix{linalg.Identity(2)}
	_, err := Batch(ctx, matrices, []gate.Wire{"a"}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
