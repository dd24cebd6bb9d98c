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

package parallel

import (
	"context"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"
)

func TestParallel(t *testing.T) {
	for _, nWorkers := range []int{1, 4} {
		results := make([]int, 100)
		err := Parallel(context.Background(), len(results), nWorkers, func(workerId, jobId int) error {
			results[jobId] = jobId * jobId
			return nil
		})
		assert.NoError(t, err)
		for i, v := range results {
			assert.Equal(t, i*i, v)
		}
	}
}

func TestParallelError(t *testing.T) {
	expected := errors.New("broken job")
	err := Parallel(context.Background(), 100, 4, func(workerId, jobId int) error {
		if jobId == 42 {
			return expected
		}
		return nil
	})
	assert.ErrorIs(t, err, expected)
}

func TestParallelCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	count := atomic.NewInt64(0)
	err := Parallel(ctx, 1000, 1, func(workerId, jobId int) error {
		if count.Inc() == 10 {
			cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(10), count.Load())
}

func TestFor(t *testing.T) {
	count := atomic.NewInt64(0)
	For(100, 4, func(i int) {
		count.Inc()
	})
	assert.Equal(t, int64(100), count.Load())
}

func TestForEach(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6, 7, 8}
	sum := atomic.NewInt64(0)
	ForEach(a, 4, func(i, v int) {
		sum.Add(int64(v))
	})
	assert.Equal(t, int64(36), sum.Load())
}

func TestSplit(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6, 7}
	chunks := Split(a, 3)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5}, {6, 7}}, chunks)
	assert.Nil(t, Split([]int{}, 3))
	assert.Equal(t, [][]int{{1}, {2}}, Split([]int{1, 2}, 3))
}
