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

// quvar-bench measures the throughput and numerical quality of the ZYZ
// decomposition and the circuit rewrite passes on random unitaries.
package main

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/pflag"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/quvar-io/quvar/base/log"
	"github.com/quvar-io/quvar/circuit"
	"github.com/quvar-io/quvar/common/linalg"
	"github.com/quvar-io/quvar/common/parallel"
	"github.com/quvar-io/quvar/decompose"
	"github.com/quvar-io/quvar/gate"
	"github.com/quvar-io/quvar/transform"
)

var (
	flagN     = pflag.Int("n", 100000, "number of random unitaries")
	flagJobs  = pflag.Int("jobs", runtime.NumCPU(), "number of parallel workers")
	flagSeed  = pflag.Int64("seed", 42, "random seed")
	flagDebug = pflag.Bool("debug", false, "enable debug logging")
)

func main() {
	log.AddFlags(pflag.CommandLine)
	pflag.Parse()
	log.SetLogger(pflag.CommandLine, *flagDebug)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Benchmark", "Ops", "Time", "Ops/s", "Mean Error", "P99 Error", "Max Error")

	appendRow(table, "decompose (serial)", runDecompose(*flagN, 1, *flagSeed))
	appendRow(table, fmt.Sprintf("decompose (%d jobs)", *flagJobs), runDecompose(*flagN, *flagJobs, *flagSeed))
	appendRow(table, fmt.Sprintf("merge pass (%d jobs)", *flagJobs), runMergePass(*flagN/10, *flagJobs, *flagSeed))
	if err := table.Render(); err != nil {
		log.Logger().Fatal("failed to render the report", zap.Error(err))
	}
}

type report struct {
	ops     int
	elapsed time.Duration
	errors  []float64
}

func appendRow(table *tablewriter.Table, name string, r report) {
	sort.Float64s(r.errors)
	if err := table.Append(name,
		fmt.Sprint(r.ops),
		r.elapsed.Round(time.Millisecond).String(),
		fmt.Sprintf("%.0f", float64(r.ops)/r.elapsed.Seconds()),
		fmt.Sprintf("%.3g", stat.Mean(r.errors, nil)),
		fmt.Sprintf("%.3g", stat.Quantile(0.99, stat.Empirical, r.errors, nil)),
		fmt.Sprintf("%.3g", r.errors[len(r.errors)-1]),
	); err != nil {
		log.Logger().Fatal("failed to append the report row", zap.Error(err))
	}
}

// rotAngles is a drawn set of Rot angles plus a global phase.
type rotAngles struct {
	phi, theta, omega, alpha float64
}

// drawAngles samples n angle sets from a single seeded source.
func drawAngles(n int, seed int64) []rotAngles {
	rng := rand.New(rand.NewSource(seed))
	angles := make([]rotAngles, n)
	for i := range angles {
		angles[i] = rotAngles{
			phi:   rng.Float64() * 2 * math.Pi,
			theta: rng.Float64() * math.Pi,
			omega: rng.Float64() * 2 * math.Pi,
			alpha: rng.Float64() * 2 * math.Pi,
		}
	}
	return angles
}

// randomUnitaries builds Haar-like random single-qubit unitaries with random
// global phases. The angles are drawn serially from one source so the corpus
// is reproducible; the matrix construction fans out over the workers.
func randomUnitaries(n, jobs int, seed int64) []*linalg.Matrix {
	matrices := make([]*linalg.Matrix, n)
	parallel.ForEach(drawAngles(n, seed), jobs, func(i int, a rotAngles) {
		phase := complex(math.Cos(a.alpha), math.Sin(a.alpha))
		matrices[i] = gate.NewRot(a.phi, a.theta, a.omega, "0").Matrix().Scale(phase)
	})
	return matrices
}

// phaseError returns the largest entry difference between two matrices after
// aligning their global phases on the largest entry of a.
func phaseError(a, b *linalg.Matrix) float64 {
	pivot := [2]int{0, 0}
	largest := 0.0
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if abs := cmplx.Abs(a.At(i, j)); abs > largest {
				pivot, largest = [2]int{i, j}, abs
			}
		}
	}
	ratio := b.At(pivot[0], pivot[1]) / a.At(pivot[0], pivot[1])
	ratio /= complex(cmplx.Abs(ratio), 0)
	maxDiff := 0.0
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if diff := cmplx.Abs(a.At(i, j)*ratio - b.At(i, j)); diff > maxDiff {
				maxDiff = diff
			}
		}
	}
	return maxDiff
}

func runDecompose(n, jobs int, seed int64) report {
	matrices := randomUnitaries(n, jobs, seed)
	bar := progressbar.Default(int64(n), fmt.Sprintf("decompose x%d", jobs))
	roundTripErrors := make([]float64, n)
	diagonals := atomic.NewInt64(0)
	start := time.Now()
	err := parallel.Parallel(context.Background(), n, jobs, func(_, jobId int) error {
		gates, err := decompose.ZYZ(matrices[jobId], "0")
		if err != nil {
			return err
		}
		if _, ok := gates[0].(*gate.RZ); ok {
			diagonals.Inc()
		}
		roundTripErrors[jobId] = phaseError(matrices[jobId], gates[0].Matrix())
		_ = bar.Add(1)
		return nil
	})
	elapsed := time.Since(start)
	if err != nil {
		log.Logger().Fatal("decomposition failed", zap.Error(err))
	}
	log.Logger().Info("decomposition finished",
		zap.Int("n", n),
		zap.Int("jobs", jobs),
		zap.Int64("diagonal_fast_path", diagonals.Load()),
		zap.Duration("elapsed", elapsed))
	return report{ops: n, elapsed: elapsed, errors: roundTripErrors}
}

// runMergePass times the adjacent-gate merge over random two-wire circuits
// and reports how far the merged matrix drifts from the original.
func runMergePass(n, jobs int, seed int64) report {
	angles := drawAngles(n, seed)
	bar := progressbar.Default(int64(n), "merge pass")
	passErrors := make([]float64, n)
	start := time.Now()
	parallel.For(n, jobs, func(i int) {
		a := angles[i]
		c := circuit.New().
			Append(gate.NewRot(a.phi, a.theta, a.omega, "b")).
			Append(gate.NewCNOT("a", "b")).
			Append(gate.NewRZ(a.alpha, "a"))
		merged, err := transform.MergeAdjacentGates(c)
		if err != nil {
			log.Logger().Fatal("merge pass failed", zap.Error(err))
		}
		order := gate.Wires{"a", "b"}
		before, err := c.Matrix(order)
		if err != nil {
			log.Logger().Fatal("failed to evaluate the circuit", zap.Error(err))
		}
		after, err := merged.Matrix(order)
		if err != nil {
			log.Logger().Fatal("failed to evaluate the merged circuit", zap.Error(err))
		}
		passErrors[i] = phaseError(before, after)
		_ = bar.Add(1)
	})
	return report{ops: n, elapsed: time.Since(start), errors: passErrors}
}
