// Copyright 2025 msort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bench generates synthetic datasets and measures sort runs:
// elapsed time, throughput, and estimated hardware cost per gigabyte.
// It is instrumentation around the engine, not part of it.
package bench

import (
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Dataset patterns mirror the scenarios the engine is tuned against:
// uniform random exercises the merge kernels, a bounded value range
// forces duplication for the RLE path, and sorted/reverse probe early
// termination and worst-case merging.

// Random fills a new n-element slice with uniform 32-bit values.
// Generation is deterministic for a given seed and GOMAXPROCS-independent
// per chunk, and runs across all CPUs for gigabyte-scale sizes.
func Random(n int, seed int64) []int32 {
	data := make([]int32, n)
	fillParallel(data, seed, func(r *rand.Rand) int32 {
		return int32(r.Uint32())
	})
	return data
}

// RandomBounded fills a new n-element slice with values in [0, limit).
// Small limits produce the heavy duplication that makes the RLE path
// worthwhile.
func RandomBounded(n int, seed int64, limit int32) []int32 {
	if limit < 1 {
		limit = 1
	}
	data := make([]int32, n)
	fillParallel(data, seed, func(r *rand.Rand) int32 {
		return r.Int31n(limit)
	})
	return data
}

// Sorted returns 0..n-1, already in order.
func Sorted(n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = int32(i)
	}
	return data
}

// Reversed returns n-1..0, strictly decreasing.
func Reversed(n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = int32(n - 1 - i)
	}
	return data
}

// Constant returns n copies of v, the degenerate single-run dataset.
func Constant(n int, v int32) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = v
	}
	return data
}

// fillParallel writes gen output into disjoint chunks of data, one chunk
// per CPU, each chunk with its own seeded source so the result does not
// depend on scheduling.
func fillParallel(data []int32, seed int64, gen func(*rand.Rand) int32) {
	n := len(data)
	workers := min(runtime.GOMAXPROCS(0), n)
	if workers <= 1 {
		r := rand.New(rand.NewSource(seed))
		for i := range data {
			data[i] = gen(r)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			r := rand.New(rand.NewSource(seed + int64(w)))
			for i := lo; i < hi; i++ {
				data[i] = gen(r)
			}
			return nil
		})
	}
	_ = g.Wait()
}
