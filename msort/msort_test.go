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

package msort

import (
	"math"
	"math/rand"
	"slices"
	"testing"
)

func randomInts(t testing.TB, n int, seed int64, limit int32) []int32 {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	data := make([]int32, n)
	for i := range data {
		if limit > 0 {
			data[i] = r.Int31n(limit)
		} else {
			data[i] = int32(r.Uint32())
		}
	}
	return data
}

// expectSorted checks order and, against want, the exact content.
func expectSorted(t *testing.T, got, want []int32) {
	t.Helper()
	if !IsSorted(got) {
		t.Fatalf("output is not sorted")
	}
	if !slices.Equal(got, want) {
		t.Fatalf("output mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestSortEmpty(t *testing.T) {
	var empty []int32
	Sort(empty)
	if len(empty) != 0 {
		t.Errorf("Sort(empty) modified the slice")
	}
}

func TestSortSingle(t *testing.T) {
	data := []int32{42}
	Sort(data)
	if data[0] != 42 {
		t.Errorf("Sort([42]) = %v, want [42]", data)
	}
}

// TestSortTrivialNoAlloc pins the contract that length <= 1 allocates
// nothing.
func TestSortTrivialNoAlloc(t *testing.T) {
	one := []int32{7}
	allocs := testing.AllocsPerRun(100, func() {
		Sort(nil)
		Sort(one)
	})
	if allocs != 0 {
		t.Errorf("trivial sorts allocated %v times per run, want 0", allocs)
	}
}

func TestSortConcrete(t *testing.T) {
	data := []int32{12, 7, 14, 9, 10, 11}
	Sort(data)
	expectSorted(t, data, []int32{7, 9, 10, 11, 12, 14})
}

func TestSortEdgeValues(t *testing.T) {
	data := []int32{math.MaxInt32, 0, math.MinInt32, -1, 1, math.MaxInt32 - 1, math.MinInt32 + 1}
	Sort(data)
	expectSorted(t, data, []int32{
		math.MinInt32, math.MinInt32 + 1, -1, 0, 1, math.MaxInt32 - 1, math.MaxInt32,
	})
}

func TestSortDuplicates(t *testing.T) {
	data := []int32{5, 1, 5, 2, 5, 3}
	Sort(data)
	expectSorted(t, data, []int32{1, 2, 3, 5, 5, 5})
}

func TestSortAlreadySorted(t *testing.T) {
	data := sortedSeq(t, 10000)
	want := slices.Clone(data)
	Sort(data)
	expectSorted(t, data, want)
}

// sortedSeq returns 0..n-1; lives here so white-box tests share it.
func sortedSeq(t testing.TB, n int) []int32 {
	t.Helper()
	data := make([]int32, n)
	for i := range data {
		data[i] = int32(i)
	}
	return data
}

func TestSortReverse(t *testing.T) {
	n := 10000
	data := make([]int32, n)
	for i := range data {
		data[i] = int32(n - i)
	}
	Sort(data)
	want := sortedSeq(t, n)
	for i := range want {
		want[i]++
	}
	expectSorted(t, data, want)
}

func TestSortAllEqual(t *testing.T) {
	data := make([]int32, 5000)
	for i := range data {
		data[i] = 9
	}
	want := slices.Clone(data)
	Sort(data)
	expectSorted(t, data, want)
}

// TestSortRandomSizes sweeps sizes around every threshold: the insertion
// base case, merge boundaries, and (at 100000) the default parallel path.
func TestSortRandomSizes(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 7, 8, 15, 16, 31, 32, 63, 64, 65, 100, 127, 128,
		256, 1000, 4096, 8192, 10000, 100000}
	for _, n := range sizes {
		data := randomInts(t, n, int64(n)+1, 0)
		want := slices.Clone(data)
		slices.Sort(want)
		Sort(data)
		if !slices.Equal(data, want) {
			t.Errorf("Sort(n=%d) does not match slices.Sort", n)
		}
	}
}

// TestSortLowCardinality drives the RLE path on bounded-range data.
func TestSortLowCardinality(t *testing.T) {
	for _, limit := range []int32{1, 2, 10, 100} {
		data := randomInts(t, 50000, 7, limit)
		want := slices.Clone(data)
		slices.Sort(want)
		Sort(data)
		if !slices.Equal(data, want) {
			t.Errorf("Sort(limit=%d) does not match slices.Sort", limit)
		}
	}
}

func TestSortIdempotent(t *testing.T) {
	data := randomInts(t, 20000, 3, 50)
	Sort(data)
	want := slices.Clone(data)
	Sort(data)
	expectSorted(t, data, want)
}

// strategyConfigs enumerates the merge strategies and decomposition
// modes whose outputs must be bit-identical.
func strategyConfigs() map[string]Config {
	plain := DefaultConfig()
	plain.CacheBlockSize = 1 << 30 // block-wise never triggers
	plain.ParallelThreshold = 1 << 30

	blocked := DefaultConfig()
	blocked.CacheBlockSize = 64 // force chunked merging early
	blocked.ParallelThreshold = 1 << 30

	vectorized := plain
	vectorized.EnableVectorizedCopy = true

	branchFree := plain
	branchFree.EnableBranchFreeMerge = true

	parallel := DefaultConfig()
	parallel.ParallelThreshold = 512
	parallel.MaxParallelDepth = 4

	parallelBranchFree := parallel
	parallelBranchFree.EnableBranchFreeMerge = true

	noRLE := DefaultConfig()
	noRLE.RLEDuplicationRatio = 0
	noRLE.ParallelThreshold = 1 << 30

	noEarlyTerm := plain
	noEarlyTerm.EnableEarlyTermination = false

	return map[string]Config{
		"plain":                plain,
		"blocked":              blocked,
		"vectorized":           vectorized,
		"branch_free":          branchFree,
		"parallel":             parallel,
		"parallel_branch_free": parallelBranchFree,
		"no_rle":               noRLE,
		"no_early_term":        noEarlyTerm,
	}
}

// TestStrategyEquivalence: every strategy and mode produces the exact
// output of slices.Sort, for random, duplicated, sorted, and reverse
// inputs.
func TestStrategyEquivalence(t *testing.T) {
	inputs := map[string][]int32{
		"random":   randomInts(t, 20000, 11, 0),
		"dup":      randomInts(t, 20000, 12, 25),
		"sorted":   sortedSeq(t, 20000),
		"reverse":  reverseOf(sortedSeq(t, 20000)),
		"sawtooth": sawtooth(20000, 37),
	}

	for inName, input := range inputs {
		want := slices.Clone(input)
		slices.Sort(want)

		for cfgName, cfg := range strategyConfigs() {
			s, err := New(cfg)
			if err != nil {
				t.Fatalf("New(%s): %v", cfgName, err)
			}
			data := slices.Clone(input)
			s.Sort(data)
			if !slices.Equal(data, want) {
				t.Errorf("%s/%s output differs from slices.Sort", inName, cfgName)
			}
		}
	}
}

func reverseOf(data []int32) []int32 {
	out := slices.Clone(data)
	slices.Reverse(out)
	return out
}

func sawtooth(n, period int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = int32(i % period)
	}
	return data
}

// TestEarlyTerminationToggle: identical output with the optimization on
// and off, on the input shaped to trigger it everywhere.
func TestEarlyTerminationToggle(t *testing.T) {
	for _, n := range []int{1000, 10000} {
		on := sortedSeq(t, n)
		off := slices.Clone(on)

		cfgOn := DefaultConfig()
		cfgOff := DefaultConfig()
		cfgOff.EnableEarlyTermination = false

		sOn, _ := New(cfgOn)
		sOff, _ := New(cfgOff)
		sOn.Sort(on)
		sOff.Sort(off)

		if !slices.Equal(on, off) {
			t.Errorf("n=%d: early termination changed output", n)
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SmallRangeThreshold = -1
	if _, err := New(cfg); err == nil {
		t.Fatal("New accepted a negative threshold")
	}
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		name string
		data []int32
		want bool
	}{
		{"empty", []int32{}, true},
		{"single", []int32{1}, true},
		{"sorted", []int32{1, 2, 3, 4, 5}, true},
		{"unsorted", []int32{1, 3, 2, 4, 5}, false},
		{"reverse", []int32{5, 4, 3, 2, 1}, false},
		{"equal", []int32{3, 3, 3, 3}, true},
		{"negative", []int32{math.MinInt32, -1, 0, math.MaxInt32}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSorted(tt.data); got != tt.want {
				t.Errorf("IsSorted(%v) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}
