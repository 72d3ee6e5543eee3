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

import "math"

// The RLE path collapses maximal blocks of equal elements into
// (value, count) runs, sorts the runs by value with the same engine, and
// expands them back. A run packs into one int64 with the value in the
// upper 32 bits and the count, unsigned, in the lower 32. int64 order on
// packed runs is lexicographic (value, count) order, so the generic
// decomposer and merge kernels apply unchanged; count only ever breaks
// ties between runs of equal value, which expand to the same elements in
// either order.

// maxRunCount is where a run's count saturates. A longer block of equal
// elements is split into a second run, costing one extra run entry.
const maxRunCount = math.MaxUint32

func packRun(value int32, count uint32) int64 {
	return int64(value)<<32 | int64(count)
}

func runValue(r int64) int32 {
	return int32(r >> 32)
}

func runCount(r int64) int {
	return int(uint32(r))
}

// compressRuns collapses data into packed runs in one left-to-right pass.
// If the run count reaches limit, compression aborts and returns false:
// the data is not duplicated enough for the RLE path to pay for itself.
// Adjacent runs never share a value except across a saturation split.
func compressRuns(data []int32, limit int) ([]int64, bool) {
	if len(data) == 0 || limit < 1 {
		return nil, false
	}

	runs := make([]int64, 0, limit)
	cur := data[0]
	count := uint32(1)

	for _, v := range data[1:] {
		if v == cur && count < maxRunCount {
			count++
			continue
		}
		if len(runs)+1 >= limit {
			return nil, false
		}
		runs = append(runs, packRun(cur, count))
		cur = v
		count = 1
	}
	if len(runs)+1 >= limit {
		return nil, false
	}
	return append(runs, packRun(cur, count)), true
}

// expandRuns writes the runs back out as elements, in run order. The
// counts must sum to exactly len(data); anything else means a run was
// corrupted between compression and expansion.
func expandRuns(runs []int64, data []int32) {
	k := 0
	for _, r := range runs {
		v := runValue(r)
		end := k + runCount(r)
		for ; k < end; k++ {
			data[k] = v
		}
	}
	if k != len(data) {
		panic("msort: run counts do not sum to sequence length")
	}
}
