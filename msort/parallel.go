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

import "golang.org/x/sync/errgroup"

// sortRangeParallel is sortRange with fork/join decomposition layered on
// the Split state: while the range is at least ParallelThreshold long and
// depth is below MaxParallelDepth, the left half is sorted in a spawned
// task while the right half is sorted in the calling goroutine. The join
// happens before mergeChildren, so a parent never reads a child's range
// until that subtree has fully resolved.
//
// Tasks own disjoint index ranges of both buffers; the join barrier is
// the only synchronization. Past the depth cap, or below the threshold,
// the sequential decomposer takes over.
func sortRangeParallel[E element](cfg *Config, data, scratch []E, left, right, depth int) residence {
	if right-left+1 <= cfg.SmallRangeThreshold {
		insertionSort(data, left, right)
		return inData
	}

	mid := left + (right-left)/2

	var resL, resR residence
	if right-left+1 >= cfg.ParallelThreshold && depth < cfg.MaxParallelDepth {
		var g errgroup.Group
		g.Go(func() error {
			resL = sortRangeParallel(cfg, data, scratch, left, mid, depth+1)
			return nil
		})
		resR = sortRangeParallel(cfg, data, scratch, mid+1, right, depth+1)
		_ = g.Wait()
	} else {
		resL = sortRange(cfg, data, scratch, left, mid)
		resR = sortRange(cfg, data, scratch, mid+1, right)
	}

	return mergeChildren(cfg, data, scratch, left, mid, right, resL, resR)
}
