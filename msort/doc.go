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

// Package msort is an in-memory merge-sort engine for int32 sequences,
// tuned for gigabyte-scale arrays.
//
// # Algorithm
//
// The engine is an adaptive merge sort that combines:
//   - Insertion sort below a small-range threshold
//   - Ping-pong buffering between the input and one auxiliary buffer,
//     so merge output never needs a copy-back per level
//   - Early termination when two halves are already ordered at the seam
//   - Run-length compression for low-cardinality data: when fewer than
//     80% of the elements start a new run, the engine sorts (value, count)
//     runs instead of elements and expands them afterwards
//   - Bounded-depth fork/join parallelism for large ranges
//
// # Merge strategies
//
// Four interchangeable merge kernels produce identical output:
//   - Plain: element-by-element comparison into the destination buffer
//   - Block-wise: the same comparison processed in cache-sized chunks
//   - Vectorized-leftover: trailing runs moved with 8-wide bulk moves
//   - Branch-free: the take-left decision computed as an integer, both
//     index advances derived from it without a conditional branch
//
// Strategy selection is a configuration concern; it never changes the
// sorted result.
//
// # Example Usage
//
//	import "github.com/Grace-Davanzo/ComputerArchitectureHomework4/msort"
//
//	func Process(data []int32) {
//	    msort.Sort(data) // in-place ascending sort, default tuning
//	}
//
//	s, err := msort.New(msort.Config{
//	    SmallRangeThreshold: 32,
//	    CacheBlockSize:      8192,
//	    ParallelThreshold:   100000,
//	    MaxParallelDepth:    4,
//	    RLEDuplicationRatio: 0.8,
//	    EnableEarlyTermination: true,
//	    EnableBranchFreeMerge:  true,
//	})
//	if err != nil {
//	    // invalid configuration, rejected before any sort runs
//	}
//	s.Sort(data)
//
// # Concurrency
//
// A single Sort call may fan out into at most 2^MaxParallelDepth tasks.
// Tasks own disjoint index ranges of the input and the auxiliary buffer,
// so the only synchronization is the join barrier before each merge.
// Sorter is stateless after construction and safe for concurrent use.
package msort
