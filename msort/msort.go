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

import "github.com/Grace-Davanzo/ComputerArchitectureHomework4/msort/vec"

// element is what the engine sorts: the public int32 sequence, and the
// packed int64 runs of the RLE path.
type element interface {
	~int32 | ~int64
}

// Sorter is a configured instance of the engine. It holds no per-call
// state; one Sorter may be used from many goroutines at once.
type Sorter struct {
	cfg Config
}

// New returns a Sorter for cfg, rejecting invalid configurations before
// any sort runs.
func New(cfg Config) (*Sorter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Sorter{cfg: cfg}, nil
}

var defaultSorter = &Sorter{cfg: DefaultConfig()}

// Sort sorts data in place, ascending, with the default configuration.
func Sort(data []int32) {
	defaultSorter.Sort(data)
}

// Sort sorts data in place, ascending.
//
// Length 0 and 1 return immediately with no allocation. Otherwise one
// auxiliary buffer is allocated for the duration of the call: either the
// run sequence (when the duplication heuristic selects the RLE path) or
// an element buffer of the input's length for ping-pong merging. Both are
// released when the call returns, on every path.
func (s *Sorter) Sort(data []int32) {
	n := len(data)
	if n <= 1 {
		return
	}
	if n <= s.cfg.SmallRangeThreshold {
		insertionSort(data, 0, n-1)
		return
	}

	// The duplication decision is data-dependent and re-evaluated on
	// every call; compression aborts as soon as the run count proves
	// the data too unique.
	if s.cfg.RLEDuplicationRatio > 0 {
		limit := int(s.cfg.RLEDuplicationRatio * float64(n))
		if runs, ok := compressRuns(data, limit); ok {
			sortBuffers(&s.cfg, runs, make([]int64, len(runs)))
			expandRuns(runs, data)
			return
		}
	}

	sortBuffers(&s.cfg, data, make([]int32, n))
}

// sortBuffers runs the decomposer over the full range and settles the
// result back into data if the ping-pong left it in scratch.
func sortBuffers[E element](cfg *Config, data, scratch []E) {
	n := len(data)
	if n <= 1 {
		return
	}

	var res residence
	if n >= cfg.ParallelThreshold && cfg.MaxParallelDepth > 0 {
		res = sortRangeParallel(cfg, data, scratch, 0, n-1, 0)
	} else {
		res = sortRange(cfg, data, scratch, 0, n-1)
	}
	if res == inScratch {
		vec.Move(data, scratch)
	}
}
