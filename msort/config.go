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
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("msort: invalid config")

// Config holds the tuning parameters of the engine. Every field changes
// performance characteristics only; the sorted output is identical for
// any valid configuration.
type Config struct {
	// SmallRangeThreshold is the range length at or below which the
	// engine switches to insertion sort. Must be >= 1.
	SmallRangeThreshold int

	// CacheBlockSize is the merge length, in elements, above which the
	// block-wise merge processes inputs in chunks of this size.
	// Must be >= 2.
	CacheBlockSize int

	// ParallelThreshold is the minimum range length for which the two
	// halves of a split are sorted as concurrent tasks. Must be >= 1.
	ParallelThreshold int

	// MaxParallelDepth bounds the recursion depth at which new tasks
	// may be spawned; at most 2^MaxParallelDepth tasks run at once.
	// 0 disables parallel decomposition. Must be >= 0.
	MaxParallelDepth int

	// RLEDuplicationRatio enables the run-length-compressed path when
	// the run count is below this fraction of the element count.
	// Must be in [0, 1]; 0 disables the RLE path entirely.
	RLEDuplicationRatio float64

	// EnableVectorizedCopy selects the merge strategy that moves
	// leftover runs with 8-wide bulk moves.
	EnableVectorizedCopy bool

	// EnableBranchFreeMerge selects the merge strategy whose take-left
	// decision is computed arithmetically instead of branching.
	// Takes precedence over EnableVectorizedCopy.
	EnableBranchFreeMerge bool

	// EnableEarlyTermination skips the merge step whenever two halves
	// are already ordered across their seam.
	EnableEarlyTermination bool
}

// DefaultConfig returns the tuning used by the package-level Sort:
// thresholds sized for L1-resident base cases and ~8KB merge blocks,
// parallelism from 100k elements down to depth 4, and the RLE path at
// the 0.8 duplication ratio.
func DefaultConfig() Config {
	return Config{
		SmallRangeThreshold:    64,
		CacheBlockSize:         8192,
		ParallelThreshold:      100000,
		MaxParallelDepth:       4,
		RLEDuplicationRatio:    0.8,
		EnableEarlyTermination: true,
	}
}

// Validate rejects out-of-range tuning values. It is called by New, so
// a Sorter never runs with an invalid configuration.
func (c *Config) Validate() error {
	if c.SmallRangeThreshold < 1 {
		return fmt.Errorf("%w: SmallRangeThreshold %d, need >= 1", ErrInvalidConfig, c.SmallRangeThreshold)
	}
	if c.CacheBlockSize < 2 {
		return fmt.Errorf("%w: CacheBlockSize %d, need >= 2", ErrInvalidConfig, c.CacheBlockSize)
	}
	if c.ParallelThreshold < 1 {
		return fmt.Errorf("%w: ParallelThreshold %d, need >= 1", ErrInvalidConfig, c.ParallelThreshold)
	}
	if c.MaxParallelDepth < 0 {
		return fmt.Errorf("%w: MaxParallelDepth %d, need >= 0", ErrInvalidConfig, c.MaxParallelDepth)
	}
	if c.RLEDuplicationRatio < 0 || c.RLEDuplicationRatio > 1 {
		return fmt.Errorf("%w: RLEDuplicationRatio %v, need [0, 1]", ErrInvalidConfig, c.RLEDuplicationRatio)
	}
	return nil
}
