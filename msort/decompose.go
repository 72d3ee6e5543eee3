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

// residence tags which physical buffer holds the sorted data for a
// subrange when a recursive call returns.
type residence uint8

const (
	inData residence = iota
	inScratch
)

// sortRange sorts data[left:right+1] sequentially, using scratch as the
// ping-pong partner buffer. The return value says where the sorted range
// ended up.
//
// Residence is decided lazily: a leaf sorts in place and stays in data,
// an early-terminated split stays wherever its children ended, and a real
// merge flips to the opposite buffer. The parent reconciles children that
// came to rest in different buffers with one bulk copy. Pre-sorted input
// therefore flows through the whole tree without a single copy.
func sortRange[E element](cfg *Config, data, scratch []E, left, right int) residence {
	if right-left+1 <= cfg.SmallRangeThreshold {
		insertionSort(data, left, right)
		return inData
	}

	mid := left + (right-left)/2
	resL := sortRange(cfg, data, scratch, left, mid)
	resR := sortRange(cfg, data, scratch, mid+1, right)

	return mergeChildren(cfg, data, scratch, left, mid, right, resL, resR)
}

// mergeChildren resolves buffer roles, applies the early-termination
// check, and runs the configured merge kernel. Shared by the sequential
// and parallel decomposers; by the time it runs, both children's subtrees
// have fully resolved.
func mergeChildren[E element](cfg *Config, data, scratch []E, left, mid, right int, resL, resR residence) residence {
	// Bring both halves into the same source buffer. The right half
	// moves to the left child's buffer; either way it is one bulk copy
	// of the smaller reconciliation candidate's range.
	if resL != resR {
		if resL == inData {
			vec.Move(data[mid+1:right+1], scratch[mid+1:right+1])
		} else {
			vec.Move(scratch[mid+1:right+1], data[mid+1:right+1])
		}
		resR = resL
	}

	src, dst := data, scratch
	out := inScratch
	if resL == inScratch {
		src, dst = scratch, data
		out = inData
	}

	// A merge of two sorted ranges with max(left) <= min(right) is a
	// concatenation that already exists in src. Checked after every
	// recursion, never assumed.
	if cfg.EnableEarlyTermination && src[mid] <= src[mid+1] {
		return resL
	}

	mergeInto(cfg, src, dst, left, mid, right)
	return out
}
