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

// b2i converts a bool to 0 or 1. The compiler lowers this pattern to a
// flags materialization (SETcc on amd64, CSET on arm64), not a branch.
func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// mergeBranchFree merges with the take-left decision computed as an
// integer: the selected element comes from a two-entry array indexed by
// the decision, and both cursors advance unconditionally by amounts
// derived from it. On inputs where the winner alternates unpredictably
// this avoids the mispredicted branch per element that mergePlain pays.
// Output is identical to mergePlain, including the tie rule: equal
// elements take the left range.
func mergeBranchFree[E element](src, dst []E, left, mid, right int) {
	i, j, k := left, mid+1, left

	for i <= mid && j <= right {
		a, b := src[i], src[j]
		t := b2i(a <= b)
		pick := [2]E{b, a}
		dst[k] = pick[t]
		i += t
		j += 1 - t
		k++
	}

	for i <= mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j <= right {
		dst[k] = src[j]
		j++
		k++
	}
}
