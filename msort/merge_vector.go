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

// mergeVectorized merges with the plain comparison loop, then moves the
// exhausted side's leftover run with vec.Move: full 8-element chunks in
// bulk, single elements for the remainder. The comparison phase is
// inherently serial; the leftover runs are where bulk width pays off,
// and on partially ordered inputs they dominate the merge.
// Output is identical to mergePlain.
func mergeVectorized[E element](src, dst []E, left, mid, right int) {
	i, j, k := left, mid+1, left

	for i <= mid && j <= right {
		if src[i] <= src[j] {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}

	// At most one of these runs is non-empty.
	if i <= mid {
		k += vec.Move(dst[k:right+1], src[i:mid+1])
	}
	if j <= right {
		vec.Move(dst[k:right+1], src[j:right+1])
	}
}
