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

// The merge kernels. All four take two adjacent sorted ranges
// src[left:mid+1] and src[mid+1:right+1] and write the merged range to
// dst[left:right+1]. src and dst must be distinct buffers. Ties take the
// left range (<=), which is what makes the sort stable. The kernels are
// drop-in substitutes for each other: identical inputs give identical
// output, bit for bit.

// mergeInto dispatches to the configured merge strategy.
func mergeInto[E element](cfg *Config, src, dst []E, left, mid, right int) {
	switch {
	case cfg.EnableBranchFreeMerge:
		mergeBranchFree(src, dst, left, mid, right)
	case cfg.EnableVectorizedCopy:
		mergeVectorized(src, dst, left, mid, right)
	case right-left+1 >= cfg.CacheBlockSize:
		mergeBlocked(src, dst, left, mid, right, cfg.CacheBlockSize)
	default:
		mergePlain(src, dst, left, mid, right)
	}
}

// mergePlain is the reference kernel: element-by-element comparison,
// leftovers appended in order.
func mergePlain[E element](src, dst []E, left, mid, right int) {
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

// mergeBlocked performs the same merge in chunks of at most block
// elements from each side, bounding the working set touched between
// refills to roughly two cache-resident blocks plus the output cursor.
func mergeBlocked[E element](src, dst []E, left, mid, right, block int) {
	if right-left+1 < block {
		mergePlain(src, dst, left, mid, right)
		return
	}

	i, j, k := left, mid+1, left

	for i <= mid && j <= right {
		iEnd := min(i+block, mid+1)
		jEnd := min(j+block, right+1)

		for i < iEnd && j < jEnd {
			if src[i] <= src[j] {
				dst[k] = src[i]
				i++
			} else {
				dst[k] = src[j]
				j++
			}
			k++
		}
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
