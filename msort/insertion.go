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

// insertionSort sorts data[left:right+1] in place by adjacent comparison
// and shifting. Stable: equal elements keep their relative order. A range
// with left >= right is a no-op.
//
// This is the base case below Config.SmallRangeThreshold; the sequential
// access pattern keeps the whole range in cache.
func insertionSort[E element](data []E, left, right int) {
	for i := left + 1; i <= right; i++ {
		key := data[i]
		j := i - 1
		for j >= left && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
