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

// Package vec provides the engine's bulk element move: fixed-width
// chunked copies of sorted runs between buffers, plus a report of the
// CPU's vector capability.
//
// The accelerated path routes through the runtime's memmove, which uses
// the widest vector registers the CPU offers; the fallback is an
// unrolled 8-element scalar loop. The two paths are interchangeable:
// output is byte-for-byte identical, only throughput differs. Setting
// the MSORT_NO_VEC environment variable forces the fallback, which is
// useful for A/B measurement and debugging.
package vec

import (
	"os"
	"strconv"
)

// Width is the preferred bulk-move width in elements. Eight 32-bit
// elements fill one 256-bit register.
const Width = 8

// Element restricts moves to the engine's element representations.
type Element interface {
	~int32 | ~int64
}

// accelerated and levelName are set once at init by the dispatch_*.go
// file for the build platform.
var (
	accelerated bool
	levelName   string
)

// Accelerated reports whether bulk moves take the vectorized path.
func Accelerated() bool {
	return accelerated
}

// Level returns a human-readable name for the detected vector level,
// for example "avx2", "neon", or "scalar".
func Level() string {
	return levelName
}

// noVecEnv checks the MSORT_NO_VEC environment variable. Any value that
// does not parse as false disables the accelerated path.
func noVecEnv() bool {
	val := os.Getenv("MSORT_NO_VEC")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Move copies min(len(dst), len(src)) elements from src to dst and
// returns the count moved. The buffers must not overlap; the engine only
// ever moves between its two ping-pong buffers.
func Move[E Element](dst, src []E) int {
	if accelerated {
		return copy(dst, src)
	}
	return moveScalar(dst, src)
}

// moveScalar is the fallback: full Width-element chunks via unrolled
// assignment, single elements for the remainder.
func moveScalar[E Element](dst, src []E) int {
	n := min(len(dst), len(src))
	i := 0
	for ; i+Width <= n; i += Width {
		d := dst[i : i+Width]
		s := src[i : i+Width]
		d[0], d[1], d[2], d[3] = s[0], s[1], s[2], s[3]
		d[4], d[5], d[6], d[7] = s[4], s[5], s[6], s[7]
	}
	for ; i < n; i++ {
		dst[i] = src[i]
	}
	return n
}
