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

package bench

import (
	"time"

	"github.com/Grace-Davanzo/ComputerArchitectureHomework4/msort"
)

// DefaultHourlyRate is the hardware cost assumption behind cost-per-GB
// figures, in dollars per hour.
const DefaultHourlyRate = 0.10

const bytesPerElement = 4

// Result is one measured sort run.
type Result struct {
	Elements int
	Bytes    int64
	Elapsed  time.Duration
	Sorted   bool
}

// Measure sorts data with s, timing only the sort itself, then verifies
// the output. Verification cost is excluded from Elapsed.
func Measure(s *msort.Sorter, data []int32) Result {
	start := time.Now()
	s.Sort(data)
	elapsed := time.Since(start)

	return Result{
		Elements: len(data),
		Bytes:    int64(len(data)) * bytesPerElement,
		Elapsed:  elapsed,
		Sorted:   msort.IsSorted(data),
	}
}

// Gigabytes returns the dataset size in decimal gigabytes.
func (r Result) Gigabytes() float64 {
	return float64(r.Bytes) / 1e9
}

// Throughput returns GB sorted per second.
func (r Result) Throughput() float64 {
	sec := r.Elapsed.Seconds()
	if sec <= 0 {
		return 0
	}
	return r.Gigabytes() / sec
}

// Cost returns the run's total hardware cost at hourlyRate dollars/hour.
func (r Result) Cost(hourlyRate float64) float64 {
	return r.Elapsed.Seconds() * hourlyRate / 3600
}

// CostPerGB returns the run's hardware cost per gigabyte sorted.
func (r Result) CostPerGB(hourlyRate float64) float64 {
	gb := r.Gigabytes()
	if gb <= 0 {
		return 0
	}
	return r.Cost(hourlyRate) / gb
}
