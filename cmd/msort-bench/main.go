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

// msort-bench drives the sorting engine over synthetic datasets and
// reports timing, throughput, and estimated cost per gigabyte.
//
// Usage:
//
//	msort-bench run --pattern random --count 100000000
//	msort-bench run --pattern dup --gigabytes 4 --branch-free
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "msort-bench",
		Short:         "Benchmark harness for the msort engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "msort-bench:", err)
		os.Exit(1)
	}
}
