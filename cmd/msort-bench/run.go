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

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Grace-Davanzo/ComputerArchitectureHomework4/bench"
	"github.com/Grace-Davanzo/ComputerArchitectureHomework4/msort"
	"github.com/Grace-Davanzo/ComputerArchitectureHomework4/msort/vec"
)

type runOptions struct {
	pattern    string
	count      int
	gigabytes  int
	seed       int64
	dupLimit   int32
	hourlyRate float64

	smallRange   int
	blockSize    int
	parThreshold int
	parDepth     int
	rleRatio     float64
	vectorized   bool
	branchFree   bool
	noEarlyTerm  bool
}

func newRunCmd() *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a dataset, sort it, verify, and report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(&opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.pattern, "pattern", "random",
		"dataset pattern: random, dup, sorted, reverse, constant")
	f.IntVar(&opts.count, "count", 100_000, "element count (ignored if --gigabytes is set)")
	f.IntVar(&opts.gigabytes, "gigabytes", 0, "dataset size in GiB of int32s")
	f.Int64Var(&opts.seed, "seed", 42, "generation seed")
	f.Int32Var(&opts.dupLimit, "dup-limit", 1000, "value range for the dup pattern")
	f.Float64Var(&opts.hourlyRate, "hourly-rate", bench.DefaultHourlyRate,
		"hardware cost in $/hr for the cost-per-GB estimate")

	f.IntVar(&opts.smallRange, "small-range", 0, "insertion-sort threshold (0 = default)")
	f.IntVar(&opts.blockSize, "block-size", 0, "cache block size in elements (0 = default)")
	f.IntVar(&opts.parThreshold, "parallel-threshold", 0, "parallel task threshold (0 = default)")
	f.IntVar(&opts.parDepth, "parallel-depth", -1, "max parallel recursion depth (-1 = default)")
	f.Float64Var(&opts.rleRatio, "rle-ratio", -1, "RLE duplication ratio, 0 disables (-1 = default)")
	f.BoolVar(&opts.vectorized, "vectorized", false, "use the vectorized-leftover merge")
	f.BoolVar(&opts.branchFree, "branch-free", false, "use the branch-free merge")
	f.BoolVar(&opts.noEarlyTerm, "no-early-term", false, "disable early merge termination")

	return cmd
}

func (o *runOptions) config() msort.Config {
	cfg := msort.DefaultConfig()
	if o.smallRange > 0 {
		cfg.SmallRangeThreshold = o.smallRange
	}
	if o.blockSize > 0 {
		cfg.CacheBlockSize = o.blockSize
	}
	if o.parThreshold > 0 {
		cfg.ParallelThreshold = o.parThreshold
	}
	if o.parDepth >= 0 {
		cfg.MaxParallelDepth = o.parDepth
	}
	if o.rleRatio >= 0 {
		cfg.RLEDuplicationRatio = o.rleRatio
	}
	cfg.EnableVectorizedCopy = o.vectorized
	cfg.EnableBranchFreeMerge = o.branchFree
	cfg.EnableEarlyTermination = !o.noEarlyTerm
	return cfg
}

func generate(o *runOptions, n int) ([]int32, error) {
	switch o.pattern {
	case "random":
		return bench.Random(n, o.seed), nil
	case "dup":
		return bench.RandomBounded(n, o.seed, o.dupLimit), nil
	case "sorted":
		return bench.Sorted(n), nil
	case "reverse":
		return bench.Reversed(n), nil
	case "constant":
		return bench.Constant(n, 7), nil
	default:
		return nil, fmt.Errorf("unknown pattern %q", o.pattern)
	}
}

func runBench(o *runOptions) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.Sugar()

	sorter, err := msort.New(o.config())
	if err != nil {
		return err
	}

	n := o.count
	if o.gigabytes > 0 {
		n = o.gigabytes << 30 / 4
	}

	log.Infow("dataset",
		"pattern", o.pattern,
		"elements", n,
		"gigabytes", float64(n)*4/1e9,
		"seed", o.seed,
		"vector", vec.Level(),
	)

	log.Info("generating")
	data, err := generate(o, n)
	if err != nil {
		return err
	}

	log.Info("sorting")
	res := bench.Measure(sorter, data)
	if !res.Sorted {
		return fmt.Errorf("verification failed: output is not sorted")
	}

	log.Infow("sorted",
		"elapsed", res.Elapsed,
		"throughput_gb_s", res.Throughput(),
	)
	fmt.Printf("elements:      %d\n", res.Elements)
	fmt.Printf("size:          %.4f GB\n", res.Gigabytes())
	fmt.Printf("elapsed:       %.4fs\n", res.Elapsed.Seconds())
	fmt.Printf("throughput:    %.4f GB/s\n", res.Throughput())
	fmt.Printf("run cost:      $%.8f\n", res.Cost(o.hourlyRate))
	fmt.Printf("cost per GB:   $%.8f (at $%.2f/hr)\n", res.CostPerGB(o.hourlyRate), o.hourlyRate)
	return nil
}
