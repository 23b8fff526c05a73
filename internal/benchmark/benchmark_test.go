// SPDX-License-Identifier: MPL-2.0

package benchmark

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/langbench/langbench/internal/bench"
	"github.com/langbench/langbench/internal/config"
	"github.com/langbench/langbench/internal/workload"

	"github.com/charmbracelet/log"
)

const sampleConfig = `
ui: {
	verbose: true
	color_scheme: "dark"
}
log: level: "debug"
`

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1024))
}

func BenchmarkFindPrimes(b *testing.B) {
	for _, n := range []int{1_000, 10_000, bench.PrimeBound} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for b.Loop() {
				workload.FindPrimes(n)
			}
		})
	}
}

func BenchmarkFibonacci(b *testing.B) {
	for _, n := range []int{20, 25, bench.FibonacciN} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			if n == bench.FibonacciN && testing.Short() {
				b.Skip("skipping full-size Fibonacci in short mode")
			}
			for b.Loop() {
				workload.Fibonacci(n)
			}
		})
	}
}

func BenchmarkMatrixMultiply(b *testing.B) {
	for _, n := range []int{50, 100, bench.MatrixSize} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := newRand()
			x := workload.RandomMatrix(rng, n)
			y := workload.RandomMatrix(rng, n)

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				if _, err := workload.Multiply(x, y); err != nil {
					b.Fatalf("Multiply failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkSortBenchmark(b *testing.B) {
	for _, size := range []int{10_000, 100_000, bench.SortSize} {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			rng := newRand()

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				workload.SortBenchmark(rng, size)
			}
		})
	}
}

// BenchmarkSortInts excludes the fill from the measurement.
func BenchmarkSortInts(b *testing.B) {
	src := workload.RandomInts(newRand(), 100_000)
	buf := make([]int, len(src))

	b.ResetTimer()
	for b.Loop() {
		b.StopTimer()
		copy(buf, src)
		b.StartTimer()
		workload.SortInts(buf)
	}
}

func BenchmarkHarnessMeasure(b *testing.B) {
	h := bench.NewHarness(io.Discard, bench.WithLogger(log.New(io.Discard)))
	op := func() error { return nil }

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if _, err := h.Measure("noop", op); err != nil {
			b.Fatalf("Measure failed: %v", err)
		}
	}
}

func BenchmarkDefaultSuite(b *testing.B) {
	if testing.Short() {
		b.Skip("skipping full suite in short mode")
	}

	h := bench.NewHarness(io.Discard, bench.WithLogger(log.New(io.Discard)))
	suite := bench.NewSuite(h, bench.DefaultCases(newRand()))
	ctx := context.Background()

	b.ResetTimer()
	for b.Loop() {
		if _, err := suite.Run(ctx); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

func BenchmarkConfigLoad(b *testing.B) {
	dir := b.TempDir()
	path := filepath.Join(dir, "config.cue")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		b.Fatalf("failed to write config: %v", err)
	}

	provider := config.NewProvider()
	opts := config.LoadOptions{ConfigFilePath: path}
	ctx := context.Background()

	b.ResetTimer()
	for b.Loop() {
		if _, _, err := provider.Load(ctx, opts); err != nil {
			b.Fatalf("Load failed: %v", err)
		}
	}
}
