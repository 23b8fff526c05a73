// SPDX-License-Identifier: MPL-2.0

package bench

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/langbench/langbench/internal/workload"
)

const (
	// BannerTitle is the first line printed before any measurement.
	BannerTitle = "Go Benchmark"

	// PrimeBound is the sieve upper bound of the default suite.
	PrimeBound = 100_000
	// FibonacciN is the Fibonacci index of the default suite.
	FibonacciN = 35
	// MatrixSize is the matrix dimension of the default suite.
	MatrixSize = 200
	// SortSize is the element count of the default suite's sort.
	SortSize = 1_000_000
)

type (
	// Case is one labelled workload invocation with fixed inputs.
	Case struct {
		// Label is printed in front of the measurement.
		Label string
		// Input describes the fixed input for listings.
		Input string
		// Complexity is the asymptotic cost, for listings.
		Complexity string
		// Run performs the workload once.
		Run func() error
	}

	// Suite prints the banner and measures its cases in order.
	Suite struct {
		harness *Harness
		cases   []Case
	}
)

// DefaultCases returns the four workloads with their fixed inputs, in execution
// order: primes, Fibonacci, matrix multiplication, sort. The matrix case fills its
// operands inside Run, so filling is part of its measurement.
func DefaultCases(rng *rand.Rand) []Case {
	return []Case{
		{
			Label:      "Prime numbers (up to 100,000)",
			Input:      fmt.Sprintf("n = %d", PrimeBound),
			Complexity: "O(n log log n)",
			Run: func() error {
				workload.FindPrimes(PrimeBound)
				return nil
			},
		},
		{
			Label:      "Fibonacci (n=35)",
			Input:      fmt.Sprintf("n = %d", FibonacciN),
			Complexity: "O(φⁿ)",
			Run: func() error {
				workload.Fibonacci(FibonacciN)
				return nil
			},
		},
		{
			Label:      "Matrix multiplication (200x200)",
			Input:      fmt.Sprintf("two random %dx%d matrices", MatrixSize, MatrixSize),
			Complexity: "O(n³)",
			Run: func() error {
				a := workload.RandomMatrix(rng, MatrixSize)
				b := workload.RandomMatrix(rng, MatrixSize)
				_, err := workload.Multiply(a, b)
				return err
			},
		},
		{
			Label:      "Array sort (1,000,000 elements)",
			Input:      fmt.Sprintf("%d random integers in [0, %d)", SortSize, workload.SortValueLimit),
			Complexity: "O(n log n)",
			Run: func() error {
				workload.SortBenchmark(rng, SortSize)
				return nil
			},
		},
	}
}

// NewSuite creates a Suite over cases, reporting through h.
func NewSuite(h *Harness, cases []Case) *Suite {
	return &Suite{harness: h, cases: cases}
}

// Banner returns the two banner lines: the title and a separator of equal width.
func Banner() string {
	return BannerTitle + "\n" + strings.Repeat("=", len(BannerTitle)) + "\n"
}

// Run prints the banner and measures every case in order. The context is checked
// between cases only; a running workload is never interrupted.
func (s *Suite) Run(ctx context.Context) ([]Sample, error) {
	if _, err := fmt.Fprint(s.harness.Writer(), Banner()); err != nil {
		return nil, fmt.Errorf("write banner: %w", err)
	}

	samples := make([]Sample, 0, len(s.cases))
	for _, c := range s.cases {
		select {
		case <-ctx.Done():
			return samples, fmt.Errorf("benchmark interrupted before %q: %w", c.Label, ctx.Err())
		default:
		}

		sample, err := s.harness.measure(c.Label, c.Run)
		if err != nil {
			return samples, err
		}
		samples = append(samples, sample)
	}

	return samples, nil
}
