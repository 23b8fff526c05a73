// SPDX-License-Identifier: MPL-2.0

package workload

import (
	"math/rand/v2"

	"golang.org/x/exp/slices"
)

// SortValueLimit is the exclusive upper bound of generated sort values.
const SortValueLimit = 1_000_000

// RandomInts returns size pseudo-random integers in [0, SortValueLimit).
// A negative size panics, as make does.
func RandomInts(rng *rand.Rand, size int) []int {
	data := make([]int, size)
	for i := range data {
		data[i] = rng.IntN(SortValueLimit)
	}
	return data
}

// SortInts sorts data ascending in place with a comparison sort (pdqsort).
func SortInts(data []int) {
	slices.Sort(data)
}

// SortBenchmark fills a buffer of size random integers and sorts it. The sorted
// buffer is discarded; performing the sort is the point.
func SortBenchmark(rng *rand.Rand, size int) {
	SortInts(RandomInts(rng, size))
}
