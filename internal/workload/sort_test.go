// SPDX-License-Identifier: MPL-2.0

package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countValues(data []int) map[int]int {
	counts := make(map[int]int, len(data))
	for _, v := range data {
		counts[v]++
	}
	return counts
}

func TestRandomInts_Range(t *testing.T) {
	t.Parallel()

	data := RandomInts(newTestRand(), 10_000)
	require.Len(t, data, 10_000)
	for i, v := range data {
		assert.GreaterOrEqual(t, v, 0, "index %d", i)
		assert.Less(t, v, SortValueLimit, "index %d", i)
	}
}

func TestSortInts_OrderedPermutation(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, 1, 2, 17, 1000, 100_000} {
		data := RandomInts(newTestRand(), size)
		before := countValues(data)

		SortInts(data)

		require.Len(t, data, size)
		for i := 1; i < len(data); i++ {
			if data[i-1] > data[i] {
				t.Fatalf("size %d: data[%d]=%d > data[%d]=%d", size, i-1, data[i-1], i, data[i])
			}
		}
		assert.Equal(t, before, countValues(data), "size %d: sorting must be a permutation", size)
	}
}

func TestSortInts_Duplicates(t *testing.T) {
	t.Parallel()

	data := []int{5, 3, 5, 1, 3, 5, 0}
	SortInts(data)
	assert.Equal(t, []int{0, 1, 3, 3, 5, 5, 5}, data)
}

func TestSortBenchmark_Completes(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { SortBenchmark(newTestRand(), 50_000) })
	assert.NotPanics(t, func() { SortBenchmark(newTestRand(), 0) })
}

func TestSortBenchmark_NegativeSizePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { SortBenchmark(newTestRand(), -1) })
}
