// SPDX-License-Identifier: MPL-2.0

package workload

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isPrimeTrialDivision is the reference oracle for the sieve.
func isPrimeTrialDivision(v int) bool {
	if v < 2 {
		return false
	}
	for d := 2; d*d <= v; d++ {
		if v%d == 0 {
			return false
		}
	}
	return true
}

func TestFindPrimes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bound int
		want  []int
	}{
		{bound: -5, want: []int{}},
		{bound: 0, want: []int{}},
		{bound: 1, want: []int{}},
		{bound: 2, want: []int{2}},
		{bound: 3, want: []int{2, 3}},
		{bound: 10, want: []int{2, 3, 5, 7}},
		{bound: 30, want: []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("bound=%d", tt.bound), func(t *testing.T) {
			t.Parallel()

			got := FindPrimes(tt.bound)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindPrimes_MatchesTrialDivision(t *testing.T) {
	t.Parallel()

	const bound = 2000
	got := FindPrimes(bound)

	var want []int
	for v := 0; v <= bound; v++ {
		if isPrimeTrialDivision(v) {
			want = append(want, v)
		}
	}
	require.Equal(t, want, got)

	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i], "primes must be strictly increasing at index %d", i)
	}
}

func TestFindPrimes_BenchmarkBound(t *testing.T) {
	t.Parallel()

	// pi(100000) = 9592
	got := FindPrimes(100_000)
	require.Len(t, got, 9592)
	assert.Equal(t, 2, got[0])
	assert.Equal(t, 99991, got[len(got)-1])
}
