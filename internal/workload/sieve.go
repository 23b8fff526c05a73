// SPDX-License-Identifier: MPL-2.0

package workload

// FindPrimes returns every prime p with 2 <= p <= n in increasing order.
// A bound below 2 yields an empty slice.
func FindPrimes(n int) []int {
	if n < 2 {
		return []int{}
	}

	composite := make([]bool, n+1)
	var primes []int

	for i := 2; i <= n; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)

		// i*i would overflow for i > n/i; no multiple left to mark anyway.
		if i > n/i {
			continue
		}
		for j := i * i; j <= n; j += i {
			composite[j] = true
		}
	}

	return primes
}

