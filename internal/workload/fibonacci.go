// SPDX-License-Identifier: MPL-2.0

package workload

// Fibonacci returns the n-th Fibonacci number with F(0)=0 and F(1)=1.
//
// The recursion is deliberately naive: no memoization, O(phi^n) calls.
// Negative n is out of contract and is returned unchanged.
func Fibonacci(n int) int64 {
	if n <= 1 {
		return int64(n)
	}
	return Fibonacci(n-1) + Fibonacci(n-2)
}
