// SPDX-License-Identifier: MPL-2.0

// Package workload implements the four computational workloads measured by langbench:
//   - FindPrimes: sieve of Eratosthenes up to a bound
//   - Fibonacci: naive double recursion
//   - Multiply: dense square matrix product by triple-nested accumulation
//   - SortBenchmark: fill a buffer with pseudo-random integers and sort it
//
// The workloads are textbook algorithms on purpose. Fibonacci in particular must stay
// exponential and non-memoized, since function-call overhead is what it measures.
package workload
