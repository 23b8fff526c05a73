// SPDX-License-Identifier: MPL-2.0

// Package benchmark provides Go benchmarks for PGO profile generation.
// They cover the hot paths of langbench:
//   - the four workloads at the suite's fixed inputs and at smaller sizes
//   - the timing harness overhead
//   - CUE configuration loading
//
// To generate a PGO profile, run:
//
//	go test -run=^$ -bench=. -cpuprofile=default.pgo ./internal/benchmark
package benchmark
