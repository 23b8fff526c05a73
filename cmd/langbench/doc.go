// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the langbench CLI.
//
// Running langbench without a subcommand executes the benchmark suite and prints
// one timing line per workload on stdout. The list and config subcommands never run
// workloads. Logs, warnings and issue pages go to stderr so that stdout stays
// machine-parseable.
package cmd
