// SPDX-License-Identifier: MPL-2.0

// Package bench times workloads and sequences the default benchmark suite.
//
// A Harness measures one operation at a time against a Clock and prints a
// "<label>: <milliseconds> ms" line per measurement. A Suite prints the banner and
// runs its cases through the harness in order. Nothing runs concurrently: each
// case finishes before the next starts.
package bench
