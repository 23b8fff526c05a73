// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error reporting for langbench.
//
// ActionableError carries the failed operation, the resource involved, and hints
// for fixing it; ErrorContext builds one fluently. Issue is a markdown help page
// rendered with glamour for failures that deserve more than one line.
package issue
