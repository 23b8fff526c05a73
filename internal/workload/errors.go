// SPDX-License-Identifier: MPL-2.0

package workload

import "errors"

var (
	// ErrNonSquare is returned when a square matrix was required but a row length
	// differs from the row count.
	ErrNonSquare = errors.New("workload: matrix is not square")

	// ErrDimensionMismatch is returned when two square operands differ in size.
	ErrDimensionMismatch = errors.New("workload: matrix dimension mismatch")
)
