// SPDX-License-Identifier: MPL-2.0

package workload

import (
	"fmt"
	"math/rand/v2"
)

// Matrix is a dense square matrix stored as a sequence of rows.
type Matrix [][]float64

// NewMatrix allocates a zero-filled n×n matrix.
func NewMatrix(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}

// RandomMatrix allocates an n×n matrix filled with uniform values in [0, 1).
func RandomMatrix(rng *rand.Rand, n int) Matrix {
	m := NewMatrix(n)
	for i := range m {
		for j := range m[i] {
			m[i][j] = rng.Float64()
		}
	}
	return m
}

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	m := NewMatrix(n)
	for i := range m {
		m[i][i] = 1
	}
	return m
}

// Size returns the number of rows.
func (m Matrix) Size() int {
	return len(m)
}

// validateSquare reports ErrNonSquare if any row length differs from the row count.
func (m Matrix) validateSquare() error {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), n, ErrNonSquare)
		}
	}
	return nil
}

// Multiply returns the product a×b of two n×n matrices, where each entry is the
// dot product of the matching row of a and column of b.
//
// The accumulation is the plain i-j-k triple loop; no blocking, transposition or
// zero skipping, so the O(n³) cost is what gets measured.
func Multiply(a, b Matrix) (Matrix, error) {
	if err := a.validateSquare(); err != nil {
		return nil, fmt.Errorf("left operand: %w", err)
	}
	if err := b.validateSquare(); err != nil {
		return nil, fmt.Errorf("right operand: %w", err)
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("%dx%d times %dx%d: %w", len(a), len(a), len(b), len(b), ErrDimensionMismatch)
	}

	n := len(a)
	result := NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				sum += a[i][k] * b[k][j]
			}
			result[i][j] = sum
		}
	}

	return result, nil
}
