// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set: O(1); Clone/Data: O(n²).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel survives for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major square matrix.
//   - n holds the dimension (n rows, n columns).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Dense[T Scalar] struct {
	n    int // dimension (>0 for public constructors)
	data []T // contiguous row-major storage (len == n*n)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[int]     = (*Dense[int])(nil)
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ fmt.Stringer    = (*Dense[int])(nil)
)

// NewDense creates an n×n zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate size>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewDense[T Scalar](size int) (*Dense[T], error) {
	// Validate shape.
	if size <= 0 {
		return nil, fmt.Errorf("NewDense(%d): %w", size, ErrInvalidDimensions)
	}

	// make() zero-fills the buffer deterministically.
	return &Dense[T]{n: size, data: make([]T, size*size)}, nil
}

// NewDenseFrom builds a Dense from a square row slice (copied).
// Rows of unequal length, or a row count different from the row length,
// yield ErrDimensionMismatch; an empty input yields ErrInvalidDimensions.
// Complexity: O(n²).
func NewDenseFrom[T Scalar](rows [][]T) (*Dense[T], error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("NewDenseFrom: %w", ErrInvalidDimensions)
	}
	m := &Dense[T]{n: n, data: make([]T, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d elements, want %d: %w",
				i, len(row), n, ErrDimensionMismatch)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// Size returns the dimension. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Size() int { return m.n }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods (At/Set) wrap it with coordinates.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*n + j.
	return row*m.n + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T

		return zero, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Data returns a row-wise copy of the buffer.
// Complexity: O(n²) time and memory.
func (m *Dense[T]) Data() [][]T {
	out := make([][]T, m.n)
	for i := 0; i < m.n; i++ {
		row := make([]T, m.n)
		copy(row, m.data[i*m.n:(i+1)*m.n])
		out[i] = row
	}

	return out
}

// Clone returns a deep copy (new buffer).
// Mutations on the clone do not affect the original.
// Complexity: O(n²).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{n: m.n, data: cp}
}

// String is a human-readable dump of rows for diagnostics, e.g. "[1, 2]\n[3, 4]\n".
// For the bordered grid use Render/Print.
// Complexity: O(n²).
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.n; j++ {
			fmt.Fprintf(&sb, "%v", m.data[i*m.n+j])
			if j < m.n-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
