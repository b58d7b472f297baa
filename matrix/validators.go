// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep fill/print facades minimal by delegating nil/range/shape checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only ValidateGrid touches data.
//
// Note:
//  - Composite validations follow a fixed sequence: NotNil -> Range -> Grid.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is treated as nil too.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Scalar](m Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense[T]); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateRange checks a closed random range [min, max] for element type T.
//
// Errors (all ErrInvalidArgument):
//   - min > max;
//   - max-min+1 does not fit into int64 (the draw span);
//   - min or max is not representable by T (e.g. -1 for unsigned T, 300 for int8).
//
// Complexity: O(1).
func ValidateRange[T Scalar](min, max int) error {
	if min > max {
		return validatorErrorf(
			fmt.Sprintf("ValidateRange(%d,%d): min > max", min, max), ErrInvalidArgument)
	}
	// Unsigned difference is exact for min <= max under two's complement.
	if uint64(int64(max))-uint64(int64(min)) >= math.MaxInt64 {
		return validatorErrorf(
			fmt.Sprintf("ValidateRange(%d,%d): span overflows int64", min, max), ErrInvalidArgument)
	}
	if !representable[T](int64(min)) || !representable[T](int64(max)) {
		return validatorErrorf(
			fmt.Sprintf("ValidateRange(%d,%d): bound not representable by %T", min, max, *new(T)),
			ErrInvalidArgument)
	}

	return nil
}

// ValidateGrid checks that a Data() snapshot is n×n for n == m.Size().
// Dense always satisfies this; custom Matrix implementations may not.
// Complexity: O(n).
func ValidateGrid[T Scalar](size int, grid [][]T) error {
	if len(grid) != size {
		return validatorErrorf(
			fmt.Sprintf("ValidateGrid: %d rows, want %d", len(grid), size), ErrDimensionMismatch)
	}
	for i, row := range grid {
		if len(row) != size {
			return validatorErrorf(
				fmt.Sprintf("ValidateGrid: row %d has %d columns, want %d", i, len(row), size),
				ErrDimensionMismatch)
		}
	}

	return nil
}

// representable reports whether v survives a round trip through T.
func representable[T Scalar](v int64) bool {
	t := T(v)
	if (t < 0) != (v < 0) {
		return false
	}

	return int64(t) == v
}
