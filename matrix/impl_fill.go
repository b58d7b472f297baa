// SPDX-License-Identifier: MIT

// Package matrix - in-place population of square matrices.
//
// Purpose:
//   - FillRandom: discrete uniform draws over a closed integer range.
//   - Fill: constant assignment.
//
// Both validate fully before touching the matrix, so an error leaves it unchanged.
// Cells are visited in row-major order on every path, so a fixed seed yields
// the same matrix for *Dense and for any other Matrix implementation.

package matrix

import (
	"errors"
	"fmt"
)

const (
	opFillRandom = "FillRandom"
	opFill       = "Fill"
)

// fillErrorf wraps an error with the fill operation tag.
func fillErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// FillRandom assigns every cell a value drawn uniformly from [min, max] inclusive.
// MAIN DESCRIPTION:
//   - Full in-place mutation; no return value besides the error.
//
// Implementation:
//   - Stage 1: ValidateNotNil, then ValidateRange[T](min, max).
//   - Stage 2: resolve the generator (WithRand/WithSeed or the shared one).
//   - Stage 3: row-major draw of min + Int63n(max-min+1) per cell.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidArgument (min > max, span overflow, bound not representable by T).
//   - Custom Matrix implementations: ErrDimensionMismatch when Data disagrees
//     with Size, or the error of a failing Set (written cells are restored).
//
// Determinism:
//   - Same seed + same shape ⇒ same contents.
//
// Complexity:
//   - Time O(n²), Space O(1).
func FillRandom[T Scalar](m Matrix[T], min, max int, opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return fillErrorf(opFillRandom, err)
	}
	if err := ValidateRange[T](min, max); err != nil {
		tracer().Errorf("matrix: FillRandom rejected range [%d, %d]", min, max)

		return fillErrorf(opFillRandom, err)
	}
	o := gatherOptions(opts...)

	span := int64(max) - int64(min) + 1 // fits: checked by ValidateRange
	lo := int64(min)
	n := m.Size()

	// Fast-path: write the flat buffer directly.
	if d, ok := m.(*Dense[T]); ok {
		for idx := range d.data {
			d.data[idx] = T(lo + o.rng.Int63n(span))
		}
		tracer().Debugf("matrix: filled %d×%d with random values in [%d, %d]", n, n, min, max)

		return nil
	}

	if err := setAll(m, func() T { return T(lo + o.rng.Int63n(span)) }); err != nil {
		return fillErrorf(opFillRandom, err)
	}
	tracer().Debugf("matrix: filled %d×%d with random values in [%d, %d]", n, n, min, max)

	return nil
}

// Fill assigns value to every cell in place.
// Failure modes: a nil matrix, a custom Matrix whose Data disagrees with
// Size (ErrDimensionMismatch), or a failing custom Set; in the last case the
// cells already written are restored before returning.
// Complexity: O(n²).
func Fill[T Scalar](m Matrix[T], value T) error {
	if err := ValidateNotNil(m); err != nil {
		return fillErrorf(opFill, err)
	}

	if d, ok := m.(*Dense[T]); ok {
		for idx := range d.data {
			d.data[idx] = value
		}

		return nil
	}

	if err := setAll(m, func() T { return value }); err != nil {
		return fillErrorf(opFill, err)
	}

	return nil
}

// setAll is the generic write path: it assigns next() to every cell in
// row-major order through Set. The shape is checked against a snapshot
// first; if a Set fails midway, the cells already written are restored
// from the snapshot before the error is returned.
func setAll[T Scalar](m Matrix[T], next func() T) error {
	n := m.Size()
	snapshot := m.Data()
	if err := ValidateGrid(n, snapshot); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := m.Set(i, j, next()); err != nil {
				tracer().Errorf("matrix: Set(%d,%d) failed, restoring %d cells", i, j, i*n+j)

				return errors.Join(err, restore(m, snapshot, i*n+j))
			}
		}
	}

	return nil
}

// restore writes back the first count cells (row-major) of snapshot.
func restore[T Scalar](m Matrix[T], snapshot [][]T, count int) error {
	n := len(snapshot)
	for k := 0; k < count; k++ {
		i, j := k/n, k%n
		if err := m.Set(i, j, snapshot[i][j]); err != nil {
			return fmt.Errorf("restore(%d,%d): %w", i, j, err)
		}
	}

	return nil
}
