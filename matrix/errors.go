// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Public functions return these sentinels (optionally wrapped with
// call-site context) and tests check them via errors.Is. No public function
// panics on user-triggered error conditions; option constructors panic on
// programmer errors only.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with fmt.Errorf("Op(...): %w", ErrX)
// so callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil matrix -> argument validation -> index bounds.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside [0, Size()).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidArgument signals malformed call arguments, e.g. a random range
	// with min > max or a span that does not fit into int64.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates that Data() returned a grid whose shape
	// disagrees with Size() (custom Matrix implementations only).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange
