// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the element constraint and the public Matrix
// interface. Errors and options live in dedicated files (errors.go,
// options.go) per the package conventions.
package matrix

// Scalar is the set of element types a Matrix may hold.
// Utilities only read and write scalars; no arithmetic beyond the random
// fill is performed on them.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Matrix is a square, fixed-dimension grid of scalar elements indexed by
// (row, col) in [0, Size()). Utilities treat it as mutable-by-reference
// storage and never resize it.
//
// Complexity notes: Size/At/Set are expected O(1); Data is O(n²).
type Matrix[T Scalar] interface {
	// Size returns the dimension n of the n×n grid.
	// Complexity: O(1).
	Size() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i or j is outside [0, Size()).
	// Complexity: O(1).
	At(i, j int) (T, error)

	// Set assigns v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v T) error

	// Data returns a row-wise snapshot of all elements for bulk reads
	// (printing). Mutating the snapshot does not affect the matrix.
	// Complexity: O(n²).
	Data() [][]T
}
