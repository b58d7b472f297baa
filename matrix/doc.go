// Package matrix offers a generic square matrix and the utilities the
// workshop builds on top of it.
//
// The matrix package provides:
//
//   - Dense[T], a row-major n×n container with bounds-checked At/Set that
//     return ErrOutOfRange instead of panicking.
//   - FillRandom and Fill for in-place population. FillRandom draws from a
//     discrete uniform distribution over [min, max]; the generator is owned
//     by the caller (WithRand, WithSeed) or shared for the process lifetime.
//   - Print, Fprint and Render, which draw an aligned, ASCII-bordered grid
//     whose column widths are computed from the exact rendered text.
//
// Example grid for a 2×2 matrix filled with 5:
//
//	+---+---+
//	| 5 | 5 |
//	+---+---+
//	| 5 | 5 |
//	+---+---+
//
// Tracing goes to the schuko core tracer (see gtrace.CoreTracer).
package matrix

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer. It is a no-op until a client
// installs a backend.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
