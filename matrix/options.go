// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the fill and print utilities.
// This file defines:
//   - Option / Options (functional options for FillRandom),
//   - PrintOption (functional options for Print/Fprint/Render),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions / gatherPrintOptions helpers (internal).
//
// Design goals:
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - Without either, one process-wide generator seeded from the clock on
//     first use is shared by all FillRandom calls (never reseeded per call).
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The shared generator is not synchronized; the package targets
//     single-goroutine use. Pass WithRand per goroutine otherwise.
package matrix

import (
	"math/rand"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRandNil = "matrix: WithRand(nil)"
)

// ---------- Fill options ----------

// Option mutates internal fill options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective FillRandom configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	rng *rand.Rand // nil ⇒ shared process-wide generator
}

// WithRand provides an explicit RNG owned by the caller.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		// Seeded source → reproducible draws.
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// gatherOptions resolves opts into Options, falling back to the shared generator.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.rng == nil {
		o.rng = sharedRand()
	}

	return o
}

var (
	sharedOnce sync.Once
	shared     *rand.Rand
)

// sharedRand returns the process-lifetime generator, seeding it from a
// high-resolution clock reading on first use.
func sharedRand() *rand.Rand {
	sharedOnce.Do(func() {
		seed := time.Now().UnixNano()
		shared = rand.New(rand.NewSource(seed))
		tracer().Debugf("matrix: shared generator seeded with %d", seed)
	})

	return shared
}

// ---------- Print options ----------

// PrintOption customizes Print/Fprint/Render.
type PrintOption func(*printOptions)

// printOptions is the resolved rendering configuration.
type printOptions struct {
	color    bool // colour negative values
	colorSet bool // color was chosen explicitly via WithColor
}

// WithColor forces (true) or disables (false) colouring of negative values.
// Without it, Print colours only when stdout is a terminal; Fprint and
// Render never colour.
func WithColor(enabled bool) PrintOption {
	return func(o *printOptions) {
		o.color = enabled
		o.colorSet = true
	}
}

// gatherPrintOptions resolves opts; colorDefault applies when WithColor is absent.
func gatherPrintOptions(colorDefault bool, opts ...PrintOption) printOptions {
	var o printOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !o.colorSet {
		o.color = colorDefault
	}

	return o
}

// stdoutIsTerminal reports whether standard output is an interactive terminal.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
