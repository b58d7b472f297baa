// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the fill/print utilities.
//   • Route schuko tracing into *testing.T so traces show up with -v.

package matrix_test

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/katalvlaran/workshop/matrix"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Common seeds and sizes (avoid magic numbers in test bodies).
const (
	Seed1  = 1337
	Seed2  = 4242
	Size2  = 2
	Size3  = 3
	Size16 = 16
)

// redirectTracing sends the core tracer to t and returns the teardown,
// which also reinstalls the previous core tracer.
func redirectTracing(t *testing.T) func() {
	t.Helper()
	prev := gtrace.CoreTracer
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)

	return func() {
		teardown()
		gtrace.CoreTracer = prev
	}
}

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the generic (non-*Dense) paths of Fill/FillRandom.
type hide[T matrix.Scalar] struct{ matrix.Matrix[T] }

// MustDense ALLOCATES an n×n *Dense or fails the test.
func MustDense[T matrix.Scalar](t testing.TB, n int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](n)
	if err != nil {
		t.Fatalf("NewDense(%d): %v", n, err)
	}

	return m
}

// MustFrom BUILDS a *Dense from literal rows or fails the test.
func MustFrom[T matrix.Scalar](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// cells flattens m in row-major order via At.
func cells[T matrix.Scalar](t testing.TB, m matrix.Matrix[T]) []T {
	t.Helper()
	n := m.Size()
	out := make([]T, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			out = append(out, v)
		}
	}

	return out
}

// ragged is a broken Matrix whose Data() disagrees with Size().
type ragged struct{ *matrix.Dense[int] }

func (r ragged) Data() [][]int { return [][]int{{1}} }

// errSetRefused is returned by failOnce.
var errSetRefused = errors.New("set refused")

// failOnce is a custom Matrix whose Set fails exactly on call number failAt
// (1-based) and succeeds on every other call.
type failOnce struct {
	*matrix.Dense[int]
	calls  int
	failAt int
}

func (f *failOnce) Set(i, j int, v int) error {
	f.calls++
	if f.calls == f.failAt {
		return errSetRefused
	}

	return f.Dense.Set(i, j, v)
}

// captureStdout RUNS fn with os.Stdout swapped for a pipe and returns what fn wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	done := make(chan string)
	go func() {
		b, _ := io.ReadAll(r)
		done <- string(b)
	}()
	fn()
	_ = w.Close()

	return <-done
}
