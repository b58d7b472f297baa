// SPDX-License-Identifier: MIT
// Package list_test contains test helpers for the list tests.

package list_test

import (
	"testing"

	"github.com/katalvlaran/workshop/list"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Common payloads used across list tests (avoid magic numbers in test bodies).
const (
	V0 = 0
	V1 = 1
	V2 = 2
	V3 = 3
	V9 = 9
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

// checkInvariants verifies the cached size against the reachable chain and
// that every Next() link leads to a node At() also reports.
func checkInvariants[T any](t *testing.T, l *list.LinkedList[T]) {
	t.Helper()
	count := 0
	for n := l.Front(); n != nil; n = n.Next() {
		if n.Detached() {
			t.Fatalf("reachable node at %d is detached", count)
		}
		at, err := l.At(count)
		if err != nil {
			t.Fatalf("At(%d): %v", count, err)
		}
		if at != n {
			t.Fatalf("At(%d) differs from the chain walk", count)
		}
		count++
	}
	if count != l.Size() {
		t.Fatalf("reachable nodes = %d, Size() = %d", count, l.Size())
	}
	if count > 0 {
		last, err := l.Last()
		if err != nil {
			t.Fatalf("Last: %v", err)
		}
		if last.Next() != nil {
			t.Fatalf("last node has a successor")
		}
	}
}
