// Package list provides LinkedList, a generic singly linked list.
//
// The list owns its chain of nodes exclusively: the head field owns the
// first node and every node owns its successor. Insertion and removal are
// positional (0-based); removal detaches the node in the same call, so a
// handle kept across RemoveAt no longer reaches the chain.
//
// Traversal comes in three modes, each with a node and a payload variant:
//
//	ForEach / ForEachNode  visit every element, no early exit
//	Until   / UntilNode    visit while the callback returns true
//	Find    / FindNode     first element the callback accepts
//
// All of them, and the range-over-func iterators (All, Values, Nodes), run
// on one traversal primitive that is parameterized by what it exposes to the
// callback: the node handle or its payload.
//
// Quick ASCII example:
//
//	head → [0] → [1] → [2] → nil      size = 3
//
// LinkedList is not safe for concurrent use; guard it externally if shared.
//
// Complexity:
//
//	PushFront, Size, Front: O(1)
//	PushBack, PushAt, At, Get, RemoveAt, Last: O(n)
package list

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer. It is a no-op until a client
// installs a backend.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
