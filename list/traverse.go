// SPDX-License-Identifier: MIT

// Package list: traversal.
//
// One primitive, walk, drives every traversal. It is parameterized by a
// view, the capability that decides what the callback sees:
//
//	nodeView  → *Node[T]   (handle variants: ForEachNode, UntilNode, FindNode, Nodes)
//	valueView → T          (payload variants: ForEach, Until, Find, Values, All)
//
// The successor is read before the callback runs, so a callback may update
// the payload of the node it receives. Structural changes during a walk are
// not supported.
package list

import "iter"

// view projects a node into what a traversal callback receives.
type view[T, V any] interface {
	project(n *Node[T]) V
}

// nodeView exposes the node handle itself.
type nodeView[T any] struct{}

func (nodeView[T]) project(n *Node[T]) *Node[T] { return n }

// valueView exposes the payload.
type valueView[T any] struct{}

func (valueView[T]) project(n *Node[T]) T { return n.value }

// walk visits nodes from head in order, passing v.project(node) to fn, and
// stops at the first node for which fn returns false. It returns that node,
// or nil when fn accepted every node.
// Complexity: O(n) worst case.
func walk[T, V any](l *LinkedList[T], v view[T, V], fn func(V) bool) *Node[T] {
	for n := l.head; n != nil; {
		next := n.next
		if !fn(v.project(n)) {
			return n
		}
		n = next
	}

	return nil
}

// ForEach calls fn with every payload in order. A nil fn is a no-op.
func (l *LinkedList[T]) ForEach(fn func(T)) {
	if fn == nil {
		return
	}
	walk[T, T](l, valueView[T]{}, func(v T) bool { fn(v); return true })
}

// ForEachNode calls fn with every node in order. A nil fn is a no-op.
func (l *LinkedList[T]) ForEachNode(fn func(*Node[T])) {
	if fn == nil {
		return
	}
	walk[T, *Node[T]](l, nodeView[T]{}, func(n *Node[T]) bool { fn(n); return true })
}

// Until visits payloads in order while fn returns true. The first payload
// for which fn returns false is visited and ends the walk. A nil fn is a no-op.
func (l *LinkedList[T]) Until(fn func(T) bool) {
	if fn == nil {
		return
	}
	walk[T, T](l, valueView[T]{}, fn)
}

// UntilNode is the node variant of Until.
func (l *LinkedList[T]) UntilNode(fn func(*Node[T]) bool) {
	if fn == nil {
		return
	}
	walk[T, *Node[T]](l, nodeView[T]{}, fn)
}

// Find returns the first payload accepted by match, with ok=false when
// nothing matches (or match is nil).
func (l *LinkedList[T]) Find(match func(T) bool) (value T, ok bool) {
	if match == nil {
		return value, false
	}
	n := walk[T, T](l, valueView[T]{}, func(v T) bool { return !match(v) })
	if n == nil {
		return value, false
	}

	return n.value, true
}

// FindNode returns the first node accepted by match, or nil.
func (l *LinkedList[T]) FindNode(match func(*Node[T]) bool) *Node[T] {
	if match == nil {
		return nil
	}

	return walk[T, *Node[T]](l, nodeView[T]{}, func(n *Node[T]) bool { return !match(n) })
}

// Values returns an iterator over the payloads in order.
func (l *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		walk[T, T](l, valueView[T]{}, yield)
	}
}

// Nodes returns an iterator over the nodes in order.
func (l *LinkedList[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		walk[T, *Node[T]](l, nodeView[T]{}, yield)
	}
}

// All returns an iterator over (index, payload) pairs in order.
func (l *LinkedList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		walk[T, T](l, valueView[T]{}, func(v T) bool {
			ok := yield(i, v)
			i++

			return ok
		})
	}
}
