// SPDX-License-Identifier: MIT

// Package list: Node and LinkedList declarations.
package list

// Node is a single link: one payload and the successor it owns.
// Nodes are created by the list on insertion and detached on removal;
// a detached node has no successor and no owning list.
type Node[T any] struct {
	value T
	next  *Node[T]       // nil at the end of the chain
	list  *LinkedList[T] // owning list; nil once detached
}

// Value returns the payload.
func (n *Node[T]) Value() T { return n.value }

// SetValue replaces the payload in place.
func (n *Node[T]) SetValue(v T) { n.value = v }

// Next returns the successor, or nil at the end of the chain or when n was removed.
func (n *Node[T]) Next() *Node[T] {
	if n.list == nil {
		return nil
	}

	return n.next
}

// Detached reports whether n has been removed from its list.
func (n *Node[T]) Detached() bool { return n.list == nil }

// LinkedList is an ordered sequence of nodes reachable from head.
//
// Invariants:
//   - size equals the number of nodes reachable from head;
//   - every node but the last has a successor, the last has none;
//   - every reachable node's owner is this list.
//
// The zero value is an empty list ready to use.
type LinkedList[T any] struct {
	head *Node[T] // nil ⇔ empty
	size int      // cached node count
}

// New returns a list holding values in order.
// Complexity: O(len(values)).
func New[T any](values ...T) *LinkedList[T] {
	l := &LinkedList[T]{}
	var tail *Node[T]
	for _, v := range values {
		n := &Node[T]{value: v, list: l}
		if tail == nil {
			l.head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	l.size = len(values)

	return l
}
