// SPDX-License-Identifier: MIT

// Package list: positional insertion, access and removal.
//
// Every operation validates its index before touching the chain, so an
// error leaves the list exactly as it was.
package list

import (
	"fmt"
	"strings"
)

// Operation tags used in error wrappers.
const (
	opAt       = "At"
	opGet      = "Get"
	opPushAt   = "PushAt"
	opRemoveAt = "RemoveAt"
	opLast     = "Last"
)

// listErrorf wraps a sentinel with the operation and index.
func listErrorf(op string, index, size int, err error) error {
	return fmt.Errorf("LinkedList.%s(%d) with size %d: %w", op, index, size, err)
}

// checkIndex accepts 0 ≤ index < size.
func (l *LinkedList[T]) checkIndex(op string, index int) error {
	if index < 0 || index >= l.size {
		tracer().Debugf("list: %s(%d) rejected, size %d", op, index, l.size)

		return listErrorf(op, index, l.size, ErrIndexOutOfBounds)
	}

	return nil
}

// nodeAt walks to position index. Caller guarantees 0 ≤ index < size.
func (l *LinkedList[T]) nodeAt(index int) *Node[T] {
	n := l.head
	for ; index > 0; index-- {
		n = n.next
	}

	return n
}

// tail returns the last node, or nil when empty.
func (l *LinkedList[T]) tail() *Node[T] {
	if l.head == nil {
		return nil
	}
	n := l.head
	for n.next != nil {
		n = n.next
	}

	return n
}

// Size returns the cached node count.
// Complexity: O(1).
func (l *LinkedList[T]) Size() int { return l.size }

// Empty reports whether the list has no nodes.
func (l *LinkedList[T]) Empty() bool { return l.size == 0 }

// Front returns the head node, or nil when empty.
// Complexity: O(1).
func (l *LinkedList[T]) Front() *Node[T] { return l.head }

// PushBack appends v after the current last node (or as head when empty).
// Complexity: O(n), the chain is walked to its end.
func (l *LinkedList[T]) PushBack(v T) {
	n := &Node[T]{value: v, list: l}
	if last := l.tail(); last != nil {
		last.next = n
	} else {
		l.head = n
	}
	l.size++
}

// PushFront inserts v as the new head.
// Complexity: O(1).
func (l *LinkedList[T]) PushFront(v T) {
	l.head = &Node[T]{value: v, next: l.head, list: l}
	l.size++
}

// PushAt inserts v so that it becomes the element at index; the previous
// occupant and everything after it shift by one.
//
// Index must satisfy 0 ≤ index < Size(). Appending through PushAt is not
// allowed: index == Size() fails, use PushBack. Index 0 delegates to PushFront.
//
// Errors: ErrIndexOutOfBounds.
// Complexity: O(index).
func (l *LinkedList[T]) PushAt(v T, index int) error {
	if err := l.checkIndex(opPushAt, index); err != nil {
		return err
	}
	if index == 0 {
		l.PushFront(v)

		return nil
	}

	prev := l.nodeAt(index - 1)
	prev.next = &Node[T]{value: v, next: prev.next, list: l}
	l.size++
	tracer().Debugf("list: inserted at %d, size now %d", index, l.size)

	return nil
}

// At returns the node at index.
//
// Errors: ErrIndexOutOfBounds when index < 0 or index ≥ Size().
// Complexity: O(index).
func (l *LinkedList[T]) At(index int) (*Node[T], error) {
	if err := l.checkIndex(opAt, index); err != nil {
		return nil, err
	}

	return l.nodeAt(index), nil
}

// Get returns the payload at index; see At.
func (l *LinkedList[T]) Get(index int) (T, error) {
	if err := l.checkIndex(opGet, index); err != nil {
		var zero T

		return zero, err
	}

	return l.nodeAt(index).value, nil
}

// RemoveAt detaches the node at index, relinks its neighbours and returns
// the removed payload. The detached node is cleared on the spot: it keeps
// no successor, no owner and no payload.
//
// Errors: ErrIndexOutOfBounds under the same condition as At.
// Complexity: O(index).
func (l *LinkedList[T]) RemoveAt(index int) (T, error) {
	var zero T
	if err := l.checkIndex(opRemoveAt, index); err != nil {
		return zero, err
	}

	var n *Node[T]
	if index == 0 {
		n = l.head
		l.head = n.next
	} else {
		prev := l.nodeAt(index - 1)
		n = prev.next
		prev.next = n.next
	}
	l.size--

	v := n.value
	n.next, n.list, n.value = nil, nil, zero
	tracer().Debugf("list: removed index %d, size now %d", index, l.size)

	return v, nil
}

// Last returns the final node.
//
// Errors: ErrEmptyCollection on an empty list.
// Complexity: O(n).
func (l *LinkedList[T]) Last() (*Node[T], error) {
	if l.head == nil {
		return nil, fmt.Errorf("LinkedList.%s: %w", opLast, ErrEmptyCollection)
	}

	return l.tail(), nil
}

// Clear detaches every node and empties the list.
// Complexity: O(n).
func (l *LinkedList[T]) Clear() {
	var zero T
	for n := l.head; n != nil; {
		next := n.next
		n.next, n.list, n.value = nil, nil, zero
		n = next
	}
	l.head, l.size = nil, 0
}

// Slice copies the payloads in order.
// Complexity: O(n).
func (l *LinkedList[T]) Slice() []T {
	out := make([]T, 0, l.size)
	l.ForEach(func(v T) { out = append(out, v) })

	return out
}

// String renders the payloads as "[a b c]", like a slice.
func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	l.ForEach(func(v T) {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, v)
	})
	sb.WriteByte(']')

	return sb.String()
}
