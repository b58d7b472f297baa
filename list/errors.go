// SPDX-License-Identifier: MIT

package list

import "errors"

// Sentinel errors for list operations. Match them with errors.Is; call
// sites wrap them with the operation and index.
var (
	// ErrIndexOutOfBounds is returned by At, Get, PushAt and RemoveAt when
	// the index is negative or not below Size().
	ErrIndexOutOfBounds = errors.New("list: index out of bounds")

	// ErrEmptyCollection is returned by Last on an empty list.
	ErrEmptyCollection = errors.New("list: empty collection")
)
