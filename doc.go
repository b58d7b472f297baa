// Package workshop collects two small generic utilities.
//
//	matrix/: square Dense[T] storage plus FillRandom, Fill and an aligned,
//	          ASCII-bordered Print/Fprint/Render
//	list/  : LinkedList[T], a singly linked list with positional access and
//	          ForEach/Until/Find traversals in node and payload variants
//	cmd/workshop: a demo CLI driving both
//
// Quick ASCII example:
//
//	+----+---+        head → [0] → [2] → nil
//	| -7 | 3 |
//	+----+---+
//	| 12 | 0 |
//	+----+---+
//
//	go get github.com/katalvlaran/workshop
package workshop
