// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/workshop/list"
)

func listSubcommand(args []string, w io.Writer) error {
	var l list.LinkedList[int]
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("bad list value: %q: %w", arg, err)
		}
		l.PushBack(v)
	}
	fmt.Fprintf(w, "list: %s (size %d)\n", l.String(), l.Size())
	if *insertAt >= 0 {
		if err := l.PushAt(*insertValue, *insertAt); err != nil {
			return err
		}
		fmt.Fprintf(w, "insert %d at %d: %s\n", *insertValue, *insertAt, l.String())
	}
	if *removeAt >= 0 {
		v, err := l.RemoveAt(*removeAt)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "remove at %d (%d): %s\n", *removeAt, v, l.String())
	}
	if last, err := l.Last(); err == nil {
		fmt.Fprintf(w, "last: %d\n", last.Value())
	}
	return nil
}
