// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/workshop/matrix"
)

func matrixSubcommand(args []string, w io.Writer) error {
	m, err := matrix.NewDense[int](*size)
	if err != nil {
		return err
	}
	if *random {
		var opts []matrix.Option
		if *seed != 0 {
			opts = append(opts, matrix.WithSeed(*seed))
		}
		if err := matrix.FillRandom[int](m, *minValue, *maxValue, opts...); err != nil {
			return err
		}
	} else if err := matrix.Fill[int](m, *fill); err != nil {
		return err
	}
	switch *colorMode {
	case "auto":
		// Print colours when stdout is a terminal.
		return matrix.Print[int](m)
	case "always":
		return matrix.Fprint[int](w, m, matrix.WithColor(true))
	case "never":
		return matrix.Fprint[int](w, m, matrix.WithColor(false))
	}
	return fmt.Errorf("unknown colour mode: %q", *colorMode)
}
