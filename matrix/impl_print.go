// SPDX-License-Identifier: MIT

// Package matrix - bordered text rendering.
//
// Layout (ASCII glyphs only, for font portability):
//
//	+----+---+
//	| -7 | 3 |
//	+----+---+
//	| 12 | 0 |
//	+----+---+
//
// Alignment contract: the width of column j is the maximum length of the
// rendered text of its cells (sign included), and every cell is padded from
// the same rendered text. Width and padding therefore can never disagree.

package matrix

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

// Border glyphs.
const (
	glyphCorner     = '+' // every corner and joint
	glyphHorizontal = '-'
	glyphVertical   = '|'
)

// cellPadding is the number of blanks around each value (one left, one right).
const cellPadding = 2

const (
	opPrint  = "Print"
	opFprint = "Fprint"
	opRender = "Render"
)

// negativeAttr highlights negative values when colouring is on.
const negativeAttr = color.FgRed

// Print renders m as a bordered grid on standard output.
// Negative values are coloured when stdout is a terminal unless WithColor says otherwise.
// os.Stdout is resolved on every call, so a redirected stdout is honoured.
// Complexity: O(n²).
func Print[T Scalar](m Matrix[T], opts ...PrintOption) error {
	o := gatherPrintOptions(stdoutIsTerminal(), opts...)
	if err := render(colorable.NewColorable(os.Stdout), m, o); err != nil {
		return fmt.Errorf("%s: %w", opPrint, err)
	}

	return nil
}

// Fprint renders m as a bordered grid on w. Colouring is off unless WithColor(true).
// Complexity: O(n²).
func Fprint[T Scalar](w io.Writer, m Matrix[T], opts ...PrintOption) error {
	o := gatherPrintOptions(false, opts...)
	if err := render(w, m, o); err != nil {
		return fmt.Errorf("%s: %w", opFprint, err)
	}

	return nil
}

// Render returns the bordered grid as a string. Colouring is off unless WithColor(true).
// Complexity: O(n²).
func Render[T Scalar](m Matrix[T], opts ...PrintOption) (string, error) {
	var sb strings.Builder
	o := gatherPrintOptions(false, opts...)
	if err := render(&sb, m, o); err != nil {
		return "", fmt.Errorf("%s: %w", opRender, err)
	}

	return sb.String(), nil
}

// render is the single rendering kernel behind Print/Fprint/Render.
// Implementation:
//   - Stage 1: validate matrix and snapshot shape.
//   - Stage 2: format every cell once and derive per-column widths.
//   - Stage 3: emit top border, rows with separators, bottom border.
//
// The whole grid is built in memory and written with a single Write, so a
// failing writer never receives a partial grid from this call.
func render[T Scalar](w io.Writer, m Matrix[T], o printOptions) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	n := m.Size()
	grid := m.Data()
	if err := ValidateGrid(n, grid); err != nil {
		return err
	}

	if n == 0 {
		return nil
	}
	cells, widths := formatCells(grid)

	var neg *color.Color
	if o.color {
		// Forced on the instance: the global color.NoColor tracks stdout only.
		neg = color.New(negativeAttr)
		neg.EnableColor()
	}

	var sb strings.Builder
	border := borderLine(widths)
	sb.WriteString(border)
	for i := range cells {
		for j, text := range cells[i] {
			sb.WriteRune(glyphVertical)
			sb.WriteByte(' ')
			if neg != nil && grid[i][j] < 0 {
				sb.WriteString(neg.Sprint(text))
			} else {
				sb.WriteString(text)
			}
			// Pad from the uncoloured text: escape codes take no columns.
			sb.WriteString(strings.Repeat(" ", widths[j]-len(text)+1))
		}
		sb.WriteRune(glyphVertical)
		sb.WriteByte('\n')
		// Row separators and the bottom border share one shape.
		sb.WriteString(border)
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// formatCells renders each value once with %v and returns the texts plus
// per-column widths. A zero-size grid yields empty results.
func formatCells[T Scalar](grid [][]T) ([][]string, []int) {
	if len(grid) == 0 {
		return nil, nil
	}
	widths := make([]int, len(grid[0]))
	cells := make([][]string, len(grid))
	for i, row := range grid {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			text := fmt.Sprint(v)
			cells[i][j] = text
			if len(text) > widths[j] {
				widths[j] = len(text)
			}
		}
	}

	return cells, widths
}

// borderLine draws "+" then width+2 dashes per column joined by "+", closed by "+\n".
func borderLine(widths []int) string {
	var sb strings.Builder
	sb.WriteRune(glyphCorner)
	for _, w := range widths {
		sb.WriteString(strings.Repeat(string(glyphHorizontal), w+cellPadding))
		sb.WriteRune(glyphCorner)
	}
	sb.WriteByte('\n')

	return sb.String()
}

// ColumnWidths returns the display width of each column of m, i.e. the
// widths Render pads to. Exposed for callers that lay out text around a grid.
// Complexity: O(n²).
func ColumnWidths[T Scalar](m Matrix[T]) ([]int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ColumnWidths: %w", err)
	}
	grid := m.Data()
	if err := ValidateGrid(m.Size(), grid); err != nil {
		return nil, fmt.Errorf("ColumnWidths: %w", err)
	}
	_, widths := formatCells(grid)

	return widths, nil
}
