// SPDX-License-Identifier: MIT
package matrix_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/workshop/matrix"
	"github.com/stretchr/testify/require"
)

// TestRender_FilledTwoByTwo: Fill(5) on 2×2 gives width-1 columns.
func TestRender_FilledTwoByTwo(t *testing.T) {
	m := MustDense[int](t, Size2)
	require.NoError(t, matrix.Fill[int](m, 5))

	widths, err := matrix.ColumnWidths[int](m)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1}, widths)

	out, err := matrix.Render[int](m)
	require.NoError(t, err)
	want := "" +
		"+---+---+\n" +
		"| 5 | 5 |\n" +
		"+---+---+\n" +
		"| 5 | 5 |\n" +
		"+---+---+\n"
	require.Equal(t, want, out)
}

// TestRender_PerColumnWidths pads each column to its own widest value.
func TestRender_PerColumnWidths(t *testing.T) {
	m := MustFrom(t, [][]int{
		{1, 200, 0},
		{33, 4, 5},
		{0, 6, 7777},
	})
	out, err := matrix.Render[int](m)
	require.NoError(t, err)
	want := "" +
		"+----+-----+------+\n" +
		"| 1  | 200 | 0    |\n" +
		"+----+-----+------+\n" +
		"| 33 | 4   | 5    |\n" +
		"+----+-----+------+\n" +
		"| 0  | 6   | 7777 |\n" +
		"+----+-----+------+\n"
	require.Equal(t, want, out)
}

// TestRender_NegativeAlignment counts the sign into the column width.
func TestRender_NegativeAlignment(t *testing.T) {
	m := MustFrom(t, [][]int{{-7, 3}, {12, 0}})
	out, err := matrix.Render[int](m)
	require.NoError(t, err)
	want := "" +
		"+----+---+\n" +
		"| -7 | 3 |\n" +
		"+----+---+\n" +
		"| 12 | 0 |\n" +
		"+----+---+\n"
	require.Equal(t, want, out)

	m = MustFrom(t, [][]int{{-100, 1}, {5, 2}})
	widths, err := matrix.ColumnWidths[int](m)
	require.NoError(t, err)
	require.Equal(t, []int{4, 1}, widths)

	// Every line has the same length: the alignment contract.
	out, err = matrix.Render[int](m)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	for _, line := range lines {
		require.Len(t, line, len(lines[0]), "misaligned line %q", line)
	}
}

// TestRender_Floats uses %v formatting for float cells.
func TestRender_Floats(t *testing.T) {
	m := MustFrom(t, [][]float64{{1.5, -2}, {0, 10.25}})
	out, err := matrix.Render[float64](m)
	require.NoError(t, err)
	want := "" +
		"+-----+-------+\n" +
		"| 1.5 | -2    |\n" +
		"+-----+-------+\n" +
		"| 0   | 10.25 |\n" +
		"+-----+-------+\n"
	require.Equal(t, want, out)
}

// TestFprint_ColorOnlyTouchesNegatives wraps negatives in escape codes while
// keeping padding computed from the plain text.
func TestFprint_ColorOnlyTouchesNegatives(t *testing.T) {
	m := MustFrom(t, [][]int{{-7, 3}, {12, 0}})

	var buf bytes.Buffer
	require.NoError(t, matrix.Fprint[int](&buf, m, matrix.WithColor(true)))
	out := buf.String()
	require.Contains(t, out, "\x1b[31m-7\x1b[0m")
	require.Contains(t, out, "| 12 | 0 |\n")

	plain, err := matrix.Render[int](m)
	require.NoError(t, err)
	require.Equal(t, plain, strings.ReplaceAll(strings.ReplaceAll(out, "\x1b[31m", ""), "\x1b[0m", ""))

	buf.Reset()
	require.NoError(t, matrix.Fprint[int](&buf, m, matrix.WithColor(false)))
	require.Equal(t, plain, buf.String())
}

// failingWriter always errors.
type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

// TestFprint_Errors covers nil matrices, broken Data() and writer failures.
func TestFprint_Errors(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, matrix.Fprint[int](&buf, nil), matrix.ErrNilMatrix)
	require.Zero(t, buf.Len())

	bad := ragged{MustDense[int](t, Size2)}
	require.ErrorIs(t, matrix.Fprint[int](&buf, bad), matrix.ErrDimensionMismatch)
	_, err := matrix.ColumnWidths[int](bad)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.ErrorIs(t, matrix.Fprint[int](failingWriter{}, MustDense[int](t, Size2)), errWrite)

	_, err = matrix.Render[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestPrint_FollowsRedirectedStdout: Print writes to the current os.Stdout,
// colouring negatives only on request.
func TestPrint_FollowsRedirectedStdout(t *testing.T) {
	m := MustFrom[int](t, [][]int{{-7, 3}, {12, 0}})
	want, err := matrix.Render[int](m)
	require.NoError(t, err)

	got := captureStdout(t, func() { require.NoError(t, matrix.Print[int](m)) })
	require.Equal(t, want, got, "a pipe is not a terminal: no colour by default")

	got = captureStdout(t, func() { require.NoError(t, matrix.Print[int](m, matrix.WithColor(true))) })
	require.Contains(t, got, "\x1b[31m-7\x1b[0m")

	got = captureStdout(t, func() { require.ErrorIs(t, matrix.Print[int](nil), matrix.ErrNilMatrix) })
	require.Empty(t, got)
}
