// SPDX-License-Identifier: MIT
// Package matrix - console-style display.
//
// Layout (human inspection only, not a stable machine format):
//   - one line per row;
//   - every element centered in a field of DefaultFieldWidth characters and
//     followed by a single space;
//   - one blank line after the last row.
//
// Example for [[1, 2], [30, 4]] at width 7:
//
//	"   1       2    \n  30       4    \n\n"
//
// Values wider than the field are printed in full (the field grows, nothing is
// truncated). Floats use the shortest representation (%v ⇒ %g-style).

package matrix

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const opDisplay = "Display"

// Display writes m to standard output using DefaultFieldWidth.
func Display[T Number](m Matrix[T]) error {
	return FprintWidth(os.Stdout, m, DefaultFieldWidth)
}

// Fprint writes m to w using DefaultFieldWidth.
func Fprint[T Number](w io.Writer, m Matrix[T]) error {
	return FprintWidth(w, m, DefaultFieldWidth)
}

// Sprint returns the display layout of m as a string.
// A nil or unreadable matrix renders as the empty string.
func Sprint[T Number](m Matrix[T]) string {
	s, err := render(m, DefaultFieldWidth)
	if err != nil {
		return ""
	}

	return s
}

// FprintWidth writes m to w with every cell centered in a field of width
// characters. The whole matrix is rendered first and written with a single
// Write call, so a failing matrix never leaves partial output behind.
//
// Errors:
//   - ErrNilMatrix (nil m), ErrInvalidArgument (width < 1), write errors from w.
//
// Complexity:
//   - Time O(r*c), Space O(r*c*width).
func FprintWidth[T Number](w io.Writer, m Matrix[T], width int) error {
	if width < 1 {
		return matrixErrorf(opDisplay, fmt.Errorf("width %d: %w", width, ErrInvalidArgument))
	}
	s, err := render(m, width)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, s); err != nil {
		return matrixErrorf(opDisplay, err)
	}

	return nil
}

// render builds the display layout in a strings.Builder (fixed i→j order).
func render[T Number](m Matrix[T], width int) (string, error) {
	if err := ValidateNotNil(m); err != nil {
		return "", matrixErrorf(opDisplay, err)
	}

	var b strings.Builder
	rows, cols := m.Rows(), m.Cols()
	b.Grow(rows*cols*(width+1) + rows + 1)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return "", atErrorf(opDisplay, i, j, err)
			}
			b.WriteString(center(formatCell(v), width))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n') // trailing blank line

	return b.String(), nil
}

// formatCell renders a single value (ints in base 10, floats shortest form).
func formatCell[T Number](v T) string { return fmt.Sprint(v) }

// center pads s to width, putting the odd padding character on the right.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
