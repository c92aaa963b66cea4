// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Keep shape immutable: there is no public mutator, results of kernels are fresh values.
//   - Keep algorithmic determinism (fixed loop orders).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At: O(1); Clone/ToRows: O(r*c); FromRows/FromFlat: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag
	ctxFromFlat = "FromFlat" // ctor tag
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over T.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense is never resized or written through the public API after construction.
type Dense[T Number] struct {
	r, c int // row and column counts (>0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ Matrix[int]     = (*Dense[int])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// make() zero-fills deterministically: 0 is the additive identity for every Number.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromRows builds a Dense from a slice of rows, copying every element.
// MAIN DESCRIPTION:
//   - Convenience constructor for literals such as [][]float64{{1, 2}, {3, 4}}.
//
// Implementation:
//   - Stage 1: reject empty input and empty first row (ErrInvalidDimensions).
//   - Stage 2: reject ragged rows (ErrBadShape) before allocating.
//   - Stage 3: copy row by row into the flat buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i := range rows {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				ctxFromRows, i, len(rows[i]), cols, ErrBadShape)
		}
	}

	m, err := NewDense[T](len(rows), cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}
	for i := range rows {
		copy(m.data[i*cols:(i+1)*cols], rows[i]) // row i occupies [i*c, (i+1)*c)
	}

	return m, nil
}

// FromFlat builds an r×c Dense from row-major values (copied).
// Returns ErrInvalidDimensions for non-positive shapes and ErrBadShape when
// len(values) != rows*cols.
// Complexity: O(r*c).
func FromFlat[T Number](rows, cols int, values []T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromFlat, err)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("%s: got %d values for %dx%d: %w",
			ctxFromFlat, len(values), rows, cols, ErrBadShape)
	}
	copy(m.data, values)

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Errors:
//   - ErrOutOfRange when out of bounds (wrapped with coordinates).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// set is the internal write used by constructors and kernels on freshly
// allocated results. Callers guarantee the coordinates are in range.
func (m *Dense[T]) set(row, col int, v T) { m.data[row*m.c+col] = v }

// Row returns a copy of row i.
// Errors: ErrOutOfRange for i outside [0, Rows()).
// Complexity: O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows returns the contents as a freshly allocated [][]T.
// Mutating the result never affects m.
// Complexity: O(r*c).
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy (new buffer).
// MAIN DESCRIPTION:
//   - Produce an independent Dense with identical shape/data.
//
// Behavior highlights:
//   - Independence: the copy shares no storage with the original.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data)) // allocate same length
	copy(cp, m.data)             // deep copy

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Equal reports whether other has the same shape and identical cells.
// A nil receiver or argument is only equal to another nil.
// Complexity: O(r*c).
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if m == nil || other == nil {
		return m == other
	}

	return Equal[T](m, other)
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Implementation:
//   - Stage 1: nested loops over rows then cols; compute base offset per row.
//   - Stage 2: call f on each element; stop when f returns false.
//
// Determinism:
//   - Fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int // predeclare loop counters and base offset

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c            // flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// String HUMAN-READABLE dump of rows for diagnostics ("[1, 2]\n[3, 4]\n").
// Not the display format; see Fprint for the fixed-width console layout.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(formatCell(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
