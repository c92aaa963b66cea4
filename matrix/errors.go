// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with fmt.Errorf("<Op>: %w", ErrX)
// at the outer boundary; callers still use errors.Is to match.
//
// ERROR PRIORITY (documented per entry point, enforced in tests):
// New:     dimensions -> kind -> identity squareness / random bounds.
// Kernels: op selector -> nil -> dimension mismatch.

var (
	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. SumSub/Hadamard on different shapes, Mul where a.Cols != b.Rows,
	// or an Identity request for a non-square shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidArgument indicates a malformed non-shape argument: Random
	// without both bounds or with lower >= upper, an unknown Kind or Op.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when input data cannot form a rectangle
	// (ragged rows, flat slice length != rows*cols).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
