// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by constructors and kernels.
// This file contains ONLY domain-facing types (element constraint, read-only
// Matrix surface, construction Kind and SumSub Op). Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

import (
	"fmt"
	"strings"
)

// Number is the element constraint for every matrix in this package.
// Complex kinds are excluded: Random construction needs ordered bounds.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Matrix is the read-only surface consumed by every kernel.
//
// Kernels take a fast path on *Dense[T] (flat slice loops) and fall back to At
// in fixed row-major order for any other implementation.
//
// Complexity notes: all methods are expected O(1).
type Matrix[T Number] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)
}

// Kind selects the initial contents of a matrix built by New.
// It is consumed only at construction time.
type Kind uint8

// Supported construction kinds. The zero value is KindZeros.
const (
	KindZeros    Kind = iota // every cell 0
	KindOnes                 // every cell 1
	KindIdentity             // 1 on the diagonal; square only
	KindRandom               // uniform over [lower, upper)
)

var kindNames = [...]string{
	KindZeros:    "zeros",
	KindOnes:     "ones",
	KindIdentity: "identity",
	KindRandom:   "random",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// valid reports whether k is one of the declared kinds.
func (k Kind) valid() bool { return int(k) < len(kindNames) }

// ParseKind maps a case-insensitive name ("zeros", "ones", "identity",
// "random") to its Kind. Unknown names yield ErrInvalidArgument.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return KindZeros, fmt.Errorf("ParseKind(%q): %w", s, ErrInvalidArgument)
}

// Op selects the elementwise mode of SumSub. The zero value is OpSum.
type Op uint8

// Supported SumSub modes.
const (
	OpSum Op = iota // a[i,j] + b[i,j]
	OpSub           // a[i,j] - b[i,j]
)

// String returns "sum" or "sub".
func (op Op) String() string {
	switch op {
	case OpSum:
		return "sum"
	case OpSub:
		return "sub"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// ParseOp maps "sum"/"sub" (case-insensitive) to an Op.
// Unrecognized selectors are rejected with ErrInvalidArgument instead of
// silently falling back to OpSum.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sum":
		return OpSum, nil
	case "sub":
		return OpSub, nil
	default:
		return OpSum, fmt.Errorf("ParseOp(%q): %w", s, ErrInvalidArgument)
	}
}
