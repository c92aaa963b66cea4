// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior when asked for: WithSeed/WithSource fix the Random fill.
//   - No dead switches: each option impacts New and is covered by tests.
//   - Option constructors never panic: bound validity depends on the Kind and is
//     reported by New as ErrInvalidArgument, so the whole call fails atomically.
//
// Notes:
//   - Bounds are tracked with presence flags: a Random request must carry BOTH
//     a lower and an upper bound; a missing one is an argument error, not a zero.
//   - Without WithSeed/WithSource the Random fill draws from the process-wide
//     math/rand/v2 generator and is not reproducible.
package matrix

import "math/rand/v2"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultKind is the construction kind used when WithKind is absent.
	DefaultKind = KindZeros

	// DefaultFieldWidth is the display field width (characters per cell,
	// excluding the single separating space).
	DefaultFieldWidth = 7
)

// seedStream is the PCG stream selector paired with the user seed.
const seedStream = 0x9e3779b97f4a7c15

// ---------- Public option type (functional) ----------

// Option mutates construction options. Safe to apply repeatedly; last writer wins.
type Option[T Number] func(*Options[T])

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option[T] and resolve
// them via gatherOptions.
type Options[T Number] struct {
	kind Kind // DefaultKind

	lower, upper       T    // Random bounds (valid only when the has* flag is set)
	hasLower, hasUpper bool // presence flags

	src rand.Source // nil ⇒ process-wide generator (unseeded)
}

// WithKind selects the construction kind (Zeros, Ones, Identity, Random).
// An undeclared Kind value is rejected by New with ErrInvalidArgument.
func WithKind[T Number](k Kind) Option[T] {
	return func(o *Options[T]) { o.kind = k }
}

// WithLowerBound sets the inclusive lower bound of the Random fill.
func WithLowerBound[T Number](lo T) Option[T] {
	return func(o *Options[T]) {
		o.lower = lo
		o.hasLower = true
	}
}

// WithUpperBound sets the exclusive upper bound of the Random fill.
func WithUpperBound[T Number](hi T) Option[T] {
	return func(o *Options[T]) {
		o.upper = hi
		o.hasUpper = true
	}
}

// WithBounds sets both Random bounds at once: values are drawn from [lo, hi).
// Implementation:
//   - Stage 1: compose WithLowerBound and WithUpperBound.
//
// Behavior highlights:
//   - Order of bounds is NOT normalized: lo >= hi is reported by New as
//     ErrInvalidArgument rather than silently swapped.
func WithBounds[T Number](lo, hi T) Option[T] {
	return func(o *Options[T]) {
		WithLowerBound(lo)(o)
		WithUpperBound(hi)(o)
	}
}

// WithSeed makes the Random fill reproducible: the same seed, shape and
// bounds always yield the same matrix.
// Complexity: O(1).
func WithSeed[T Number](seed uint64) Option[T] {
	return func(o *Options[T]) { o.src = rand.NewPCG(seed, seedStream) }
}

// WithSource draws the Random fill from a caller-owned source.
// The source is advanced by New; sharing it across goroutines is the caller's
// responsibility. A nil source restores the unseeded default.
func WithSource[T Number](src rand.Source) Option[T] {
	return func(o *Options[T]) { o.src = src }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Exposed for callers that want to inspect the effective configuration.
func NewOptions[T Number](opts ...Option[T]) Options[T] {
	return gatherOptions(opts...)
}

// Kind returns the effective construction kind.
func (o Options[T]) Kind() Kind { return o.kind }

// Bounds returns the Random bounds and whether both are present.
func (o Options[T]) Bounds() (lo, hi T, ok bool) {
	return o.lower, o.upper, o.hasLower && o.hasUpper
}

// Seeded reports whether the Random fill uses an explicit source.
func (o Options[T]) Seeded() bool { return o.src != nil }

// gatherOptions applies user-provided setters on top of defaults.
// Implementation:
//   - Stage 1: start from defaults.
//   - Stage 2: apply setters in order (last-writer-wins); nil setters are skipped.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions[T Number](user ...Option[T]) Options[T] {
	o := Options[T]{kind: DefaultKind}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
