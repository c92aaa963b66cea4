// SPDX-License-Identifier: MIT
// Package matrix - canonical builders for Dense matrices of a given Kind.
// Deterministic (except the unseeded Random fill), sentinel-accurate, atomic.
//
// Purpose:
//   - New(rows, cols, opts...) allocates a rows×cols Dense with every cell at 0
//     and then applies the kind-specific fill (Zeros, Ones, Identity, Random).
//
// Contract:
//   - Validation order: shape → kind → kind-specific checks (square / bounds).
//   - All checks run BEFORE allocation; a failed call returns (nil, err) only.
//   - Random draws each cell independently from U[lower, upper). Integer
//     element types draw uniformly from the integers lower..upper-1.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for every kind.

package matrix

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Operation tag for construction errors.
const opNew = "New"

// New creates a rows×cols matrix whose contents are selected by WithKind.
// MAIN DESCRIPTION:
//   - Single entry point for all canonical constructions; the default kind is Zeros.
//
// Implementation:
//   - Stage 1: resolve options (gatherOptions).
//   - Stage 2: validate shape, kind and kind-specific preconditions.
//   - Stage 3: allocate a zero Dense and apply the fill.
//
// Behavior highlights:
//   - No partial results: every error is detected before allocation.
//   - Random without WithSeed/WithSource draws from the process-wide generator.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - opts: WithKind, WithBounds/WithLowerBound/WithUpperBound, WithSeed/WithSource.
//
// Returns:
//   - *Dense[T]: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (rows<=0 or cols<=0).
//   - ErrInvalidArgument   (unknown kind; Random with a missing bound, lower >= upper,
//     or a range not representable as a finite float64 width).
//   - ErrDimensionMismatch (Identity with rows != cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Number](rows, cols int, opts ...Option[T]) (*Dense[T], error) {
	o := gatherOptions(opts...)

	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNew, ErrInvalidDimensions)
	}
	if !o.kind.valid() {
		return nil, matrixErrorf(opNew, fmt.Errorf("kind %s: %w", o.kind, ErrInvalidArgument))
	}

	switch o.kind {
	case KindIdentity:
		if rows != cols {
			return nil, matrixErrorf(opNew, fmt.Errorf("identity %dx%d: %w", rows, cols, ErrDimensionMismatch))
		}
	case KindRandom:
		if err := validateBounds(o); err != nil {
			return nil, matrixErrorf(opNew, err)
		}
	}

	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	switch o.kind {
	case KindOnes:
		fillConst(m, 1)
	case KindIdentity:
		for i := 0; i < rows; i++ { // fixed i order; single write per diagonal cell
			m.set(i, i, 1)
		}
	case KindRandom:
		fillUniform(m, o)
	}

	return m, nil
}

// fillConst writes v into every cell (flat loop).
func fillConst[T Number](m *Dense[T], v T) {
	for idx := range m.data {
		m.data[idx] = v
	}
}

// maxRedraws caps the float redraw loop in fillUniform.
const maxRedraws = 64

// fillUniform writes independent U[lo, hi) draws into every cell.
// Implementation:
//   - Stage 1: integer T draws an offset in [0, hi-lo) with Uint64N and adds it
//     to lo in two's complement, so every integer range is exact.
//   - Stage 2: float T draws from a distuv.Uniform over float64(lo)..float64(hi)
//     and redraws when rounding to T lands on hi (at most maxRedraws times,
//     then lo is used).
func fillUniform[T Number](m *Dense[T], o Options[T]) {
	lo, hi := o.lower, o.upper

	if isIntegral[T]() {
		draw := rand.Uint64N
		if o.src != nil {
			draw = rand.New(o.src).Uint64N
		}
		base := uint64(lo)
		width := uint64(hi) - base // hi > lo, so the modular difference is the true width
		for idx := range m.data {
			m.data[idx] = T(base + draw(width))
		}

		return
	}

	dist := distuv.Uniform{Min: float64(lo), Max: float64(hi), Src: o.src}
	var v T
	for idx := range m.data {
		v = lo
		for n := 0; n < maxRedraws; n++ {
			if x := T(dist.Rand()); x >= lo && x < hi {
				v = x
				break
			}
		}
		m.data[idx] = v
	}
}

// isIntegral reports whether T is an integer kind (1/2 truncates to 0).
func isIntegral[T Number]() bool {
	var half T = 1
	half /= 2

	return half == 0
}

// integerRange returns the values of integer T as the float64 interval
// [lo, hi). Both ends are powers of two (or zero) and therefore exact.
func integerRange[T Number]() (lo, hi float64) {
	bits := 64
	for k := 8; k < 64; k *= 2 {
		if T(uint64(1)<<k) == 0 {
			bits = k
			break
		}
	}
	var zero T
	if zero-1 < 0 { // signed
		return -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)
	}

	return 0, math.Ldexp(1, bits)
}
