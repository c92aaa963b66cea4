// Package matrix provides converters between Dense and gonum/mat, so results
// can be handed to gonum's decompositions and solvers (which this package
// deliberately does not implement) and brought back.
package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// gonumView adapts any Matrix[T] to the read-only mat.Matrix interface.
// Elements are converted to float64 on every At call; nothing is copied.
type gonumView[T Number] struct {
	m Matrix[T]
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v gonumView[T]) Dims() (r, c int) { return v.m.Rows(), v.m.Cols() }

// At panics on out-of-range indices, as mat.Matrix requires.
func (v gonumView[T]) At(i, j int) float64 {
	x, err := v.m.At(i, j)
	if err != nil {
		panic(err)
	}

	return float64(x)
}

func (v gonumView[T]) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// AsGonum returns a zero-copy float64 view of m usable wherever gonum expects a
// mat.Matrix (mat.Dense.Mul, mat.Formatted, factorizations, ...).
// Returns ErrNilMatrix for a nil m.
func AsGonum[T Number](m Matrix[T]) (mat.Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("AsGonum", err)
	}

	return gonumView[T]{m: m}, nil
}

// FromGonum copies a gonum matrix into a new Dense[T].
// Float element types take values as-is (float32 rounds). Integer element
// types truncate toward zero and reject NaN, ±Inf and values outside the
// range of T with ErrInvalidArgument.
//
// Errors: ErrNilMatrix (nil src), ErrInvalidDimensions (empty src), ErrInvalidArgument.
// Complexity: O(r*c).
func FromGonum[T Number](src mat.Matrix) (*Dense[T], error) {
	if src == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense[T](r, c)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}

	integral := isIntegral[T]()
	var minV, maxV float64 // integer range of T, max exclusive
	if integral {
		minV, maxV = integerRange[T]()
	}
	var x float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x = src.At(i, j)
			if integral {
				// NaN fails both comparisons, ±Inf fails one.
				if t := math.Trunc(x); !(t >= minV && t < maxV) {
					return nil, matrixErrorf("FromGonum", fmt.Errorf("At(%d,%d)=%v: %w", i, j, x, ErrInvalidArgument))
				}
			}
			out.set(i, j, T(x))
		}
	}

	return out, nil
}
