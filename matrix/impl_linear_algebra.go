// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels on any Matrix implementation:
// element-wise sum/subtract, scalar multiplication, matrix multiplication,
// Hadamard product and transpose. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Define the canonical kernels and the operation tags used for error reporting.
//
// Notes:
//   - Inputs are read-only; every kernel returns a freshly allocated *Dense.
//   - *Dense operands take a flat-slice fast path; other implementations go
//     through At with fixed i→j order.
//   - Overflow follows the arithmetic of T (wrap-around for integers, ±Inf for floats).

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSumSub    = "SumSub"
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opMul       = "Mul"
	opHadamard  = "Hadamard"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// atErrorf tags a failed read in the generic fallback with its coordinates.
func atErrorf(tag string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
}

// SumSub computes out = a + b (OpSum) or out = a - b (OpSub) element-wise.
// MAIN DESCRIPTION:
//   - Shared kernel for Add/Sub; the Op selector replaces a stringly-typed mode.
//
// Implementation:
//   - Stage 1: validate op, then ValidateBinarySameShape(a, b).
//   - Stage 2: allocate the result Dense(rows, cols).
//   - Stage 3: fast-path if both are *Dense (single flat loop 0..n-1);
//     otherwise fall back to At with fixed i→j order.
//
// Behavior highlights:
//   - Deterministic loop orders; one allocation; inputs remain immutable.
//   - An undeclared Op is rejected (no silent fallback to sum).
//
// Inputs:
//   - a, b: conformable matrices (non-nil; same rows/cols).
//   - op  : OpSum or OpSub.
//
// Returns:
//   - *Dense[T]: newly allocated result.
//
// Errors:
//   - ErrInvalidArgument   (unknown op).
//   - ErrNilMatrix         (nil operand).
//   - ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func SumSub[T Number](a, b Matrix[T], op Op) (*Dense[T], error) {
	return sumSub(a, b, op, opSumSub)
}

// Add computes the element-wise sum C = A + B. See SumSub.
func Add[T Number](a, b Matrix[T]) (*Dense[T], error) { return sumSub(a, b, OpSum, opAdd) }

// Sub computes the element-wise difference C = A - B. See SumSub.
func Sub[T Number](a, b Matrix[T]) (*Dense[T], error) { return sumSub(a, b, OpSub, opSub) }

// sumSub is the tagged implementation behind SumSub/Add/Sub.
// The op branch is hoisted out of the inner loop: unsigned T has no -1 to
// multiply by, so subtraction cannot be expressed as a + sign*b.
func sumSub[T Number](a, b Matrix[T], op Op, tag string) (*Dense[T], error) {
	if op != OpSum && op != OpSub {
		return nil, matrixErrorf(tag, fmt.Errorf("op %s: %w", op, ErrInvalidArgument))
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			if op == OpSub {
				for idx := range res.data { // deterministic 0..n-1
					res.data[idx] = da.data[idx] - db.data[idx]
				}
			} else {
				for idx := range res.data {
					res.data[idx] = da.data[idx] + db.data[idx]
				}
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, atErrorf(tag, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, atErrorf(tag, i, j, err)
			}
			if op == OpSub {
				res.set(i, j, av-bv)
			} else {
				res.set(i, j, av+bv)
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are m[i,j] * scalar.
// MAIN DESCRIPTION:
//   - Scalar multiplication; no shape constraints beyond a non-nil operand.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(rows, cols).
//   - Stage 2: if *Dense, flat multiply; else generic i→j At scaling.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - scalar = 0 yields an explicit zero matrix with the same shape.
func Scale[T Number](m Matrix[T], scalar T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast-path for Dense → Dense.
	if dm, ok := m.(*Dense[T]); ok {
		for idx := range res.data {
			res.data[idx] = dm.data[idx] * scalar
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var i, j int
	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opScale, i, j, err)
			}
			res.set(i, j, v*scalar)
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// MAIN DESCRIPTION:
//   - Naive triple loop; correctness over performance.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) (non-nil, a.Cols == b.Rows).
//   - Stage 2: allocate C (a.Rows × b.Cols).
//   - Stage 3: for every (i, j) start a zero accumulator and add a[i,k]*b[k,j]
//     for k = 0..n-1 in order; *Dense operands read the flat buffers directly.
//
// Behavior highlights:
//   - No zero-skipping: 0 * ±Inf still yields NaN, exactly as the sum defines.
//   - Fixed i→j→k order on both paths, so both paths agree bit for bit.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Number](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, inner, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense[T](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int
		acc     T // per-cell accumulator
	)

	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			// da.data layout: i*inner + k; db.data layout: k*bCols + j.
			var rowA int
			for i = 0; i < aRows; i++ {
				rowA = i * inner
				for j = 0; j < bCols; j++ {
					acc = 0
					for k = 0; k < inner; k++ {
						acc += da.data[rowA+k] * db.data[k*bCols+j]
					}
					res.data[i*bCols+j] = acc
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	var av, bv T
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = 0
			for k = 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, atErrorf(opMul, i, k, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, atErrorf(opMul, k, j, err)
				}
				acc += av * bv
			}
			res.set(i, j, acc)
		}
	}

	return res, nil
}

// Hadamard computes the element-wise product (a ⊙ b) with a fresh Dense result.
// Both inputs must be non-nil and have identical shapes.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate Dense(rows, cols).
//   - Stage 2: fast-path if both *Dense (flat 0..n-1); else At with i→j loops.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Hadamard ≠ matrix multiplication; use Mul for A×B.
func Hadamard[T Number](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] * db.data[idx]
			}

			return res, nil
		}
	}

	var i, j int
	var av, bv T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, atErrorf(opHadamard, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, atErrorf(opHadamard, i, j, err)
			}
			res.set(i, j, av*bv)
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense[T]); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[i*cols+j]
			}
		}

		return res, nil
	}

	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opTranspose, i, j, err)
			}
			res.set(j, i, v)
		}
	}

	return res, nil
}

// Equal reports whether a and b are non-nil, have the same shape and hold
// identical values in every cell (==, so NaN never equals NaN).
// Complexity: O(r*c), early exit on the first difference.
func Equal[T Number](a, b Matrix[T]) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}

	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}

			return true
		}
	}

	rows, cols := a.Rows(), a.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, errA := a.At(i, j)
			bv, errB := b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}
