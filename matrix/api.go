// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common tasks.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change loop orders, validation order or error sentinels of
//     the underlying kernels; validation is performed in the kernels.

package matrix

// ---------- Constructors (O(1) alloc + O(rc) fill) ----------

// Create is New under its long-form name: a rows×cols matrix of the kind
// selected by WithKind (Zeros when absent).
func Create[T Number](rows, cols int, opts ...Option[T]) (*Dense[T], error) {
	return New(rows, cols, opts...)
}

// Zeros returns a rows×cols matrix of zeros.
func Zeros[T Number](rows, cols int) (*Dense[T], error) {
	return New[T](rows, cols)
}

// Ones returns a rows×cols matrix of ones.
func Ones[T Number](rows, cols int) (*Dense[T], error) {
	return New(rows, cols, WithKind[T](KindOnes))
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
func Identity[T Number](n int) (*Dense[T], error) {
	return New(n, n, WithKind[T](KindIdentity))
}

// Random returns a rows×cols matrix with cells drawn uniformly from [lo, hi).
// Extra options (WithSeed, WithSource) are applied after the bounds.
func Random[T Number](rows, cols int, lo, hi T, opts ...Option[T]) (*Dense[T], error) {
	all := make([]Option[T], 0, len(opts)+2)
	all = append(all, WithKind[T](KindRandom), WithBounds(lo, hi))
	all = append(all, opts...)

	return New(rows, cols, all...)
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Errors: ErrNilMatrix.
func ZerosLike[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return New[T](m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
func IdentityLike[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity[T](m.Rows())
}

// ---------- Arithmetic (facades map 1:1 to kernels) ----------

// ScalarMultiply is an alias for Scale: m[i,j] * scalar.
func ScalarMultiply[T Number](m Matrix[T], scalar T) (*Dense[T], error) { return Scale(m, scalar) }

// Multiply is an alias for Mul: matrix product a × b.
func Multiply[T Number](a, b Matrix[T]) (*Dense[T], error) { return Mul(a, b) }

// HadamardProduct is an alias for Hadamard: element-wise a ⊙ b.
func HadamardProduct[T Number](a, b Matrix[T]) (*Dense[T], error) { return Hadamard(a, b) }

// SumSubString is SumSub with a textual selector ("sum" or "sub").
// Unrecognized selectors fail with ErrInvalidArgument; there is no fallback.
func SumSubString[T Number](a, b Matrix[T], op string) (*Dense[T], error) {
	o, err := ParseOp(op)
	if err != nil {
		return nil, matrixErrorf(opSumSub, err)
	}

	return SumSub(a, b, o)
}
