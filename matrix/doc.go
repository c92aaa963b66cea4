// Package matrix offers generic dense matrices and the basic arithmetic over them.
//
// The matrix package provides:
//
//   - Dense[T], a row-major, fixed-shape container over any Number type
//     (signed/unsigned integers and floats), instantiated per type at compile time.
//   - Canonical constructors (Zeros, Ones, Identity, Random) driven by a Kind and
//     functional options (New + WithKind/WithBounds/WithSeed).
//   - Pure binary kernels: SumSub (Add/Sub), Scale, Mul, Hadamard, plus Transpose.
//   - Console-style display (Fprint/Display) with a fixed, centered field width.
//   - Interop with gonum/mat (AsGonum, FromGonum).
//
// Every operation validates its inputs before allocating, never mutates its
// operands and returns a freshly allocated *Dense. Failures are reported via the
// sentinel errors in errors.go and must be matched with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
