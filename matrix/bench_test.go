// Package matrix_test provides benchmarks for the arithmetic kernels, using
// deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/algebra/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sink to defeat dead-code elimination
var sinkM *matrix.Dense[float64]

func benchPair(b *testing.B, n int) (*matrix.Dense[float64], *matrix.Dense[float64]) {
	b.Helper()
	A := MustFromRows(b, RandRows(n, n, 1337))
	B := MustFromRows(b, RandRows(n, n, 4242))

	return A, B
}

func runBinary(b *testing.B, kernel func(a, c matrix.Matrix[float64]) (*matrix.Dense[float64], error)) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := benchPair(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := kernel(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAdd(b *testing.B)      { runBinary(b, matrix.Add[float64]) }
func BenchmarkSub(b *testing.B)      { runBinary(b, matrix.Sub[float64]) }
func BenchmarkHadamard(b *testing.B) { runBinary(b, matrix.Hadamard[float64]) }
func BenchmarkMul(b *testing.B)      { runBinary(b, matrix.Mul[float64]) }

// BenchmarkMulFallback measures the At-based path for non-Dense operands.
func BenchmarkMulFallback(b *testing.B) {
	runBinary(b, func(a, c matrix.Matrix[float64]) (*matrix.Dense[float64], error) {
		return matrix.Mul[float64](hide[float64]{a}, hide[float64]{c})
	})
}

func BenchmarkRandom(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m, err := matrix.Random(n, n, -1.0, 1.0, matrix.WithSeed[float64](uint64(i)))
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
