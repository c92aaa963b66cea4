package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/algebra/matrix"
)

func TestAsGonum_View(t *testing.T) {
	A := MustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	g, err := matrix.AsGonum[int](A)
	require.NoError(t, err)

	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, g.At(1, 2))

	gt := g.T()
	r, c = gt.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	require.Equal(t, 4.0, gt.At(0, 1))

	require.Panics(t, func() { g.At(2, 0) })

	_, err = matrix.AsGonum[int](nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFromGonum(t *testing.T) {
	src := mat.NewDense(2, 2, []float64{1.9, -1.9, 3, 4})

	f, err := matrix.FromGonum[float64](src)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1.9, -1.9}, {3, 4}}, f)

	i, err := matrix.FromGonum[int](src)
	require.NoError(t, err)
	CompareExact(t, [][]int{{1, -1}, {3, 4}}, i) // truncation toward zero

	bad := mat.NewDense(1, 2, []float64{1, math.NaN()})
	_, err = matrix.FromGonum[int](bad)
	AssertErrorIs(t, err, matrix.ErrInvalidArgument)

	// Floats keep NaN as-is.
	nan, err := matrix.FromGonum[float64](bad)
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt[float64](t, nan, 0, 1)))

	_, err = matrix.FromGonum[float64](nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFromGonum_IntegerRange(t *testing.T) {
	ok := mat.NewDense(1, 3, []float64{-128, 127.9, -0.5})
	m, err := matrix.FromGonum[int8](ok)
	require.NoError(t, err)
	CompareExact(t, [][]int8{{-128, 127, 0}}, m)

	u, err := matrix.FromGonum[uint8](mat.NewDense(1, 2, []float64{255, -0.9}))
	require.NoError(t, err)
	CompareExact(t, [][]uint8{{255, 0}}, u)

	tests := []struct {
		name string
		run  func(mat.Matrix) error
		x    float64
	}{
		{"int8 above", func(s mat.Matrix) error { _, err := matrix.FromGonum[int8](s); return err }, 128},
		{"int8 below", func(s mat.Matrix) error { _, err := matrix.FromGonum[int8](s); return err }, -129},
		{"uint8 negative", func(s mat.Matrix) error { _, err := matrix.FromGonum[uint8](s); return err }, -1},
		{"uint16 above", func(s mat.Matrix) error { _, err := matrix.FromGonum[uint16](s); return err }, 65536},
		{"int32 above", func(s mat.Matrix) error { _, err := matrix.FromGonum[int32](s); return err }, 1 << 31},
		{"int64 huge", func(s mat.Matrix) error { _, err := matrix.FromGonum[int64](s); return err }, 1e30},
		{"int64 2^63", func(s mat.Matrix) error { _, err := matrix.FromGonum[int64](s); return err }, 1 << 63},
		{"uint64 2^64", func(s mat.Matrix) error { _, err := matrix.FromGonum[uint64](s); return err }, 1 << 64},
		{"int +Inf", func(s mat.Matrix) error { _, err := matrix.FromGonum[int](s); return err }, math.Inf(1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			AssertErrorIs(t, tc.run(mat.NewDense(1, 1, []float64{tc.x})), matrix.ErrInvalidArgument)
		})
	}
}

func TestGonum_RoundTrip(t *testing.T) {
	A := MustFromRows(t, RandRows(4, 6, 21))
	g, err := matrix.AsGonum[float64](A)
	require.NoError(t, err)
	back, err := matrix.FromGonum[float64](g)
	require.NoError(t, err)
	require.True(t, A.Equal(back))
}

// TestMul_AgreesWithGonum cross-checks the naive kernels against gonum's BLAS
// backed implementation. Summation order differs, hence the tolerance.
func TestMul_AgreesWithGonum(t *testing.T) {
	const tol = 1e-12
	A := MustFromRows(t, RandRows(7, 5, 31))
	B := MustFromRows(t, RandRows(5, 9, 32))

	got, err := matrix.Mul(A, B)
	require.NoError(t, err)

	ga, err := matrix.AsGonum[float64](A)
	require.NoError(t, err)
	gb, err := matrix.AsGonum[float64](B)
	require.NoError(t, err)
	var want mat.Dense
	want.Mul(ga, gb)

	gotG, err := matrix.AsGonum[float64](got)
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(gotG, &want, tol), "Mul differs from gonum:\n%v", mat.Formatted(&want))

	// Sum, difference and Hadamard product.
	sum, err := matrix.Add(A, A)
	require.NoError(t, err)
	var wantSum mat.Dense
	wantSum.Add(ga, ga)
	gs, _ := matrix.AsGonum[float64](sum)
	require.True(t, mat.Equal(gs, &wantSum))

	diff, err := matrix.Sub(A, A)
	require.NoError(t, err)
	var wantDiff mat.Dense
	wantDiff.Sub(ga, ga)
	gd, _ := matrix.AsGonum[float64](diff)
	require.True(t, mat.Equal(gd, &wantDiff))

	had, err := matrix.Hadamard(A, A)
	require.NoError(t, err)
	var wantHad mat.Dense
	wantHad.MulElem(ga, ga)
	gh, _ := matrix.AsGonum[float64](had)
	require.True(t, mat.Equal(gh, &wantHad))

	scaled, err := matrix.Scale(A, 3.5)
	require.NoError(t, err)
	var wantScaled mat.Dense
	wantScaled.Scale(3.5, ga)
	gsc, _ := matrix.AsGonum[float64](scaled)
	require.True(t, mat.Equal(gsc, &wantScaled))
}
