package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algebra/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 6},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m, err := matrix.NewDense[float64](tc.rows, tc.cols)
			require.NoError(t, err)
			r, c := m.Shape()
			require.Equal(t, tc.rows, r)
			require.Equal(t, tc.cols, c)
			m.Do(func(i, j int, v float64) bool {
				require.Zero(t, v, "element [%d,%d]", i, j)
				return true
			})
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 1}, {1, 0}, {-1, 3}, {0, 0}} {
		_, err := matrix.NewDense[int](tc.rows, tc.cols)
		AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestFromRows(t *testing.T) {
	t.Run("copies input", func(t *testing.T) {
		src := [][]int{{1, 2, 3}, {4, 5, 6}}
		m := MustFromRows(t, src)
		src[0][0] = 100
		require.Equal(t, 1, MustAt[int](t, m, 0, 0))
		require.Equal(t, 6, MustAt[int](t, m, 1, 2))
	})
	t.Run("ragged", func(t *testing.T) {
		_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
		AssertErrorIs(t, err, matrix.ErrBadShape)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := matrix.FromRows[float64](nil)
		AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
		_, err = matrix.FromRows([][]float64{{}})
		AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
	})
}

func TestFromFlat(t *testing.T) {
	m, err := matrix.FromFlat(2, 3, []int64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	CompareExact(t, [][]int64{{1, 2, 3}, {4, 5, 6}}, m)

	_, err = matrix.FromFlat(2, 2, []int64{1, 2, 3})
	AssertErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromFlat(0, 2, []int64{})
	AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtOutOfRange(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(ij[0], ij[1])
		AssertErrorIs(t, err, matrix.ErrOutOfRange)
	}
	_, err := m.Row(2)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_RowAndToRowsAreCopies(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	row[0] = -1

	rows := m.ToRows()
	rows[0][1] = -1

	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m := MustFromRows(t, [][]int{{1, 2}, {3, 4}})
	cp := m.Clone()
	require.True(t, m.Equal(cp))
	require.NotSame(t, m, cp)

	// A kernel on the clone must not touch the original.
	doubled, err := matrix.Scale[int](cp, 2)
	require.NoError(t, err)
	CompareExact(t, [][]int{{2, 4}, {6, 8}}, doubled)
	CompareExact(t, [][]int{{1, 2}, {3, 4}}, m)
}

func TestDense_Equal(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}})
	assert.True(t, a.Equal(MustFromRows(t, [][]float64{{1, 2}})))
	assert.False(t, a.Equal(MustFromRows(t, [][]float64{{1, 3}})))
	assert.False(t, a.Equal(MustFromRows(t, [][]float64{{1}, {2}})))
	assert.False(t, a.Equal(nil))

	var nilDense *matrix.Dense[float64]
	assert.True(t, nilDense.Equal(nil))
}

func TestDense_DoEarlyExit(t *testing.T) {
	m := MustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	var seen []int
	m.Do(func(_, _ int, v int) bool {
		seen = append(seen, v)
		return v < 4
	})
	require.Equal(t, []int{1, 2, 3, 4}, seen)
}

func TestDense_String(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2.5}, {-3, 4}})
	require.Equal(t, "[1, 2.5]\n[-3, 4]\n", m.String())
}
