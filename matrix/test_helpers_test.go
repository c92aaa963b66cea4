// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for builders/kernels.
//   • Keep fixtures explicit ([][]T literals) so expected values read like math.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algebra/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide[T]{X} in tests to force the non-*Dense (fallback) paths.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense
//     to isolate path differences.
type hide[T matrix.Number] struct{ matrix.Matrix[T] }

// MustFromRows builds a *Dense from row literals or fails the test.
func MustFromRows[T matrix.Number](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err, "FromRows(%v)", rows)

	return m
}

// MustNew calls matrix.New or fails the test.
func MustNew[T matrix.Number](t testing.TB, r, c int, opts ...matrix.Option[T]) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.New(r, c, opts...)
	require.NoError(t, err, "New(%d,%d)", r, c)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Number](t testing.TB, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// CompareExact asserts m has want's shape and identical cells.
func CompareExact[T matrix.Number](t testing.TB, want [][]T, m *matrix.Dense[T]) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, want, m.ToRows())
}

// AssertErrorIs asserts errors.Is(err, target) with a readable failure.
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, target)
}

// RandRows returns an r×c [][]float64 with deterministic U(-1,1) values.
func RandRows(r, c int, seed uint64) [][]float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x5bd1e995))
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = rng.Float64()*2 - 1
		}
	}

	return out
}

// IntRows returns an r×c [][]int with deterministic values in [-9, 9].
func IntRows(r, c int, seed uint64) [][]int {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	out := make([][]int, r)
	for i := range out {
		out[i] = make([]int, c)
		for j := range out[i] {
			out[i][j] = rng.IntN(19) - 9
		}
	}

	return out
}
