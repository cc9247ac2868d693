// SPDX-License-Identifier: MIT

package decompose_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/denselu/matrix"
	"github.com/katalvlaran/denselu/matrix/decompose"
)

func TestSolve(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		b    []float64
		want []float64
	}{
		{"no swap", [][]float64{{4, 3}, {6, 3}}, []float64{10, 12}, []float64{1, 2}},
		{"swap", [][]float64{{0, 1}, {1, 0}}, []float64{2, 3}, []float64{3, 2}},
		{"3x3 swap (0,2)", [][]float64{{1, 2, 3}, {2, 4, 7}, {1, 1, 1}}, []float64{14, 31, 6}, []float64{1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := mustNew(t, tc.rows)
			L, U, P, ok := decompose.PLU(a)
			require.True(t, ok)

			x, err := decompose.Solve(L, U, P, tc.b)
			require.NoError(t, err)
			require.InDeltaSlice(t, tc.want, x, tol)

			// A·x reproduces b
			ax := matrix.Mul(a, column(t, x))
			for i, bi := range tc.b {
				v, _ := ax.At(i, 0)
				require.InDelta(t, bi, v, tol)
			}
		})
	}
}

// column turns x into an n×1 matrix.
func column(t *testing.T, x []float64) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, len(x))
	for i, v := range x {
		rows[i] = []float64{v}
	}

	return mustNew(t, rows)
}

func TestSolveErrors(t *testing.T) {
	L, U, P, ok := decompose.PLU(mustNew(t, [][]float64{{4, 3}, {6, 3}}))
	require.True(t, ok)

	_, err := decompose.Solve(L, U, P, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = decompose.Solve(L, U, matrix.Identity(3), []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = decompose.Solve(matrix.Blank(2, 2), U, P, []float64{1, 2})
	require.ErrorIs(t, err, decompose.ErrZeroPivot)

	_, err = decompose.Solve(matrix.Blank(2, 3), U, P, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestDet(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"2x2", [][]float64{{4, 3}, {6, 3}}, -6},
		{"swap", [][]float64{{0, 1}, {1, 0}}, -1},
		{"3x3 swap (0,2)", [][]float64{{1, 2, 3}, {2, 4, 7}, {1, 1, 1}}, 1},
		{"empty", nil, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			L, U, P, ok := decompose.PLU(mustNew(t, tc.rows))
			require.True(t, ok)
			det, err := decompose.Det(L, U, P)
			require.NoError(t, err)
			require.InDelta(t, tc.want, det, tol)
		})
	}
}

func TestDetRejectsNonPermutation(t *testing.T) {
	L := matrix.Identity(2)
	U := matrix.Identity(2)

	_, err := decompose.Det(L, U, matrix.Scale(matrix.Identity(2), 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = decompose.Det(L, U, matrix.Blank(2, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
