// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/denselu/matrix"
)

func TestAddSub(t *testing.T) {
	a := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := MustNew(t, [][]float64{{0.5, -2}, {10, 0}})

	require.Equal(t, [][]float64{{1.5, 0}, {13, 4}}, matrix.Add(a, b).ToRows())
	require.Equal(t, [][]float64{{0.5, 4}, {-7, 4}}, matrix.Sub(a, b).ToRows())

	// operands untouched
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.ToRows())
	require.Equal(t, [][]float64{{0.5, -2}, {10, 0}}, b.ToRows())
}

// TestAddLaws checks commutativity and associativity on matching shapes.
func TestAddLaws(t *testing.T) {
	a := MustNew(t, [][]float64{{1, -2, 3}, {0.25, 5, -6}})
	b := MustNew(t, [][]float64{{7, 8, -9}, {1, 1, 1}})
	c := MustNew(t, [][]float64{{-0.5, 0, 2}, {3, -3, 0.125}})

	require.Equal(t, matrix.Add(a, b).ToRows(), matrix.Add(b, a).ToRows())
	assert.True(t, matrix.AllClose(
		matrix.Add(matrix.Add(a, b), c),
		matrix.Add(a, matrix.Add(b, c)),
		tol,
	))
}

func TestAddShapeMismatchPanics(t *testing.T) {
	a := matrix.Blank(2, 2)
	b := matrix.Blank(2, 3)

	RequirePanicsIs(t, matrix.ErrDimensionMismatch, func() { matrix.Add(a, b) })
	RequirePanicsIs(t, matrix.ErrDimensionMismatch, func() { matrix.Sub(a, b) })
	RequirePanicsIs(t, matrix.ErrDimensionMismatch, func() { matrix.Hadamard(a, b) })
	RequirePanicsIs(t, matrix.ErrNilMatrix, func() { matrix.Add(nil, b) })
}

func TestMul(t *testing.T) {
	a := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustNew(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	got := matrix.Mul(a, b)
	require.Equal(t, 2, got.Rows())
	require.Equal(t, 2, got.Cols())
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, got.ToRows())

	RequirePanicsIs(t, matrix.ErrDimensionMismatch, func() { matrix.Mul(a, a) })
}

// TestMulIdentityLaw verifies I(n) × M == M for an n×k matrix.
func TestMulIdentityLaw(t *testing.T) {
	m := MustNew(t, [][]float64{{1.5, -2, 0}, {3, 4.25, -1}, {0, 0, 9}, {-7, 1e-3, 2}})
	require.Equal(t, m.ToRows(), matrix.Mul(matrix.Identity(4), m).ToRows())
	require.Equal(t, m.ToRows(), matrix.Mul(m, matrix.Identity(3)).ToRows())
}

func TestMulDegenerate(t *testing.T) {
	a := matrix.Blank(2, 0)
	b := matrix.Blank(0, 3)
	require.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, matrix.Mul(a, b).ToRows())
}

func TestScaleDivide(t *testing.T) {
	m := MustNew(t, [][]float64{{2, -4}, {0.5, 8}})

	require.Equal(t, [][]float64{{6, -12}, {1.5, 24}}, matrix.Scale(m, 3).ToRows())
	require.Equal(t, [][]float64{{0, 0}, {0, 0}}, matrix.Scale(m, 0).ToRows())
	require.Equal(t, matrix.Scale(m, 1.0/4).ToRows(), matrix.Divide(m, 4).ToRows())
}

// TestDivideByZero ensures Divide propagates ±Inf exactly like Scale(m, 1/0).
func TestDivideByZero(t *testing.T) {
	m := MustNew(t, [][]float64{{1, -2}, {3, 4}})

	got := matrix.Divide(m, 0)
	require.Equal(t, matrix.Scale(m, math.Inf(1)).ToRows(), got.ToRows())
	v, _ := got.At(0, 1)
	require.True(t, math.IsInf(v, -1))

	z := MustNew(t, [][]float64{{0}})
	v, _ = matrix.Divide(z, 0).At(0, 0)
	require.True(t, math.IsNaN(v))
}

func TestHadamardTranspose(t *testing.T) {
	a := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustNew(t, [][]float64{{2, 0, -1}, {0.5, 1, 2}})

	require.Equal(t, [][]float64{{2, 0, -3}, {2, 5, 12}}, matrix.Hadamard(a, b).ToRows())
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, matrix.Transpose(a).ToRows())
}

func TestAllClose(t *testing.T) {
	a := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := MustNew(t, [][]float64{{1 + 1e-12, 2}, {3, 4 - 1e-12}})

	require.True(t, matrix.AllClose(a, b, tol))
	require.False(t, matrix.AllClose(a, b, 0))
	require.False(t, matrix.AllClose(a, matrix.Blank(2, 3), tol))
	require.False(t, matrix.AllClose(MustNew(t, [][]float64{{math.NaN()}}), MustNew(t, [][]float64{{math.NaN()}}), tol))
}
