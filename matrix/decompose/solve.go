// SPDX-License-Identifier: MIT

package decompose

import (
	"fmt"

	"github.com/katalvlaran/denselu/matrix"
)

const (
	opSolve = "Solve"
	opDet   = "Det"
)

// validateFactors checks that L, U and P are n×n for a common n.
func validateFactors(L, U, P *matrix.Dense) (int, error) {
	for _, f := range []*matrix.Dense{L, U, P} {
		if err := matrix.ValidateSquare(f); err != nil {
			return 0, err
		}
	}
	n := L.Rows()
	if U.Rows() != n || P.Rows() != n {
		return 0, matrix.ErrDimensionMismatch
	}

	return n, nil
}

// Solve returns x with A·x = b, given factors with P×A = L×U (as returned by
// PLU; pass matrix.Identity(n) as P for factors from LU).
// Blueprint:
//
//	Stage 1 (Validate): L, U, P share one n×n shape and len(b) == n.
//	Stage 2 (Permute): c = P·b.
//	Stage 3 (Forward): L·y = c; L carries the pivots on its diagonal.
//	Stage 4 (Backward): U·x = y.
//
// Errors:
//   - matrix.ErrNonSquare / matrix.ErrDimensionMismatch on bad shapes.
//   - ErrZeroPivot when L or U has a zero on its diagonal.
//
// Complexity: O(n²) time, O(n) memory.
func Solve(L, U, P *matrix.Dense, b []float64) ([]float64, error) {
	n, err := validateFactors(L, U, P)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	if err = matrix.ValidateVecLen(b, n); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	var (
		i, k  int
		sum   float64
		pivot float64
		row   []float64
	)

	// c = P·b
	c := make([]float64, n)
	for i = 0; i < n; i++ {
		row, _ = P.Row(i)
		sum = matrix.ZeroSum
		for k = 0; k < n; k++ {
			sum += row[k] * b[k]
		}
		c[i] = sum
	}

	// Forward substitution: L·y = c
	y := make([]float64, n)
	for i = 0; i < n; i++ {
		row, _ = L.Row(i)
		sum = matrix.ZeroSum
		for k = 0; k < i; k++ {
			sum += row[k] * y[k]
		}
		pivot = row[i]
		if pivot == zeroPivot {
			return nil, fmt.Errorf("%s: L(%d,%d): %w", opSolve, i, i, ErrZeroPivot)
		}
		y[i] = (c[i] - sum) / pivot
	}

	// Backward substitution: U·x = y
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		row, _ = U.Row(i)
		sum = matrix.ZeroSum
		for k = i + 1; k < n; k++ {
			sum += row[k] * x[k]
		}
		pivot = row[i]
		if pivot == zeroPivot {
			return nil, fmt.Errorf("%s: U(%d,%d): %w", opSolve, i, i, ErrZeroPivot)
		}
		x[i] = (y[i] - sum) / pivot
	}

	return x, nil
}

// Det returns det(A) for factors with P×A = L×U:
// det(A) = det(P) · Π L[i][i] · Π U[i][i], where det(P) = ±1.
//
// Errors: shape errors as in Solve; matrix.ErrDimensionMismatch when P is not
// a permutation matrix.
func Det(L, U, P *matrix.Dense) (float64, error) {
	n, err := validateFactors(L, U, P)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opDet, err)
	}
	sign, err := permutationSign(P)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opDet, err)
	}

	det := sign
	var l, u float64
	for i := 0; i < n; i++ {
		l, _ = L.At(i, i)
		u, _ = U.At(i, i)
		det *= l * u
	}

	return det, nil
}

// permutationSign returns +1 or -1 for an n×n permutation matrix P.
// The row→column map is decomposed into cycles; sign = (-1)^(n - cycles).
func permutationSign(P *matrix.Dense) (float64, error) {
	n := P.Rows()
	perm := make([]int, n)
	seenCol := make([]bool, n)
	for i := 0; i < n; i++ {
		perm[i] = -1
		for j := 0; j < n; j++ {
			v, _ := P.At(i, j)
			switch v {
			case 0:
			case 1:
				if perm[i] != -1 || seenCol[j] {
					return 0, matrix.ErrDimensionMismatch
				}
				perm[i] = j
				seenCol[j] = true
			default:
				return 0, matrix.ErrDimensionMismatch
			}
		}
		if perm[i] == -1 {
			return 0, matrix.ErrDimensionMismatch
		}
	}

	visited := make([]bool, n)
	cycles := 0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		cycles++
		for j := i; !visited[j]; j = perm[j] {
			visited[j] = true
		}
	}
	if (n-cycles)%2 == 0 {
		return 1, nil
	}

	return -1, nil
}
