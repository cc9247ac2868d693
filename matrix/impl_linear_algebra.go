// SPDX-License-Identifier: MIT
// Package matrix provides arithmetic on Dense matrices: element-wise
// addition and subtraction, the Hadamard product, matrix multiplication,
// transpose, and scalar scaling/division.
//
// Purpose:
//   - Every operation returns a freshly allocated *Dense; operands are never mutated.
//   - Shape contracts are enforced through the central validators and escalated
//     to a panic (mustValidate): a mismatched operand is a caller bug, so there
//     is no error return to branch on.
//
// Notes:
//   - Panic values are errors wrapping ErrNilMatrix or ErrDimensionMismatch,
//     formatted "<Op>: <validator>: <sentinel>" so recover() sites can use errors.Is.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for dot products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opDivide    = "Divide"
	opHadamard  = "Hadamard"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns the element-wise sum a + b.
//
// Contract: a and b non-nil with identical shapes; otherwise Add panics with
// an error wrapping ErrDimensionMismatch (or ErrNilMatrix).
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Dense) *Dense {
	mustValidate(opAdd, ValidateBinarySameShape(a, b))

	return ewAxpy(a, b, 1)
}

// Sub returns the element-wise difference a - b.
// Same contract as Add.
func Sub(a, b *Dense) *Dense {
	mustValidate(opSub, ValidateBinarySameShape(a, b))

	return ewAxpy(a, b, -1)
}

// Hadamard computes the element-wise product (a ⊙ b).
// Hadamard ≠ matrix multiplication; use Mul for A×B. Same contract as Add.
func Hadamard(a, b *Dense) *Dense {
	mustValidate(opHadamard, ValidateBinarySameShape(a, b))

	return ewMul(a, b)
}

// Mul computes the matrix product a × b.
// MAIN DESCRIPTION:
//   - Result is a.Rows() × b.Cols() with entry (i,j) = Σ_k a[i][k]·b[k][j].
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); panic on mismatch.
//   - Stage 2: i-j-k triple loop over the flat buffers; the sum for each
//     (i,j) is accumulated in ascending k so results are bitwise stable.
//
// Determinism:
//   - Fixed loop order independent of values.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) *Dense {
	mustValidate(opMul, ValidateMulCompatible(a, b))

	res := Blank(a.r, b.c)
	var (
		i, j, k    int
		rowA, rowR int
		sum        float64
	)
	for i = 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for j = 0; j < b.c; j++ {
			sum = ZeroSum
			for k = 0; k < a.c; k++ {
				sum += a.data[rowA+k] * b.data[k*b.c+j]
			}
			res.data[rowR+j] = sum
		}
	}

	return res
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Panics with ErrNilMatrix on a nil operand.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Dense) *Dense {
	mustValidate(opTranspose, ValidateNotNil(m))

	res := Blank(m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res
}

// Scale returns alpha*m.
// alpha = 0 yields an explicit zero matrix with the same shape.
func Scale(m *Dense, alpha float64) *Dense {
	mustValidate(opScale, ValidateNotNil(m))

	return ewScale(m, alpha)
}

// Divide returns m scaled by 1/k.
// k == 0 is not special-cased: entries become ±Inf (or NaN for 0/0) exactly
// as plain float64 division would.
func Divide(m *Dense, k float64) *Dense {
	mustValidate(opDivide, ValidateNotNil(m))

	return ewScale(m, 1/k)
}

// AllClose reports whether a and b have the same shape and every pair of
// entries differs by at most tol. NaN never compares close.
// Panics on nil operands; a shape difference simply reports false.
func AllClose(a, b *Dense, tol float64) bool {
	mustValidate(opAllClose, ValidateNotNil(a))
	mustValidate(opAllClose, ValidateNotNil(b))
	if ValidateSameShape(a, b) != nil {
		return false
	}
	for idx := range a.data {
		if !(math.Abs(a.data[idx]-b.data[idx]) <= tol) {
			return false
		}
	}

	return true
}
