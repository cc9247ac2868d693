// SPDX-License-Identifier: MIT

package decompose

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/katalvlaran/denselu/matrix"
)

// zeroPivot is compared with == against each pivot, so -0 also matches; no tolerance is applied.
const zeroPivot = 0.0

// Operation tags for error wrapping.
const (
	opLU  = "LU"
	opPLU = "PLU"
)

// LU factors the square matrix m as L×U using Gaussian elimination without
// pivoting. ok is false when m is not square or a zero pivot is met.
// See LUExplain for the same computation with a failure reason.
func LU(m *matrix.Dense, opts ...Option) (L, U *matrix.Dense, ok bool) {
	L, U, err := New(opts...).LUExplain(m)

	return L, U, err == nil
}

// LUExplain is LU returning the cause of failure.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil input.
//   - ErrNotSquare when Rows() != Cols().
//   - ErrZeroPivot (wrapped with the pivot index) when U[r][r] == 0 at step r.
func LUExplain(m *matrix.Dense, opts ...Option) (L, U *matrix.Dense, err error) {
	return New(opts...).LUExplain(m)
}

// eliminate reduces work to U in place and returns the matching L.
// MAIN DESCRIPTION:
//   - Row-echelon reduction with multiplier tracking on a caller-owned copy.
//
// Implementation:
//   - Stage 1: L = I(n).
//   - Stage 2: for each pivot row r ascending:
//     a) scale = U[r][r]; exact zero aborts with ErrZeroPivot.
//     b) U[r][*] /= scale; L[r][r] = scale.
//     c) for each below > r with mult = U[below][r] != 0:
//     U[below][0..r] = 0, U[below][k] -= mult*U[r][k] for k > r,
//     L[below][r] = mult. Rows with a zero in column r are left untouched.
//
// Behavior highlights:
//   - steps, when non-nil, receives the EROs performed, in order.
//   - On success L×U equals the matrix work held on entry, up to rounding.
//
// Complexity:
//   - Time O(n³), Space O(n²) for L plus one O(n) scratch row.
func eliminate(work *matrix.Dense, steps *[]matrix.ERO) (*matrix.Dense, error) {
	n := work.Rows()
	L := matrix.Identity(n)
	scratch := make([]float64, n)

	var (
		r, below, k int
		scale, mult float64
	)
	for r = 0; r < n; r++ {
		pivotRow := work.RowView(r)
		scale = pivotRow[r]
		if scale == zeroPivot {
			return nil, fmt.Errorf("pivot (%d,%d): %w", r, r, ErrZeroPivot)
		}
		for k = range pivotRow {
			pivotRow[k] /= scale
		}
		_ = L.Set(r, r, scale)
		if steps != nil {
			*steps = append(*steps, matrix.ScaleRow(r, 1/scale))
		}

		tail := pivotRow[r+1:]
		tmp := scratch[:len(tail)]
		for below = r + 1; below < n; below++ {
			row := work.RowView(below)
			mult = row[r]
			if mult == 0 {
				continue
			}
			for k = 0; k <= r; k++ {
				row[k] = 0
			}
			if len(tail) > 0 {
				// row[r+1:] += (-mult) * pivotRow[r+1:]
				vecmath.ScaleBlock(tmp, tail, -mult)
				vecmath.AddBlockInPlace(row[r+1:], tmp)
			}
			_ = L.Set(below, r, mult)
			if steps != nil {
				*steps = append(*steps, matrix.AddScaledRow(below, r, -mult))
			}
		}
	}

	return L, nil
}
