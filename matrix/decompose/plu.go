// SPDX-License-Identifier: MIT

package decompose

import (
	"github.com/katalvlaran/denselu/matrix"
)

// PLU factors P×m as L×U. It returns P = I when LU succeeds on m directly;
// otherwise P swaps the first row pair, in the order produced by Pairs, whose
// swap lets LU succeed. ok is false when m is not square or no single swap
// works.
func PLU(m *matrix.Dense, opts ...Option) (L, U, P *matrix.Dense, ok bool) {
	L, U, P, err := New(opts...).PLUExplain(m)

	return L, U, P, err == nil
}

// PLUExplain is PLU returning the cause of failure.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil input.
//   - ErrNotSquare when Rows() != Cols().
//   - ErrNoPermutation when neither m nor any single row swap of m factors.
func PLUExplain(m *matrix.Dense, opts ...Option) (L, U, P *matrix.Dense, err error) {
	return New(opts...).PLUExplain(m)
}

// Pairs lists every pair (i, j) with 0 <= i < j < n in ascending
// lexicographic order: (0,1), (0,2), ..., (0,n-1), (1,2), ...
// It returns an empty slice for n < 2.
func Pairs(n int) [][2]int {
	if n < 2 {
		return [][2]int{}
	}
	out := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, [2]int{i, j})
		}
	}

	return out
}
