// SPDX-License-Identifier: MIT

// Package decompose factors square matrices into triangular parts.
//
// LU runs Gaussian elimination without any pivot search: row r is divided by
// its pivot U[r][r] (which is recorded on L's diagonal) and every nonzero
// entry below the pivot is eliminated, its multiplier stored in L. A pivot
// that is exactly 0.0 aborts the factorization; there is no tolerance.
//
// PLU first tries LU on the matrix as given. When that fails it walks every
// pair of rows (i, j), i < j, in ascending lexicographic order, swaps that
// single pair in a fresh copy of the input and retries LU. The first success
// wins and is returned together with the matching permutation matrix P, so
// that L×U == P×A. Only single swaps are searched: a matrix whose rows need a
// 3-cycle (or two disjoint swaps) to expose nonzero pivots reports failure
// even though a PLU factorization exists.
//
// The bool-returning LU and PLU collapse every failure (not square, zero
// pivot, exhausted search) into ok == false. LUExplain and PLUExplain return
// the same results with a sentinel error naming the cause.
//
// Inputs are never mutated; every attempt works on its own clone.
package decompose
