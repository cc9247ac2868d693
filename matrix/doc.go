// SPDX-License-Identifier: MIT

// Package matrix is a small dense-matrix library over float64 values.
//
// The matrix package provides:
//
//   - Dense: a row-major container with validated construction (New),
//     generators (Identity, Blank) and bounds-checked accessors.
//   - Arithmetic: Add, Sub, Hadamard, Mul, Transpose, Scale and Divide.
//     Each returns a freshly allocated Dense and never mutates its operands.
//   - ERO: the elementary row operation vocabulary (scale, add-scaled, swap)
//     used by the decompose subpackage.
//   - Render / String / %v formatting in the "|a ,b|" row convention.
//
// Two failure channels are kept apart:
// dimension mismatches in arithmetic are programmer errors and panic, while
// bad user input (ragged rows, out-of-range indices) is returned as an error
// wrapping one of the sentinels in errors.go.
//
// LU and PLU factorizations live in matrix/decompose.
package matrix
