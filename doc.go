// SPDX-License-Identifier: MIT

// Package denselu is a small dense-matrix toolkit over float64 values with
// LU and PLU factorization.
//
// Packages:
//
//	matrix/            Dense container, constructors, arithmetic, row operations, rendering
//	matrix/decompose/  LU (no pivoting) and PLU (single row-swap search), Solve, Det
//	internal/matrixfile/  YAML/JSON matrix documents
//	cmd/plu/           command-line front end
//
// Quick example:
//
//	a, _ := matrix.New([][]float64{{0, 1}, {1, 0}})
//	L, U, P, ok := decompose.PLU(a) // ok; P swaps rows 0 and 1
//
//	go install github.com/katalvlaran/denselu/cmd/plu@latest
package denselu
