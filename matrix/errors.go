// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Recoverable conditions are returned and matched via errors.Is.
// Contract violations (shape mismatch in arithmetic, negative sizes) panic
// with an error value wrapping one of these sentinels.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency. Context is
// added with fmt.Errorf("ctx: %w", ErrX); callers still use errors.Is.

var (
	// ErrRaggedInput is returned by New when the source rows differ in length.
	ErrRaggedInput = errors.New("matrix: ragged input rows")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/ApplyERO) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrUnknownERO marks an elementary row operation with an unknown kind.
	ErrUnknownERO = errors.New("matrix: unknown row operation")
)
