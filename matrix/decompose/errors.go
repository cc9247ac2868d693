// SPDX-License-Identifier: MIT

package decompose

import (
	"errors"

	"github.com/katalvlaran/denselu/matrix"
)

var (
	// ErrNotSquare is returned when the input has Rows() != Cols().
	// It aliases matrix.ErrNonSquare so errors.Is matches either name.
	ErrNotSquare = matrix.ErrNonSquare

	// ErrZeroPivot is returned when elimination meets a pivot that is exactly zero.
	ErrZeroPivot = errors.New("decompose: zero pivot")

	// ErrNoPermutation is returned by PLUExplain when no single row swap
	// produces a matrix that LU can factor.
	ErrNoPermutation = errors.New("decompose: no row swap yields a nonzero pivot sequence")
)
