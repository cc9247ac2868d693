// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and assertions shared by the
//     matrix tests.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/denselu/matrix"
)

// tol is the per-entry tolerance used by approximate comparisons.
const tol = 1e-9

// MustNew builds a Dense from rows or fails the test.
func MustNew(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(rows)
	require.NoError(t, err)

	return m
}

// RequirePanicsIs asserts that fn panics with an error matching target via errors.Is.
func RequirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()
	fn()
}
