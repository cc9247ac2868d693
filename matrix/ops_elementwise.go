// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) over the flat
//     row-major buffers so Add/Sub/Scale/Hadamard share one tight loop each.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels); shapes are validated
//     by the public facade before they run.
//   - The inner loops are delegated to algo-vecmath block kernels.
//
// Determinism & Performance:
//   - Flat 0..n-1 traversal; one output allocation per call.

package matrix

import (
	vecmath "github.com/cwbudde/algo-vecmath"
)

// ewAxpy returns a fresh Dense holding a + alpha*b.
// alpha = 1 is Add, alpha = -1 is Sub. Shapes must already match.
// Time: O(r*c). Space: O(r*c) for the result plus one scratch buffer when alpha != 1.
func ewAxpy(a, b *Dense, alpha float64) *Dense {
	out := a.CloneDense()
	if len(out.data) == 0 {
		return out
	}
	if alpha == 1 {
		vecmath.AddBlockInPlace(out.data, b.data)
		return out
	}
	tmp := make([]float64, len(b.data))
	vecmath.ScaleBlock(tmp, b.data, alpha)
	vecmath.AddBlockInPlace(out.data, tmp)

	return out
}

// ewScale returns a fresh Dense holding alpha*a.
// Time: O(r*c). Space: O(r*c).
func ewScale(a *Dense, alpha float64) *Dense {
	out := Blank(a.r, a.c)
	if len(out.data) == 0 {
		return out
	}
	vecmath.ScaleBlock(out.data, a.data, alpha)

	return out
}

// ewMul returns a fresh Dense holding a ⊙ b. Shapes must already match.
// Time: O(r*c). Space: O(r*c).
func ewMul(a, b *Dense) *Dense {
	out := Blank(a.r, a.c)
	if len(out.data) == 0 {
		return out
	}
	vecmath.MulBlock(out.data, a.data, b.data)

	return out
}
