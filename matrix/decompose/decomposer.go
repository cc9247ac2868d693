// SPDX-License-Identifier: MIT

package decompose

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/denselu/matrix"
)

// Decomposer runs LU/PLU factorizations with a fixed set of options.
// The zero value is not usable; build one with New.
type Decomposer struct {
	opts Options
}

// New returns a Decomposer configured by opts.
func New(opts ...Option) *Decomposer {
	return &Decomposer{opts: gatherOptions(opts...)}
}

// LU is the bool-returning form of LUExplain.
func (d *Decomposer) LU(m *matrix.Dense) (L, U *matrix.Dense, ok bool) {
	L, U, err := d.LUExplain(m)

	return L, U, err == nil
}

// PLU is the bool-returning form of PLUExplain.
func (d *Decomposer) PLU(m *matrix.Dense) (L, U, P *matrix.Dense, ok bool) {
	L, U, P, err := d.PLUExplain(m)

	return L, U, P, err == nil
}

// LUExplain factors m without pivoting; see the package-level LUExplain.
func (d *Decomposer) LUExplain(m *matrix.Dense) (L, U *matrix.Dense, err error) {
	if err = matrix.ValidateSquare(m); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opLU, err)
	}

	U, L, err = d.attempt(m.CloneDense(), nil)
	if err != nil {
		log.Debugf("%s: LU of %dx%d failed: %v", d.opts.name, m.Rows(), m.Cols(), err)
		return nil, nil, fmt.Errorf("%s: %w", opLU, err)
	}

	return L, U, nil
}

// PLUExplain factors P×m as L×U, searching single row swaps when plain
// elimination fails; see the package-level PLUExplain.
func (d *Decomposer) PLUExplain(m *matrix.Dense) (L, U, P *matrix.Dense, err error) {
	if err = matrix.ValidateSquare(m); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", opPLU, err)
	}
	n := m.Rows()

	U, L, err = d.attempt(m.CloneDense(), nil)
	if err == nil {
		return L, U, matrix.Identity(n), nil
	}
	if !errors.Is(err, ErrZeroPivot) {
		return nil, nil, nil, fmt.Errorf("%s: %w", opPLU, err)
	}
	log.Debugf("%s: PLU of %dx%d: identity order failed (%v), searching row swaps", d.opts.name, n, n, err)

	// The pair domain is 0..Cols(); Rows() == Cols() here.
	for _, pair := range Pairs(m.Cols()) {
		swap := matrix.SwapRows(pair[0], pair[1])

		P = matrix.Identity(n)
		_ = P.ApplyERO(swap)

		work := m.CloneDense()
		_ = work.ApplyERO(swap)

		U, L, err = d.attempt(work, &swap)
		if err == nil {
			log.Infof("%s: PLU of %dx%d: rows %d and %d swapped", d.opts.name, n, n, pair[0], pair[1])
			return L, U, P, nil
		}
		log.Debugf("%s: PLU swap (%d,%d) failed: %v", d.opts.name, pair[0], pair[1], err)
	}

	return nil, nil, nil, fmt.Errorf("%s: %dx%d: %w", opPLU, n, n, ErrNoPermutation)
}

// attempt eliminates work in place (work becomes U) and commits the ERO log
// to the configured trace on success. pre, if non-nil, is the swap that
// produced work and is recorded ahead of the elimination steps.
func (d *Decomposer) attempt(work *matrix.Dense, pre *matrix.ERO) (U, L *matrix.Dense, err error) {
	var steps *[]matrix.ERO
	if d.opts.trace != nil {
		buf := make([]matrix.ERO, 0, work.Rows()*work.Rows())
		if pre != nil {
			buf = append(buf, *pre)
		}
		steps = &buf
	}

	L, err = eliminate(work, steps)
	if err != nil {
		return nil, nil, err
	}
	if steps != nil {
		d.opts.trace.append(*steps...)
	}

	return work, L, nil
}
