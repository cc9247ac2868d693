// SPDX-License-Identifier: MIT

package decompose_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/denselu/matrix"
	"github.com/katalvlaran/denselu/matrix/decompose"
)

func TestTraceLU(t *testing.T) {
	a := mustNew(t, [][]float64{{4, 3}, {6, 3}})
	tr := &decompose.Trace{}

	_, U, ok := decompose.LU(a, decompose.WithTrace(tr))
	require.True(t, ok)
	require.Equal(t, []matrix.ERO{
		matrix.ScaleRow(0, 0.25),
		matrix.AddScaledRow(1, 0, -6),
		matrix.ScaleRow(1, 1/-1.5),
	}, tr.Steps())
	require.Equal(t, 3, tr.Len())

	// Replaying the log on a copy of A rebuilds U.
	work := a.CloneDense()
	require.NoError(t, tr.Replay(work))
	requireSameRows(t, U.ToRows(), work)
}

func TestTraceSubnormalPivotOverflowsOnReplay(t *testing.T) {
	a := mustNew(t, [][]float64{{5e-324}})
	tr := &decompose.Trace{}

	_, U, ok := decompose.LU(a, decompose.WithTrace(tr))
	require.True(t, ok)
	requireSameRows(t, [][]float64{{1}}, U)

	steps := tr.Steps()
	require.Len(t, steps, 1)
	assert.True(t, math.IsInf(steps[0].Factor, 1))

	work := a.CloneDense()
	require.NoError(t, tr.Replay(work))
	v, _ := work.At(0, 0)
	assert.True(t, math.IsInf(v, 1))
}

func TestTracePLURecordsWinningSwapOnly(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3}, {2, 4, 7}, {1, 1, 1}})
	tr := &decompose.Trace{}

	_, U, _, ok := decompose.PLU(a, decompose.WithTrace(tr))
	require.True(t, ok)

	steps := tr.Steps()
	require.NotEmpty(t, steps)
	require.Equal(t, matrix.SwapRows(0, 2), steps[0])
	for _, op := range steps[1:] {
		assert.NotEqual(t, matrix.EROSwap, op.Kind)
	}

	work := a.CloneDense()
	require.NoError(t, tr.Replay(work))
	requireSameRows(t, U.ToRows(), work)

	tr.Reset()
	require.Zero(t, tr.Len())
	require.Empty(t, tr.String())
}

func TestTraceFailureRecordsNothing(t *testing.T) {
	tr := &decompose.Trace{}
	_, _, _, ok := decompose.PLU(mustNew(t, [][]float64{{1, 2}, {2, 4}}), decompose.WithTrace(tr))
	require.False(t, ok)
	require.Zero(t, tr.Len())
}

func TestTraceString(t *testing.T) {
	tr := &decompose.Trace{}
	_, _, _, ok := decompose.PLU(mustNew(t, [][]float64{{0, 1}, {1, 0}}), decompose.WithTrace(tr))
	require.True(t, ok)
	require.Equal(t, "R0 <-> R1\nR0 *= 1\nR1 *= 1", tr.String())
}

func TestDecomposerReuse(t *testing.T) {
	d := decompose.New(decompose.WithName("reuse"))

	_, _, ok := d.LU(mustNew(t, [][]float64{{2, 0}, {0, 2}}))
	require.True(t, ok)
	_, _, _, ok = d.PLU(mustNew(t, [][]float64{{0, 2}, {2, 0}}))
	require.True(t, ok)
	_, _, ok = d.LU(mustNew(t, [][]float64{{0, 2}, {2, 0}}))
	require.False(t, ok)
}

func TestOptionsPanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { decompose.WithTrace(nil) })
	require.Panics(t, func() { decompose.WithName("") })
	require.NotPanics(t, func() { decompose.New(nil) })
}
