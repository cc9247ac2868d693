// SPDX-License-Identifier: MIT

package decompose

import (
	"strings"

	"github.com/katalvlaran/denselu/matrix"
)

// Trace is an append-only log of elementary row operations.
// A Trace is not safe for concurrent use.
type Trace struct {
	steps []matrix.ERO
}

// Steps returns a copy of the recorded operations in execution order.
func (t *Trace) Steps() []matrix.ERO {
	out := make([]matrix.ERO, len(t.steps))
	copy(out, t.steps)

	return out
}

// Len returns the number of recorded operations.
func (t *Trace) Len() int { return len(t.steps) }

// Reset drops all recorded operations.
func (t *Trace) Reset() { t.steps = t.steps[:0] }

// String renders one operation per line.
func (t *Trace) String() string {
	var b strings.Builder
	for i, op := range t.steps {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(op.String())
	}

	return b.String()
}

func (t *Trace) append(ops ...matrix.ERO) {
	t.steps = append(t.steps, ops...)
}

// Replay applies the recorded operations to m in order.
// Replaying the trace of LU(A) on a copy of A yields U up to rounding:
// elimination divides by each pivot, while the trace records a scale by
// 1/pivot. For a subnormal pivot 1/pivot overflows to ±Inf, so the replayed
// rows become non-finite even though U itself may still hold finite entries.
func (t *Trace) Replay(m *matrix.Dense) error {
	for _, op := range t.steps {
		if err := m.ApplyERO(op); err != nil {
			return err
		}
	}

	return nil
}
