// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations.
//
// An ERO is a value describing one primitive row transform. Gaussian
// elimination is a sequence of them; the decompose package applies swaps
// through ApplyERO and can record its whole elimination as a trace.

package matrix

import "fmt"

// EROKind tags the three primitive row transforms.
type EROKind uint8

const (
	// EROScale multiplies row Row by Factor.
	EROScale EROKind = iota + 1
	// EROAddScaled adds Factor times row Src to row Row.
	EROAddScaled
	// EROSwap exchanges rows Row and Src.
	EROSwap
)

// String returns a short name for k.
func (k EROKind) String() string {
	switch k {
	case EROScale:
		return "scale"
	case EROAddScaled:
		return "add"
	case EROSwap:
		return "swap"
	default:
		return fmt.Sprintf("EROKind(%d)", uint8(k))
	}
}

// ERO is one elementary row operation. Src is unused by EROScale and
// Factor is unused by EROSwap.
type ERO struct {
	Kind   EROKind
	Row    int
	Src    int
	Factor float64
}

// ScaleRow builds the ERO "row *= factor".
func ScaleRow(row int, factor float64) ERO {
	return ERO{Kind: EROScale, Row: row, Factor: factor}
}

// AddScaledRow builds the ERO "row += factor*src".
func AddScaledRow(row, src int, factor float64) ERO {
	return ERO{Kind: EROAddScaled, Row: row, Src: src, Factor: factor}
}

// SwapRows builds the ERO "row <-> src".
func SwapRows(row, src int) ERO {
	return ERO{Kind: EROSwap, Row: row, Src: src}
}

// String renders op in a compact, log-friendly form.
func (op ERO) String() string {
	switch op.Kind {
	case EROScale:
		return fmt.Sprintf("R%d *= %g", op.Row, op.Factor)
	case EROAddScaled:
		return fmt.Sprintf("R%d += %g*R%d", op.Row, op.Factor, op.Src)
	case EROSwap:
		return fmt.Sprintf("R%d <-> R%d", op.Row, op.Src)
	default:
		return op.Kind.String()
	}
}

// ApplyERO performs op on m in place.
//
// Errors:
//   - ErrOutOfRange when Row (or Src for add/swap) is not a valid row.
//   - ErrUnknownERO for an unrecognised Kind.
//
// Complexity: O(c).
func (m *Dense) ApplyERO(op ERO) error {
	if op.Kind < EROScale || op.Kind > EROSwap {
		return fmt.Errorf("ApplyERO: %w", ErrUnknownERO)
	}
	if op.Row < 0 || op.Row >= m.r {
		return fmt.Errorf("ApplyERO(%v): %w", op, ErrOutOfRange)
	}
	if op.Kind != EROScale && (op.Src < 0 || op.Src >= m.r) {
		return fmt.Errorf("ApplyERO(%v): %w", op, ErrOutOfRange)
	}

	dst := m.RowView(op.Row)
	switch op.Kind {
	case EROScale:
		for j := range dst {
			dst[j] *= op.Factor
		}
	case EROAddScaled:
		src := m.RowView(op.Src)
		for j := range dst {
			dst[j] += op.Factor * src[j]
		}
	case EROSwap:
		if op.Row == op.Src {
			return nil
		}
		src := m.RowView(op.Src)
		for j := range dst {
			dst[j], src[j] = src[j], dst[j]
		}
	}

	return nil
}
