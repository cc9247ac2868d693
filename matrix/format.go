// SPDX-License-Identifier: MIT

// Package matrix - text rendering.
//
// Convention: one line per row, each row framed by '|', entries joined by " ,".
// An entry is a sign character ('-' for negatives, ' ' otherwise) followed by
// the magnitude in fixed notation with a configurable number of decimals
// (DefaultPrecision when unspecified).
//
//	| 4.00 , 3.00|
//	| 6.00 ,-1.50|

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of decimals used by String and %v without
// an explicit precision.
const DefaultPrecision = 10

// ---------- Formatting literals ----------
const (
	_fmtRowFrame = '|'
	_fmtSep      = " ,"
	_fmtRowSep   = '\n'
	_fmtNeg      = '-'
	_fmtPos      = ' '
	_fmtInf      = "inf"
	_fmtNaN      = "NaN"
)

// Render formats m using prec decimals per entry. Negative prec is treated as 0.
// A nil Matrix (including a typed-nil *Dense) renders as "".
// A 0×k or k×0 matrix renders as its (possibly empty) framed rows.
// Complexity: O(r*c).
func Render(m Matrix, prec int) string {
	if ValidateNotNil(m) != nil {
		return ""
	}
	if prec < 0 {
		prec = 0
	}

	var b strings.Builder
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		if i > 0 {
			b.WriteByte(_fmtRowSep)
		}
		b.WriteByte(_fmtRowFrame)
		for j := 0; j < cols; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			v, _ := m.At(i, j) // indices are in range by construction
			writeEntry(&b, v, prec)
		}
		b.WriteByte(_fmtRowFrame)
	}

	return b.String()
}

// writeEntry appends the sign character and the fixed-notation magnitude of v.
func writeEntry(b *strings.Builder, v float64, prec int) {
	if v < 0 {
		b.WriteByte(_fmtNeg)
	} else {
		b.WriteByte(_fmtPos)
	}
	abs := math.Abs(v)
	switch {
	case math.IsNaN(abs):
		b.WriteString(_fmtNaN)
	case math.IsInf(abs, 1):
		b.WriteString(_fmtInf)
	default:
		b.WriteString(strconv.FormatFloat(abs, 'f', prec, 64))
	}
}

// String renders m with DefaultPrecision decimals.
func (m *Dense) String() string { return Render(m, DefaultPrecision) }

// Format implements fmt.Formatter: %v and %s use the row convention, with the
// verb's precision (e.g. %.3v) selecting the number of decimals.
// Other verbs fall back to a Go-syntax-like dump of the rows.
func (m *Dense) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		prec, ok := f.Precision()
		if !ok {
			prec = DefaultPrecision
		}
		_, _ = f.Write([]byte(Render(m, prec)))
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(matrix.Dense=%v)", verb, m.ToRows())
	}
}
