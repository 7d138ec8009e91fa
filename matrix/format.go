// SPDX-License-Identifier: MIT

// Package matrix - human-readable printing.
//
// Purpose:
//   - Render any Reader (Matrix, *Dense, *Sparse) through an explicit Format value.
//   - No process-wide formatting state: every call receives its Format.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Format parameterizes Fprint. The zero value prints items back to back.
type Format struct {
	ItemSep     string // between items of a row
	RowOpen     string // before each row
	RowClose    string // after each row
	RowSep      string // between rows
	MatrixOpen  string // before the first row
	MatrixClose string // after the last row
}

// DefaultFormat returns the format used by String methods:
//
//	[1 0]
//	[0 1]
func DefaultFormat() Format {
	return Format{
		ItemSep:     " ",
		RowOpen:     "[",
		RowClose:    "]",
		RowSep:      "\n",
		MatrixOpen:  "",
		MatrixClose: "\n",
	}
}

// Fprint writes m to w using f. Only Rows, Cols and At are used.
// Errors:
//   - the first write error of w, or an At error (never expected for in-range reads).
//
// Complexity:
//   - Time O(r*c) At calls.
func Fprint[T Element](w io.Writer, m Reader[T], f Format) error {
	bw := bufio.NewWriter(w)
	rows, cols := m.Rows(), m.Cols()

	bw.WriteString(f.MatrixOpen)
	var i, j int
	for i = 0; i < rows; i++ {
		if i > 0 {
			bw.WriteString(f.RowSep)
		}
		bw.WriteString(f.RowOpen)
		for j = 0; j < cols; j++ {
			if j > 0 {
				bw.WriteString(f.ItemSep)
			}
			v, err := m.At(i, j)
			if err != nil {
				return matrixErrorf("Fprint", err)
			}
			fmt.Fprint(bw, v)
		}
		bw.WriteString(f.RowClose)
	}
	bw.WriteString(f.MatrixClose)

	// bufio.Writer keeps the first error; Flush reports it.
	if err := bw.Flush(); err != nil {
		return matrixErrorf("Fprint", err)
	}

	return nil
}

// Sprint returns m rendered with f.
// Matrix, *Dense and *Sparse never fail an in-range At. For any other Reader
// an At error yields "" here; call Fprint to get the error.
func Sprint[T Element](m Reader[T], f Format) string {
	var b strings.Builder
	if err := Fprint(&b, m, f); err != nil {
		return ""
	}

	return b.String()
}
