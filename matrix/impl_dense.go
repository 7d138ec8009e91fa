// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & Bareiss determinant.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Open return errors instead of panicking.
//   - Compute exact integer determinants with fraction-free elimination (Bareiss).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Open: O(1); Clone: O(r*c); Det: O(n^3) time, O(n^2) space.

package matrix

// Dense is a concrete row-major storage.
//   - r,c hold dimensions (rows, cols), both >= 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - gen/open/openRow/openCol describe the single open cell (see cell.go).
type Dense[T Element] struct {
	r, c int
	data []T

	gen              uint64
	open             bool
	openRow, openCol int
}

// Compile-time assertions for interface conformance.
var (
	_ Storage[int64]   = (*Dense[int64])(nil)
	_ Storage[float64] = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Element](rows, cols int) (*Dense[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// newDenseFrom adopts data (len == rows*cols, already validated) without copying.
func newDenseFrom[T Element](rows, cols int, data []T) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: data}
}

// Kind reports KindDense.
func (m *Dense[T]) Kind() Kind { return KindDense }

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute flat offset for row-major storage.
//
// Behavior highlights:
//   - Rows are bounded by r and columns by c (never by r).
//   - Returns the bare sentinel; public methods wrap it with coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if err := validateIndex(row, col, m.r, m.c); err != nil {
		return 0, err
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, cellErrorf("Dense", ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) and closes the open cell, if any.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return cellErrorf("Dense", ctxSet, row, col, err)
	}
	m.closeCell()
	m.data[off] = v

	return nil
}

// Open returns the write-through token for (row, col).
// MAIN DESCRIPTION:
//   - Mutable element access honoring the single-open-cell contract.
//
// Implementation:
//   - Stage 1: bounds check (state untouched on failure).
//   - Stage 2: close the previous cell and bump the generation.
//   - Stage 3: issue a token bound to the new generation.
//
// Behavior highlights:
//   - Dense writes are O(1), so Cell.Set writes through immediately; the
//     token rules are still enforced so both backends behave identically.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Open(row, col int) (*Cell[T], error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, cellErrorf("Dense", ctxOpen, row, col, err)
	}
	m.closeCell()
	m.gen++
	m.open, m.openRow, m.openCol = true, row, col

	return &Cell[T]{owner: m, gen: m.gen, row: row, col: col, val: m.data[off]}, nil
}

func (m *Dense[T]) isOpen(gen uint64) bool { return m.open && m.gen == gen }

func (m *Dense[T]) writeCell(gen uint64, v T) error {
	if !m.isOpen(gen) {
		return matrixErrorf("Dense.Cell.Set", ErrStaleCell)
	}
	m.data[m.openRow*m.c+m.openCol] = v

	return nil
}

func (m *Dense[T]) commitCell(gen uint64) error {
	if !m.isOpen(gen) {
		return matrixErrorf("Dense.Cell."+ctxCommit, ErrStaleCell)
	}
	m.closeCell()

	return nil
}

// closeCell ends the open cell; values were already written through.
func (m *Dense[T]) closeCell() { m.open = false }

// NNZ counts cells holding a nonzero value.
// Complexity: O(r*c).
func (m *Dense[T]) NNZ() int {
	return countNonZero(m.data)
}

// DoNonZero visits nonzero cells in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c).
func (m *Dense[T]) DoNonZero(f func(i, j int, v T) bool) {
	var zero T
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if m.data[base+j] == zero {
				continue
			}
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Clone returns a deep copy (new buffer, no open cell).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() Storage[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// String renders the matrix with DefaultFormat.
func (m *Dense[T]) String() string { return Sprint[T](m, DefaultFormat()) }

// Det computes the determinant by fraction-free Gaussian elimination.
// MAIN DESCRIPTION:
//   - Bareiss elimination on a private copy; the receiver's data is never modified.
//
// Implementation:
//   - Stage 1: reject non-square shapes before any work.
//   - Stage 2: close the open cell (Det counts as a mutable access).
//   - Stage 3: run bareiss on a copy.
//
// Errors:
//   - ErrNonSquare when Rows() != Cols().
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Integer intermediates are exact divisions but may overflow T; overflow is not detected.
func (m *Dense[T]) Det() (T, error) {
	if err := validateSquare(m.r, m.c); err != nil {
		var zero T
		return zero, matrixErrorf("Dense."+ctxDet, err)
	}
	m.closeCell()

	return bareiss(m.data, m.r), nil
}

// bareiss returns det of the dim×dim row-major block in data.
//
// Loop invariant: after step k every entry a[i][j] with i,j > k equals the
// (k+1)-order leading minor bordered by row i and column j, so the division
// by the previous pivot is exact for integers.
func bareiss[T Element](data []T, dim int) T {
	var zero T

	buf := make([]T, dim*dim)
	copy(buf, data)
	a := make([][]T, dim) // row slices; swapping rows swaps headers only
	for i := 0; i < dim; i++ {
		a[i] = buf[i*dim : (i+1)*dim : (i+1)*dim]
	}

	prev := T(1)
	negate := false
	var i, j, k int
	for k = 0; k < dim-1; k++ {
		if a[k][k] == zero {
			p := -1
			for i = k + 1; i < dim; i++ {
				if a[i][k] != zero {
					p = i
					break
				}
			}
			if p < 0 {
				return zero // column k is zero from the diagonal down
			}
			a[k], a[p] = a[p], a[k]
			negate = !negate
		}

		rowK := a[k]
		akk := rowK[k]
		for i = k + 1; i < dim; i++ {
			rowI := a[i]
			aik := rowI[k]
			for j = k + 1; j < dim; j++ {
				rowI[j] = (rowI[j]*akk - rowK[j]*aik) / prev
			}
		}
		prev = akk
	}

	if negate {
		return -a[dim-1][dim-1]
	}

	return a[dim-1][dim-1]
}

// countNonZero counts entries different from T(0).
func countNonZero[T Element](data []T) int {
	var zero T
	n := 0
	for _, v := range data {
		if v != zero {
			n++
		}
	}

	return n
}
