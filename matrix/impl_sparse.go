// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (compressed rows) & pruned permutation determinant.
//
// Purpose:
//   - Store only nonzero entries: one slice per row, strictly increasing by column.
//   - Canonical form: no stored entry ever holds T(0). Writing zero removes the entry.
//   - Defer sorted inserts/removals through the single open Cell (see cell.go).
//   - Compute determinants by enumerating only the permutations the sparsity
//     pattern allows, instead of all n! of them.
//
// Complexity quicksheet:
//   - NewSparse: O(r); At: O(log k) with k = row's entry count; Set/commit: O(k);
//     Open: O(log k) plus the commit of the previous cell; Clone: O(r + nnz);
//     Det: proportional to the number of partial assignments consistent with
//     the pattern (worst case n! on a fully dense pattern).

package matrix

import (
	"cmp"
	"slices"
)

// entry is one stored (column, value) pair; val is never T(0).
type entry[T Element] struct {
	col int
	val T
}

// cmpEntryCol orders entries by column for binary search.
func cmpEntryCol[T Element](e entry[T], col int) int { return cmp.Compare(e.col, col) }

// Sparse is a concrete compressed-row storage.
//   - r,c hold dimensions (rows, cols), both >= 1.
//   - rows[i] lists row i's nonzero entries sorted by column.
//   - gen/open/pendRow/pendCol/pendVal describe the single open cell; its value
//     is not part of rows until the cell closes.
type Sparse[T Element] struct {
	r, c int
	rows [][]entry[T]

	gen              uint64
	open             bool
	pendRow, pendCol int
	pendVal          T
}

var (
	_ Storage[int64]   = (*Sparse[int64])(nil)
	_ Storage[float64] = (*Sparse[float64])(nil)
)

// NewSparse creates an r×c zero matrix with compressed-row storage.
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r), Space O(r) (row headers only).
func NewSparse[T Element](rows, cols int) (*Sparse[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}

	return &Sparse[T]{r: rows, c: cols, rows: make([][]entry[T], rows)}, nil
}

// newSparseFrom builds canonical rows from a row-major buffer (len == rows*cols,
// already validated). Each row slice is allocated at its exact size.
func newSparseFrom[T Element](rows, cols int, data []T) *Sparse[T] {
	var zero T
	s := &Sparse[T]{r: rows, c: cols, rows: make([][]entry[T], rows)}
	var i, j, n, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		n = countNonZero(data[base : base+cols])
		if n == 0 {
			continue
		}
		row := make([]entry[T], 0, n)
		for j = 0; j < cols; j++ {
			if v := data[base+j]; v != zero {
				row = append(row, entry[T]{col: j, val: v})
			}
		}
		s.rows[i] = row
	}

	return s
}

// putEntry applies the canonical write of v at col to a sorted row and
// returns the updated slice: zero removes, nonzero updates or inserts.
func putEntry[T Element](row []entry[T], col int, v T) []entry[T] {
	var zero T
	idx, found := slices.BinarySearchFunc(row, col, cmpEntryCol[T])
	switch {
	case v == zero && found:
		return slices.Delete(row, idx, idx+1)
	case v == zero:
		return row
	case found:
		row[idx].val = v
		return row
	default:
		return slices.Insert(row, idx, entry[T]{col: col, val: v})
	}
}

// Kind reports KindSparse.
func (s *Sparse[T]) Kind() Kind { return KindSparse }

// Rows returns the row count.
func (s *Sparse[T]) Rows() int { return s.r }

// Cols returns the column count.
func (s *Sparse[T]) Cols() int { return s.c }

// stored returns the committed value at (row, col), T(0) when absent.
func (s *Sparse[T]) stored(row, col int) T {
	r := s.rows[row]
	if idx, found := slices.BinarySearchFunc(r, col, cmpEntryCol[T]); found {
		return r[idx].val
	}
	var zero T

	return zero
}

// At returns the value at (row, col). Absent entries read as T(0) and nothing
// is inserted. The open cell's pending value is visible here.
// Complexity: O(log k).
func (s *Sparse[T]) At(row, col int) (T, error) {
	if err := validateIndex(row, col, s.r, s.c); err != nil {
		var zero T
		return zero, cellErrorf("Sparse", ctxAt, row, col, err)
	}
	if s.open && s.pendRow == row && s.pendCol == col {
		return s.pendVal, nil
	}

	return s.stored(row, col), nil
}

// Set commits the open cell, then writes v at (row, col) canonically.
// Complexity: O(k).
func (s *Sparse[T]) Set(row, col int, v T) error {
	if err := validateIndex(row, col, s.r, s.c); err != nil {
		return cellErrorf("Sparse", ctxSet, row, col, err)
	}
	s.flush()
	s.rows[row] = putEntry(s.rows[row], col, v)

	return nil
}

// Open returns the lazily committed token for (row, col).
// MAIN DESCRIPTION:
//   - Mutable access without touching the sorted row until the cell closes.
//
// Implementation:
//   - Stage 1: bounds check (no commit, no invalidation on failure).
//   - Stage 2: commit the previous open cell.
//   - Stage 3: record (row, col, current value) as pending and issue a token.
//
// Behavior highlights:
//   - Opening a cell only to read it never inserts anything.
//   - Closing with T(0) removes a previously stored entry.
//
// Complexity:
//   - Time O(log k) plus the previous commit, Space O(1).
func (s *Sparse[T]) Open(row, col int) (*Cell[T], error) {
	if err := validateIndex(row, col, s.r, s.c); err != nil {
		return nil, cellErrorf("Sparse", ctxOpen, row, col, err)
	}
	s.flush()
	s.gen++
	s.open = true
	s.pendRow, s.pendCol = row, col
	s.pendVal = s.stored(row, col)

	return &Cell[T]{owner: s, gen: s.gen, row: row, col: col, val: s.pendVal}, nil
}

func (s *Sparse[T]) isOpen(gen uint64) bool { return s.open && s.gen == gen }

func (s *Sparse[T]) writeCell(gen uint64, v T) error {
	if !s.isOpen(gen) {
		return matrixErrorf("Sparse.Cell.Set", ErrStaleCell)
	}
	s.pendVal = v

	return nil
}

func (s *Sparse[T]) commitCell(gen uint64) error {
	if !s.isOpen(gen) {
		return matrixErrorf("Sparse.Cell."+ctxCommit, ErrStaleCell)
	}
	s.flush()

	return nil
}

// flush closes the open cell, writing its pending value canonically.
func (s *Sparse[T]) flush() {
	if !s.open {
		return
	}
	s.open = false
	s.rows[s.pendRow] = putEntry(s.rows[s.pendRow], s.pendCol, s.pendVal)
}

// rowView returns row i as it would look after the open cell commits.
// The committed slice is returned as-is unless the open cell lies in row i,
// in which case a patched copy is returned. Callers must not modify it.
func (s *Sparse[T]) rowView(i int) []entry[T] {
	if !s.open || s.pendRow != i {
		return s.rows[i]
	}

	return putEntry(slices.Clone(s.rows[i]), s.pendCol, s.pendVal)
}

// RowNNZ returns the number of nonzero entries in row, counting the
// pending write of the open cell as if it were committed.
// Errors:
//   - ErrOutOfRange when row is outside [0, Rows()).
func (s *Sparse[T]) RowNNZ(row int) (int, error) {
	if row < 0 || row >= s.r {
		return 0, matrixErrorf("Sparse.RowNNZ", ErrOutOfRange)
	}

	return len(s.rowView(row)), nil
}

// NNZ returns the number of nonzero entries.
// Complexity: O(r).
func (s *Sparse[T]) NNZ() int {
	n := 0
	for i := 0; i < s.r; i++ {
		n += len(s.rowView(i))
	}

	return n
}

// DoNonZero visits nonzero entries in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r + nnz).
func (s *Sparse[T]) DoNonZero(f func(i, j int, v T) bool) {
	for i := 0; i < s.r; i++ {
		for _, e := range s.rowView(i) {
			if !f(i, e.col, e.val) {
				return
			}
		}
	}
}

// Clone returns a deep copy. The source keeps its open cell; the copy holds
// the pending value as committed and has no open cell.
// Complexity: O(r + nnz).
func (s *Sparse[T]) Clone() Storage[T] {
	cp := &Sparse[T]{r: s.r, c: s.c, rows: make([][]entry[T], s.r)}
	for i := range s.rows {
		cp.rows[i] = slices.Clone(s.rows[i])
	}
	if s.open {
		cp.rows[s.pendRow] = putEntry(cp.rows[s.pendRow], s.pendCol, s.pendVal)
	}

	return cp
}

// String renders the matrix with DefaultFormat.
func (s *Sparse[T]) String() string { return Sprint[T](s, DefaultFormat()) }

// Det computes the determinant by pruned permutation expansion.
// MAIN DESCRIPTION:
//   - Sum sign(σ)·Π a[i][σ(i)] over permutations σ whose every factor is a
//     stored entry; all other permutations contribute zero and are never visited.
//
// Implementation:
//   - Stage 1: reject non-square shapes (state untouched).
//   - Stage 2: commit the open cell.
//   - Stage 3: short-circuit to T(0) when a row or a column has no entries.
//   - Stage 4: depth-first search (see permutationDet).
//
// Errors:
//   - ErrNonSquare when Rows() != Cols().
//
// Complexity:
//   - Proportional to the partial assignments consistent with the pattern.
//     No abort mechanism: callers needing bounds must impose them externally.
func (s *Sparse[T]) Det() (T, error) {
	var zero T
	if err := validateSquare(s.r, s.c); err != nil {
		return zero, matrixErrorf("Sparse."+ctxDet, err)
	}
	s.flush()

	dim := s.r
	covered := make([]bool, dim)
	for i := 0; i < dim; i++ {
		if len(s.rows[i]) == 0 {
			return zero, nil
		}
		for _, e := range s.rows[i] {
			covered[e.col] = true
		}
	}
	for _, ok := range covered {
		if !ok {
			return zero, nil
		}
	}

	return s.permutationDet(), nil
}

// detFrame is one row's state in the permutation search.
type detFrame[T Element] struct {
	prod T    // product of the values chosen for rows above this one
	neg  bool // parity of the partial permutation above this one
	next int  // index of the next entry of this row to try
}

// permutationDet runs the explicit-stack search. Rows must all be non-empty.
//
// Frame i iterates row i's entries in increasing-column order. colOf[i] is
// the column assigned to row i while row i is on the path; used[c] marks
// columns taken by rows above the current one. Parity is tracked
// incrementally: assigning column c at depth d adds one inversion per
// earlier row whose column is greater than c.
func (s *Sparse[T]) permutationDet() T {
	dim := s.r
	var det T

	stack := make([]detFrame[T], dim)
	colOf := make([]int, dim)
	used := make([]bool, dim)
	stack[0] = detFrame[T]{prod: T(1)}

	row := 0
	for {
		f := &stack[row]
		items := s.rows[row]

		if f.next >= len(items) {
			if row == 0 {
				break // row 0 exhausted: search complete
			}
			row--
			used[colOf[row]] = false
			stack[row].next++
			continue
		}

		e := items[f.next]
		if used[e.col] {
			f.next++
			continue
		}

		inv := 0
		for r := 0; r < row; r++ {
			if colOf[r] > e.col {
				inv++
			}
		}
		neg := f.neg != (inv%2 == 1)
		prod := f.prod * e.val

		if row == dim-1 {
			if neg {
				det -= prod
			} else {
				det += prod
			}
			f.next++
			continue
		}

		colOf[row] = e.col
		used[e.col] = true
		row++
		stack[row] = detFrame[T]{prod: prod, neg: neg}
	}

	return det
}
