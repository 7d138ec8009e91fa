// SPDX-License-Identifier: MIT

// Package matrix - Matrix handle.
//
// What & Why:
//
//	Matrix owns exactly one Storage (dense or sparse) chosen at construction
//	and forwards every call to it. Callers never see which backend they hold
//	unless they ask via Kind. Clone deep-copies the storage; Move transfers it
//	and leaves the source empty.
//
// Complexity:
//
//	Rows/Cols/Kind: O(1). At/Set/Open/Det/Clone: those of the backend.
package matrix

import "fmt"

// Matrix is the value-semantic façade over one Storage.
// The zero value and a moved-from handle are empty: Rows/Cols return 0 and
// every fallible method returns ErrNilMatrix.
//
// A Matrix is not safe for concurrent use.
type Matrix[T Element] struct {
	s Storage[T]
}

var (
	_ Reader[int64]   = (*Matrix[int64])(nil)
	_ Reader[float64] = (*Matrix[float64])(nil)
	_ fmt.Stringer    = (*Matrix[int64])(nil)
)

// Wrap returns a handle owning s. It is how callers adopt a storage built
// with NewDense/NewSparse. A nil s, including a nil *Dense or *Sparse,
// yields an empty handle. Other Storage implementations must be non-nil.
func Wrap[T Element](s Storage[T]) *Matrix[T] {
	switch b := s.(type) {
	case *Dense[T]:
		if b == nil {
			return &Matrix[T]{}
		}
	case *Sparse[T]:
		if b == nil {
			return &Matrix[T]{}
		}
	}

	return &Matrix[T]{s: s}
}

// storage returns the backend or ErrNilMatrix wrapped with method context.
func (m *Matrix[T]) storage(method string) (Storage[T], error) {
	if m == nil || m.s == nil {
		return nil, matrixErrorf("Matrix."+method, ErrNilMatrix)
	}

	return m.s, nil
}

// Empty reports whether the handle owns no storage (zero value or moved from).
func (m *Matrix[T]) Empty() bool { return m == nil || m.s == nil }

// Rows returns the height, constant for the handle's life (0 when empty).
func (m *Matrix[T]) Rows() int {
	if m.Empty() {
		return 0
	}

	return m.s.Rows()
}

// Cols returns the width, constant for the handle's life (0 when empty).
func (m *Matrix[T]) Cols() int {
	if m.Empty() {
		return 0
	}

	return m.s.Cols()
}

// Kind reports the backend chosen at construction (KindAuto when empty).
func (m *Matrix[T]) Kind() Kind {
	if m.Empty() {
		return KindAuto
	}

	return m.s.Kind()
}

// At returns the element at (row, col).
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Matrix[T]) At(row, col int) (T, error) {
	s, err := m.storage(ctxAt)
	if err != nil {
		var zero T
		return zero, err
	}

	return s.At(row, col)
}

// Set stores v at (row, col).
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Matrix[T]) Set(row, col int, v T) error {
	s, err := m.storage(ctxSet)
	if err != nil {
		return err
	}

	return s.Set(row, col, v)
}

// Open returns the mutable-access token for (row, col); see Cell.
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Matrix[T]) Open(row, col int) (*Cell[T], error) {
	s, err := m.storage(ctxOpen)
	if err != nil {
		return nil, err
	}

	return s.Open(row, col)
}

// Det returns the determinant using the backend's algorithm
// (Bareiss for dense, pruned permutation search for sparse).
// Errors: ErrNilMatrix, ErrNonSquare.
func (m *Matrix[T]) Det() (T, error) {
	s, err := m.storage(ctxDet)
	if err != nil {
		var zero T
		return zero, err
	}

	return s.Det()
}

// NNZ returns the number of nonzero cells (0 when empty).
func (m *Matrix[T]) NNZ() int {
	if m.Empty() {
		return 0
	}

	return m.s.NNZ()
}

// DoNonZero visits nonzero cells in row-major order; f returns false to stop.
// Does nothing on an empty handle.
func (m *Matrix[T]) DoNonZero(f func(i, j int, v T) bool) {
	if m.Empty() {
		return
	}
	m.s.DoNonZero(f)
}

// Storage exposes the owned backend, e.g. for *Sparse.RowNNZ.
// The handle still owns it; nil when empty.
func (m *Matrix[T]) Storage() Storage[T] {
	if m.Empty() {
		return nil
	}

	return m.s
}

// Clone returns an independent deep copy on the same backend.
// Cloning an empty handle yields an empty handle.
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m.Empty() {
		return &Matrix[T]{}
	}

	return &Matrix[T]{s: m.s.Clone()}
}

// Move transfers the storage to a new handle and empties m.
// Subsequent fallible calls on m return ErrNilMatrix.
func (m *Matrix[T]) Move() *Matrix[T] {
	if m.Empty() {
		return &Matrix[T]{}
	}
	out := &Matrix[T]{s: m.s}
	m.s = nil

	return out
}

// String renders the matrix with DefaultFormat ("<empty>" when empty).
func (m *Matrix[T]) String() string {
	if m.Empty() {
		return "<empty>"
	}

	return Sprint[T](m, DefaultFormat())
}
