// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by both storage backends.
// This file contains ONLY the element constraint, the storage kind enum and
// the interfaces (Storage, Reader). Errors and options live in dedicated
// files (errors.go, options.go).
package matrix

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Element is the set of coefficient types a matrix can hold.
// T(0) is the additive identity and T(1) the multiplicative identity.
// Unsigned integers are excluded: the determinant sign needs negation.
//
// Integer matrices get exact determinants (every Bareiss division is exact);
// floating-point matrices are subject to ordinary rounding.
type Element interface {
	constraints.Signed | constraints.Float
}

// Kind identifies a storage backend.
type Kind uint8

const (
	// KindAuto asks the factories to choose a backend from the density policy.
	// It is never reported by a constructed storage.
	KindAuto Kind = iota
	// KindDense is row-major contiguous storage (every cell materialized).
	KindDense
	// KindSparse is compressed-row storage holding nonzero entries only.
	KindSparse
)

// String returns "auto", "dense" or "sparse".
func (k Kind) String() string {
	switch k {
	case KindAuto:
		return "auto"
	case KindDense:
		return "dense"
	case KindSparse:
		return "sparse"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind is the inverse of Kind.String (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return KindAuto, nil
	case "dense":
		return KindDense, nil
	case "sparse":
		return KindSparse, nil
	default:
		return KindAuto, fmt.Errorf("matrix: unknown storage kind %q", s)
	}
}

// Reader is the read-only surface consumed by formatting collaborators.
// Both storages and the Matrix handle satisfy it.
type Reader[T Element] interface {
	// Rows returns the number of rows (height).
	Rows() int

	// Cols returns the number of columns (width).
	Cols() int

	// At retrieves the element at (row, col) without changing any state.
	At(row, col int) (T, error)
}

// Storage is the capability contract implemented by *Dense and *Sparse.
// Only those two variants exist; callers normally go through Matrix.
//
// Single-open-cell contract:
//   - Open returns a Cell token for one coordinate. At most one token per
//     storage is open at a time.
//   - Open (any cell), Set, Det and Commit on the current token close the
//     open cell; a closed token is stale and refuses further writes with
//     ErrStaleCell.
//   - At never opens or closes a cell.
//
// A Storage is not safe for concurrent use.
type Storage[T Element] interface {
	Reader[T]

	// Kind reports the concrete backend.
	Kind() Kind

	// Set stores v at (row, col) immediately.
	// Returns ErrOutOfRange on invalid indices.
	Set(row, col int, v T) error

	// Open returns the mutable-access token for (row, col).
	// Returns ErrOutOfRange on invalid indices; state is unchanged then.
	Open(row, col int) (*Cell[T], error)

	// Det computes the determinant.
	// Returns ErrNonSquare when Rows() != Cols().
	Det() (T, error)

	// NNZ counts nonzero cells (sparse: stored entries).
	NNZ() int

	// DoNonZero visits nonzero cells in row-major order; f returns false to stop.
	DoNonZero(f func(i, j int, v T) bool)

	// Clone returns an independent deep copy, including any pending write.
	Clone() Storage[T]
}
