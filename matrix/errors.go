// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped with
// call-site context) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions; panics are reserved for
// programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Call sites
// wrap with "<Type>.<Method>(row,col): %w" so errors.Is keeps matching.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil handle -> shape/dimension -> index -> stale cell -> square requirement.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	// Factories and constructors validate before any allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public accessors (At/Set/Open) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// Det returns it before any computation starts.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates that an initializing sequence does not hold
	// exactly rows*cols elements.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrStaleCell is returned when writing or committing through a Cell that is
	// no longer the open cell of its storage.
	ErrStaleCell = errors.New("matrix: cell is no longer open")

	// ErrNilMatrix indicates that a nil or moved-from Matrix handle was used.
	ErrNilMatrix = errors.New("matrix: nil or moved matrix")
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxOpen   = "Open"
	ctxDet    = "Det"
	ctxCommit = "Commit"
)

// cellErrorf wraps err with the storage type, method tag and coordinates.
// Example: "Sparse.Open(3,7): matrix: index out of range".
func cellErrorf(typ, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", typ, method, row, col, err)
}

// matrixErrorf wraps err with a plain "<tag>: " prefix.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
