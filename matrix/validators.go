// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape, index and square checks.
//  - Keep storages and factories minimal by delegating guard logic here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing.

package matrix

import "math"

// validateShape ensures rows>0, cols>0 and that rows*cols fits in an int.
// Returns ErrInvalidDimensions otherwise.
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	if rows > math.MaxInt/cols {
		return ErrInvalidDimensions
	}

	return nil
}

// validateIndex ensures 0 <= row < rows and 0 <= col < cols.
// The column is bounded by the width, never by the height.
func validateIndex(row, col, rows, cols int) error {
	if row < 0 || row >= rows {
		return ErrOutOfRange
	}
	if col < 0 || col >= cols {
		return ErrOutOfRange
	}

	return nil
}

// validateSquare ensures rows == cols.
func validateSquare(rows, cols int) error {
	if rows != cols {
		return ErrNonSquare
	}

	return nil
}

// validateLen ensures a flat sequence holds exactly rows*cols elements.
func validateLen(n, rows, cols int) error {
	if n != rows*cols {
		return ErrDimensionMismatch
	}

	return nil
}
