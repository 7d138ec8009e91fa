// SPDX-License-Identifier: MIT
// Package matrix — public factories.
//
// Purpose:
//   - Provide the only entry points that construct a Matrix handle.
//   - Run the backend-selection policy exactly once, at construction.
//
// Policy:
//   - Count nonzeros n over rows*cols cells; sparse when 3n < rows*cols
//     (density below 1/3, see WithDensityThreshold), dense otherwise.
//   - Identity/Eye use dense storage when max(rows, cols) <= SmallIdentityDim.
//   - WithStorage(KindDense|KindSparse) overrides both rules.
//   - Every factory validates shape first: rows<=0 || cols<=0 ⇒ ErrInvalidDimensions.
//
// AI-Hints:
//   - FromRows zero-pads ragged rows itself; callers may pass literals as-is.
//   - Use WithStorage to build the same contents on both backends.

package matrix

import (
	"iter"
	"slices"
)

// build wraps a validated row-major buffer into a handle on the chosen backend.
// data is adopted (not copied) by dense storage.
func build[T Element](rows, cols int, data []T, kind Kind) *Matrix[T] {
	if kind == KindSparse {
		return &Matrix[T]{s: newSparseFrom(rows, cols, data)}
	}

	return &Matrix[T]{s: newDenseFrom(rows, cols, data)}
}

// Zeros returns a rows×cols matrix of T(0).
// Under the default policy this is always sparse (no nonzeros).
// Complexity: O(rows) sparse, O(rows*cols) dense.
func Zeros[T Element](rows, cols int, opts ...Option) (*Matrix[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf("Zeros", err)
	}
	if gatherOptions(opts...).pick(0, rows*cols) == KindSparse {
		s, _ := NewSparse[T](rows, cols) // shape already validated
		return &Matrix[T]{s: s}, nil
	}
	d, _ := NewDense[T](rows, cols)

	return &Matrix[T]{s: d}, nil
}

// Ones returns a rows×cols matrix of T(1).
// Under the default policy this is always dense.
// Complexity: O(rows*cols).
func Ones[T Element](rows, cols int, opts ...Option) (*Matrix[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf("Ones", err)
	}
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = T(1)
	}

	return build(rows, cols, data, gatherOptions(opts...).pick(len(data), len(data))), nil
}

// Identity returns a rows×cols matrix with T(1) on the main diagonal up to
// min(rows, cols) and T(0) elsewhere.
// Dense when max(rows, cols) <= SmallIdentityDim unless WithStorage says otherwise.
// Complexity: O(min(rows,cols)) sparse writes, O(rows*cols) dense.
func Identity[T Element](rows, cols int, opts ...Option) (*Matrix[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf("Identity", err)
	}
	o := gatherOptions(opts...)
	diag := min(rows, cols)

	kind := o.pick(diag, rows*cols)
	if o.storage == KindAuto && max(rows, cols) <= SmallIdentityDim {
		kind = KindDense
	}

	if kind == KindSparse {
		s, _ := NewSparse[T](rows, cols)
		for i := 0; i < diag; i++ {
			s.rows[i] = []entry[T]{{col: i, val: T(1)}}
		}
		return &Matrix[T]{s: s}, nil
	}
	d, _ := NewDense[T](rows, cols)
	for i := 0; i < diag; i++ {
		d.data[i*cols+i] = T(1)
	}

	return &Matrix[T]{s: d}, nil
}

// Eye returns the n×n identity; shorthand for Identity(n, n, opts...).
func Eye[T Element](n int, opts ...Option) (*Matrix[T], error) {
	return Identity[T](n, n, opts...)
}

// FromSeq fills a rows×cols matrix row-major from seq.
// MAIN DESCRIPTION:
//   - Pull exactly rows*cols elements; elements beyond that are not consumed.
//
// Errors:
//   - ErrInvalidDimensions for non-positive shapes (seq untouched).
//   - ErrDimensionMismatch when seq ends early.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols) staging buffer.
func FromSeq[T Element](rows, cols int, seq iter.Seq[T], opts ...Option) (*Matrix[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf("FromSeq", err)
	}
	total := rows * cols
	data := make([]T, 0, total)
	for v := range seq {
		data = append(data, v)
		if len(data) == total {
			break
		}
	}
	if err := validateLen(len(data), rows, cols); err != nil {
		return nil, matrixErrorf("FromSeq", err)
	}

	return build(rows, cols, data, gatherOptions(opts...).pick(countNonZero(data), total)), nil
}

// FromSlice builds a rows×cols matrix from a row-major slice of exactly
// rows*cols elements. The slice is copied.
// Errors: ErrInvalidDimensions, ErrDimensionMismatch.
func FromSlice[T Element](rows, cols int, data []T, opts ...Option) (*Matrix[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf("FromSlice", err)
	}
	if err := validateLen(len(data), rows, cols); err != nil {
		return nil, matrixErrorf("FromSlice", err)
	}

	return FromSeq(rows, cols, slices.Values(data), opts...)
}

// FromRows builds a matrix from a nested literal.
// MAIN DESCRIPTION:
//   - rows = len(lit); cols = longest inner slice; shorter rows are zero-padded.
//
// Errors:
//   - ErrInvalidDimensions when lit is empty or every inner slice is empty.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func FromRows[T Element](lit [][]T, opts ...Option) (*Matrix[T], error) {
	rows, cols := len(lit), 0
	for _, r := range lit {
		cols = max(cols, len(r))
	}
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	data := make([]T, rows*cols) // zero-filled: padding comes for free
	for i, r := range lit {
		copy(data[i*cols:], r)
	}

	return build(rows, cols, data, gatherOptions(opts...).pick(countNonZero(data), len(data))), nil
}
