// Package matrix offers a generic matrix value with two interchangeable
// storage strategies and a determinant specialized for each.
//
// The matrix package provides:
//
//   - Matrix[T], a handle that owns exactly one Storage and picks it once, at
//     construction, from the density of the initial contents.
//   - Dense[T], row-major contiguous storage with O(1) access and an O(n³)
//     fraction-free (Bareiss) determinant, exact for integer element types.
//   - Sparse[T], compressed-row storage holding nonzero entries only, with
//     O(log k) access and a determinant that only visits the permutations the
//     sparsity pattern allows.
//   - Cell[T], the mutable-access token; sparse storage defers the sorted
//     insert/remove until the cell is committed, and a storage has at most one
//     open cell at a time (older tokens fail with ErrStaleCell).
//   - Format/Fprint for printing any Reader with explicit delimiters.
//
// Errors are package sentinels (ErrInvalidDimensions, ErrOutOfRange,
// ErrNonSquare, ...) matched with errors.Is. The package never logs and never
// panics on user input.
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]int64{{1, 2, 3}, {4, 8, 6}, {7, 8, 9}})
//	d, _ := m.Det() // -36
package matrix
