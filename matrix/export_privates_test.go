// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for sparse internals.
//
// Purpose:
//   - Let matrix_test observe committed storage directly, so canonical form
//     ("no stored zero") is checked on the rows themselves rather than through At.
//   - Lives in a _test.go file: invisible in production builds.

// StoredRowLen_TestOnly returns the number of committed entries of row,
// ignoring any pending write of the open cell.
func StoredRowLen_TestOnly[T Element](s *Sparse[T], row int) int {
	return len(s.rows[row])
}

// StoredZeros_TestOnly counts committed entries holding T(0); canonical form requires 0.
func StoredZeros_TestOnly[T Element](s *Sparse[T]) int {
	var zero T
	n := 0
	for _, r := range s.rows {
		for _, e := range r {
			if e.val == zero {
				n++
			}
		}
	}

	return n
}

// StoredSorted_TestOnly reports whether every row is strictly increasing by column.
func StoredSorted_TestOnly[T Element](s *Sparse[T]) bool {
	for _, r := range s.rows {
		for k := 1; k < len(r); k++ {
			if r[k-1].col >= r[k].col {
				return false
			}
		}
	}

	return true
}
