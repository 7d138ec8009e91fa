// Package lvmat is a small matrix toolkit built around one idea: a matrix
// handle whose storage is picked from the data it is built with.
//
// What is inside?
//
//	matrix/      — Matrix[T] handle, Dense and Sparse storage, factories,
//	               cell tokens, determinant per backend, printing
//	cmd/matdet/  — command-line front end: build, print, read, determinant
//
// Why two backends?
//
//   - Dense keeps every cell row-major and computes the determinant with
//     fraction-free Bareiss elimination in O(n³).
//   - Sparse keeps only nonzero entries per row and walks just the
//     permutations whose factors are all stored, so very sparse inputs are
//     cheap and empty rows or columns answer 0 at once.
//
// The choice is made once, when a factory builds the matrix: fewer than a
// third of the cells nonzero means sparse. matrix.WithStorage forces either.
//
// Quick example:
//
//	m, _ := matrix.Eye[int64](10) // sparse: 10 of 100 cells set
//	c, _ := m.Open(2, 3)
//	_ = c.Set(7)                   // buffered until the next Open/Set/Det/Commit
//	d, _ := m.Det()                // 1
//
//	go get github.com/katalvlaran/lvmat/matrix
package lvmat
