package matrix_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/lvmat/matrix"
)

// ExampleFromRows builds a literal and computes its determinant.
func ExampleFromRows() {
	m, err := matrix.FromRows([][]int64{
		{1, 2, 3},
		{4, 8, 6},
		{7, 8, 9},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	d, _ := m.Det()
	fmt.Println(m.Kind(), d)

	// Output:
	// dense -36
}

// ExampleEye shows the backend choice for identities and a custom format.
func ExampleEye() {
	small, _ := matrix.Eye[int64](3)
	large, _ := matrix.Eye[int64](10)
	fmt.Println(small.Kind(), large.Kind(), large.NNZ())

	f := matrix.DefaultFormat()
	f.ItemSep = ", "
	_ = matrix.Fprint[int64](os.Stdout, small, f)

	// Output:
	// dense sparse 10
	// [1, 0, 0]
	// [0, 1, 0]
	// [0, 0, 1]
}

// ExampleMatrix_Open edits a sparse matrix through cell tokens.
func ExampleMatrix_Open() {
	m, _ := matrix.Zeros[int64](3, 3)

	a, _ := m.Open(0, 0)
	_ = a.Set(5)
	b, _ := m.Open(1, 1) // commits (0,0); a is now stale
	_ = b.Set(2)
	_ = b.Commit()

	err := a.Set(9)
	fmt.Println(errors.Is(err, matrix.ErrStaleCell), m.NNZ())
	fmt.Print(m)

	// Output:
	// true 2
	// [5 0 0]
	// [0 2 0]
	// [0 0 0]
}

// ExampleMatrix_Det_nonSquare shows the error for non-square shapes.
func ExampleMatrix_Det_nonSquare() {
	m, _ := matrix.Ones[float64](2, 3)
	_, err := m.Det()
	fmt.Println(err)

	// Output:
	// Dense.Det: matrix: matrix is not square
}
