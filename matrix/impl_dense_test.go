// Package matrix_test contains unit tests for the Dense storage.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[int64](0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense[int64](5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense[float64](-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDenseRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestDenseRowsCols(t *testing.T) {
	m, err := matrix.NewDense[int64](3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, matrix.KindDense, m.Kind())
	require.Equal(t, 0, m.NNZ())
}

// TestDenseOutOfBounds checks that columns are bounded by the width, not the height.
func TestDenseOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense[int64](2, 5) // wide: col 3 is valid even though rows == 2
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 4, 7))
	v, err := m.At(1, 4)
	require.NoError(t, err)
	require.Equal(t, int64(7), v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	_, err = m.Open(2, 5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "Dense.Open(2,5)")
}

// TestDenseStoresExplicitZero verifies that dense storage keeps zeros as ordinary values.
func TestDenseStoresExplicitZero(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 0, 2.5))
	require.Equal(t, 1, m.NNZ())
	require.NoError(t, m.Set(0, 0, 0))
	require.Equal(t, 0, m.NNZ())
}

// TestDenseCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestDenseCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense[int64](2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), orig)

	got, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), got)
}

// TestDenseDetDoesNotMutate checks that Bareiss runs on a private copy.
func TestDenseDetDoesNotMutate(t *testing.T) {
	lit := [][]int64{{0, 2, 1}, {3, 0, 4}, {5, 6, 0}} // zero pivot forces a row swap
	m := mustRows(t, matrix.KindDense, lit)

	d, err := m.Det()
	require.NoError(t, err)
	require.Equal(t, leibnizDet(lit), d)
	require.Equal(t, lit, snapshot(t, m))
}

// TestDenseDetFloat exercises the float path (ordinary division).
func TestDenseDetFloat(t *testing.T) {
	m := mustRows(t, matrix.KindDense, [][]float64{{0.5, 1}, {2, 3}})

	d, err := m.Det()
	require.NoError(t, err)
	require.InDelta(t, -0.5, d, 1e-12)
}

// TestDenseDetSingularColumn checks the early return when no pivot exists.
func TestDenseDetSingularColumn(t *testing.T) {
	m := mustRows(t, matrix.KindDense, [][]int64{{0, 1, 2}, {0, 3, 4}, {0, 5, 6}})

	d, err := m.Det()
	require.NoError(t, err)
	require.Zero(t, d)
}

// TestDenseDoNonZero verifies row-major order and early stop.
func TestDenseDoNonZero(t *testing.T) {
	m := mustRows(t, matrix.KindDense, [][]int64{{0, 1}, {2, 0}, {0, 3}})

	var seen [][3]int64
	m.DoNonZero(func(i, j int, v int64) bool {
		seen = append(seen, [3]int64{int64(i), int64(j), v})
		return len(seen) < 2
	})
	require.Equal(t, [][3]int64{{0, 1, 1}, {1, 0, 2}}, seen)
}

// TestDenseString checks the default rendering.
func TestDenseString(t *testing.T) {
	m, err := matrix.NewDense[int64](2, 2)
	require.NoError(t, err)
	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 1, 2)
	_ = m.Set(1, 0, 3)
	_ = m.Set(1, 1, 4)

	require.Equal(t, "[1 2]\n[3 4]\n", m.String())
}
