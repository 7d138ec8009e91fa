// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestOptionConstructorsPanic verifies programmer errors panic with stable messages.
func TestOptionConstructorsPanic(t *testing.T) {
	require.PanicsWithValue(t, "matrix: WithStorage: unknown storage kind", func() {
		matrix.WithStorage(matrix.Kind(9))
	})
	for _, bad := range [][2]int{{1, 0}, {-1, 3}, {4, 3}, {1, -2}} {
		require.Panics(t, func() { matrix.WithDensityThreshold(bad[0], bad[1]) }, "%v", bad)
	}
	require.NotPanics(t, func() { matrix.WithDensityThreshold(0, 1) })
	require.NotPanics(t, func() { matrix.WithDensityThreshold(1, 1) })
}

// TestDensityThresholdExtremes checks 0 (never sparse) and 1 (sparse unless full).
func TestDensityThresholdExtremes(t *testing.T) {
	never, err := matrix.Zeros[int64](4, 4, matrix.WithDensityThreshold(0, 1))
	require.NoError(t, err)
	require.Equal(t, matrix.KindDense, never.Kind())

	almost, err := matrix.FromRows([][]int64{{1, 1}, {1, 0}}, matrix.WithDensityThreshold(1, 1))
	require.NoError(t, err)
	require.Equal(t, matrix.KindSparse, almost.Kind())

	full, err := matrix.Ones[int64](2, 2, matrix.WithDensityThreshold(1, 1))
	require.NoError(t, err)
	require.Equal(t, matrix.KindDense, full.Kind())
}

// TestNilOptionIgnored makes sure a nil Option does not crash the factories.
func TestNilOptionIgnored(t *testing.T) {
	m, err := matrix.Ones[int64](2, 2, nil)
	require.NoError(t, err)
	require.Equal(t, matrix.KindDense, m.Kind())
}

// TestKindStringParse covers the round trip used by the CLI.
func TestKindStringParse(t *testing.T) {
	for _, k := range []matrix.Kind{matrix.KindAuto, matrix.KindDense, matrix.KindSparse} {
		got, err := matrix.ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
	got, err := matrix.ParseKind(" Sparse ")
	require.NoError(t, err)
	require.Equal(t, matrix.KindSparse, got)

	_, err = matrix.ParseKind("csr")
	require.Error(t, err)
	require.Equal(t, "Kind(7)", matrix.Kind(7).String())
}
