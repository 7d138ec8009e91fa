// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for both storage backends.
//   • Keep randomized data reproducible (fixed seeds, bounded integers).

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// backends lists the forced storage kinds every behavioral test runs against.
var backends = []matrix.Kind{matrix.KindDense, matrix.KindSparse}

// mustRows builds a matrix from a literal on the requested backend or fails the test.
func mustRows[T matrix.Element](t testing.TB, kind matrix.Kind, lit [][]T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRows(lit, matrix.WithStorage(kind))
	require.NoError(t, err)
	require.Equal(t, kind, m.Kind())

	return m
}

// randomSquare returns an n×n literal whose cells are nonzero with
// probability density, drawn from [-9, 9] \ {0}.
func randomSquare(rng *rand.Rand, n int, density float64) [][]int64 {
	lit := make([][]int64, n)
	for i := range lit {
		lit[i] = make([]int64, n)
		for j := range lit[i] {
			if rng.Float64() < density {
				v := int64(rng.Intn(9) + 1)
				if rng.Intn(2) == 0 {
					v = -v
				}
				lit[i][j] = v
			}
		}
	}

	return lit
}

// leibnizDet is the textbook n! expansion, used as an oracle for small n.
func leibnizDet(a [][]int64) int64 {
	n := len(a)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	var det int64
	var walk func(k int, neg bool)
	walk = func(k int, neg bool) {
		if k == n {
			p := int64(1)
			for i := 0; i < n; i++ {
				p *= a[i][perm[i]]
			}
			if neg {
				det -= p
			} else {
				det += p
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			walk(k+1, neg != (i != k))
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	walk(0, false)

	return det
}

// snapshot reads every cell through At.
func snapshot[T matrix.Element](t testing.TB, m *matrix.Matrix[T]) [][]T {
	t.Helper()
	out := make([][]T, m.Rows())
	for i := range out {
		out[i] = make([]T, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}
