// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed unless a test targets IEEE specials.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// Tolerances shared by approximate comparisons.
const (
	tolTight = 1e-12
	tolLoose = 1e-9
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At-based materialization path in code under test.
type hide struct{ matrix.Matrix }

// approx compares float slices with an absolute margin.
var approx = cmpopts.EquateApprox(0, tolLoose)

// mustDense builds an r×c *Dense from row-major data or fails the test.
func mustDense(tb testing.TB, r, c int, data ...float64) *matrix.Dense {
	tb.Helper()
	if len(data) == 0 {
		data = nil
	}
	m, err := matrix.NewDense(r, c, data)
	require.NoError(tb, err)

	return m
}

// mustSparse builds a sparse matrix or fails the test.
func mustSparse(tb testing.TB, r, c int, entries ...matrix.Entry) *matrix.Sparse {
	tb.Helper()
	s, err := matrix.NewSparse(r, c, entries)
	require.NoError(tb, err)

	return s
}

// fillRand fills m with reproducible pseudorandoms in [-1, 1].
func fillRand(tb testing.TB, m matrix.Matrix, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			require.NoError(tb, m.Set(i, j, rng.Float64()*2-1))
		}
	}
}

// randDense returns an r×c matrix filled by fillRand.
func randDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	m := mustDense(tb, r, c)
	fillRand(tb, m, seed)

	return m
}

// randSparse returns an r×c sparse matrix with roughly density·r·c integer
// entries in [-4, 4]; integers keep sums exact.
func randSparse(tb testing.TB, r, c int, density float64, seed int64) *matrix.Sparse {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	s := mustSparse(tb, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if rng.Float64() < density {
				require.NoError(tb, s.Set(i, j, float64(rng.Intn(9)-4)))
			}
		}
	}

	return s
}

// compare asserts that m matches want exactly.
func compare(tb testing.TB, want [][]float64, m matrix.Matrix) {
	tb.Helper()
	require.Equal(tb, len(want), m.Rows(), "rows")
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		require.Equal(tb, len(want[i]), m.Cols(), "cols of row %d", i)
		for j = 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(tb, err)
			require.Equalf(tb, want[i][j], v, "At(%d,%d)", i, j)
		}
	}
}

// requireClose asserts |got-want| ≤ atol element-wise.
func requireClose(tb testing.TB, want, got matrix.Matrix, atol float64) {
	tb.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(tb, err)
	require.Truef(tb, ok, "want:\n%vgot:\n%v", want, got)
}

// requireSlicesClose compares float slices within tolLoose via go-cmp.
func requireSlicesClose(tb testing.TB, want, got []float64) {
	tb.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		tb.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// mul is Mul that fails the test on error.
func mul(tb testing.TB, a, b matrix.Matrix) *matrix.Dense {
	tb.Helper()
	out, err := matrix.Mul(a, b)
	require.NoError(tb, err)

	return out
}

// transpose is Transpose that fails the test on error.
func transpose(tb testing.TB, m matrix.Matrix) *matrix.Dense {
	tb.Helper()
	out, err := matrix.Transpose(m)
	require.NoError(tb, err)

	return out
}
