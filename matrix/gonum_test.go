// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

func TestGonumRoundTrip(t *testing.T) {
	t.Parallel()

	a := randDense(t, 3, 4, 21)
	g, err := matrix.ToGonum(a)
	require.NoError(t, err)
	r, c := g.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 4, c)

	back, err := matrix.FromGonum(g)
	require.NoError(t, err)
	assert.True(t, back.Equal(a))

	// gonum views work too.
	tr, err := matrix.FromGonum(g.T())
	require.NoError(t, err)
	assert.True(t, tr.Equal(transpose(t, a)))

	_, err = matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestOracle_Gonum cross-checks the native kernels against gonum.
func TestOracle_Gonum(t *testing.T) {
	t.Parallel()

	a := randDense(t, 5, 5, 31)
	b := randDense(t, 5, 3, 32)
	ga, _ := matrix.ToGonum(a)
	gb, _ := matrix.ToGonum(b)

	t.Run("mul", func(t *testing.T) {
		var want mat.Dense
		want.Mul(ga, gb)
		w, err := matrix.FromGonum(&want)
		require.NoError(t, err)
		requireClose(t, w, mul(t, a, b), tolTight)
	})

	t.Run("det", func(t *testing.T) {
		det, err := matrix.Determinant(a)
		require.NoError(t, err)
		assert.InDelta(t, mat.Det(ga), det, tolLoose)
	})

	t.Run("inverse", func(t *testing.T) {
		var want mat.Dense
		require.NoError(t, want.Inverse(ga))
		w, err := matrix.FromGonum(&want)
		require.NoError(t, err)
		got, ok, err := matrix.Inverse(a, matrix.WithRoundDigits(-1))
		require.NoError(t, err)
		require.True(t, ok)
		requireClose(t, w, got, 1e-8)
	})
}

func TestSVD(t *testing.T) {
	t.Parallel()

	u, sigma, v, err := matrix.SVD(mustDense(t, 2, 2, 3, 0, 0, -2))
	require.NoError(t, err)
	requireSlicesClose(t, []float64{3, 2}, sigma)
	assert.Equal(t, 2, u.Rows())
	assert.Equal(t, 2, v.Cols())

	a := randDense(t, 4, 3, 41)
	u, sigma, v, err = matrix.SVD(a)
	require.NoError(t, err)
	require.Len(t, sigma, 3)
	assert.GreaterOrEqual(t, sigma[0], sigma[1])
	assert.GreaterOrEqual(t, sigma[1], sigma[2])

	s := mustDense(t, 3, 3)
	for i, x := range sigma {
		require.NoError(t, s.Set(i, i, x))
	}
	requireClose(t, a, mul(t, mul(t, u, s), transpose(t, v)), tolLoose)

	_, _, _, err = matrix.SVD(mustDense(t, 1, 2, math.Inf(1), 0))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestPseudoInverse(t *testing.T) {
	t.Parallel()

	pinv, err := matrix.PseudoInverse(mustDense(t, 2, 2, 1, 2, 3, 4))
	require.NoError(t, err)
	requireClose(t, mustDense(t, 2, 2, -2, 1, 1.5, -0.5), pinv, tolLoose)

	// Column vector: A⁺ = Aᵀ/(AᵀA).
	pinv, err = matrix.PseudoInverse(mustDense(t, 2, 1, 1, 2))
	require.NoError(t, err)
	requireClose(t, mustDense(t, 1, 2, 0.2, 0.4), pinv, tolLoose)

	// Rank-deficient input: A·A⁺·A == A.
	rd := mustDense(t, 2, 2, 1, 2, 2, 4)
	pinv, err = matrix.PseudoInverse(rd)
	require.NoError(t, err)
	requireClose(t, rd, mul(t, mul(t, rd, pinv), rd), tolLoose)
}
