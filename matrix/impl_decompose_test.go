// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestLU_Doolittle(t *testing.T) {
	t.Parallel()

	a := mustDense(t, 3, 3, 2, 3, 1, 4, 7, 3, 6, 18, 5)
	l, u, err := matrix.LU(a)
	require.NoError(t, err)

	compare(t, [][]float64{{1, 0, 0}, {2, 1, 0}, {3, 9, 1}}, l)
	compare(t, [][]float64{{2, 3, 1}, {0, 1, 1}, {0, 0, -7}}, u)
	require.True(t, mul(t, l, u).Equal(a))
}

func TestLU_Errors(t *testing.T) {
	t.Parallel()

	// Invertible, but the unpivoted elimination meets a zero leading pivot.
	_, _, err := matrix.LU(mustDense(t, 2, 2, 0, 1, 1, 0))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, _, err = matrix.LU(mustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, _, err = matrix.LU(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestLUP(t *testing.T) {
	t.Parallel()

	swap := mustDense(t, 2, 2, 0, 1, 1, 0)
	f, err := matrix.LUP(swap)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, f.Perm)
	assert.Equal(t, -1.0, f.Sign)
	compare(t, [][]float64{{1, 0}, {0, 1}}, f.L)
	compare(t, [][]float64{{1, 0}, {0, 1}}, f.U)

	a := randDense(t, 6, 6, 99)
	f, err = matrix.LUP(a)
	require.NoError(t, err)
	requireClose(t, mul(t, f.P(), a), mul(t, f.L, f.U), tolLoose)

	_, err = matrix.LUP(mustDense(t, 2, 2, 1, 2, 2, 4))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse(t *testing.T) {
	t.Parallel()

	inv, ok, err := matrix.Inverse(mustDense(t, 2, 2, 1, 2, 3, 4))
	require.NoError(t, err)
	require.True(t, ok)
	compare(t, [][]float64{{-2, 1}, {1.5, -0.5}}, inv)

	a := mustDense(t, 3, 3, 2, 3, 1, 4, 7, 3, 6, 18, 5)
	inv, ok, err = matrix.Inverse(a)
	require.NoError(t, err)
	require.True(t, ok)
	id, _ := matrix.NewIdentity(3)
	requireClose(t, id, mul(t, a, inv), 1e-4)

	raw, ok, err := matrix.Inverse(a, matrix.WithRoundDigits(-1))
	require.NoError(t, err)
	require.True(t, ok)
	requireClose(t, id, mul(t, a, raw), tolLoose)

	// Rounded output sits on the 6-decimal grid.
	v, _ := inv.At(0, 0)
	assert.Equal(t, math.Round(v*1e6)/1e6, v)
}

func TestInverse_Singular(t *testing.T) {
	t.Parallel()

	inv, ok, err := matrix.Inverse(mustDense(t, 2, 2, 1, 2, 2, 4))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, inv)

	inv, ok, err = matrix.Inverse(mustDense(t, 3, 3))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, inv)

	_, _, err = matrix.Inverse(mustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInverse_Pivoting(t *testing.T) {
	t.Parallel()

	// Zero leading pivot requires a row swap.
	inv, ok, err := matrix.Inverse(mustDense(t, 2, 2, 0, 1, 1, 0))
	require.NoError(t, err)
	require.True(t, ok)
	compare(t, [][]float64{{0, 1}, {1, 0}}, inv)
}

// TestInverse_PivotTie uses a column whose candidate pivots tie in magnitude;
// the first row wins and the result is unaffected.
func TestInverse_PivotTie(t *testing.T) {
	t.Parallel()

	inv, ok, err := matrix.Inverse(mustDense(t, 2, 2, 1, 2, -1, 3))
	require.NoError(t, err)
	require.True(t, ok)
	compare(t, [][]float64{{0.6, -0.4}, {0.2, 0.2}}, inv)

	inv, ok, err = matrix.Inverse(mustDense(t, 2, 2, -1, 3, 1, 2))
	require.NoError(t, err)
	require.True(t, ok)
	compare(t, [][]float64{{-0.4, 0.6}, {0.2, 0.2}}, inv)
}

func TestDeterminant(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		m    *matrix.Dense
		want float64
	}{
		{"1x1", mustDense(t, 1, 1, -3), -3},
		{"2x2", mustDense(t, 2, 2, 1, 2, 3, 4), -2},
		{"3x3", mustDense(t, 3, 3, 2, 3, 1, 4, 7, 3, 6, 18, 5), -14},
		{"swap", mustDense(t, 2, 2, 0, 1, 1, 0), -1},
		{"singular3", mustDense(t, 3, 3, 1, 2, 3, 2, 4, 6, 0, 1, 1), 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			det, err := matrix.Determinant(tc.m)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, det, tolTight)
		})
	}

	_, err := matrix.Determinant(mustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestDeterminant_LargeUsesLUP(t *testing.T) {
	t.Parallel()

	for _, n := range []int{6, 8} {
		id, err := matrix.NewIdentity(n)
		require.NoError(t, err)
		det, err := matrix.Determinant(id)
		require.NoError(t, err)
		assert.Equal(t, 1.0, det)
	}

	// A zero column makes the pivot search fail: det is exactly 0.
	z := randDense(t, 7, 7, 5)
	for i := 0; i < 7; i++ {
		require.NoError(t, z.Set(i, 3, 0))
	}
	det, err := matrix.Determinant(z)
	require.NoError(t, err)
	assert.Zero(t, det)

	// Scaling a row by k scales the determinant by k.
	a := randDense(t, 7, 7, 6)
	d1, err := matrix.Determinant(a)
	require.NoError(t, err)
	require.NoError(t, a.Apply(func(i, _ int, v float64) float64 {
		if i == 0 {
			return 3 * v
		}
		return v
	}))
	d3, err := matrix.Determinant(a)
	require.NoError(t, err)
	assert.InDelta(t, 3*d1, d3, 1e-9*math.Max(1, math.Abs(d3)))
}

func TestEigenvalues(t *testing.T) {
	t.Parallel()

	eig, err := matrix.Eigenvalues(mustDense(t, 2, 2, 1, 2, 3, 4))
	require.NoError(t, err)
	require.Len(t, eig, 2)
	assert.InDelta(t, 5.372281323269014, eig[0], tolTight)
	assert.InDelta(t, -0.3722813232690143, eig[1], tolTight)

	eig, err = matrix.Eigenvalues(mustDense(t, 2, 2, 2, 0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2}, eig)

	_, err = matrix.Eigenvalues(mustDense(t, 2, 2, 0, -1, 1, 0))
	require.ErrorIs(t, err, matrix.ErrComplexEigenvalues)

	_, err = matrix.Eigenvalues(mustDense(t, 3, 3))
	require.ErrorIs(t, err, matrix.ErrUnsupported)

	_, err = matrix.Eigenvalues(mustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	// A NaN discriminant has no real roots either.
	_, err = matrix.Eigenvalues(mustDense(t, 2, 2, math.NaN(), 0, 0, 1))
	require.ErrorIs(t, err, matrix.ErrComplexEigenvalues)
}

func TestEigenSym(t *testing.T) {
	t.Parallel()

	a := mustDense(t, 3, 3,
		2, 1, 0,
		1, 2, 0,
		0, 0, 5,
	)
	vals, vecs, err := matrix.EigenSym(a)
	require.NoError(t, err)

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	requireSlicesClose(t, []float64{1, 3, 5}, sorted)

	// A·Q == Q·diag(vals)
	diag := mustDense(t, 3, 3)
	for i, v := range vals {
		require.NoError(t, diag.Set(i, i, v))
	}
	requireClose(t, mul(t, vecs, diag), mul(t, a, vecs), tolLoose)

	// Already diagonal and 1×1 inputs converge immediately.
	vals, _, err = matrix.EigenSym(mustDense(t, 1, 1, 4))
	require.NoError(t, err)
	assert.Equal(t, []float64{4}, vals)

	_, _, err = matrix.EigenSym(mustDense(t, 2, 2, 1, 2, 3, 4))
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestEigenSym_Budget(t *testing.T) {
	t.Parallel()

	a := randDense(t, 5, 5, 3)
	sym, err := matrix.Add(a, transpose(t, a))
	require.NoError(t, err)

	_, _, err = matrix.EigenSym(sym, matrix.WithMaxIterations(1))
	require.ErrorIs(t, err, matrix.ErrEigenFailed)
}

func TestQR(t *testing.T) {
	t.Parallel()

	a := mustDense(t, 3, 3, 12, -51, 4, 6, 167, -68, -4, 24, -41)
	q, r, err := matrix.QR(a)
	require.NoError(t, err)

	requireClose(t, a, mul(t, q, r), tolLoose)
	id, _ := matrix.NewIdentity(3)
	requireClose(t, id, mul(t, transpose(t, q), q), tolLoose)
	for i := 1; i < 3; i++ {
		for j := 0; j < i; j++ {
			v, _ := r.At(i, j)
			assert.InDelta(t, 0, v, tolLoose)
		}
	}

	tall := randDense(t, 5, 3, 8)
	q, r, err = matrix.QR(tall)
	require.NoError(t, err)
	requireClose(t, tall, mul(t, q, r), tolLoose)

	_, _, err = matrix.QR(mustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
