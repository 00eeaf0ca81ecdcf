// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// TestDefaultOptions_Documented verifies that NewOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	t.Parallel()

	o := matrix.NewOptions()
	assert.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	assert.Equal(t, matrix.DefaultRoundDigits, o.RoundDigits())
	assert.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
	assert.Equal(t, 100*4*4, o.MaxIterations(4), "derived budget is 100·n²")
	assert.Equal(t, 100, o.MaxIterations(0))
}

// TestOptions_LastWriterWins ensures setters apply in order and nil setters are skipped.
func TestOptions_LastWriterWins(t *testing.T) {
	t.Parallel()

	o := matrix.NewOptions(matrix.WithValidateNaNInf(), nil, matrix.WithNoValidateNaNInf())
	assert.False(t, o.ValidateNaNInf())

	o = matrix.NewOptions(matrix.WithEpsilon(1e-3), matrix.WithEpsilon(0), matrix.WithMaxIterations(7), matrix.WithRoundDigits(-1))
	assert.Zero(t, o.Epsilon())
	assert.Equal(t, 7, o.MaxIterations(50))
	assert.Equal(t, -1, o.RoundDigits())
}

// TestOptions_Panics covers programmer-error guards.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"eps NaN":      func() { matrix.WithEpsilon(math.NaN()) },
		"eps Inf":      func() { matrix.WithEpsilon(math.Inf(1)) },
		"eps negative": func() { matrix.WithEpsilon(-1) },
		"iter zero":    func() { matrix.WithMaxIterations(0) },
		"digits":       func() { matrix.WithRoundDigits(16) },
	}
	for name, fn := range cases {
		require.Panics(t, fn, name)
	}
	require.NotPanics(t, func() { matrix.WithRoundDigits(15) })
}

// TestInverse_RoundDigits shows the option reaching the kernel.
func TestInverse_RoundDigits(t *testing.T) {
	t.Parallel()

	a := mustDense(t, 2, 2, 3, 0, 0, 7)
	inv, ok, err := matrix.Inverse(a, matrix.WithRoundDigits(2))
	require.NoError(t, err)
	require.True(t, ok)
	compare(t, [][]float64{{0.33, 0}, {0, 0.14}}, inv)
}
