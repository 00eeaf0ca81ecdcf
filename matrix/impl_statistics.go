// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics expressed as compositions of the algebra kernels:
//     CenterColumns, Covariance (XcᵀXc/(r-1)) and Correlation (Pearson).
//
// Determinism:
//   - Means and squared sums accumulate top to bottom; products go through Mul.

package matrix

import "math"

const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opCorrelation   = "Correlation"
)

// CenterColumns subtracts each column mean from its column.
// Returns the centered copy and the means (len = Cols).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	means, err := ColSums(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	d, _ := asDense(X)
	for j := range means {
		means[j] /= float64(d.r)
	}

	out := newDense(d.r, d.c)
	for idx, v := range d.data {
		out.data[idx] = v - means[idx%d.c]
	}

	return out, means, nil
}

// Covariance returns the c×c sample covariance of the columns of X and the
// column means. The result is symmetric; its diagonal holds the variances.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when X has fewer than two rows.
//
// Complexity:
//   - Time O(r*c²), Space O(r*c + c²).
func Covariance(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if X.Rows() < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}
	xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	cov, err := gramScaled(xc, 1/float64(X.Rows()-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return cov, means, nil
}

// Correlation returns the Pearson correlation of the columns of X together
// with the column means and sample standard deviations.
// A constant column (std = 0) yields a zero row and column, diagonal included.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when X has fewer than two rows.
func Correlation(X Matrix) (*Dense, []float64, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	r := X.Rows()
	if r < 2 {
		return nil, nil, nil, matrixErrorf(opCorrelation, ErrDimensionMismatch)
	}
	xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	c := xc.c
	sumsq := make([]float64, c)
	for idx, v := range xc.data {
		sumsq[idx%c] += v * v
	}
	stds := make([]float64, c)
	invStd := make([]float64, c)
	for j := range stds {
		stds[j] = math.Sqrt(sumsq[j] / float64(r-1))
		if stds[j] > 0 {
			invStd[j] = 1 / stds[j]
		}
	}
	for idx := range xc.data {
		xc.data[idx] *= invStd[idx%c] // z-score in place; xc is our own copy
	}

	corr, err := gramScaled(xc, 1/float64(r-1))
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	return corr, means, stds, nil
}

// gramScaled returns alpha·(zᵀz).
func gramScaled(z *Dense, alpha float64) (*Dense, error) {
	zt, err := Transpose(z)
	if err != nil {
		return nil, err
	}

	return Scale(mulDense(zt, z), alpha)
}
