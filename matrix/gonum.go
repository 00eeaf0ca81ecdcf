// SPDX-License-Identifier: MIT
// Package matrix - gonum interoperability.
//
// Purpose:
//   - Convert between Matrix and gonum's mat.Matrix (ToGonum / FromGonum).
//   - Delegate the singular value decomposition to mat.SVD and build the
//     Moore-Penrose pseudoinverse on top of it.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const opPseudoInverse = "PseudoInverse"

// ToGonum copies m into a new *mat.Dense (row-major, same shape).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}

	return mat.NewDense(d.r, d.c, append([]float64(nil), d.data...)), nil
}

// FromGonum copies any gonum matrix into a *Dense.
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty gonum matrix).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	rows, cols := g.Dims()
	if !validShape(rows, cols) {
		return nil, matrixErrorf("FromGonum", ErrInvalidDimensions)
	}
	out := newDense(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out.data[i*cols+j] = g.At(i, j)
		}
	}

	return out, nil
}

// SVD computes the thin singular value decomposition m = U·diag(sigma)·Vᵀ.
// MAIN DESCRIPTION:
//   - For an r×c input with k = min(r,c): U is r×k, V is c×k and sigma holds
//     k non-negative values in descending order.
//
// Implementation:
//   - Stage 1: reject nil and non-finite inputs (LAPACK would loop on NaN).
//   - Stage 2: mat.SVD.Factorize with mat.SVDThin.
//   - Stage 3: copy U and V back into *Dense.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf, ErrEigenFailed when the factorization does not converge.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func SVD(m Matrix) (u *Dense, sigma []float64, v *Dense, err error) {
	g, err := ToGonum(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opSVD, err)
	}
	for _, x := range g.RawMatrix().Data {
		if isNonFinite(x) {
			return nil, nil, nil, matrixErrorf(opSVD, ErrNaNInf)
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(g, mat.SVDThin); !ok {
		return nil, nil, nil, matrixErrorf(opSVD, ErrEigenFailed)
	}
	var gu, gv mat.Dense
	svd.UTo(&gu)
	svd.VTo(&gv)

	if u, err = FromGonum(&gu); err != nil {
		return nil, nil, nil, matrixErrorf(opSVD, err)
	}
	if v, err = FromGonum(&gv); err != nil {
		return nil, nil, nil, matrixErrorf(opSVD, err)
	}

	return u, svd.Values(nil), v, nil
}

// PseudoInverse returns the Moore-Penrose inverse A⁺ = V·diag(1/σ)·Uᵀ.
// Singular values below max(r,c)·σ_max·machine-epsilon are treated as zero,
// so rank-deficient and rectangular inputs are accepted.
// Errors: see SVD. Complexity: O(r*c*min(r,c)).
func PseudoInverse(m Matrix) (*Dense, error) {
	u, sigma, v, err := SVD(m)
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	rows, cols := m.Rows(), m.Cols()
	tol := float64(max(rows, cols)) * sigma[0] * machineEpsilon

	// out[i,j] = Σ_k V[i,k]·(1/σ_k)·U[j,k]
	k := len(sigma)
	out := newDense(cols, rows)
	var i, j, t int
	var inv float64
	for t = 0; t < k; t++ {
		if sigma[t] <= tol {
			continue
		}
		inv = 1 / sigma[t]
		for i = 0; i < cols; i++ {
			for j = 0; j < rows; j++ {
				out.data[i*rows+j] += v.data[i*k+t] * inv * u.data[j*k+t]
			}
		}
	}

	return out, nil
}

// machineEpsilon is the spacing of float64 values around 1.
var machineEpsilon = math.Nextafter(1, 2) - 1

