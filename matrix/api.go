// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Intention-revealing constructors (NewZeros, NewIdentity, *Like).
//   - Thin entry points for the private element-wise helpers (AllClose, Clip,
//     ReplaceInfNaN) and row/column reductions.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Errors: ErrInvalidDimensions. Complexity: O(r*c).
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols, nil)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions for n <= 0. Complexity: O(n^2).
func NewIdentity(n int) (*Dense, error) {
	if _, err := NewDense(n, n, nil); err != nil {
		return nil, err
	}

	return identityDense(n), nil
}

// CloneMatrix returns a structural clone of m (same concrete type).
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols(), nil)
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return identityDense(m.Rows()), nil
}

// RowSums returns the sum of each row, accumulated left to right.
// Complexity: O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	out := make([]float64, d.r)
	for idx, v := range d.data {
		out[idx/d.c] += v
	}

	return out, nil
}

// ColSums returns the sum of each column, accumulated top to bottom.
// Complexity: O(r*c).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ColSums", err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf("ColSums", err)
	}
	out := make([]float64, d.c)
	for idx, v := range d.data {
		out[idx%d.c] += v
	}

	return out, nil
}

// Clip bounds every element into [lo, hi]. NaN cells are kept as NaN.
// Errors: ErrNilMatrix, ErrNaNInf (lo or hi is NaN), ErrDimensionMismatch (lo > hi).
func Clip(m Matrix, lo, hi float64) (*Dense, error) { return ewClipRange(m, lo, hi) }

// ReplaceInfNaN returns a copy of m with every NaN or ±Inf replaced by val.
// Useful before Inverse or EigenSym when inputs may carry Div/Power artifacts.
func ReplaceInfNaN(m Matrix, val float64) (*Dense, error) { return ewReplaceInfNaN(m, val) }

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Negative tolerances are taken by absolute value; non-finite ones yield ErrNaNInf.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }
