// SPDX-License-Identifier: MIT
// Package matrix - sparse kernels.
//
// Purpose:
//   - Sparse counterparts of Add/Sub/Mul/Div/Transpose/Scale/Power that keep
//     results in *Sparse form.
//   - Numeric agreement with the dense kernels: every sparse result equals
//     DenseToSparse(<dense kernel>(SparseToDense(a), SparseToDense(b))).
//
// Notes:
//   - Kernels touch only stored entries when absent cells provably stay zero
//     (x+0, x·α for finite α, 0^p for p>0). Otherwise (Div, non-finite scalars,
//     0^p for p≤0) they scan every cell so 0/0, 0·Inf and 0^-1 surface as in
//     the dense path.

package matrix

import (
	"fmt"
	"math"
)

const (
	opSparseAdd       = "SparseAdd"
	opSparseSub       = "SparseSub"
	opSparseMul       = "SparseMul"
	opSparseDiv       = "SparseDiv"
	opSparseTranspose = "SparseTranspose"
	opSparseScale     = "SparseScale"
	opSparsePower     = "SparsePower"
)

// validateSparsePair checks nil operands and the requested shape relation.
func validateSparsePair(a, b *Sparse, sameShape bool) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if sameShape {
		return ValidateSameShape(a, b)
	}
	if a.c != b.r {
		return fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}

// SparseAdd returns a + b.
// Complexity: O(nnz(a) + nnz(b)).
func SparseAdd(a, b *Sparse) (*Sparse, error) {
	if err := validateSparsePair(a, b, true); err != nil {
		return nil, matrixErrorf(opSparseAdd, err)
	}
	out := a.clone()
	for k, v := range b.data {
		out.put(k.r, k.c, out.data[k]+v)
	}

	return out, nil
}

// SparseSub returns a − b.
// Complexity: O(nnz(a) + nnz(b)).
func SparseSub(a, b *Sparse) (*Sparse, error) {
	if err := validateSparsePair(a, b, true); err != nil {
		return nil, matrixErrorf(opSparseSub, err)
	}
	out := a.clone()
	for k, v := range b.data {
		out.put(k.r, k.c, out.data[k]-v)
	}

	return out, nil
}

// SparseDiv returns the element-wise quotient a / b over every cell.
// Absent cells take part as zeros: 0/0 stores NaN, x/0 stores ±Inf.
// Complexity: O(r*c).
func SparseDiv(a, b *Sparse) (*Sparse, error) {
	if err := validateSparsePair(a, b, true); err != nil {
		return nil, matrixErrorf(opSparseDiv, err)
	}
	out := newSparse(a.r, a.c)
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			out.put(i, j, a.data[coord{i, j}]/b.data[coord{i, j}])
		}
	}

	return out, nil
}

// SparseMul returns the matrix product a × b.
// MAIN DESCRIPTION:
//   - Row-by-row merge: each stored a[i,k] meets the stored row k of b.
//
// Implementation:
//   - Stage 1: bucket b's entries by row (already sorted by column).
//   - Stage 2: walk a's entries in row-major order so every output cell
//     accumulates its terms in ascending k, like the dense kernel.
//   - Stage 3: store the non-zero sums.
//
// Behavior highlights:
//   - When either operand stores a non-finite value the product is computed
//     densely, because 0·Inf terms from absent cells must yield NaN.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(nnz(a)·avgRow(b) + nnz log nnz), Space O(nnz(result)).
func SparseMul(a, b *Sparse) (*Sparse, error) {
	if err := validateSparsePair(a, b, false); err != nil {
		return nil, matrixErrorf(opSparseMul, err)
	}
	if a.hasNonFinite() || b.hasNonFinite() {
		da, _ := asDense(a)
		db, _ := asDense(b)
		out, err := DenseToSparse(mulDense(da, db))
		if err != nil {
			return nil, matrixErrorf(opSparseMul, err)
		}
		return out, nil
	}

	rowsOfB := make(map[int][]Entry, b.r)
	for _, e := range b.Entries() {
		rowsOfB[e.Row] = append(rowsOfB[e.Row], e)
	}

	acc := make(map[coord]float64)
	for _, ea := range a.Entries() {
		for _, eb := range rowsOfB[ea.Col] {
			acc[coord{ea.Row, eb.Col}] += ea.Value * eb.Value
		}
	}

	out := newSparse(a.r, b.c)
	for k, v := range acc {
		out.put(k.r, k.c, v)
	}

	return out, nil
}

// SparseTranspose returns sᵀ. Complexity: O(nnz).
func SparseTranspose(s *Sparse) (*Sparse, error) {
	if s == nil {
		return nil, matrixErrorf(opSparseTranspose, ErrNilMatrix)
	}
	out := newSparse(s.c, s.r)
	for k, v := range s.data {
		out.data[coord{k.c, k.r}] = v
	}

	return out, nil
}

// SparseScale returns alpha·s.
// Complexity: O(nnz) for finite alpha, O(r*c) otherwise.
func SparseScale(s *Sparse, alpha float64) (*Sparse, error) {
	if s == nil {
		return nil, matrixErrorf(opSparseScale, ErrNilMatrix)
	}

	return s.mapValues(alpha*0 == 0, func(x float64) float64 { return x * alpha }), nil
}

// SparsePower raises every element to p with math.Pow.
// For p ≤ 0 (or NaN) absent cells become 0^p (1, +Inf or NaN) and are stored.
// Complexity: O(nnz) for p > 0, O(r*c) otherwise.
func SparsePower(s *Sparse, p float64) (*Sparse, error) {
	if s == nil {
		return nil, matrixErrorf(opSparsePower, ErrNilMatrix)
	}

	return s.mapValues(math.Pow(0, p) == 0, func(x float64) float64 { return math.Pow(x, p) }), nil
}

// mapValues applies f to stored entries only when f(0) == 0 is guaranteed
// (zeroPreserving), or to every cell otherwise.
func (s *Sparse) mapValues(zeroPreserving bool, f func(float64) float64) *Sparse {
	out := newSparse(s.r, s.c)
	if zeroPreserving {
		for k, v := range s.data {
			out.put(k.r, k.c, f(v))
		}
		return out
	}
	var i, j int
	for i = 0; i < s.r; i++ {
		for j = 0; j < s.c; j++ {
			out.put(i, j, f(s.data[coord{i, j}]))
		}
	}

	return out
}

// hasNonFinite reports whether any stored value is NaN or ±Inf.
func (s *Sparse) hasNonFinite() bool {
	for _, v := range s.data {
		if isNonFinite(v) {
			return true
		}
	}

	return false
}
