// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition, subtraction, division and product, matrix
// multiplication, transpose, scalar scaling and scalar power. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Purpose:
//   - Define canonical linear-algebra kernels used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Kernels never mutate their inputs; every result is a freshly allocated *Dense.
//   - Non-Dense operands are materialized once (asDense) and then processed
//     on the flat buffer, so every storage shares one arithmetic path.
//   - No special-casing of IEEE-754 specials: x/0, 0*Inf, Pow(-1, 0.5) produce
//     ±Inf/NaN in the output cell exactly as float64 arithmetic does.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of every running sum (dot products, substitution).
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting an exactly zero pivot in elimination.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opDiv         = "Div"
	opHadamard    = "Hadamard"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opPower       = "Power"
	opMatVec      = "MatVec"
	opTrace       = "Trace"
	opLU          = "LU"
	opLUP         = "LUP"
	opInverse     = "Inverse"
	opDeterminant = "Determinant"
	opEigenvalues = "Eigenvalues"
	opEigen       = "EigenSym"
	opQR          = "QR"
	opSVD         = "SVD"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// zipWith applies f cell-by-cell to two same-shape operands.
// Implementation:
//   - Stage 1: ValidateBinarySameShape (nil → shape).
//   - Stage 2: materialize both operands as *Dense (no copy for *Dense).
//   - Stage 3: single flat pass idx = 0..r*c-1.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func zipWith(a, b Matrix, opTag string, f func(x, y float64) float64) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDense(da.r, da.c)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = f(da.data[idx], db.data[idx])
	}

	return res, nil
}

// mapCells applies f to every cell of m, producing a new *Dense.
func mapCells(m Matrix, opTag string, f func(x float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDense(dm.r, dm.c)
	for idx, v := range dm.data {
		res.data[idx] = f(v)
	}

	return res, nil
}

// Add returns the element-wise sum a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	return zipWith(a, b, opAdd, func(x, y float64) float64 { return x + y })
}

// Sub returns the element-wise difference a − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	return zipWith(a, b, opSub, func(x, y float64) float64 { return x - y })
}

// Div returns the element-wise quotient a / b.
// Division by zero is NOT an error: the IEEE-754 result (+Inf, -Inf or NaN)
// is written to the output cell.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Div(a, b Matrix) (*Dense, error) {
	return zipWith(a, b, opDiv, func(x, y float64) float64 { return x / y })
}

// Hadamard returns the element-wise product a ⊙ b.
func Hadamard(a, b Matrix) (*Dense, error) {
	return zipWith(a, b, opHadamard, func(x, y float64) float64 { return x * y })
}

// Mul computes the matrix product a × b.
// MAIN DESCRIPTION:
//   - Classic triple loop; result has shape (a.Rows, b.Cols).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (a.Cols == b.Rows).
//   - Stage 2: for each cell (i,j) accumulate a[i,k]*b[k,j] as an ordinary
//     running sum in ascending k, starting from ZeroSum.
//
// Behavior highlights:
//   - No zero-skipping and no compensated summation: 0*Inf yields NaN like
//     plain float arithmetic would.
//   - The i→k→j traversal keeps the per-cell accumulation order ascending in k
//     while streaming rows of b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulDense(da, db), nil
}

// mulDense is the unchecked product kernel shared by Mul and the decomposition tests.
func mulDense(da, db *Dense) *Dense {
	aRows, aCols, bCols := da.r, da.c, db.c
	res := newDense(aRows, bCols)
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res
}

// Transpose returns mᵀ. Always succeeds for a non-nil matrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := dm.r, dm.c
	res := newDense(cols, rows) // dims flipped
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// Scale returns alpha·m.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	return mapCells(m, opScale, func(x float64) float64 { return x * alpha })
}

// Power raises every element independently to exponent p using math.Pow
// (fractional and negative exponents allowed; invalid bases yield NaN).
// It is NOT the matrix power m^p.
func Power(m Matrix, p float64) (*Dense, error) {
	return mapCells(m, opPower, func(x float64) float64 { return math.Pow(x, p) })
}

// MatVec computes y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols()).
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	var i, j, base int
	var acc float64
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Trace returns the sum of the diagonal of a square matrix.
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := ZeroSum
	for i := 0; i < d.r; i++ {
		sum += d.data[i*d.c+i]
	}

	return sum, nil
}
