// SPDX-License-Identifier: MIT

// Package matrix is a small linear-algebra kernel over float64.
//
// Storage:
//
//   - Dense: row-major flat buffer, checked At/Set returning ErrOutOfRange.
//   - Sparse: coordinate-keyed map of non-zero cells; Set overwrites and
//     storing 0 removes the entry, Entries() enumerates row-major.
//   - Vector: one-dimensional buffer, embeddable as an n×1 Dense.
//
// Operations:
//
//   - Element-wise: Add, Sub, Div, Hadamard, Scale, Power (and Sparse*/Vec*
//     counterparts). Division by zero yields ±Inf or NaN, never an error.
//   - Algebraic: Mul, Transpose, MatVec, Trace, Minor.
//   - Decompositions: LU (unpivoted), LUP, Inverse (Gauss–Jordan, rounded to
//     6 decimals by default), Determinant, Eigenvalues (2×2 closed form),
//     EigenSym (Jacobi), QR (Householder), SVD and PseudoInverse (gonum).
//   - Statistics: CenterColumns, Covariance, Correlation.
//
// Errors are package sentinels wrapped with an operation tag; match them with
// errors.Is. Tunables (tolerance, iteration budget, inverse rounding, finite-only
// policy) are functional options; see options.go.
//
// Example:
//
//	a, _ := matrix.NewDense(2, 2, []float64{1, 2, 3, 4})
//	inv, ok, _ := matrix.Inverse(a)
//	if ok {
//		fmt.Print(inv) // -2.00 1.00\n1.50 -0.50\n
//	}
package matrix
