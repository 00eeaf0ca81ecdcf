// Package linalg is a compact linear-algebra toolkit for Go.
//
// Everything lives under two directories:
//
//	matrix/      - Dense, Sparse and Vector types, element-wise and algebraic
//	               kernels, LU/LUP, Gauss-Jordan inverse, determinant,
//	               eigenvalues, QR, SVD and column statistics
//	cmd/linalg/  - command-line front end for one-shot computations
//
// Quick start:
//
//	a, _ := matrix.NewDense(2, 2, []float64{1, 2, 3, 4})
//	det, _ := matrix.Determinant(a)  // -2
//	eig, _ := matrix.Eigenvalues(a)  // [5.372..., -0.372...]
//
// The library has no global state and does not log; every failure is an
// error value wrapping one of the sentinels declared in matrix/errors.go.
package linalg
