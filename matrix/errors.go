// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels return these sentinels (possibly wrapped with an
// operation tag) and tests check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with fmt.Errorf("Op: %w", ErrX);
// callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape/dimension -> squareness -> numeric (singular,
// complex eigenvalues) -> unsupported.

var (
	// ErrInvalidDimensions indicates a non-positive shape or a data slice whose
	// length does not equal rows*cols on checked construction.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub/Div with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when elimination meets an exactly zero pivot
	// and no alternative pivot is available.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrComplexEigenvalues signals a negative discriminant in the closed-form
	// 2×2 eigenvalue computation.
	ErrComplexEigenvalues = errors.New("matrix: complex eigenvalues not supported")

	// ErrUnsupported marks an intentionally unsupported operation
	// (e.g., closed-form eigenvalues for n != 2).
	ErrUnsupported = errors.New("matrix: operation not supported")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// (finite-only policy on Set/Apply, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the given tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrEigenFailed indicates that the Jacobi eigen routine failed to converge
	// under the given tolerance/iterations.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
// Kept so errors.Is(err, ErrIndexOutOfBounds) remains true for callers
// using the older name.
var ErrIndexOutOfBounds = ErrOutOfRange
