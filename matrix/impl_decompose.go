// SPDX-License-Identifier: MIT
// Package matrix - decomposition engine.
//
// Purpose:
//   - LU (unpivoted Doolittle elimination) and LUP (partial pivoting).
//   - Gauss–Jordan inverse with partial pivoting and 6-decimal output rounding.
//   - Determinant (cofactor expansion for small n, LUP product beyond).
//   - Closed-form eigenvalues of 2×2 matrices.
//   - Jacobi eigen-decomposition of symmetric matrices and Householder QR.
//
// Notes:
//   - Inputs are never mutated; every routine works on private copies.
//   - Pivot tests compare against ZeroPivot exactly (no epsilon), so results
//     are reproducible bit-for-bit for a given input.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// cofactorMaxN is the largest size Determinant expands by cofactors.
// Beyond it the n! recursion is replaced by the O(n³) LUP product.
const cofactorMaxN = 5

// LU factors a square matrix as A = L·U without pivoting.
// MAIN DESCRIPTION:
//   - Classic Doolittle elimination: L is unit lower triangular, U is the
//     row-reduced input.
//
// Implementation:
//   - Stage 1: ValidateSquare; U := copy(A), L := I.
//   - Stage 2: for each pivot row i: fail on U[i,i] == 0; for every j>i record
//     factor = U[j,i]/U[i,i] into L[j,i] and subtract factor·U[i,k] from
//     U[j,k] for k ≥ i.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (exactly zero pivot).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - Without row exchanges this fails on invertible matrices whose leading
//     pivot is zero (e.g. [[0,1],[1,0]]). Use LUP for those.
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := src.r
	upper := src.clone()
	lower := identityDense(n)

	var (
		i, j, k      int
		pivot, f     float64
		baseI, baseJ int
	)
	for i = 0; i < n; i++ {
		baseI = i * n
		pivot = upper.data[baseI+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", i, ErrSingular))
		}
		for j = i + 1; j < n; j++ {
			baseJ = j * n
			f = upper.data[baseJ+i] / pivot
			lower.data[baseJ+i] = f
			for k = i; k < n; k++ {
				upper.data[baseJ+k] -= f * upper.data[baseI+k]
			}
		}
	}

	return lower, upper, nil
}

// LUPFactors holds P·A = L·U produced by LUP.
//   - Perm[i] is the row of A that ended up at row i.
//   - Sign is +1 or -1 for an even or odd number of row exchanges.
type LUPFactors struct {
	L, U *Dense
	Perm []int
	Sign float64
}

// P materializes the permutation matrix so that P·A = L·U.
func (f *LUPFactors) P() *Dense {
	n := len(f.Perm)
	p := newDense(n, n)
	for i, src := range f.Perm {
		p.data[i*n+src] = 1.0
	}

	return p
}

// LUP factors a square matrix with partial pivoting: P·A = L·U.
// Implementation:
//   - Stage 1: ValidateSquare; U := copy(A), L := 0, Perm := identity.
//   - Stage 2: for column i pick the row r ≥ i with the largest |U[r,i]|
//     (first one wins ties), swap it into place together with the already
//     computed part of L, then eliminate below the pivot.
//   - Stage 3: set diag(L) = 1.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (whole candidate column is zero).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LUP(m Matrix) (*LUPFactors, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opLUP, err)
	}

	n := src.r
	upper := src.clone()
	lower := newDense(n, n)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1.0

	var (
		i, j, k, p   int
		best, cand   float64
		pivot, f     float64
		baseI, baseJ int
	)
	for i = 0; i < n; i++ {
		p, best = i, math.Abs(upper.data[i*n+i])
		for j = i + 1; j < n; j++ {
			if cand = math.Abs(upper.data[j*n+i]); cand > best {
				p, best = j, cand
			}
		}
		if p != i {
			swapRows(upper, i, p, 0, n)
			swapRows(lower, i, p, 0, i)
			perm[i], perm[p] = perm[p], perm[i]
			sign = -sign
		}
		baseI = i * n
		pivot = upper.data[baseI+i]
		if pivot == ZeroPivot {
			return nil, matrixErrorf(opLUP, fmt.Errorf("column %d: %w", i, ErrSingular))
		}
		for j = i + 1; j < n; j++ {
			baseJ = j * n
			f = upper.data[baseJ+i] / pivot
			lower.data[baseJ+i] = f
			for k = i; k < n; k++ {
				upper.data[baseJ+k] -= f * upper.data[baseI+k]
			}
		}
	}
	for i = 0; i < n; i++ {
		lower.data[i*n+i] = 1.0
	}

	return &LUPFactors{L: lower, U: upper, Perm: perm, Sign: sign}, nil
}

// swapRows exchanges columns [from, to) of rows a and b in place.
func swapRows(d *Dense, a, b, from, to int) {
	ra, rb := a*d.c, b*d.c
	for k := from; k < to; k++ {
		d.data[ra+k], d.data[rb+k] = d.data[rb+k], d.data[ra+k]
	}
}

// Inverse computes A⁻¹ by Gauss–Jordan elimination with partial pivoting.
// MAIN DESCRIPTION:
//   - Reduces the augmented n×2n matrix [A | I] to [I | A⁻¹].
//
// Implementation:
//   - Stage 1: ValidateSquare; build [A | I].
//   - Stage 2: for each column i select the row r ≥ i with the largest |aug[r,i]|
//     (first encountered maximum wins), swap it to row i.
//   - Stage 3: a pivot that is exactly zero means A is singular: return ok=false.
//   - Stage 4: divide the pivot row by the pivot, then eliminate column i from
//     every other row.
//   - Stage 5: read the right half, rounding every element to RoundDigits
//     decimals (default 6): round(v·10^d)/10^d.
//
// Returns:
//   - (inv, true, nil) on success.
//   - (nil, false, nil) when A is singular; singularity is an expected
//     outcome here, not an error.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - The rounding suppresses elimination noise (e.g. 1.4999999999999998 → 1.5)
//     and is part of the output contract. Pass WithRoundDigits(-1) for raw values.
func Inverse(m Matrix, opts ...Option) (*Dense, bool, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	n := src.r
	w := 2 * n
	aug := newDense(n, w)
	var i, j, k, p int
	for i = 0; i < n; i++ {
		copy(aug.data[i*w:i*w+n], src.data[i*n:(i+1)*n])
		aug.data[i*w+n+i] = 1.0
	}

	var best, cand, pivot, f float64
	var baseI, baseJ int
	for i = 0; i < n; i++ {
		p, best = i, math.Abs(aug.data[i*w+i])
		for j = i + 1; j < n; j++ {
			if cand = math.Abs(aug.data[j*w+i]); cand > best {
				p, best = j, cand
			}
		}
		if p != i {
			swapRows(aug, i, p, 0, w)
		}

		baseI = i * w
		pivot = aug.data[baseI+i]
		if pivot == ZeroPivot {
			return nil, false, nil
		}
		for k = 0; k < w; k++ {
			aug.data[baseI+k] /= pivot
		}

		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			baseJ = j * w
			f = aug.data[baseJ+i]
			for k = 0; k < w; k++ {
				aug.data[baseJ+k] -= f * aug.data[baseI+k]
			}
		}
	}

	inv := newDense(n, n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			inv.data[i*n+j] = roundTo(aug.data[i*w+n+j], o.roundDigits)
		}
	}

	return inv, true, nil
}

// roundTo rounds v to d decimals (half away from zero); d < 0 returns v.
func roundTo(v float64, d int) float64 {
	if d < 0 {
		return v
	}
	scale := math.Pow(10, float64(d))

	return math.Round(v*scale) / scale
}

// Determinant returns det(A) for a square matrix.
// Implementation:
//   - n == 1: the single element; n == 2: ad − bc.
//   - 2 < n ≤ 5: recursive cofactor expansion along row 0:
//     det = Σ_col (−1)^col · a[0,col] · det(minor(0,col)).
//   - n > 5: Sign · Π diag(U) of the partial-pivoted LUP; a zero pivot column
//     means det = 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - O(n!) for n ≤ 5 (bounded), O(n³) beyond.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	src, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if src.r <= cofactorMaxN {
		return cofactorDet(src), nil
	}

	f, err := LUP(src)
	if errors.Is(err, ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	det := f.Sign
	n := src.r
	for i := 0; i < n; i++ {
		det *= f.U.data[i*n+i]
	}

	return det, nil
}

// cofactorDet expands along row 0; d is square and non-empty.
func cofactorDet(d *Dense) float64 {
	n := d.r
	switch n {
	case 1:
		return d.data[0]
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2]
	}

	det := ZeroSum
	sign := 1.0
	for col := 0; col < n; col++ {
		det += sign * d.data[col] * cofactorDet(minorOf(d, 0, col))
		sign = -sign
	}

	return det
}

// Eigenvalues returns the two real eigenvalues of a 2×2 matrix, larger first.
// Implementation:
//   - trace = a00 + a11, det = a00·a11 − a01·a10, disc = trace² − 4·det.
//   - disc ≥ 0: [(trace + √disc)/2, (trace − √disc)/2].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrUnsupported for any size other than 2×2.
//   - ErrComplexEigenvalues when disc < 0 or disc is NaN.
func Eigenvalues(m Matrix) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}
	if m.Rows() != 2 {
		return nil, matrixErrorf(opEigenvalues, fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrUnsupported))
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}

	trace := src.data[0] + src.data[3]
	det := cofactorDet(src)
	disc := trace*trace - 4.0*det
	if disc < 0 || math.IsNaN(disc) {
		return nil, matrixErrorf(opEigenvalues, ErrComplexEigenvalues)
	}
	sq := math.Sqrt(disc)

	return []float64{(trace + sq) / 2.0, (trace - sq) / 2.0}, nil
}

// EigenSym performs Jacobi eigen-decomposition of a symmetric matrix.
// MAIN DESCRIPTION:
//   - Repeatedly annihilates the largest off-diagonal element with a Givens
//     rotation until max|A[p,q]| < eps or the iteration budget is spent.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, eps); A := copy(m), Q := I.
//   - Stage 2: loop: pick (p,q) = argmax_{i<j} |A[i,j]|; stop when < eps.
//   - Stage 3: compute (c,s) from θ = (A[q,q] − A[p,p]) / (2·A[p,q]) and rotate
//     rows/cols p,q of A and columns p,q of Q.
//
// Returns:
//   - eigenvalues (diag of the converged A, unsorted) and Q whose columns are
//     the matching eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrEigenFailed.
//
// Options:
//   - WithEpsilon (default 1e-10), WithMaxIterations (default 100·n²).
//
// Complexity:
//   - O(n²) per sweep search plus O(n) per rotation.
func EigenSym(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	n := src.r
	a := src.clone()
	q := identityDense(n)
	maxIter := o.MaxIterations(n)

	var (
		iter, i, j, p, q2  int
		maxOff, off        float64
		app, aqq, apq      float64
		aip, aiq, qip, qiq float64
		theta, t, c, s     float64
	)
	for iter = 0; iter < maxIter; iter++ {
		maxOff = offDiagMax(a, &p, &q2)
		if maxOff == 0 || maxOff < o.eps {
			break
		}
		app, aqq, apq = a.data[p*n+p], a.data[q2*n+q2], a.data[p*n+q2]

		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == q2 {
				continue
			}
			aip, aiq = a.data[i*n+p], a.data[i*n+q2]
			a.data[i*n+p] = c*aip - s*aiq
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+q2] = s*aip + c*aiq
			a.data[q2*n+i] = a.data[i*n+q2]
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[q2*n+q2] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+q2], a.data[q2*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip, qiq = q.data[i*n+p], q.data[i*n+q2]
			q.data[i*n+p] = c*qip - s*qiq
			q.data[i*n+q2] = s*qip + c*qiq
		}
	}

	if off = offDiagMax(a, &p, &q2); off > 0 && off >= o.eps {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}
	eigs := make([]float64, n)
	for j = 0; j < n; j++ {
		eigs[j] = a.data[j*n+j]
	}

	return eigs, q, nil
}

// offDiagMax scans the strict upper triangle and stores the argmax in (p,q).
func offDiagMax(a *Dense, p, q *int) float64 {
	n := a.r
	maxOff := 0.0
	var v float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v = math.Abs(a.data[i*n+j]); v > maxOff {
				maxOff, *p, *q = v, i, j
			}
		}
	}

	return maxOff
}

// QR computes A = Q·R by Householder reflections for rows ≥ cols.
// Implementation:
//   - Stage 1: R := copy(A), Qᵀ := I (rows×rows).
//   - Stage 2: for k < min(rows−1, cols) build v = x − α·e_k with
//     α = −sign(x_k)·‖x‖ and apply H = I − 2vvᵀ/(vᵀv) to R and Qᵀ.
//   - Stage 3: Q := (Qᵀ)ᵀ.
//
// Returns:
//   - Q (rows×rows, orthogonal) and R (rows×cols, upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when rows < cols.
//
// Complexity:
//   - Time O(rows²·cols), Space O(rows²).
func QR(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	if m.Rows() < m.Cols() {
		return nil, nil, matrixErrorf(opQR, ErrDimensionMismatch)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	rows, cols := src.r, src.c
	r := src.clone()
	qt := identityDense(rows)
	v := make([]float64, rows)

	steps := cols
	if rows-1 < steps {
		steps = rows - 1
	}
	var (
		i, j, k          int
		norm, alpha, tau float64
		beta, sum        float64
	)
	for k = 0; k < steps; k++ {
		norm = ZeroSum
		for i = k; i < rows; i++ {
			norm += r.data[i*cols+k] * r.data[i*cols+k]
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue // column already zero below the diagonal
		}
		alpha = -math.Copysign(norm, r.data[k*cols+k])

		beta = ZeroSum
		for i = k; i < rows; i++ {
			v[i] = r.data[i*cols+k]
			if i == k {
				v[i] -= alpha
			}
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue
		}
		tau = 2.0 / beta

		for j = k; j < cols; j++ {
			sum = ZeroSum
			for i = k; i < rows; i++ {
				sum += v[i] * r.data[i*cols+j]
			}
			for i = k; i < rows; i++ {
				r.data[i*cols+j] -= tau * v[i] * sum
			}
		}
		for j = 0; j < rows; j++ {
			sum = ZeroSum
			for i = k; i < rows; i++ {
				sum += v[i] * qt.data[i*rows+j]
			}
			for i = k; i < rows; i++ {
				qt.data[i*rows+j] -= tau * v[i] * sum
			}
		}
	}

	q, _ := Transpose(qt)

	return q, r, nil
}

// identityDense allocates the n×n identity; n > 0 is guaranteed by callers.
func identityDense(n int) *Dense {
	d := newDense(n, n)
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1.0
	}

	return d
}
