// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce an optional numeric policy (rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c); Minor: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew   = "NewDense"
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxApply = "Apply"
	ctxRow   = "Row"
	ctxCol   = "Col"
	ctxMinor = "Minor"
)

// ---------- Formatting literals ----------
const (
	_fmtCell   = "%.2f"
	_fmtSep    = " "
	_fmtRowEnd = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Shape: "Dense.<method>(row,col): <sentinel>"; the sentinel survives for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set/Apply.
//
// A Dense owns its buffer exclusively; it is not safe for concurrent mutation.
type Dense struct {
	r, c           int       // row and column counts (> 0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c matrix from row-major data.
// MAIN DESCRIPTION:
//   - Checked construction path: the shape and the buffer length are validated.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and that rows*cols fits in int; else ErrInvalidDimensions.
//   - Stage 2: nil data means a zero matrix; otherwise len(data) must equal rows*cols.
//   - Stage 3: copy data into a freshly owned buffer.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - data: row-major values (element (i,j) at i*cols+j) or nil.
//
// Returns:
//   - *Dense owning a copy of data.
//
// Errors:
//   - ErrInvalidDimensions (shape or length contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, data []float64) (*Dense, error) {
	if !validShape(rows, cols) {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrInvalidDimensions)
	}
	if data != nil && len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): data length %d: %w", ctxNew, rows, cols, len(data), ErrInvalidDimensions)
	}
	m := newDense(rows, cols)
	copy(m.data, data) // no-op for nil data

	return m, nil
}

// NewDenseWithOptions is NewDense with an explicit numeric policy
// (see WithValidateNaNInf). When the policy is on, data must be finite.
func NewDenseWithOptions(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	m, err := NewDense(rows, cols, data)
	if err != nil {
		return nil, err
	}
	if o.validateNaNInf {
		for idx, v := range m.data {
			if isNonFinite(v) {
				return nil, denseErrorf(ctxNew, idx/cols, idx%cols, ErrNaNInf)
			}
		}
	}
	m.validateNaNInf = o.validateNaNInf

	return m, nil
}

// newDense allocates a zero r×c Dense without validation.
// Internal only: callers guarantee rows, cols > 0.
func newDense(rows, cols int) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; hot internal paths index data directly.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers under the policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed variant of Clone used by kernels.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// RawData returns a copy of the row-major buffer.
// Complexity: O(r*c).
func (m *Dense) RawData() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Equal reports exact equality of shape and every element.
// NaN cells compare unequal, as with ==.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for idx := range m.data {
		if m.data[idx] != o.data[idx] {
			return false
		}
	}

	return true
}

// String renders the matrix as rows of space-separated values with two
// decimal places, one line per row.
//
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with the standard delimiters.
//
// Notes:
//   - Display only; there is no parsing counterpart.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	return renderRows(m.r, m.c, func(i, j int) float64 { return m.data[i*m.c+j] })
}

// renderRows is shared by Dense and Sparse so both print identically.
func renderRows(rows, cols int, at func(i, j int) float64) string {
	var b strings.Builder
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, _fmtCell, at(i, j))
		}
		b.WriteString(_fmtRowEnd)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Behavior highlights:
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// Minor returns the submatrix of m with row `row` and column `col` removed.
// MAIN DESCRIPTION:
//   - Building block of cofactor expansion.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (row/col outside m),
//     ErrInvalidDimensions when m has a single row or column (empty result).
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func Minor(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxMinor, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return nil, matrixErrorf(ctxMinor, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	if rows < 2 || cols < 2 {
		return nil, matrixErrorf(ctxMinor, ErrInvalidDimensions)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(ctxMinor, err)
	}

	return minorOf(src, row, col), nil
}

// minorOf copies src without row/col; callers validated the indices and
// guaranteed src is at least 2×2.
func minorOf(src *Dense, row, col int) *Dense {
	out := newDense(src.r-1, src.c-1)
	var i, j, dst int
	for i = 0; i < src.r; i++ {
		if i == row {
			continue
		}
		for j = 0; j < src.c; j++ {
			if j == col {
				continue
			}
			out.data[dst] = src.data[i*src.c+j]
			dst++
		}
	}

	return out
}

// validShape reports whether rows×cols is positive and its cell count fits in int.
func validShape(rows, cols int) bool {
	return rows > 0 && cols > 0 && rows <= math.MaxInt/cols
}

// asDense returns m itself when it is a *Dense, or a dense copy otherwise.
// Complexity: O(1) on the fast path, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	if !validShape(rows, cols) {
		return nil, ErrInvalidDimensions
	}
	out := newDense(rows, cols)
	if s, ok := m.(*Sparse); ok {
		for k, v := range s.data {
			out.data[k.r*cols+k.c] = v
		}
		return out, nil
	}
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
