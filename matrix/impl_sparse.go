// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (coordinate-keyed) & safe accessors.
//
// Purpose:
//   - Hold only explicitly non-zero cells in a map keyed by (row, col).
//   - Canonical form: Set overwrites, setting 0 removes the entry, so one
//     coordinate never carries two values.
//   - Deterministic enumeration: Entries() is sorted row-major; kernels never
//     depend on map iteration order for floating-point accumulation.
//
// Complexity quicksheet:
//   - At/Set: O(1) expected; Entries: O(nnz log nnz); Clone: O(nnz).

package matrix

import (
	"cmp"
	"fmt"
	"slices"
)

const (
	ctxNewSparse = "NewSparse"
	ctxSparseAt  = "At"
	ctxSparseSet = "Set"
)

// sparseErrorf mirrors denseErrorf for the Sparse type.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// Sparse is a coordinate-keyed matrix: absent cells read as 0.
// It is not safe for concurrent mutation.
type Sparse struct {
	r, c int               // dimensions (> 0)
	data map[coord]float64 // explicitly stored non-zero cells
}

var (
	_ Matrix       = (*Sparse)(nil)
	_ fmt.Stringer = (*Sparse)(nil)
)

// NewSparse builds a rows×cols sparse matrix from entries.
// Implementation:
//   - Stage 1: validate the shape.
//   - Stage 2: apply entries in order with Set semantics: a later entry for
//     the same coordinate overwrites an earlier one; zero values are dropped.
//
// Errors:
//   - ErrInvalidDimensions for a non-positive shape.
//   - ErrOutOfRange when an entry lies outside the shape.
//
// Complexity:
//   - Time O(len(entries)), Space O(nnz).
func NewSparse(rows, cols int, entries []Entry) (*Sparse, error) {
	if !validShape(rows, cols) {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewSparse, rows, cols, ErrInvalidDimensions)
	}
	s := newSparse(rows, cols)
	for _, e := range entries {
		if err := s.Set(e.Row, e.Col, e.Value); err != nil {
			return nil, fmt.Errorf("%s: %w", ctxNewSparse, err)
		}
	}

	return s, nil
}

// NewSparseZeros returns an empty rows×cols sparse matrix.
func NewSparseZeros(rows, cols int) (*Sparse, error) {
	return NewSparse(rows, cols, nil)
}

// NewSparseIdentity returns the n×n identity in sparse form (n entries).
func NewSparseIdentity(n int) (*Sparse, error) {
	if !validShape(n, n) {
		return nil, fmt.Errorf("NewSparseIdentity(%d): %w", n, ErrInvalidDimensions)
	}
	s := newSparse(n, n)
	for i := 0; i < n; i++ {
		s.data[coord{i, i}] = 1.0
	}

	return s, nil
}

// newSparse allocates without validation; callers guarantee rows, cols > 0.
func newSparse(rows, cols int) *Sparse {
	return &Sparse{r: rows, c: cols, data: make(map[coord]float64)}
}

// Rows returns the row count.
func (s *Sparse) Rows() int { return s.r }

// Cols returns the column count.
func (s *Sparse) Cols() int { return s.c }

// NNZ returns the number of explicitly stored entries.
func (s *Sparse) NNZ() int { return len(s.data) }

func (s *Sparse) inBounds(row, col int) bool {
	return row >= 0 && row < s.r && col >= 0 && col < s.c
}

// At returns the value at (row, col); absent cells read as 0.
func (s *Sparse) At(row, col int) (float64, error) {
	if !s.inBounds(row, col) {
		return 0, sparseErrorf(ctxSparseAt, row, col, ErrOutOfRange)
	}

	return s.data[coord{row, col}], nil
}

// Set overwrites the value at (row, col). Storing 0 removes the entry.
// NaN and ±Inf are stored like any other non-zero value.
func (s *Sparse) Set(row, col int, v float64) error {
	if !s.inBounds(row, col) {
		return sparseErrorf(ctxSparseSet, row, col, ErrOutOfRange)
	}
	s.put(row, col, v)

	return nil
}

// put is the unchecked write used by kernels after validation.
func (s *Sparse) put(row, col int, v float64) {
	if v == 0 {
		delete(s.data, coord{row, col})
		return
	}
	s.data[coord{row, col}] = v
}

// Clone returns a deep copy.
func (s *Sparse) Clone() Matrix {
	return s.clone()
}

func (s *Sparse) clone() *Sparse {
	out := &Sparse{r: s.r, c: s.c, data: make(map[coord]float64, len(s.data))}
	for k, v := range s.data {
		out.data[k] = v
	}

	return out
}

// Entries returns the stored cells sorted by (row, col).
// Complexity: O(nnz log nnz).
func (s *Sparse) Entries() []Entry {
	out := make([]Entry, 0, len(s.data))
	for k, v := range s.data {
		out = append(out, Entry{Row: k.r, Col: k.c, Value: v})
	}
	slices.SortFunc(out, compareEntries)

	return out
}

// compareEntries orders entries row-major.
func compareEntries(a, b Entry) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}

	return cmp.Compare(a.Col, b.Col)
}

// String renders the full matrix (zeros included) exactly like Dense.String.
func (s *Sparse) String() string {
	return renderRows(s.r, s.c, func(i, j int) float64 { return s.data[coord{i, j}] })
}

// SparseToDense expands s into a row-major Dense.
// Complexity: O(r*c + nnz).
func SparseToDense(s *Sparse) (*Dense, error) {
	if s == nil {
		return nil, matrixErrorf("SparseToDense", ErrNilMatrix)
	}
	d, err := asDense(s)
	if err != nil {
		return nil, matrixErrorf("SparseToDense", err)
	}

	return d, nil
}

// DenseToSparse keeps every non-zero cell of m.
// Complexity: O(r*c).
func DenseToSparse(m Matrix) (*Sparse, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("DenseToSparse", err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf("DenseToSparse", err)
	}
	out := newSparse(d.r, d.c)
	for idx, v := range d.data {
		out.put(idx/d.c, idx%d.c, v)
	}

	return out, nil
}
