// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense and sparse storages.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// *Dense and *Sparse implement it; every generic kernel accepts Matrix and
// takes a flat fast path when it recognises the concrete type.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c) for
// Dense, O(nnz) for Sparse).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix shares no storage with the receiver.
	Clone() Matrix
}

// Entry is one explicitly stored (row, col, value) triple of a sparse matrix.
type Entry struct {
	Row, Col int
	Value    float64
}

// coord is the map key of the coordinate-keyed sparse storage.
// Using ints keeps the key compact and hash-friendly.
type coord struct {
	r int // row index
	c int // column index
}
