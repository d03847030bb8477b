// SPDX-License-Identifier: MIT

// Package matrix defines the Matrix interface and a row-major Dense
// implementation used for waypoint distance matrices.
//
// What & Why:
//
//	Distance matrices are square float64 tables whose entries are path
//	lengths. Unreachable pairs are stored as +Inf, so Dense accepts ±Inf but
//	rejects NaN. Optimizers consume the Matrix interface so any storage can
//	be plugged in.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time, returning an error on invalid indices.
//	Clone() performs a deep copy in O(rows*cols) time, allocating new storage.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns clear errors on misuse.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNaN if v is NaN.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
