// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with context via
// %w) and tests check them via errors.Is. No function panics on
// user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands
	// or ragged input rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonZeroDiagonal signals that a diagonal entry is not ~0 (within eps).
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrNaN signals a NaN value where a number or ±Inf is required.
	ErrNaN = errors.New("matrix: NaN encountered")

	// ErrNegative signals a negative entry where distances are required.
	ErrNegative = errors.New("matrix: negative entry")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
