// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrInvalidDimensions indicates a negative width or height.
	ErrInvalidDimensions = errors.New("gridgraph: dimensions must be non-negative")
	// ErrInvalidOption indicates a rasterizer option outside its domain.
	ErrInvalidOption = errors.New("gridgraph: invalid option")
	// ErrNegativeRadius indicates a buffer radius below zero.
	ErrNegativeRadius = errors.New("gridgraph: buffer radius must be non-negative")
	// ErrNilGrid indicates a nil *Grid argument.
	ErrNilGrid = errors.New("gridgraph: grid is nil")
	// ErrMalformedGrid indicates a Grid whose cells do not match its
	// dimensions, such as a struct literal not built by NewGrid.
	ErrMalformedGrid = errors.New("gridgraph: grid cells do not match its dimensions")
	// ErrCellOutOfBounds indicates a cell argument outside the grid.
	ErrCellOutOfBounds = errors.New("gridgraph: cell outside grid")
	// ErrWindowOutOfBounds indicates a viewport not contained in the layout.
	ErrWindowOutOfBounds = errors.New("gridgraph: viewport outside layout bounds")
)
