// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aislenav/geometry"
)

// Neighbors8 lists the 8-connected offsets: N, NE, E, SE, S, SW, W, NW.
var Neighbors8 = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// Layout is the result of rasterization: either a materialized *Grid or a
// *Deferred on-demand representation for oversized floor plans.
type Layout interface {
	// Dims returns the full-resolution width and height in cells.
	Dims() (width, height int)
	isLayout()
}

// Grid is a row-major occupancy grid. Dimensions are fixed at
// construction. The zero value is an empty 0×0 grid. Build grids with
// NewGrid or FromRows; a literal with dimensions but no cells is malformed
// and every cell of it reads as occupied.
type Grid struct {
	Width, Height int
	cells         []bool
}

// NewGrid returns a free grid of w×h cells.
// Complexity: O(W×H).
func NewGrid(w, h int) (*Grid, error) {
	if w < 0 || h < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Grid{Width: w, Height: h, cells: make([]bool, w*h)}, nil
}

// FromRows builds a grid from rows[y][x]; any non-zero value is occupied.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if row lengths differ.
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	g := &Grid{Width: w, Height: h, cells: make([]bool, w*h)}
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x, v := range row {
			g.cells[y*w+x] = v != 0
		}
	}

	return g, nil
}

// Dims implements Layout.
func (g *Grid) Dims() (int, int) { return g.Width, g.Height }

func (*Grid) isLayout() {}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Empty reports whether the grid has no cells or is malformed.
func (g *Grid) Empty() bool {
	return g == nil || g.Width <= 0 || g.Height <= 0 || len(g.cells) != g.Width*g.Height
}

// wellFormed reports whether the cell storage matches the dimensions.
func (g *Grid) wellFormed() bool {
	return g != nil && g.Width >= 0 && g.Height >= 0 && len(g.cells) == g.Width*g.Height
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Occupied reports whether (x,y) is an obstacle. Cells outside the grid
// count as occupied.
func (g *Grid) Occupied(x, y int) bool {
	if !g.wellFormed() || !g.InBounds(x, y) {
		return true
	}

	return g.cells[y*g.Width+x]
}

// Walkable reports whether c is inside the grid and free.
func (g *Grid) Walkable(c geometry.Cell) bool {
	return !g.Occupied(c.X, c.Y)
}

// Set marks (x,y) occupied or free. Out-of-bounds writes, and writes to a
// malformed grid, are ignored.
func (g *Grid) Set(x, y int, occupied bool) {
	if g.wellFormed() && g.InBounds(x, y) {
		g.cells[y*g.Width+x] = occupied
	}
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Crop copies the w×h window whose top-left cell is (x,y). Cell (i,j) of
// the result is (x+i, y+j) of g.
func (g *Grid) Crop(x, y, w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	if x < 0 || y < 0 || x+w > g.Width || y+h > g.Height {
		return nil, fmt.Errorf("%w: window %dx%d at (%d,%d) in %dx%d", ErrWindowOutOfBounds, w, h, x, y, g.Width, g.Height)
	}
	out := &Grid{Width: w, Height: h, cells: make([]bool, w*h)}
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			out.cells[j*w+i] = g.Occupied(x+i, y+j)
		}
	}

	return out, nil
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}

	return n
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{Width: g.Width, Height: g.Height, cells: make([]bool, len(g.cells))}
	copy(out.cells, g.cells)

	return out
}

// Equal reports whether both grids have identical dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Width != o.Width || g.Height != o.Height || len(g.cells) != len(o.cells) {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}

	return true
}

// Rows returns the grid as rows[y][x] with 1 for occupied and 0 for free.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.Height)
	for y := range rows {
		rows[y] = make([]int, g.Width)
		for x := range rows[y] {
			if g.Occupied(x, y) {
				rows[y][x] = 1
			}
		}
	}

	return rows
}

// String renders the grid with '#' for occupied and '.' for free cells,
// one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Occupied(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// markLine traces a→b and sets every visited in-bounds cell occupied.
func (g *Grid) markLine(a, b geometry.Cell) {
	geometry.TraceLine(a.X, a.Y, b.X, b.Y, func(x, y int) bool {
		g.Set(x, y, true)
		return true
	})
}
