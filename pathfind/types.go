// SPDX-License-Identifier: MIT

package pathfind

import (
	"github.com/katalvlaran/aislenav/geometry"
	"github.com/katalvlaran/aislenav/gridgraph"
)

// Path is an ordered sequence of cells from start to goal inclusive.
// An empty Path means no path exists.
type Path []geometry.Cell

// Length returns the cumulative Euclidean length of the path:
// 1 per orthogonal step, √2 per diagonal step, and the straight-line
// distance between consecutive points of a simplified path.
func (p Path) Length() float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		total += geometry.StepLength(p[i-1], p[i])
	}

	return total
}

// Empty reports whether p denotes "no path".
func (p Path) Empty() bool { return len(p) == 0 }

// Waypoint is a grid cell with an optional opaque identity.
type Waypoint struct {
	geometry.Cell
	ID string `json:"id,omitempty"`
}

// Finder computes a path between two cells of a grid.
// Implementations must be safe for concurrent use on a read-only grid.
type Finder interface {
	FindPath(g *gridgraph.Grid, start, goal geometry.Cell) Path
}

// FinderFunc adapts a function to Finder.
type FinderFunc func(g *gridgraph.Grid, start, goal geometry.Cell) Path

// FindPath implements Finder.
func (f FinderFunc) FindPath(g *gridgraph.Grid, start, goal geometry.Cell) Path {
	return f(g, start, goal)
}
