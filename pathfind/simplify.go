// SPDX-License-Identifier: MIT

package pathfind

import (
	"github.com/katalvlaran/aislenav/geometry"
	"github.com/katalvlaran/aislenav/gridgraph"
)

// LineOfSight reports whether the Bresenham line from a to b crosses only
// free in-bounds cells, endpoints included.
func LineOfSight(g *gridgraph.Grid, a, b geometry.Cell) bool {
	if g.Empty() {
		return false
	}

	return geometry.TraceLine(a.X, a.Y, b.X, b.Y, func(x, y int) bool {
		return !g.Occupied(x, y)
	})
}

// Simplify reduces path by greedy line-of-sight jumps. The first and last
// cells are kept and the output is never longer than the input. From each
// anchor the scan advances while the line stays clear and stops at the
// first blocked index; discarded points are not revisited.
//
// Complexity: O(P × L).
func Simplify(path Path, g *gridgraph.Grid) Path {
	if len(path) < 3 || g.Empty() {
		return append(Path(nil), path...)
	}

	out := Path{path[0]}
	anchor := 0
	last := len(path) - 1
	for anchor < last {
		furthest := anchor + 1
		for i := anchor + 2; i <= last; i++ {
			if !LineOfSight(g, path[anchor], path[i]) {
				break
			}
			furthest = i
		}
		out = append(out, path[furthest])
		anchor = furthest
	}

	return out
}
