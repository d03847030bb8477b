// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/aislenav/geometry"
)

// ExpandRegion finds a path from one cell to another that passes through
// the fewest occupied cells, and returns it with that count. Entering a
// free cell costs 0 and entering an occupied cell costs 1, so a cost of 0
// means the cells already share a free region. The path includes both
// endpoints. An occupied from cell is not counted; an occupied to cell is.
//
// Moves are 8-connected. A diagonal step between two occupied orthogonal
// cells is not allowed, since FreeRegions does not allow it either.
//
// Behavior:
//  1. Validate the grid and both cells.
//  2. Run a 0–1 BFS from the from cell: cost-0 moves go to the front of
//     the deque, cost-1 moves to the back.
//  3. Stop when the to cell is dequeued.
//  4. Rebuild the path from the predecessor table.
//
// Complexity: O(W·H·8) time, O(W·H) memory for distance and predecessors.
func ExpandRegion(g *Grid, from, to geometry.Cell) (path []geometry.Cell, cost int, err error) {
	if g == nil {
		return nil, 0, ErrNilGrid
	}
	if !g.wellFormed() || g.Empty() {
		return nil, 0, ErrMalformedGrid
	}
	for _, c := range [2]geometry.Cell{from, to} {
		if !g.InBounds(c.X, c.Y) {
			return nil, 0, fmt.Errorf("%w: %v in %dx%d", ErrCellOutOfBounds, c, g.Width, g.Height)
		}
	}

	total := g.Width * g.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, total)
	prev := make([]int, total)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := g.Index(from.X, from.Y), g.Index(to.X, to.Y)
	dist[src] = 0
	dq := list.New()
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		ux, uy := g.Coordinate(u)
		for _, d := range Neighbors8 {
			vx, vy := ux+d[0], uy+d[1]
			if !g.InBounds(vx, vy) {
				continue
			}
			if d[0] != 0 && d[1] != 0 && g.Occupied(ux+d[0], uy) && g.Occupied(ux, uy+d[1]) {
				continue
			}
			v := g.Index(vx, vy)
			step := 0
			if g.cells[v] {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := dst; at >= 0; at = prev[at] {
		x, y := g.Coordinate(at)
		path = append(path, geometry.Cell{X: x, Y: y})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], nil
}
