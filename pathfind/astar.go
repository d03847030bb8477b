// SPDX-License-Identifier: MIT

package pathfind

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/aislenav/geometry"
	"github.com/katalvlaran/aislenav/gridgraph"
)

// AStar is the grid A* engine. The zero value uses the default corner rule.
// AStar holds no state between calls and is safe for concurrent use.
type AStar struct {
	// StrictCorners forbids a diagonal step when either orthogonal
	// neighbour forming it is occupied, instead of only when both are.
	StrictCorners bool
}

// FindPath runs A* with the zero AStar.
func FindPath(g *gridgraph.Grid, start, goal geometry.Cell) Path {
	return AStar{}.FindPath(g, start, goal)
}

// FindPath returns a cost-optimal 8-connected path from start to goal, or
// an empty Path if the grid is empty, an endpoint is out of bounds or
// occupied, or the goal is unreachable.
//
// Ties in the open set are broken by lower f, then lower h, then lower
// row-major index, so results are deterministic.
//
// Complexity: O(V log V) time with V = W×H (lazy decrease-key), O(V) memory.
func (a AStar) FindPath(g *gridgraph.Grid, start, goal geometry.Cell) Path {
	// 1) Preconditions: never an error, only an empty path.
	if g.Empty() {
		return nil
	}
	if !g.Walkable(start) || !g.Walkable(goal) {
		return nil
	}
	if start == goal {
		return Path{start}
	}

	// 2) Search.
	r := newRunner(g, goal, a.StrictCorners)
	if !r.process(g.Index(start.X, start.Y)) {
		return nil
	}

	// 3) Rebuild from parents.
	return r.path()
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g       *gridgraph.Grid
	goal    geometry.Cell
	goalIdx int
	strict  bool
	cost    []float64 // best known g per cell, +Inf if unseen
	parent  []int32   // predecessor index, -1 if none
	closed  []bool    // finalized cells
	open    openPQ
}

func newRunner(g *gridgraph.Grid, goal geometry.Cell, strict bool) *runner {
	n := g.Len()
	r := &runner{
		g:       g,
		goal:    goal,
		goalIdx: g.Index(goal.X, goal.Y),
		strict:  strict,
		cost:    make([]float64, n),
		parent:  make([]int32, n),
		closed:  make([]bool, n),
		open:    make(openPQ, 0, 64),
	}
	for i := range r.cost {
		r.cost[i] = math.Inf(1)
		r.parent[i] = -1
	}

	return r
}

// process expands nodes until the goal is finalized or the open set is
// exhausted. Reports whether the goal was reached.
func (r *runner) process(src int) bool {
	r.cost[src] = 0
	sx, sy := r.g.Coordinate(src)
	h := octile(sx, sy, r.goal.X, r.goal.Y)
	heap.Push(&r.open, openItem{idx: src, f: h, h: h})

	for r.open.Len() > 0 {
		it := heap.Pop(&r.open).(openItem)
		u := it.idx
		// Skip stale duplicates left by lazy decrease-key.
		if r.closed[u] {
			continue
		}
		if u == r.goalIdx {
			return true
		}
		r.closed[u] = true
		r.relax(u)
	}

	return false
}

// relax pushes every admissible neighbour of u whose cost improves.
func (r *runner) relax(u int) {
	ux, uy := r.g.Coordinate(u)
	base := r.cost[u]
	for _, d := range gridgraph.Neighbors8 {
		vx, vy := ux+d[0], uy+d[1]
		if r.g.Occupied(vx, vy) {
			continue
		}
		step := 1.0
		if d[0] != 0 && d[1] != 0 {
			if !r.diagonalAllowed(ux, uy, d[0], d[1]) {
				continue
			}
			step = math.Sqrt2
		}
		v := r.g.Index(vx, vy)
		if r.closed[v] {
			continue
		}
		nc := base + step
		if nc >= r.cost[v] {
			continue
		}
		r.cost[v] = nc
		r.parent[v] = int32(u)
		h := octile(vx, vy, r.goal.X, r.goal.Y)
		heap.Push(&r.open, openItem{idx: v, f: nc + h, h: h})
	}
}

// diagonalAllowed applies the corner rule to the step (dx,dy) from (x,y).
func (r *runner) diagonalAllowed(x, y, dx, dy int) bool {
	a := r.g.Occupied(x+dx, y)
	b := r.g.Occupied(x, y+dy)
	if r.strict {
		return !a && !b
	}

	return !(a && b)
}

func (r *runner) path() Path {
	n := 0
	for at := r.goalIdx; at >= 0; at = int(r.parent[at]) {
		n++
	}
	out := make(Path, n)
	for at := r.goalIdx; at >= 0; at = int(r.parent[at]) {
		n--
		x, y := r.g.Coordinate(at)
		out[n] = geometry.Cell{X: x, Y: y}
	}

	return out
}

// octile is the exact 8-connected distance on an empty grid.
func octile(x0, y0, x1, y1 int) float64 {
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))

	return dx + dy + (math.Sqrt2-2)*math.Min(dx, dy)
}

// openItem is a lazy heap entry; duplicates of a cell may coexist.
type openItem struct {
	idx  int
	f, h float64
}

// openPQ implements heap.Interface as a min-heap on (f, h, idx).
type openPQ []openItem

func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}

	return pq[i].idx < pq[j].idx
}

func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(openItem)) }

func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
