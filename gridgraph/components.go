// SPDX-License-Identifier: MIT

package gridgraph

import "github.com/katalvlaran/aislenav/geometry"

// Regions labels connected areas of free cells.
type Regions struct {
	width  int
	labels []int // -1 for occupied cells
	Count  int
}

// FreeRegions finds all contiguous walkable regions of g under
// 8-connectivity. A diagonal step joins two cells unless both orthogonal
// cells it passes between are occupied, matching the default A* corner
// rule. Two cells in different regions are never mutually reachable.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for labels and the BFS queue.
func FreeRegions(g *Grid) *Regions {
	if !g.wellFormed() {
		r := &Regions{}
		if g != nil {
			r.width = g.Width
		}

		return r
	}
	total := g.Width * g.Height
	r := &Regions{width: g.Width, labels: make([]int, total)}
	for i := range r.labels {
		r.labels[i] = -1
	}

	queue := make([]int, 0, 64)
	for i0 := 0; i0 < total; i0++ {
		if g.cells[i0] || r.labels[i0] >= 0 {
			continue
		}
		// BFS to collect component
		label := r.Count
		r.Count++
		r.labels[i0] = label
		queue = append(queue[:0], i0)

		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			for _, d := range Neighbors8 {
				vx, vy := ux+d[0], uy+d[1]
				if g.Occupied(vx, vy) {
					continue
				}
				if d[0] != 0 && d[1] != 0 && g.Occupied(ux+d[0], uy) && g.Occupied(ux, uy+d[1]) {
					continue
				}
				vi := g.Index(vx, vy)
				if r.labels[vi] < 0 {
					r.labels[vi] = label
					queue = append(queue, vi)
				}
			}
		}
	}

	return r
}

// Label returns the region of (x,y), or -1 for occupied or out-of-range cells.
func (r *Regions) Label(x, y int) int {
	if x < 0 || y < 0 || x >= r.width {
		return -1
	}
	i := y*r.width + x
	if i >= len(r.labels) {
		return -1
	}

	return r.labels[i]
}

// Connected reports whether a and b are free and share a region.
func (r *Regions) Connected(a, b geometry.Cell) bool {
	la := r.Label(a.X, a.Y)

	return la >= 0 && la == r.Label(b.X, b.Y)
}
