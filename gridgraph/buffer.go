// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/aislenav/geometry"
)

// Buffer returns a new grid in which every cell within Euclidean distance r
// of an occupied cell of g is occupied. Distances are evaluated against g
// only; newly occupied cells never seed further growth. r = 0 returns an
// identical copy.
//
// Complexity: O(W×H + K×r²), K = occupied cells in g.
func Buffer(g *Grid, r int) (*Grid, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.wellFormed() {
		return nil, fmt.Errorf("%w: %dx%d with %d cells", ErrMalformedGrid, g.Width, g.Height, len(g.cells))
	}
	if r < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeRadius, r)
	}

	out := g.Clone()
	if r == 0 {
		return out, nil
	}

	disk := diskOffsets(r)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.cells[y*g.Width+x] {
				continue
			}
			for _, d := range disk {
				out.Set(x+d[0], y+d[1], true)
			}
		}
	}

	return out, nil
}

// ClearDisk frees cells of buffered within Euclidean distance r of c, in
// place, restoring the clearance the buffer took from a stop placed against
// shelving. Only cells that are free in original (the grid before
// buffering) are freed, so walls themselves are never opened. The grids
// must have the same dimensions. Returns the number of cells that changed.
func ClearDisk(buffered, original *Grid, c geometry.Cell, r int) int {
	if !buffered.wellFormed() || !original.wellFormed() || r < 0 ||
		buffered.Width != original.Width || buffered.Height != original.Height {
		return 0
	}
	n := 0
	for _, d := range diskOffsets(r) {
		x, y := c.X+d[0], c.Y+d[1]
		if !buffered.InBounds(x, y) {
			continue
		}
		i := y*buffered.Width + x
		if buffered.cells[i] && !original.cells[i] {
			buffered.cells[i] = false
			n++
		}
	}

	return n
}

// diskOffsets lists every (dx,dy) with dx²+dy² ≤ r².
func diskOffsets(r int) [][2]int {
	out := make([][2]int, 0, (2*r+1)*(2*r+1))
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r2 {
				out = append(out, [2]int{dx, dy})
			}
		}
	}

	return out
}
