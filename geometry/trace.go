// SPDX-License-Identifier: MIT

package geometry

// TraceLine walks the integer cells from (x0,y0) to (x1,y1) inclusive using
// Bresenham's incremental algorithm and calls visit for each cell in order.
// The walk stops early when visit returns false. TraceLine reports whether
// the end cell was reached.
//
// Complexity: O(max(|dx|, |dy|)) time, O(1) space.
func TraceLine(x0, y0, x1, y1 int, visit func(x, y int) bool) bool {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if !visit(x0, y0) {
			return false
		}
		if x0 == x1 && y0 == y1 {
			return true
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
