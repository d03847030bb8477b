// SPDX-License-Identifier: MIT

package tsp

import (
	"math"

	"github.com/katalvlaran/aislenav/matrix"
)

// NearestNeighbor builds a route greedily: from the current waypoint move
// to the closest unvisited one (smallest index on ties). A pinned end is
// appended last.
//
// Errors: validation sentinels; ErrIncompleteGraph when the greedy walk
// reaches a waypoint with no finite way onward.
// Complexity: O(N²) time, O(N) space.
func NearestNeighbor(dist matrix.Matrix, opts ...Option) (Result, error) {
	ws, o, err := prepare(dist, opts)
	if err != nil {
		return Result{}, err
	}

	return nearestNeighbor(ws, o.PinnedEnd)
}

func nearestNeighbor(ws *weights, pinned int) (Result, error) {
	if r, ok := trivial(ws.n); ok {
		return r, nil
	}
	n := ws.n
	visited := make([]bool, n)
	visited[0] = true
	if pinned > 0 {
		visited[pinned] = true
	}
	tour := make([]int, 1, n)
	cur := 0
	for len(tour) < n {
		if pinned > 0 && len(tour) == n-1 {
			tour = append(tour, pinned)
			break
		}
		next, best := -1, math.Inf(1)
		for v := 1; v < n; v++ {
			if visited[v] {
				continue
			}
			if d := ws.at(cur, v); d < best {
				next, best = v, d
			}
		}
		if next < 0 {
			return Result{}, ErrIncompleteGraph
		}
		visited[next] = true
		tour = append(tour, next)
		cur = next
	}

	return finish(ws, tour, NearestTwoOpt)
}
