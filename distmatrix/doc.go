// SPDX-License-Identifier: MIT

// Package distmatrix builds all-pairs path distances among waypoints on an
// occupancy grid.
//
// For every ordered pair (i, j), i ≠ j, a path is computed with the
// configured pathfind.Finder (A* by default). The distance is the
// cumulative Euclidean length of the path, 1 per orthogonal step and √2 per
// diagonal step. An empty path is recorded as Unreachable (+Inf); it is
// never silently zero.
//
// Pairs are computed independently in both directions; symmetry is not
// assumed. Result.MaxAsymmetry reports how far the two directions differ.
//
// Concurrency:
//
//	The grid is read-only during Build. Pairs are fanned out over an
//	errgroup limited to WithWorkers goroutines; each job owns exactly one
//	(i, j) cell of the distance and path matrices, so no locking is needed.
//
// Complexity:
//
//   - Time:  O(N² × A*), A* = O(W×H log(W×H)).
//   - Space: O(N² + N² × P) for distances and retained paths.
package distmatrix
