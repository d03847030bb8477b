// SPDX-License-Identifier: MIT

// Package tsp orders waypoints into a short open route.
//
// The route always starts at waypoint 0 and visits every waypoint exactly
// once. It does not return to the start. Optionally the last position is
// pinned to a mandatory end waypoint (WithPinnedEnd).
//
// What:
//
//	Solve dispatches on N, the number of waypoints:
//	  - N ≤ 4:       BruteForce, exhaustive enumeration of (N−1)! orders.
//	  - 5 ≤ N ≤ 15:  HeldKarp, exact bitmask dynamic programming.
//	  - N > 15:      NearestNeighbor construction refined by TwoOpt.
//	WithAlgorithm forces one of them, or BranchAndBound: an exact
//	depth-first search that stays usable a little beyond Held–Karp's
//	memory limit and can be stopped by WithTimeLimit.
//
// Input:
//
//	A square distance matrix (matrix.Matrix) with a zero diagonal, no NaN
//	and no negative entries. +Inf marks an impassable pair; a route using
//	one is never returned. When no finite route exists the solvers report
//	ErrIncompleteGraph. The matrix may be asymmetric.
//
// Complexity:
//
//   - BruteForce: O(N!) time, O(N) space.
//   - HeldKarp:   O(N²·2ᴺ) time, O(N·2ᴺ) space, released on return.
//   - BranchAndBound: exponential worst case, O(N²) space; pruning by
//     Σ min-incoming over unentered waypoints keeps small N fast.
//   - NearestNeighbor: O(N²).
//   - TwoOpt: O(S·N²) for S sweeps, S ≤ N² by default. Each candidate
//     costs O(1) on symmetric input and O(j−i) otherwise.
//
// Options:
//
//   - WithAlgorithm(a)       force a solver.
//   - WithPinnedEnd(idx)     keep waypoint idx last.
//   - WithTwoOptMaxSweeps(s) cap 2-opt sweeps (0 means N²).
//   - WithTimeLimit(d)       soft wall-clock budget for 2-opt and branch and bound.
//   - WithEps(eps)           minimum improvement accepted by 2-opt.
//
// Errors:
//
//   - matrix.ErrNonSquare, matrix.ErrNonZeroDiagonal, matrix.ErrNaN,
//     matrix.ErrNegative, matrix.ErrNilMatrix for malformed input.
//   - ErrIncompleteGraph when every route crosses a +Inf entry.
//   - ErrPinnedEndOutOfRange, ErrTooLarge, ErrInvalidOption,
//     ErrUnsupportedAlgorithm, ErrInvalidTour.
//
// All returned costs are rounded to 1e−9 so exact and heuristic solvers
// compare stably.
package tsp
