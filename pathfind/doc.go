// SPDX-License-Identifier: MIT

// Package pathfind implements A* shortest-path search over an occupancy
// grid and greedy line-of-sight path simplification.
//
// A* expands the 8 neighbours of each cell. Orthogonal steps cost 1 and
// diagonal steps cost √2. A diagonal is refused when both orthogonal cells
// it squeezes between are occupied (no corner cutting); AStar.StrictCorners
// refuses it when either one is. The octile distance is used as heuristic;
// it is admissible and consistent for this movement model, so returned
// paths are cost-optimal.
//
// Preconditions are checked first. An empty or malformed grid, an
// out-of-bounds endpoint or an occupied endpoint all yield an empty Path,
// never an error. start == goal yields [start].
//
// Simplify keeps an anchor, scans forward to the furthest path index still
// visible from it (Bresenham traversal, no occupied or out-of-bounds cell)
// and jumps there. Scanning stops at the first blocked index.
//
// Complexity:
//
//   - FindPath: O(W×H log(W×H)) time, O(W×H) memory.
//   - Simplify: O(P × L), P = path length, L = longest tested line.
package pathfind
