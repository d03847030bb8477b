// SPDX-License-Identifier: MIT

// Package geometry defines the planar primitives shared by every stage of
// the floor-plan pipeline: source-space points and segments, the accumulated
// bounding box, integer grid cells, and the incremental line traversal used
// both to rasterize walls and to test line of sight.
//
// What:
//
//   - Point2D, LineSegment: floating-point coordinates in source geometry units.
//   - BoundingBox: min/max accumulator backed by orb.Bound, with the grid
//     dimension rule width = ceil(maxX−minX) + 1 + margin.
//   - Cell: integer (x, y) grid coordinates.
//   - TraceLine: Bresenham traversal from one cell to another, inclusive.
//
// Complexity:
//
//   - BoundingBox.Extend: O(1).
//   - TraceLine: O(max(|dx|, |dy|)).
package geometry
