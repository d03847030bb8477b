// SPDX-License-Identifier: MIT

// Package aislenav turns store floor plans into walkable shopping routes.
//
// 🚀 What is aislenav?
//
//	A pipeline of small, dependency-light packages that takes CAD line
//	geometry and a list of stops, and returns the visiting order plus a
//	cell path for every leg:
//		• Geometry: points, segments, bounding boxes, Bresenham tracing
//		• Extraction: LINE / LWPOLYLINE / POLYLINE entities → segments
//		• Occupancy grids: rasterization, wall buffer, free regions, deferred layouts
//		• Pathfinding: 8-connected A* and line-of-sight simplification
//		• Distance matrices: all-pairs A* fan-out with reachability
//		• TSP: brute force, Held–Karp, branch and bound, nearest neighbour + 2-opt (open path)
//		• Route planning: one call from entities to an ordered Plan
//
// Under the hood, everything is organized into subpackages:
//
//	geometry/   Point2D, LineSegment, Cell, BoundingBox, TraceLine
//	extract/    entity decoding and segment extraction
//	gridgraph/  Grid, Rasterize, Buffer, ClearDisk, FreeRegions, Deferred
//	pathfind/   AStar, FindPath, Simplify, LineOfSight
//	matrix/     dense matrices and distance-matrix validation
//	distmatrix/ Build: pairwise shortest distances between waypoints
//	tsp/        Solve, BruteForce, HeldKarp, BranchAndBound, NearestNeighbor, TwoOpt
//	route/      Planner, Plan, GeoJSON export
//	cmd/aislenav CLI: plan, raster, config
//
// Quick ASCII example (3 stops, one shelf):
//
//	S . . # . . .
//	. . . # . B .
//	. . . . . . .
//	. A . . . . .
//
// The planner visits S → A → B, walking around the shelf end.
//
//	go install github.com/katalvlaran/aislenav/cmd/aislenav@latest
package aislenav
