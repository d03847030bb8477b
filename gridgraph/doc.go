// SPDX-License-Identifier: MIT

// Package gridgraph turns floor-plan line segments into a binary occupancy
// grid and prepares that grid for path search.
//
// What:
//
//   - Grid is a fixed-size row-major occupancy array (free / occupied).
//   - Rasterize traces segments cell by cell with Bresenham's algorithm.
//     Layouts whose cell count exceeds the configured threshold are not
//     materialized; a *Deferred carrying the segments and an R-tree index
//     is returned instead.
//   - Deferred answers point queries, rasterizes viewports on demand and
//     produces a downsampled grid for path search. Grid.Crop cuts the same
//     window from a materialized grid.
//   - Buffer dilates obstacles by a circular radius against a snapshot of
//     the original grid; ClearDisk gives back buffer halo around a cell
//     without opening the walls themselves.
//   - ExpandRegion finds the fewest occupied cells separating two cells,
//     explaining why a stop was dropped.
//   - FreeRegions labels connected walkable areas (8-connectivity with the
//     same corner rule the A* search uses).
//
// Grid space:
//
//	width  = ceil(maxX − minX) + 1 + margin
//	height = ceil(maxY − minY) + 1 + margin
//	cell   = floor(coord − min) + floor(margin / 2)
//
// Complexity:
//
//   - Rasterize:   O(W×H + Σ segment length) time, O(W×H) memory.
//   - Buffer:      O(W×H + K×r²) time, K = occupied cells.
//   - FreeRegions: O(W×H) time and memory.
//   - Deferred:    O(S log S) index build, O(log S + hits×length) per query.
//
// Options:
//
//   - WithMargin (default 5), WithMaxCells (default 10,000,000).
//   - WithBatchSize (default 25), WithYieldEvery (default 100), WithProgress.
//
// Errors:
//
//   - ErrInvalidOption: negative margin or non-positive limits.
//   - ErrNegativeRadius: Buffer with r < 0.
//   - ErrEmptyGrid, ErrNonRectangular: FromRows input errors.
//   - ErrMalformedGrid: a Grid literal whose cells do not match its size.
//   - ErrCellOutOfBounds: ExpandRegion endpoints outside the grid.
//   - ErrWindowOutOfBounds: Viewport or Crop outside the layout.
package gridgraph
