// SPDX-License-Identifier: MIT

// Package route plans a shopping route over a store layout.
//
// A Planner runs the full pipeline for one Request:
//
//	entities -> extract -> segments -> gridgraph.Rasterize -> grid
//	grid -> Buffer + ClearDisk -> walkable grid
//	stops -> distmatrix.Build -> distances -> tsp.Solve -> order
//	order -> pathfind.Simplify -> legs
//
// The start stop is visited first and the end stop, if any, last. Stops
// that cannot be reached from the start are reported in Plan.Dropped
// rather than failing the plan; an unreachable end is an error.
//
// Layouts above the cell threshold come back from rasterization deferred
// and are downsampled; Plan.ScaleFactor records the factor and leg
// distances are converted back to full-resolution units.
//
// Logging goes through log/slog (WithLogger), instrumentation through the
// internal metrics collectors (WithMetrics), and progress through an
// Observer (WithObserver).
package route
