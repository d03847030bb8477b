// SPDX-License-Identifier: MIT

// Package extract normalizes heterogeneous CAD entities into uniform line
// segments and the bounding box that encloses them.
//
// Entities arrive from an external DXF parser as loosely typed maps (the
// shape JSON decoding produces). Decode classifies each one by the
// coordinate shape it carries and returns a tagged variant:
//
//   - Line: explicit "start"/"end" points.
//   - PointPairLine: "startPoint"/"endPoint" points.
//   - VertexLine: a LINE described by "vertices" (first two are used).
//   - CoordLine: flat "x", "y", "x1", "y1" numbers.
//   - Polyline: LWPOLYLINE/POLYLINE vertex chains, optionally "closed".
//
// Entities carrying no recognized numeric shape are skipped with
// ErrUnrecognizedShape or ErrNonNumeric; they never abort extraction.
//
// Extract flattens variants into segments and accumulates the bounding
// box over every accepted endpoint. WithSimplify reduces long polyline
// chains with Douglas–Peucker before segmentation.
//
// Complexity:
//
//   - Decode:  O(v) per entity, v = number of vertices.
//   - Extract: O(V) over all vertices; O(V log V) worst case with simplification.
package extract
