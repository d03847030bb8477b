// SPDX-License-Identifier: MIT

package extract

import (
	"errors"

	"github.com/katalvlaran/aislenav/geometry"
)

// Sentinel errors for skipped entities (InvalidInputGeometry).
var (
	// ErrUnrecognizedShape indicates the entity matches none of the known coordinate shapes.
	ErrUnrecognizedShape = errors.New("extract: no recognized coordinate shape")

	// ErrNonNumeric indicates a recognized shape whose coordinates are missing or not numbers.
	ErrNonNumeric = errors.New("extract: non-numeric coordinate")

	// ErrTooFewVertices indicates a vertex list shorter than two points.
	ErrTooFewVertices = errors.New("extract: fewer than two vertices")
)

// Kind tags an Entity variant.
type Kind int

const (
	// KindLine is an entity with explicit start/end points.
	KindLine Kind = iota
	// KindPointPairLine is an entity with startPoint/endPoint points.
	KindPointPairLine
	// KindVertexLine is a LINE expressed through a vertex list.
	KindVertexLine
	// KindCoordLine is an entity with flat x/y/x1/y1 numbers.
	KindCoordLine
	// KindPolyline is an open or closed vertex chain.
	KindPolyline
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindPointPairLine:
		return "point_pair_line"
	case KindVertexLine:
		return "vertex_line"
	case KindCoordLine:
		return "coord_line"
	case KindPolyline:
		return "polyline"
	default:
		return "unknown"
	}
}

// Entity is the sealed set of recognized entity shapes. Every variant
// carries already validated coordinates.
type Entity interface {
	Kind() Kind
	segments() []geometry.LineSegment
}

// Line is a segment given by "start" and "end".
type Line struct {
	Start, End geometry.Point2D
}

// PointPairLine is a segment given by "startPoint" and "endPoint".
type PointPairLine struct {
	Start, End geometry.Point2D
}

// VertexLine is a LINE whose endpoints are its first two vertices.
type VertexLine struct {
	Vertices []geometry.Point2D
}

// CoordLine is a segment given by flat x, y, x1, y1 fields.
type CoordLine struct {
	X, Y, X1, Y1 float64
}

// Polyline is a chain of vertices; Closed adds a segment from the last
// vertex back to the first when there are more than two vertices.
type Polyline struct {
	Vertices []geometry.Point2D
	Closed   bool
}

// Kind implements Entity.
func (Line) Kind() Kind { return KindLine }

// Kind implements Entity.
func (PointPairLine) Kind() Kind { return KindPointPairLine }

// Kind implements Entity.
func (VertexLine) Kind() Kind { return KindVertexLine }

// Kind implements Entity.
func (CoordLine) Kind() Kind { return KindCoordLine }

// Kind implements Entity.
func (Polyline) Kind() Kind { return KindPolyline }

func (e Line) segments() []geometry.LineSegment {
	return []geometry.LineSegment{{Start: e.Start, End: e.End}}
}

func (e PointPairLine) segments() []geometry.LineSegment {
	return []geometry.LineSegment{{Start: e.Start, End: e.End}}
}

func (e VertexLine) segments() []geometry.LineSegment {
	if len(e.Vertices) < 2 {
		return nil
	}

	return []geometry.LineSegment{{Start: e.Vertices[0], End: e.Vertices[1]}}
}

func (e CoordLine) segments() []geometry.LineSegment {
	return []geometry.LineSegment{{
		Start: geometry.Point2D{X: e.X, Y: e.Y},
		End:   geometry.Point2D{X: e.X1, Y: e.Y1},
	}}
}

func (e Polyline) segments() []geometry.LineSegment {
	n := len(e.Vertices)
	if n < 2 {
		return nil
	}
	out := make([]geometry.LineSegment, 0, n)
	for i := 0; i < n-1; i++ {
		out = append(out, geometry.LineSegment{Start: e.Vertices[i], End: e.Vertices[i+1]})
	}
	if e.Closed && n > 2 {
		out = append(out, geometry.LineSegment{Start: e.Vertices[n-1], End: e.Vertices[0]})
	}

	return out
}

// Skip records an entity that was dropped during decoding.
type Skip struct {
	Index int   // position in the input slice
	Err   error // ErrUnrecognizedShape, ErrNonNumeric or ErrTooFewVertices
}

// Result is the output of Extract.
type Result struct {
	Segments   []geometry.LineSegment
	Bounds     geometry.BoundingBox
	Skipped    []Skip
	TypeCounts map[Kind]int
}
