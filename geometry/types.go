// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Point2D is a coordinate pair in source geometry units.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Orb returns p as an orb.Point.
func (p Point2D) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// Distance returns the Euclidean distance between p and q.
func (p Point2D) Distance(q Point2D) float64 {
	return planar.Distance(p.Orb(), q.Orb())
}

// Finite reports whether both coordinates are finite numbers.
func (p Point2D) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// LineSegment is an ordered pair of points. Zero-length segments are valid
// and rasterize to a single cell.
type LineSegment struct {
	Start Point2D `json:"start"`
	End   Point2D `json:"end"`
}

// Length returns the Euclidean length of the segment.
func (s LineSegment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Cell is an integer grid coordinate.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String formats the cell as "x,y".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// StepLength returns the Euclidean distance between two cells.
// Adjacent orthogonal cells are 1 apart, adjacent diagonal cells √2.
func StepLength(a, b Cell) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// BoundingBox accumulates the extent of accepted segment endpoints.
// The zero value is empty; Extend it with points to grow it.
type BoundingBox struct {
	b  orb.Bound
	ok bool
}

// NewBoundingBox returns the box spanning [minX,maxX]×[minY,maxY].
// Swapped arguments are normalized.
func NewBoundingBox(minX, minY, maxX, maxY float64) BoundingBox {
	var bb BoundingBox
	bb = bb.Extend(Point2D{X: minX, Y: minY})

	return bb.Extend(Point2D{X: maxX, Y: maxY})
}

// Extend returns the box grown to include p.
func (bb BoundingBox) Extend(p Point2D) BoundingBox {
	if !bb.ok {
		return BoundingBox{b: orb.Bound{Min: p.Orb(), Max: p.Orb()}, ok: true}
	}

	return BoundingBox{b: bb.b.Extend(p.Orb()), ok: true}
}

// ExtendSegment returns the box grown to include both endpoints of s.
func (bb BoundingBox) ExtendSegment(s LineSegment) BoundingBox {
	return bb.Extend(s.Start).Extend(s.End)
}

// IsEmpty reports whether no point has been added yet.
func (bb BoundingBox) IsEmpty() bool { return !bb.ok }

// MinX returns the smallest x seen.
func (bb BoundingBox) MinX() float64 { return bb.b.Min.X() }

// MinY returns the smallest y seen.
func (bb BoundingBox) MinY() float64 { return bb.b.Min.Y() }

// MaxX returns the largest x seen.
func (bb BoundingBox) MaxX() float64 { return bb.b.Max.X() }

// MaxY returns the largest y seen.
func (bb BoundingBox) MaxY() float64 { return bb.b.Max.Y() }

// Bound exposes the underlying orb.Bound.
func (bb BoundingBox) Bound() orb.Bound { return bb.b }

// CellDims returns the integer grid dimensions for this box with the given
// margin: width = ceil(maxX−minX) + 1 + margin, height analogous.
// An empty box yields (0, 0).
func (bb BoundingBox) CellDims(margin int) (width, height int) {
	if !bb.ok {
		return 0, 0
	}
	width = int(math.Ceil(bb.MaxX()-bb.MinX())) + 1 + margin
	height = int(math.Ceil(bb.MaxY()-bb.MinY())) + 1 + margin

	return width, height
}

// ToCell maps a source point into grid space: floor(coord − min) + floor(margin/2).
func (bb BoundingBox) ToCell(p Point2D, margin int) Cell {
	off := margin / 2

	return Cell{
		X: int(math.Floor(p.X-bb.MinX())) + off,
		Y: int(math.Floor(p.Y-bb.MinY())) + off,
	}
}
