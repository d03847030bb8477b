// SPDX-License-Identifier: MIT

package gridgraph

import (
	"context"
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/aislenav/geometry"
)

// Deferred is the on-demand representation of a layout too large to
// materialize. It keeps the raw segments and bounds, and indexes each
// segment's cell-space extent in an R-tree so that point and window queries
// only trace the segments that can touch them.
type Deferred struct {
	Width, Height int
	Margin        int
	Bounds        geometry.BoundingBox
	Segments      []geometry.LineSegment

	lines []*indexedLine
	tree  *rtreego.Rtree
}

// indexedLine is a segment in full-resolution cell space.
type indexedLine struct {
	a, b geometry.Cell
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (l *indexedLine) Bounds() rtreego.Rect { return l.bbox }

// Dims implements Layout.
func (d *Deferred) Dims() (int, int) { return d.Width, d.Height }

func (*Deferred) isLayout() {}

// Cells returns Width×Height without overflow.
func (d *Deferred) Cells() int64 { return int64(d.Width) * int64(d.Height) }

func newDeferred(ctx context.Context, segs []geometry.LineSegment, bounds geometry.BoundingBox, w, h int, o Options) (*Deferred, error) {
	d := &Deferred{
		Width:    w,
		Height:   h,
		Margin:   o.Margin,
		Bounds:   bounds,
		Segments: segs,
		lines:    make([]*indexedLine, 0, len(segs)),
		tree:     rtreego.NewTree(2, 25, 50),
	}
	err := eachSegment(ctx, segs, o, func(s geometry.LineSegment) {
		a, b := bounds.ToCell(s.Start, o.Margin), bounds.ToCell(s.End, o.Margin)
		l := &indexedLine{a: a, b: b, bbox: cellRect(min(a.X, b.X), min(a.Y, b.Y), max(a.X, b.X), max(a.Y, b.Y))}
		d.lines = append(d.lines, l)
		d.tree.Insert(l)
	})
	if err != nil {
		return nil, err
	}

	return d, nil
}

// cellRect covers the inclusive cell range [x0,x1]×[y0,y1]. Rects are padded
// by half a cell on each side so single-cell extents have positive size.
func cellRect(x0, y0, x1, y1 int) rtreego.Rect {
	r, _ := rtreego.NewRect(
		rtreego.Point{float64(x0) - 0.5, float64(y0) - 0.5},
		[]float64{float64(x1-x0) + 1, float64(y1-y0) + 1},
	)

	return r
}

// Occupied reports whether any segment passes through full-resolution cell
// (x,y). Cells outside the layout count as occupied.
func (d *Deferred) Occupied(x, y int) bool {
	if x < 0 || y < 0 || x >= d.Width || y >= d.Height {
		return true
	}
	for _, sp := range d.tree.SearchIntersect(cellRect(x, y, x, y)) {
		l := sp.(*indexedLine)
		hit := false
		geometry.TraceLine(l.a.X, l.a.Y, l.b.X, l.b.Y, func(cx, cy int) bool {
			hit = cx == x && cy == y
			return !hit
		})
		if hit {
			return true
		}
	}

	return false
}

// Viewport rasterizes the w×h window whose top-left full-resolution cell is
// (x,y). Cell (i,j) of the result corresponds to (x+i, y+j). Only segments
// the index reports as intersecting the window are traced.
func (d *Deferred) Viewport(x, y, w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	if x < 0 || y < 0 || x+w > d.Width || y+h > d.Height {
		return nil, fmt.Errorf("%w: window %dx%d at (%d,%d) in %dx%d", ErrWindowOutOfBounds, w, h, x, y, d.Width, d.Height)
	}

	g, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	for _, sp := range d.tree.SearchIntersect(cellRect(x, y, x+w-1, y+h-1)) {
		l := sp.(*indexedLine)
		geometry.TraceLine(l.a.X, l.a.Y, l.b.X, l.b.Y, func(cx, cy int) bool {
			g.Set(cx-x, cy-y, true)
			return true
		})
	}

	return g, nil
}

// Downsample rasterizes the layout at reduced resolution so that neither
// side exceeds maxSide cells. It returns the grid and the scale factor s;
// a full-resolution cell c maps to ScaleCell(c, s). Layouts already within
// maxSide are rasterized at s = 1.
func (d *Deferred) Downsample(maxSide int) (*Grid, float64, error) {
	if maxSide <= 0 {
		return nil, 0, fmt.Errorf("%w: max side %d", ErrInvalidOption, maxSide)
	}

	scale := 1.0
	w, h := d.Width, d.Height
	if w > maxSide || h > maxSide {
		scale = math.Min(float64(maxSide)/float64(w), float64(maxSide)/float64(h))
		w = max(1, int(math.Floor(float64(w)*scale)))
		h = max(1, int(math.Floor(float64(h)*scale)))
	}

	g, err := NewGrid(w, h)
	if err != nil {
		return nil, 0, err
	}
	for _, l := range d.lines {
		g.markLine(ScaleCell(l.a, scale), ScaleCell(l.b, scale))
	}

	return g, scale, nil
}

// ScaleCell maps a full-resolution cell into a grid downsampled by scale.
func ScaleCell(c geometry.Cell, scale float64) geometry.Cell {
	return geometry.Cell{
		X: int(math.Floor(float64(c.X) * scale)),
		Y: int(math.Floor(float64(c.Y) * scale)),
	}
}
