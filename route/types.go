// SPDX-License-Identifier: MIT

package route

import (
	"errors"

	"github.com/katalvlaran/aislenav/geometry"
	"github.com/katalvlaran/aislenav/gridgraph"
	"github.com/katalvlaran/aislenav/pathfind"
)

// Sentinel errors for Plan.
var (
	// ErrNoStops indicates an empty stop list.
	ErrNoStops = errors.New("route: no stops")

	// ErrConflictingStops indicates more than one start or end stop, or a
	// stop flagged as both.
	ErrConflictingStops = errors.New("route: conflicting start/end stops")

	// ErrEndUnreachable indicates the mandatory end stop cannot be reached
	// from the start.
	ErrEndUnreachable = errors.New("route: end stop unreachable from start")

	// ErrStopOutOfBounds indicates a stop outside the layout grid.
	ErrStopOutOfBounds = errors.New("route: stop outside layout")

	// ErrNoLayout indicates a request with neither geometry nor a grid.
	ErrNoLayout = errors.New("route: request has no layout")
)

// Stop is a waypoint to visit, in full-resolution grid cells.
type Stop struct {
	ID         string   `json:"id"`
	X          int      `json:"x"`
	Y          int      `json:"y"`
	Categories []string `json:"categories,omitempty"`
	Start      bool     `json:"start,omitempty"`
	End        bool     `json:"end,omitempty"`
}

// Cell returns the stop position.
func (s Stop) Cell() geometry.Cell { return geometry.Cell{X: s.X, Y: s.Y} }

// Request is the planner input. Grid, when set, is used as the layout
// directly; otherwise Entities and Segments are rasterized together.
type Request struct {
	Entities []map[string]any       `json:"entities,omitempty"`
	Segments []geometry.LineSegment `json:"segments,omitempty"`
	Grid     *gridgraph.Grid        `json:"-"`
	Stops    []Stop                 `json:"stops"`
}

// Leg is one hop of the route.
type Leg struct {
	From       string        `json:"from"`
	To         string        `json:"to"`
	Path       pathfind.Path `json:"path"`
	Simplified pathfind.Path `json:"simplified"`
	Distance   float64       `json:"distance"`
}

// Plan is the planner output. Paths are in planning-grid cells; multiply
// by 1/ScaleFactor to map them back to full resolution. Distances are in
// full-resolution units.
type Plan struct {
	ID            string    `json:"id"`
	Order         []Stop    `json:"order"`
	Legs          []Leg     `json:"legs"`
	TotalDistance float64   `json:"totalDistance"`
	Dropped       []Stop    `json:"dropped,omitempty"`
	Blockers      []Blocker `json:"blockers,omitempty"`
	Algorithm     string    `json:"algorithm"`
	ScaleFactor   float64   `json:"scaleFactor"`
	GridWidth     int       `json:"gridWidth"`
	GridHeight    int       `json:"gridHeight"`
	Skipped       int       `json:"skippedEntities,omitempty"`
}

// Blocker explains a dropped stop: the fewest occupied planning cells a
// walk from the start would have to pass through to reach it, and those
// cells along one cheapest crossing.
type Blocker struct {
	StopID string          `json:"stopId"`
	Cells  int             `json:"cells"`
	Breach []geometry.Cell `json:"breach,omitempty"`
}

// Stage names reported to an Observer.
const (
	StageExtract   = "extract"
	StageRasterize = "rasterize"
	StageBuffer    = "buffer"
	StageMatrix    = "matrix"
	StageSolve     = "solve"
	StageSimplify  = "simplify"
)

// Event is a progress notification.
type Event struct {
	Stage string
	Done  int
	Total int
}

// Observer receives progress events. It is called from several goroutines
// during the matrix stage and must be safe for concurrent use.
type Observer func(Event)
