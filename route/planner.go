// SPDX-License-Identifier: MIT

package route

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/aislenav/distmatrix"
	"github.com/katalvlaran/aislenav/extract"
	"github.com/katalvlaran/aislenav/geometry"
	"github.com/katalvlaran/aislenav/gridgraph"
	"github.com/katalvlaran/aislenav/internal/metrics"
	"github.com/katalvlaran/aislenav/matrix"
	"github.com/katalvlaran/aislenav/pathfind"
	"github.com/katalvlaran/aislenav/tsp"
)

// Planner turns a layout and a stop list into an ordered route. A Planner
// holds configuration only and is safe for concurrent Plan calls.
type Planner struct {
	log      *slog.Logger
	metrics  *metrics.Metrics
	observer Observer
	newID    func() string

	margin     int
	maxCells   int64
	batchSize  int
	yieldEvery int
	maxSide    int
	simplify   float64

	radius      int
	clearRadius int // −1 reuses radius

	workers int // 0 keeps the distmatrix default
	strict  bool

	algorithm tsp.Algorithm
	maxSweeps int
	timeLimit time.Duration
}

// Option configures a Planner.
type Option func(*Planner)

// New returns a Planner with reference defaults: margin 5, 10M cell
// threshold, downsampling to 1000 cells per side, wall buffer 2 and
// clearance equal to the buffer.
func New(opts ...Option) *Planner {
	p := &Planner{
		log:         slog.New(slog.DiscardHandler),
		newID:       uuid.NewString,
		margin:      gridgraph.DefaultMargin,
		maxCells:    gridgraph.DefaultMaxCells,
		batchSize:   gridgraph.DefaultBatchSize,
		yieldEvery:  gridgraph.DefaultYieldEvery,
		maxSide:     1000,
		radius:      2,
		clearRadius: -1,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// WithLogger sets the structured logger. nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.log = l
		}
	}
}

// WithMetrics installs Prometheus collectors.
func WithMetrics(m *metrics.Metrics) Option { return func(p *Planner) { p.metrics = m } }

// WithObserver installs a progress callback.
func WithObserver(o Observer) Option { return func(p *Planner) { p.observer = o } }

// WithIDFunc replaces the plan ID generator.
func WithIDFunc(fn func() string) Option {
	return func(p *Planner) {
		if fn != nil {
			p.newID = fn
		}
	}
}

// WithMargin sets the rasterization margin.
func WithMargin(m int) Option { return func(p *Planner) { p.margin = m } }

// WithMaxCells sets the dense-grid threshold.
func WithMaxCells(n int64) Option { return func(p *Planner) { p.maxCells = n } }

// WithBatching sets rasterization batch size and yield interval.
func WithBatching(batch, yieldEvery int) Option {
	return func(p *Planner) { p.batchSize, p.yieldEvery = batch, yieldEvery }
}

// WithMaxSide sets the side limit used when downsampling deferred layouts.
func WithMaxSide(n int) Option { return func(p *Planner) { p.maxSide = n } }

// WithSimplifyTolerance enables Douglas–Peucker reduction of polylines.
func WithSimplifyTolerance(tol float64) Option { return func(p *Planner) { p.simplify = tol } }

// WithBufferRadius sets the wall buffer radius in planning cells.
func WithBufferRadius(r int) Option { return func(p *Planner) { p.radius = r } }

// WithClearRadius sets the radius freed around each stop after buffering.
// −1 reuses the buffer radius.
func WithClearRadius(r int) Option { return func(p *Planner) { p.clearRadius = r } }

// WithWorkers sets the distance matrix concurrency. 0 keeps the default.
func WithWorkers(n int) Option { return func(p *Planner) { p.workers = n } }

// WithStrictCorners forbids diagonal steps past any occupied corner.
func WithStrictCorners(strict bool) Option { return func(p *Planner) { p.strict = strict } }

// WithAlgorithm forces a route optimizer.
func WithAlgorithm(a tsp.Algorithm) Option { return func(p *Planner) { p.algorithm = a } }

// WithTwoOptMaxSweeps caps 2-opt sweeps.
func WithTwoOptMaxSweeps(n int) Option { return func(p *Planner) { p.maxSweeps = n } }

// WithTimeLimit sets the 2-opt time budget.
func WithTimeLimit(d time.Duration) Option { return func(p *Planner) { p.timeLimit = d } }

// Plan computes the route for req.
//
// Steps:
//  1. Order stops: the start stop first (or the first stop), the end stop last.
//  2. Build the layout grid (rasterize, downsampling deferred layouts).
//  3. Buffer walls, then give back the buffer halo around every stop.
//  4. Drop stops outside the start's free region; an unreachable end fails.
//  5. Build the distance matrix and drop stops it cannot connect both ways.
//  6. Solve the open route with the end pinned last.
//  7. Assemble legs with raw and line-of-sight simplified paths.
func (p *Planner) Plan(ctx context.Context, req Request) (*Plan, error) {
	began := time.Now()
	plan, err := p.plan(ctx, req)
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeError
		p.log.Warn("plan failed", "stops", len(req.Stops), "err", err)
	}
	p.metrics.ObservePlan(outcome, time.Since(began))

	return plan, err
}

func (p *Planner) plan(ctx context.Context, req Request) (*Plan, error) {
	// 1. Stops.
	stops, hasEnd, err := orderStops(req.Stops)
	if err != nil {
		return nil, err
	}

	// 2. Layout.
	lay, err := p.layout(ctx, req)
	if err != nil {
		return nil, err
	}
	cells := make([]geometry.Cell, len(stops))
	for i, s := range stops {
		if s.X < 0 || s.Y < 0 || s.X >= lay.fullW || s.Y >= lay.fullH {
			return nil, fmt.Errorf("%w: %q at %v in %dx%d", ErrStopOutOfBounds, s.ID, s.Cell(), lay.fullW, lay.fullH)
		}
		if lay.deferred != nil && lay.deferred.Occupied(s.X, s.Y) {
			p.log.Warn("stop lies on a wall at full resolution", "stop", s.ID, "cell", s.Cell().String())
		}
		c := gridgraph.ScaleCell(s.Cell(), lay.scale)
		c.X = min(c.X, lay.grid.Width-1)
		c.Y = min(c.Y, lay.grid.Height-1)
		cells[i] = c
	}

	// 3. Buffer and clearance.
	t := time.Now()
	g, err := gridgraph.Buffer(lay.grid, p.radius)
	if err != nil {
		return nil, err
	}
	cr := p.clearRadius
	if cr < 0 {
		cr = p.radius
	}
	freed := 0
	for _, c := range cells {
		freed += gridgraph.ClearDisk(g, lay.grid, c, cr)
	}
	p.finishStage(StageBuffer, t, "radius", p.radius, "cleared", freed)

	// 4. Region prefilter.
	regions := gridgraph.FreeRegions(g)
	keep := []int{0}
	var dropped []int
	for i := 1; i < len(stops); i++ {
		if regions.Connected(cells[0], cells[i]) {
			keep = append(keep, i)
			continue
		}
		if hasEnd && i == len(stops)-1 {
			return nil, fmt.Errorf("%w: %q", ErrEndUnreachable, stops[i].ID)
		}
		dropped = append(dropped, i)
	}

	// 5. Distance matrix.
	t = time.Now()
	wps := make([]pathfind.Waypoint, len(keep))
	for k, i := range keep {
		wps[k] = pathfind.Waypoint{Cell: cells[i], ID: stops[i].ID}
	}
	dm, err := distmatrix.Build(ctx, g, wps, p.matrixOptions()...)
	if err != nil {
		return nil, err
	}
	reach := dm.Reachable(0)
	if len(reach) < len(keep) {
		inReach := make(map[int]bool, len(reach))
		for _, k := range reach {
			inReach[k] = true
		}
		for k, i := range keep {
			if inReach[k] {
				continue
			}
			if hasEnd && i == len(stops)-1 {
				return nil, fmt.Errorf("%w: %q", ErrEndUnreachable, stops[i].ID)
			}
			dropped = append(dropped, i)
		}
	}
	p.metrics.ObserveReachability(dm.Unreachable, len(dropped))
	p.finishStage(StageMatrix, t, "waypoints", len(wps), "unreachable_pairs", dm.Unreachable)

	// 6. Solve on the mutually reachable subset.
	t = time.Now()
	sub, err := subMatrix(dm, reach)
	if err != nil {
		return nil, err
	}
	res, err := tsp.Solve(ctx, sub, p.solverOptions(hasEnd, len(reach))...)
	if err != nil {
		return nil, err
	}
	p.metrics.ObserveSolver(res.Algorithm.String())
	p.finishStage(StageSolve, t, "algorithm", res.Algorithm.String(), "cost", res.Cost, "sweeps", res.Sweeps)

	// 7. Legs.
	t = time.Now()
	out := &Plan{
		ID:          p.newID(),
		Blockers:    p.blockers(g, stops, cells, dropped),
		Algorithm:   res.Algorithm.String(),
		ScaleFactor: lay.scale,
		GridWidth:   g.Width,
		GridHeight:  g.Height,
		Skipped:     lay.skipped,
	}
	for _, i := range dropped {
		out.Dropped = append(out.Dropped, stops[i])
	}
	for _, pos := range res.Tour {
		out.Order = append(out.Order, stops[keep[reach[pos]]])
	}
	for k := 0; k+1 < len(res.Tour); k++ {
		a, b := reach[res.Tour[k]], reach[res.Tour[k+1]]
		raw := dm.Path(a, b)
		leg := Leg{
			From:       wps[a].ID,
			To:         wps[b].ID,
			Path:       raw,
			Simplified: pathfind.Simplify(raw, g),
			Distance:   dm.At(a, b) / lay.scale,
		}
		out.TotalDistance += leg.Distance
		out.Legs = append(out.Legs, leg)
	}
	p.finishStage(StageSimplify, t, "legs", len(out.Legs))

	p.log.Info("plan ready",
		"id", out.ID,
		"stops", len(out.Order),
		"dropped", len(out.Dropped),
		"algorithm", out.Algorithm,
		"distance", out.TotalDistance,
		"grid", fmt.Sprintf("%dx%d", g.Width, g.Height),
		"scale", lay.scale,
	)

	return out, nil
}

// layoutResult is the grid a plan runs on.
type layoutResult struct {
	grid         *gridgraph.Grid
	deferred     *gridgraph.Deferred // nil unless downsampled
	scale        float64
	fullW, fullH int
	skipped      int
}

// Layout rasterizes req without planning. Deferred layouts are downsampled;
// the returned scale is 1 otherwise. The wall buffer is not applied.
func (p *Planner) Layout(ctx context.Context, req Request) (*gridgraph.Grid, float64, error) {
	lay, err := p.layout(ctx, req)
	if err != nil {
		return nil, 0, err
	}

	return lay.grid, lay.scale, nil
}

func (p *Planner) layout(ctx context.Context, req Request) (layoutResult, error) {
	laid, skipped, err := p.rasterize(ctx, req)
	if err != nil {
		return layoutResult{}, err
	}

	t := time.Now()
	out := layoutResult{skipped: skipped, scale: 1}
	out.fullW, out.fullH = laid.Dims()
	switch l := laid.(type) {
	case *gridgraph.Grid:
		out.grid = l
		p.metrics.ObserveGrid(l.Len(), false)
	case *gridgraph.Deferred:
		g, scale, err := l.Downsample(p.maxSide)
		if err != nil {
			return layoutResult{}, err
		}
		out.grid, out.scale, out.deferred = g, scale, l
		p.metrics.ObserveGrid(g.Len(), true)
		p.log.Info("layout above cell threshold, downsampled",
			"cells", l.Cells(), "grid", fmt.Sprintf("%dx%d", g.Width, g.Height), "scale", scale,
			"took", time.Since(t))
	}

	return out, nil
}

// Window renders the w×h full-resolution window at (x,y) without
// downsampling. Deferred layouts trace only the segments their index
// reports inside the window.
func (p *Planner) Window(ctx context.Context, req Request, x, y, w, h int) (*gridgraph.Grid, error) {
	laid, _, err := p.rasterize(ctx, req)
	if err != nil {
		return nil, err
	}
	switch l := laid.(type) {
	case *gridgraph.Deferred:
		return l.Viewport(x, y, w, h)
	case *gridgraph.Grid:
		return l.Crop(x, y, w, h)
	default:
		return nil, ErrNoLayout
	}
}

// rasterize returns the full-resolution layout of req and the number of
// skipped entities. A supplied grid is returned as is.
func (p *Planner) rasterize(ctx context.Context, req Request) (gridgraph.Layout, int, error) {
	if req.Grid != nil {
		if req.Grid.Empty() {
			return nil, 0, ErrNoLayout
		}

		return req.Grid, 0, nil
	}

	t := time.Now()
	ex := extract.ExtractRaw(req.Entities, extract.WithSimplify(p.simplify))
	segs := make([]geometry.LineSegment, 0, len(req.Segments)+len(ex.Segments))
	segs = append(segs, req.Segments...)
	segs = append(segs, ex.Segments...)
	bounds := ex.Bounds
	for _, s := range req.Segments {
		bounds = bounds.ExtendSegment(s)
	}
	for _, sk := range ex.Skipped {
		p.log.Debug("entity skipped", "index", sk.Index, "err", sk.Err)
	}
	p.metrics.ObserveExtract(len(ex.Segments), len(ex.Skipped))
	p.finishStage(StageExtract, t, "segments", len(segs), "skipped", len(ex.Skipped))
	if bounds.IsEmpty() {
		return nil, 0, ErrNoLayout
	}

	t = time.Now()
	laid, err := gridgraph.Rasterize(ctx, segs, bounds,
		gridgraph.WithMargin(p.margin),
		gridgraph.WithMaxCells(p.maxCells),
		gridgraph.WithBatchSize(p.batchSize),
		gridgraph.WithYieldEvery(p.yieldEvery),
		gridgraph.WithProgress(func(done, total int) {
			p.emit(Event{Stage: StageRasterize, Done: done, Total: total})
		}),
	)
	if err != nil {
		return nil, 0, err
	}
	w, h := laid.Dims()
	p.finishStage(StageRasterize, t, "width", w, "height", h)

	return laid, len(ex.Skipped), nil
}

// blockers reports, for each dropped stop, the fewest occupied cells of g
// separating it from the start.
func (p *Planner) blockers(g *gridgraph.Grid, stops []Stop, cells []geometry.Cell, dropped []int) []Blocker {
	var out []Blocker
	for _, i := range dropped {
		path, n, err := gridgraph.ExpandRegion(g, cells[0], cells[i])
		if err != nil {
			p.log.Debug("no blocker report", "stop", stops[i].ID, "err", err)
			continue
		}
		b := Blocker{StopID: stops[i].ID, Cells: n}
		for _, c := range path {
			if g.Occupied(c.X, c.Y) {
				b.Breach = append(b.Breach, c)
			}
		}
		p.log.Info("stop dropped", "stop", b.StopID, "blocking_cells", n)
		out = append(out, b)
	}

	return out
}

func (p *Planner) matrixOptions() []distmatrix.Option {
	opts := []distmatrix.Option{
		distmatrix.WithFinder(pathfind.AStar{StrictCorners: p.strict}),
		distmatrix.WithProgress(func(done, total int) {
			p.emit(Event{Stage: StageMatrix, Done: done, Total: total})
		}),
	}
	if p.workers > 0 {
		opts = append(opts, distmatrix.WithWorkers(p.workers))
	}

	return opts
}

func (p *Planner) solverOptions(hasEnd bool, n int) []tsp.Option {
	opts := []tsp.Option{
		tsp.WithAlgorithm(p.algorithm),
		tsp.WithTwoOptMaxSweeps(p.maxSweeps),
		tsp.WithTimeLimit(p.timeLimit),
	}
	if hasEnd && n > 1 {
		opts = append(opts, tsp.WithPinnedEnd(n-1))
	}

	return opts
}

func (p *Planner) emit(e Event) {
	if p.observer != nil {
		p.observer(e)
	}
}

// finishStage records a stage duration, logs it and emits a completion event.
func (p *Planner) finishStage(stage string, began time.Time, attrs ...any) {
	d := time.Since(began)
	p.metrics.ObserveStage(stage, d)
	p.log.Debug("stage done", append([]any{"stage", stage, "took", d}, attrs...)...)
	p.emit(Event{Stage: stage, Done: 1, Total: 1})
}

// subMatrix copies the rows and columns idx of dm into a new matrix.
func subMatrix(dm *distmatrix.Result, idx []int) (*matrix.Dense, error) {
	out, err := matrix.NewSquare(len(idx))
	if err != nil {
		return nil, err
	}
	for a, i := range idx {
		for b, j := range idx {
			if a == b {
				continue
			}
			if err = out.Set(a, b, dm.At(i, j)); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// orderStops puts the start first and the end last, keeping the rest in
// input order. Without an explicit start the first non-end stop starts.
func orderStops(in []Stop) ([]Stop, bool, error) {
	if len(in) == 0 {
		return nil, false, ErrNoStops
	}
	start, end := -1, -1
	for i, s := range in {
		if s.Start && s.End {
			return nil, false, fmt.Errorf("%w: %q is both start and end", ErrConflictingStops, s.ID)
		}
		if s.Start {
			if start >= 0 {
				return nil, false, fmt.Errorf("%w: two start stops", ErrConflictingStops)
			}
			start = i
		}
		if s.End {
			if end >= 0 {
				return nil, false, fmt.Errorf("%w: two end stops", ErrConflictingStops)
			}
			end = i
		}
	}
	if start < 0 {
		for i := range in {
			if i != end {
				start = i
				break
			}
		}
	}
	if start < 0 {
		// A lone end stop is just a single stop.
		return []Stop{in[0]}, false, nil
	}

	out := make([]Stop, 0, len(in))
	out = append(out, in[start])
	for i, s := range in {
		if i != start && i != end {
			out = append(out, s)
		}
	}
	if end >= 0 {
		out = append(out, in[end])
	}

	return out, end >= 0, nil
}
