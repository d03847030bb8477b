// SPDX-License-Identifier: MIT

package gridgraph

import (
	"context"
	"fmt"
	"runtime"

	"github.com/katalvlaran/aislenav/geometry"
)

// Rasterizer defaults.
const (
	DefaultMargin     = 5
	DefaultMaxCells   = 10_000_000
	DefaultBatchSize  = 25
	DefaultYieldEvery = 100
)

// ProgressFunc receives the number of segments processed so far.
type ProgressFunc func(done, total int)

// Options configures Rasterize.
type Options struct {
	Margin     int          // extra cells added to each dimension
	MaxCells   int64        // above this a *Deferred is returned
	BatchSize  int          // segments per progress report
	YieldEvery int          // segments between cooperative yields
	Progress   ProgressFunc // optional
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the reference rasterizer settings.
func DefaultOptions() Options {
	return Options{
		Margin:     DefaultMargin,
		MaxCells:   DefaultMaxCells,
		BatchSize:  DefaultBatchSize,
		YieldEvery: DefaultYieldEvery,
	}
}

// WithMargin sets the margin in cells.
func WithMargin(m int) Option { return func(o *Options) { o.Margin = m } }

// WithMaxCells sets the materialization threshold.
func WithMaxCells(n int64) Option { return func(o *Options) { o.MaxCells = n } }

// WithBatchSize sets how many segments are traced between progress reports.
func WithBatchSize(n int) Option { return func(o *Options) { o.BatchSize = n } }

// WithYieldEvery sets how many segments are traced between yields.
func WithYieldEvery(n int) Option { return func(o *Options) { o.YieldEvery = n } }

// WithProgress installs a progress callback. It is called from the
// rasterizing goroutine only.
func WithProgress(fn ProgressFunc) Option { return func(o *Options) { o.Progress = fn } }

func (o Options) validate() error {
	switch {
	case o.Margin < 0:
		return fmt.Errorf("%w: margin %d", ErrInvalidOption, o.Margin)
	case o.MaxCells <= 0:
		return fmt.Errorf("%w: max cells %d", ErrInvalidOption, o.MaxCells)
	case o.BatchSize <= 0:
		return fmt.Errorf("%w: batch size %d", ErrInvalidOption, o.BatchSize)
	case o.YieldEvery <= 0:
		return fmt.Errorf("%w: yield every %d", ErrInvalidOption, o.YieldEvery)
	}

	return nil
}

// Rasterize converts segments inside bounds into an occupancy Layout.
//
// Layouts up to MaxCells cells are returned as a *Grid with every cell any
// segment passes through marked occupied. Larger layouts return a *Deferred
// instead; this is not an error. An empty bounding box yields a 0×0 grid.
//
// Segments are traced in batches; between batches the progress callback
// fires, and every YieldEvery segments control is yielded to the scheduler
// and ctx is checked.
//
// Complexity: O(W×H + Σ segment length).
func Rasterize(ctx context.Context, segs []geometry.LineSegment, bounds geometry.BoundingBox, opts ...Option) (Layout, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if bounds.IsEmpty() {
		return &Grid{}, nil
	}

	w, h := bounds.CellDims(o.Margin)
	if int64(w)*int64(h) > o.MaxCells {
		return newDeferred(ctx, segs, bounds, w, h, o)
	}

	g, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	err = eachSegment(ctx, segs, o, func(s geometry.LineSegment) {
		g.markLine(bounds.ToCell(s.Start, o.Margin), bounds.ToCell(s.End, o.Margin))
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// eachSegment drives fn over segs with batching, yields and cancellation.
func eachSegment(ctx context.Context, segs []geometry.LineSegment, o Options, fn func(geometry.LineSegment)) error {
	total := len(segs)
	for start := 0; start < total; start += o.BatchSize {
		end := min(start+o.BatchSize, total)
		for i := start; i < end; i++ {
			fn(segs[i])
			if (i+1)%o.YieldEvery == 0 {
				runtime.Gosched()
				if err := ctx.Err(); err != nil {
					return err
				}
			}
		}
		if o.Progress != nil {
			o.Progress(end, total)
		}
	}

	return ctx.Err()
}
