// SPDX-License-Identifier: MIT

package distmatrix

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aislenav/gridgraph"
	"github.com/katalvlaran/aislenav/matrix"
	"github.com/katalvlaran/aislenav/pathfind"
)

// Unreachable marks a pair with no path.
var Unreachable = math.Inf(1)

// IsUnreachable reports whether v is the Unreachable sentinel.
func IsUnreachable(v float64) bool { return math.IsInf(v, 1) }

// Sentinel errors for Build preconditions.
var (
	// ErrNilGrid indicates a nil grid.
	ErrNilGrid = errors.New("distmatrix: grid is nil")

	// ErrWaypointOutOfBounds indicates a waypoint outside the grid.
	ErrWaypointOutOfBounds = errors.New("distmatrix: waypoint out of grid bounds")

	// ErrInvalidWorkers indicates a non-positive worker count.
	ErrInvalidWorkers = errors.New("distmatrix: workers must be positive")
)

// ProgressFunc receives the number of pairs finished. It may be called
// from several goroutines at once.
type ProgressFunc func(done, total int)

// Options configures Build.
type Options struct {
	Workers  int             // concurrent pathfinding jobs
	Finder   pathfind.Finder // path engine
	Progress ProgressFunc    // optional, must be concurrency-safe
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions uses GOMAXPROCS workers and the default A* engine.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Finder:  pathfind.AStar{},
	}
}

// WithWorkers sets the number of concurrent jobs.
func WithWorkers(n int) Option { return func(o *Options) { o.Workers = n } }

// WithFinder injects the path engine. nil keeps the default.
func WithFinder(f pathfind.Finder) Option {
	return func(o *Options) {
		if f != nil {
			o.Finder = f
		}
	}
}

// WithProgress installs a progress callback.
func WithProgress(fn ProgressFunc) Option { return func(o *Options) { o.Progress = fn } }

// Result holds the distance matrix and the parallel path matrix.
type Result struct {
	Dist        *matrix.Dense     // N×N, diagonal 0, Unreachable for no path
	Paths       [][]pathfind.Path // Paths[i][j] is the raw path i→j; nil on the diagonal
	Unreachable int               // number of ordered pairs with no path
}

// Build computes distances and paths for every ordered pair of waypoints.
//
// Preconditions (checked before any search):
//  1. g != nil (ErrNilGrid).
//  2. Workers > 0 (ErrInvalidWorkers).
//  3. Every waypoint lies inside g (ErrWaypointOutOfBounds).
//
// Occupied waypoints are not an error; their pairs come out Unreachable.
// Cancelling ctx stops outstanding jobs and returns ctx's error.
func Build(ctx context.Context, g *gridgraph.Grid, wps []pathfind.Waypoint, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if o.Workers <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, o.Workers)
	}
	for i, w := range wps {
		if !g.InBounds(w.X, w.Y) {
			return nil, fmt.Errorf("%w: waypoint %d (%q) at %v in %dx%d", ErrWaypointOutOfBounds, i, w.ID, w.Cell, g.Width, g.Height)
		}
	}

	n := len(wps)
	dist, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	paths := make([][]pathfind.Path, n)
	for i := range paths {
		paths[i] = make([]pathfind.Path, n)
	}

	total := n * (n - 1)
	var done, unreachable atomic.Int64

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if egCtx.Err() != nil {
				break
			}
			eg.Go(func() error {
				if err := egCtx.Err(); err != nil {
					return err
				}
				p := o.Finder.FindPath(g, wps[i].Cell, wps[j].Cell)
				d := Unreachable
				if !p.Empty() {
					d = p.Length()
				} else {
					unreachable.Add(1)
				}
				// Each job owns cell (i, j) exclusively.
				paths[i][j] = p
				if err := dist.Set(i, j, d); err != nil {
					return err
				}
				if o.Progress != nil {
					o.Progress(int(done.Add(1)), total)
				}

				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Result{Dist: dist, Paths: paths, Unreachable: int(unreachable.Load())}, nil
}

// Size returns N.
func (r *Result) Size() int { return r.Dist.Rows() }

// At returns d[i][j], or Unreachable for indices out of range.
func (r *Result) At(i, j int) float64 {
	v, err := r.Dist.At(i, j)
	if err != nil {
		return Unreachable
	}

	return v
}

// Path returns the stored path i→j.
func (r *Result) Path(i, j int) pathfind.Path {
	if i < 0 || j < 0 || i >= len(r.Paths) || j >= len(r.Paths) {
		return nil
	}

	return r.Paths[i][j]
}

// MaxAsymmetry returns the largest |d[i][j] − d[j][i]| over pairs finite in
// both directions, and the number of pairs reachable in one direction only.
func (r *Result) MaxAsymmetry() (float64, int) {
	d, mixed, err := matrix.MaxAsymmetry(r.Dist)
	if err != nil {
		return 0, 0
	}

	return d, mixed
}

// Reachable returns, in index order, every waypoint j with finite
// distances from→j and j→from. from itself is included.
func (r *Result) Reachable(from int) []int {
	n := r.Size()
	if from < 0 || from >= n {
		return nil
	}
	out := make([]int, 0, n)
	for j := 0; j < n; j++ {
		if j == from || (!IsUnreachable(r.At(from, j)) && !IsUnreachable(r.At(j, from))) {
			out = append(out, j)
		}
	}

	return out
}
