// SPDX-License-Identifier: MIT

package tsp

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/aislenav/matrix"
)

// checkEvery is the candidate-check interval between ctx/deadline polls.
const checkEvery = 2048

// TwoOpt improves an open route by first-improvement segment reversal.
//
// A move reverses init[i..j], 1 ≤ i < j ≤ N−1 (j ≤ N−2 with a pinned end),
// replacing legs (t[i−1],t[i]) and (t[j],t[j+1]) with (t[i−1],t[j]) and
// (t[i],t[j+1]). The second pair is absent when j is the last position.
// On asymmetric input the reversed interior is re-costed too. Moves are
// accepted when Δ < −Eps and applied immediately; a sweep scans every
// (i, j) once. The search stops after a sweep with no move, after
// WithTwoOptMaxSweeps sweeps (default N²), or when the time limit passes.
//
// Cancelling ctx returns ctx's error. Hitting WithTimeLimit returns the
// route reached so far with TimedOut set.
//
// Errors: validation sentinels, ErrInvalidTour, ErrIncompleteGraph when init
// crosses a +Inf pair.
// Complexity: O(sweeps·N²) symmetric, O(sweeps·N³) asymmetric worst case.
func TwoOpt(ctx context.Context, dist matrix.Matrix, init []int, opts ...Option) (Result, error) {
	ws, o, err := prepare(dist, opts)
	if err != nil {
		return Result{}, err
	}
	if err = ValidateTour(init, ws.n, o.PinnedEnd); err != nil {
		return Result{}, err
	}
	tour := append([]int(nil), init...)

	return twoOpt(ctx, ws, tour, o)
}

type twoOptRunner struct {
	ws       *weights
	t        []int
	eps      float64
	deadline time.Time
	steps    int
}

// twoOpt mutates tour in place.
func twoOpt(ctx context.Context, ws *weights, tour []int, o Options) (Result, error) {
	n := ws.n
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if math.IsInf(ws.cost(tour), 1) {
		return Result{}, fmt.Errorf("%w: initial route", ErrIncompleteGraph)
	}
	r := &twoOptRunner{ws: ws, t: tour, eps: o.Eps}
	if o.TimeLimit > 0 {
		r.deadline = time.Now().Add(o.TimeLimit)
	}
	maxSweeps := o.TwoOptMaxSweeps
	if maxSweeps == 0 {
		maxSweeps = n * n
	}
	hi := n - 1
	if o.PinnedEnd > 0 {
		hi = n - 2
	}

	sweeps, timedOut := 0, false
	for sweeps < maxSweeps && !timedOut {
		improved := false
		sweeps++
	scan:
		for i := 1; i < hi; i++ {
			for j := i + 1; j <= hi; j++ {
				stop, err := r.poll(ctx)
				if err != nil {
					return Result{}, err
				}
				if stop {
					timedOut = true
					break scan
				}
				if r.delta(i, j) < -r.eps {
					reverseInPlace(r.t, i, j)
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}

	res, err := finish(ws, r.t, NearestTwoOpt)
	if err != nil {
		return Result{}, err
	}
	res.Sweeps = sweeps
	res.TimedOut = timedOut

	return res, nil
}

// delta is new − old cost of reversing t[i..j].
func (r *twoOptRunner) delta(i, j int) float64 {
	t, w := r.t, r.ws
	a, b, c := t[i-1], t[i], t[j]
	before := w.at(a, b)
	after := w.at(a, c)
	if j+1 < len(t) {
		d := t[j+1]
		before += w.at(c, d)
		after += w.at(b, d)
	}
	if !w.symmetric {
		for k := i; k < j; k++ {
			before += w.at(t[k], t[k+1])
			after += w.at(t[k+1], t[k])
		}
	}
	if math.IsInf(after, 1) {
		return math.Inf(1)
	}

	return after - before
}

// poll checks ctx and the deadline every checkEvery candidates.
func (r *twoOptRunner) poll(ctx context.Context) (bool, error) {
	r.steps++
	if r.steps%checkEvery != 0 {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	return !r.deadline.IsZero() && time.Now().After(r.deadline), nil
}
