// SPDX-License-Identifier: MIT

package tsp

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/katalvlaran/aislenav/matrix"
)

// BranchAndBound finds an optimal open route by depth-first search with an
// admissible lower bound.
//
// Steps:
//  1. minIn[v] is the cheapest way into v from any waypoint that can have a
//     successor (the pinned end cannot). A waypoint with no finite way in
//     makes every route infinite.
//  2. The incumbent is seeded with NearestNeighbor refined by TwoOpt.
//  3. From the current last waypoint, branch on unvisited waypoints in
//     ascending d[last][v] (index tiebreak). The pinned end is only
//     appended once everything else is placed.
//  4. A partial route is pruned when cost + Σ minIn over waypoints not yet
//     entered reaches the incumbent.
//
// ctx and WithTimeLimit are polled on the first node and every 4096 after.
// Cancelling ctx returns its error; hitting the time limit returns the best
// route found so far with TimedOut set.
//
// Errors: validation sentinels, ErrTooLarge for N > 25, ErrIncompleteGraph.
// Complexity: exponential worst case, O(N²) memory for neighbour orders.
func BranchAndBound(ctx context.Context, dist matrix.Matrix, opts ...Option) (Result, error) {
	ws, o, err := prepare(dist, opts)
	if err != nil {
		return Result{}, err
	}
	if ws.n > branchBoundLimit {
		return Result{}, fmt.Errorf("%w: branch and bound on %d waypoints", ErrTooLarge, ws.n)
	}

	return branchAndBound(ctx, ws, o)
}

// bbPollMask sets the node interval between ctx/deadline polls.
const bbPollMask = 4095

type bbRunner struct {
	ctx      context.Context
	ws       *weights
	pinned   int
	minIn    []float64
	order    [][]int
	used     []bool
	cur      []int
	rest     float64 // Σ minIn over waypoints not yet entered
	best     float64
	bestTour []int

	deadline time.Time
	steps    int
	timedOut bool
	err      error
}

func branchAndBound(ctx context.Context, ws *weights, o Options) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if r, ok := trivial(ws.n); ok {
		return r, nil
	}
	n, pinned := ws.n, o.PinnedEnd
	b := &bbRunner{
		ctx:    ctx,
		ws:     ws,
		pinned: pinned,
		minIn:  make([]float64, n),
		used:   make([]bool, n),
		cur:    make([]int, 1, n),
		best:   math.Inf(1),
	}
	if o.TimeLimit > 0 {
		b.deadline = time.Now().Add(o.TimeLimit)
	}

	// 1) Entry bounds.
	for v := 1; v < n; v++ {
		m := math.Inf(1)
		for u := 0; u < n; u++ {
			if u == v || u == pinned {
				continue
			}
			m = math.Min(m, ws.at(u, v))
		}
		if math.IsInf(m, 1) {
			return Result{}, ErrIncompleteGraph
		}
		b.minIn[v] = m
		b.rest += m
	}

	// 2) Incumbent.
	if seed, err := nearestNeighbor(ws, pinned); err == nil {
		seed, err = twoOpt(ctx, ws, seed.Tour, o)
		if err != nil {
			return Result{}, err
		}
		b.best = ws.cost(seed.Tour)
		b.bestTour = append([]int(nil), seed.Tour...)
	}

	// 3) Neighbour orders over branchable waypoints.
	b.order = make([][]int, n)
	for u := 0; u < n; u++ {
		if u == pinned {
			continue
		}
		row := make([]int, 0, n-1)
		for v := 1; v < n; v++ {
			if v != u && v != pinned {
				row = append(row, v)
			}
		}
		sort.Slice(row, func(i, j int) bool {
			wi, wj := ws.at(u, row[i]), ws.at(u, row[j])
			if wi == wj {
				return row[i] < row[j]
			}

			return wi < wj
		})
		b.order[u] = row
	}

	// 4) Search.
	b.used[0] = true
	left := n - 1
	if pinned > 0 {
		b.used[pinned] = true
		left--
	}
	b.search(0, left)
	if b.err != nil {
		return Result{}, b.err
	}
	if b.bestTour == nil {
		if b.timedOut {
			return Result{}, fmt.Errorf("%w: no route within time limit", ErrIncompleteGraph)
		}

		return Result{}, ErrIncompleteGraph
	}

	res, err := finish(ws, b.bestTour, BranchBound)
	if err != nil {
		return Result{}, err
	}
	res.TimedOut = b.timedOut

	return res, nil
}

// halted polls ctx and the deadline on the first node and every
// bbPollMask+1 nodes after it.
func (b *bbRunner) halted() bool {
	if b.err != nil || b.timedOut {
		return true
	}
	b.steps++
	if b.steps != 1 && b.steps&bbPollMask != 0 {
		return false
	}
	if b.err = b.ctx.Err(); b.err != nil {
		return true
	}
	if !b.deadline.IsZero() && time.Now().After(b.deadline) {
		b.timedOut = true
	}

	return b.timedOut
}

// search extends cur; left counts branchable waypoints still unvisited.
func (b *bbRunner) search(partial float64, left int) {
	if b.halted() {
		return
	}
	last := b.cur[len(b.cur)-1]
	if left == 0 {
		total := partial
		if b.pinned > 0 {
			total += b.ws.at(last, b.pinned)
		}
		if total < b.best {
			b.best = total
			b.bestTour = append(b.bestTour[:0], b.cur...)
			if b.pinned > 0 {
				b.bestTour = append(b.bestTour, b.pinned)
			}
		}

		return
	}
	for _, v := range b.order[last] {
		if b.used[v] {
			continue
		}
		next := partial + b.ws.at(last, v)
		if math.IsInf(next, 1) {
			break // rows are sorted, the rest is +Inf too
		}
		if next+b.rest-b.minIn[v] >= b.best {
			continue
		}
		b.used[v] = true
		b.cur = append(b.cur, v)
		b.rest -= b.minIn[v]
		b.search(next, left-1)
		b.rest += b.minIn[v]
		b.cur = b.cur[:len(b.cur)-1]
		b.used[v] = false
		if b.err != nil || b.timedOut {
			return
		}
	}
}
