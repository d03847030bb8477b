// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/aislenav/matrix"
)

// BruteForce finds an optimal open route by enumerating every order of
// waypoints 1..N−1 (the pinned end, if any, stays last).
//
// Ties keep the lexicographically first order. Partial routes whose cost
// already reaches the best found are pruned.
//
// Errors: validation sentinels, ErrTooLarge for N > 10, ErrIncompleteGraph.
// Complexity: O(N!) time, O(N) space.
func BruteForce(dist matrix.Matrix, opts ...Option) (Result, error) {
	ws, o, err := prepare(dist, opts)
	if err != nil {
		return Result{}, err
	}
	if ws.n > bruteForceLimit {
		return Result{}, fmt.Errorf("%w: brute force on %d waypoints", ErrTooLarge, ws.n)
	}

	return bruteForce(ws, o.PinnedEnd)
}

func bruteForce(ws *weights, pinned int) (Result, error) {
	if r, ok := trivial(ws.n); ok {
		return r, nil
	}
	b := &bruteRunner{
		ws:     ws,
		pinned: pinned,
		cur:    make([]int, 1, ws.n),
		used:   make([]bool, ws.n),
		best:   math.Inf(1),
	}
	b.used[0] = true
	free := ws.n - 1
	if pinned > 0 {
		b.used[pinned] = true
		free--
	}
	b.search(0, free)
	if b.bestTour == nil {
		return Result{}, ErrIncompleteGraph
	}

	return finish(ws, b.bestTour, Exhaustive)
}

type bruteRunner struct {
	ws       *weights
	pinned   int
	cur      []int
	used     []bool
	best     float64
	bestTour []int
}

// search extends cur with every unused waypoint; left counts those remaining.
func (b *bruteRunner) search(partial float64, left int) {
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
	for v := 1; v < b.ws.n; v++ {
		if b.used[v] {
			continue
		}
		next := partial + b.ws.at(last, v)
		if next >= b.best || math.IsInf(next, 1) {
			continue
		}
		b.used[v] = true
		b.cur = append(b.cur, v)
		b.search(next, left-1)
		b.cur = b.cur[:len(b.cur)-1]
		b.used[v] = false
	}
}
