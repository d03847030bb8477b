// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/aislenav/matrix"
)

// weights is a row-major copy of a validated distance matrix, so solver
// inner loops avoid interface calls and error checks.
type weights struct {
	n         int
	w         []float64
	symmetric bool
}

func (w *weights) at(i, j int) float64 { return w.w[i*w.n+j] }

// prefetch validates dist and copies it into a weights buffer.
//
// Stages:
//  1. Structure through matrix.ValidateDistance (nil, shape, diagonal,
//     NaN, negative).
//  2. Linearise into w[i*n+j].
//  3. Record exact symmetry so 2-opt can use O(1) deltas.
func prefetch(dist matrix.Matrix) (*weights, error) {
	if err := matrix.ValidateDistance(dist, 0); err != nil {
		return nil, fmt.Errorf("tsp: %w", err)
	}
	n := dist.Rows()
	ws := &weights{n: n, w: make([]float64, n*n), symmetric: true}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := dist.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("tsp: %w", err)
			}
			ws.w[i*n+j] = v
		}
	}
	for i := 0; i < n && ws.symmetric; i++ {
		for j := i + 1; j < n; j++ {
			if ws.at(i, j) != ws.at(j, i) {
				ws.symmetric = false
				break
			}
		}
	}

	return ws, nil
}

// cost sums the open route; +Inf if any leg is impassable.
func (w *weights) cost(tour []int) float64 {
	total := 0.0
	for k := 0; k+1 < len(tour); k++ {
		total += w.at(tour[k], tour[k+1])
	}

	return total
}

// prepare is the shared entry of every exported solver.
func prepare(dist matrix.Matrix, opts []Option) (*weights, Options, error) {
	o := buildOptions(opts)
	if err := o.validate(); err != nil {
		return nil, o, err
	}
	ws, err := prefetch(dist)
	if err != nil {
		return nil, o, err
	}
	if err = o.validatePinned(ws.n); err != nil {
		return nil, o, fmt.Errorf("%w: %d of %d", err, o.PinnedEnd, ws.n)
	}

	return ws, o, nil
}

// trivial handles N ≤ 1.
func trivial(n int) (Result, bool) {
	switch n {
	case 0:
		return Result{Tour: []int{}, Algorithm: Trivial}, true
	case 1:
		return Result{Tour: []int{0}, Algorithm: Trivial}, true
	}

	return Result{}, false
}

// finish checks feasibility and fills Cost.
func finish(ws *weights, tour []int, algo Algorithm) (Result, error) {
	c := ws.cost(tour)
	if math.IsInf(c, 1) {
		return Result{}, ErrIncompleteGraph
	}

	return Result{Tour: tour, Cost: round1e9(c), Algorithm: algo}, nil
}
