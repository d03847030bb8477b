// SPDX-License-Identifier: MIT

package tsp

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aislenav/matrix"
)

// Solve validates dist and routes to a solver.
//
// Steps:
//  1. Validate options, matrix and pinned end (shared sentinels).
//  2. N ≤ 1 returns the trivial route.
//  3. Auto picks BruteForce (N ≤ 4), HeldKarp (N ≤ 15) or
//     NearestNeighbor + TwoOpt; WithAlgorithm overrides.
//  4. Forced exact solvers reject instances above their hard limits.
//     BranchAndBound is never picked by Auto.
//
// BruteForce and HeldKarp ignore ctx once started; 2-opt and branch and
// bound poll it.
func Solve(ctx context.Context, dist matrix.Matrix, opts ...Option) (Result, error) {
	ws, o, err := prepare(dist, opts)
	if err != nil {
		return Result{}, err
	}
	if err = ctx.Err(); err != nil {
		return Result{}, err
	}
	if r, ok := trivial(ws.n); ok {
		return r, nil
	}

	algo := o.Algorithm
	if algo == Auto {
		switch {
		case ws.n <= BruteForceMaxN:
			algo = Exhaustive
		case ws.n <= HeldKarpMaxN:
			algo = ExactHeldKarp
		default:
			algo = NearestTwoOpt
		}
	}

	switch algo {
	case Exhaustive:
		if ws.n > bruteForceLimit {
			return Result{}, fmt.Errorf("%w: brute force on %d waypoints", ErrTooLarge, ws.n)
		}

		return bruteForce(ws, o.PinnedEnd)

	case ExactHeldKarp:
		if ws.n > heldKarpLimit {
			return Result{}, fmt.Errorf("%w: Held–Karp on %d waypoints", ErrTooLarge, ws.n)
		}

		return heldKarp(ws, o.PinnedEnd)

	case BranchBound:
		if ws.n > branchBoundLimit {
			return Result{}, fmt.Errorf("%w: branch and bound on %d waypoints", ErrTooLarge, ws.n)
		}

		return branchAndBound(ctx, ws, o)

	case NearestTwoOpt:
		base, err := nearestNeighbor(ws, o.PinnedEnd)
		if err != nil {
			return Result{}, err
		}

		return twoOpt(ctx, ws, base.Tour, o)

	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}
