// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/aislenav/matrix"
)

// HeldKarp solves the open route exactly with bitmask dynamic programming.
//
// dp[mask][j] is the cheapest route that starts at 0, visits exactly the
// waypoints in mask (bit 0 always set) and ends at j. Tables are flat
// slices indexed mask*N + j; no hashing is involved. A pinned end e may
// only close the full mask.
//
// Ties keep the smallest predecessor index, so results are deterministic.
//
// Errors: validation sentinels, ErrTooLarge for N > 18, ErrIncompleteGraph.
// Complexity: O(N²·2ᴺ) time, O(N·2ᴺ) space.
func HeldKarp(dist matrix.Matrix, opts ...Option) (Result, error) {
	ws, o, err := prepare(dist, opts)
	if err != nil {
		return Result{}, err
	}
	if ws.n > heldKarpLimit {
		return Result{}, fmt.Errorf("%w: Held–Karp on %d waypoints", ErrTooLarge, ws.n)
	}

	return heldKarp(ws, o.PinnedEnd)
}

func heldKarp(ws *weights, pinned int) (Result, error) {
	if r, ok := trivial(ws.n); ok {
		return r, nil
	}
	n := ws.n
	full := 1<<n - 1

	// 1. Tables.
	dp := make([]float64, (full+1)*n)
	parent := make([]int8, (full+1)*n)
	for i := range dp {
		dp[i] = math.Inf(1)
		parent[i] = -1
	}
	dp[1*n+0] = 0

	// 2. Bottom-up over masks containing 0; every predecessor mask is smaller.
	for mask := 1; mask <= full; mask += 2 {
		for j := 1; j < n; j++ {
			bit := 1 << j
			if mask&bit == 0 || (j == pinned && mask != full) {
				continue
			}
			prev := mask ^ bit
			best, arg := math.Inf(1), -1
			for k := 0; k < n; k++ {
				if prev&(1<<k) == 0 {
					continue
				}
				c := dp[prev*n+k] + ws.at(k, j)
				if c < best {
					best, arg = c, k
				}
			}
			dp[mask*n+j] = best
			parent[mask*n+j] = int8(arg)
		}
	}

	// 3. Pick the end.
	last, best := -1, math.Inf(1)
	for j := 1; j < n; j++ {
		if pinned > 0 && j != pinned {
			continue
		}
		if c := dp[full*n+j]; c < best {
			best, last = c, j
		}
	}
	if last < 0 {
		return Result{}, ErrIncompleteGraph
	}

	// 4. Walk the parent table back to 0.
	tour := make([]int, n)
	mask, j := full, last
	for pos := n - 1; pos >= 1; pos-- {
		tour[pos] = j
		p := int(parent[mask*n+j])
		mask ^= 1 << j
		j = p
	}
	tour[0] = 0

	return finish(ws, tour, ExactHeldKarp)
}
