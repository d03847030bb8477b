// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/aislenav/matrix"
)

// ValidateTour checks that tour is an open route over {0..n−1} starting at
// 0, with pinnedEnd last when pinnedEnd ≥ 0 and n > 1.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n, pinnedEnd int) error {
	if len(tour) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidTour, len(tour), n)
	}
	if n == 0 {
		return nil
	}
	if tour[0] != 0 {
		return fmt.Errorf("%w: starts at %d", ErrInvalidTour, tour[0])
	}
	seen := make([]bool, n)
	for _, v := range tour {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("%w: vertex %d repeated or out of range", ErrInvalidTour, v)
		}
		seen[v] = true
	}
	if pinnedEnd >= 0 && n > 1 && tour[n-1] != pinnedEnd {
		return fmt.Errorf("%w: ends at %d, pinned %d", ErrInvalidTour, tour[n-1], pinnedEnd)
	}

	return nil
}

// TourCost returns the length of the open route tour on dist.
// Errors: matrix lookup errors, ErrIncompleteGraph on a +Inf leg.
//
// Complexity: O(len(tour)).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if err := matrix.ValidateNotNil(dist); err != nil {
		return 0, err
	}
	total := 0.0
	for k := 0; k+1 < len(tour); k++ {
		v, err := dist.At(tour[k], tour[k+1])
		if err != nil {
			return 0, fmt.Errorf("tsp: leg %d: %w", k, err)
		}
		if math.IsInf(v, 1) {
			return 0, fmt.Errorf("%w: leg %d→%d", ErrIncompleteGraph, tour[k], tour[k+1])
		}
		total += v
	}

	return round1e9(total), nil
}

// reverseInPlace reverses t[i..j] inclusive.
func reverseInPlace(t []int, i, j int) {
	for i < j {
		t[i], t[j] = t[j], t[i]
		i++
		j--
	}
}
