// SPDX-License-Identifier: MIT

package tsp

import (
	"errors"
	"math"
	"time"
)

// Sentinel errors.
var (
	// ErrIncompleteGraph is returned when every ordering of the waypoints
	// crosses an impassable (+Inf) pair.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrPinnedEndOutOfRange indicates a pinned end that is not a valid
	// non-start waypoint.
	ErrPinnedEndOutOfRange = errors.New("tsp: pinned end out of range")

	// ErrTooLarge indicates an instance too big for the forced exact solver.
	ErrTooLarge = errors.New("tsp: instance too large for algorithm")

	// ErrInvalidOption indicates a negative sweep cap, time limit or eps.
	ErrInvalidOption = errors.New("tsp: invalid option")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrInvalidTour indicates a tour that is not an open route from 0
	// over every waypoint (or that misplaces the pinned end).
	ErrInvalidTour = errors.New("tsp: invalid tour")
)

// Dispatch thresholds used by Solve with Auto.
const (
	BruteForceMaxN = 4
	HeldKarpMaxN   = 15
)

// Hard limits for forced exact solvers.
const (
	bruteForceLimit  = 10
	heldKarpLimit    = 18
	branchBoundLimit = 25
)

// Algorithm selects a solver.
type Algorithm int

const (
	// Auto dispatches on N.
	Auto Algorithm = iota
	// Exhaustive enumerates every order.
	Exhaustive
	// ExactHeldKarp runs the Held–Karp dynamic program.
	ExactHeldKarp
	// NearestTwoOpt builds a nearest-neighbour route and improves it with 2-opt.
	NearestTwoOpt
	// BranchBound runs the exact depth-first branch-and-bound search.
	BranchBound
	// Trivial marks the N ≤ 1 result.
	Trivial
)

// String returns the algorithm name as it appears in plans and logs.
func (a Algorithm) String() string {
	switch a {
	case Auto:
		return "auto"
	case Exhaustive:
		return "brute_force"
	case ExactHeldKarp:
		return "held_karp"
	case NearestTwoOpt:
		return "nearest_two_opt"
	case BranchBound:
		return "branch_and_bound"
	case Trivial:
		return "trivial"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a name produced by String back to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	for a := Auto; a <= BranchBound; a++ {
		if a.String() == s {
			return a, nil
		}
	}

	return Auto, ErrUnsupportedAlgorithm
}

// Result is an open route over all waypoints.
type Result struct {
	Tour      []int     // visiting order, Tour[0] == 0, len == N
	Cost      float64   // sum of d[Tour[k]][Tour[k+1]], rounded to 1e−9
	Algorithm Algorithm // solver that produced Tour
	Sweeps    int       // 2-opt sweeps performed; 0 for exact solvers
	TimedOut  bool      // 2-opt or branch and bound stopped on WithTimeLimit
}

// Options configures the solvers.
type Options struct {
	Algorithm       Algorithm
	PinnedEnd       int           // −1 for none
	TwoOptMaxSweeps int           // 0 means N²
	TimeLimit       time.Duration // 0 means none
	Eps             float64       // 2-opt accepts Δ < −Eps
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Auto dispatch with no pinned end.
func DefaultOptions() Options {
	return Options{
		Algorithm: Auto,
		PinnedEnd: -1,
		Eps:       1e-12,
	}
}

// WithAlgorithm forces a solver.
func WithAlgorithm(a Algorithm) Option { return func(o *Options) { o.Algorithm = a } }

// WithPinnedEnd keeps waypoint idx in the last position.
func WithPinnedEnd(idx int) Option { return func(o *Options) { o.PinnedEnd = idx } }

// WithTwoOptMaxSweeps caps the number of full 2-opt sweeps.
func WithTwoOptMaxSweeps(n int) Option { return func(o *Options) { o.TwoOptMaxSweeps = n } }

// WithTimeLimit sets a soft wall-clock budget for 2-opt and branch and bound.
func WithTimeLimit(d time.Duration) Option { return func(o *Options) { o.TimeLimit = d } }

// WithEps sets the minimum improvement a 2-opt move must bring.
func WithEps(eps float64) Option { return func(o *Options) { o.Eps = eps } }

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// validate checks option values that do not depend on N.
func (o Options) validate() error {
	if o.TwoOptMaxSweeps < 0 || o.TimeLimit < 0 || o.Eps < 0 || math.IsNaN(o.Eps) {
		return ErrInvalidOption
	}
	if o.Algorithm < Auto || o.Algorithm > BranchBound {
		return ErrUnsupportedAlgorithm
	}

	return nil
}

// validatePinned checks PinnedEnd against n.
func (o Options) validatePinned(n int) error {
	p := o.PinnedEnd
	if p < 0 {
		if p != -1 {
			return ErrPinnedEndOutOfRange
		}

		return nil
	}
	if p >= n || (p == 0 && n > 1) {
		return ErrPinnedEndOutOfRange
	}

	return nil
}

// round1e9 stabilises floating sums across solvers.
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}

	return math.Round(x*1e9) / 1e9
}
