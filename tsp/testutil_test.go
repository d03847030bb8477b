package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/aislenav/matrix"
	"github.com/stretchr/testify/require"
)

// raw is a Matrix that stores anything, including NaN, so malformed inputs
// can reach the validators.
type raw [][]float64

func (r raw) Rows() int { return len(r) }
func (r raw) Cols() int {
	if len(r) == 0 {
		return 0
	}

	return len(r[0])
}
func (r raw) At(i, j int) (float64, error) {
	if i < 0 || i >= len(r) || j < 0 || j >= len(r[i]) {
		return 0, matrix.ErrOutOfRange
	}

	return r[i][j], nil
}
func (r raw) Set(i, j int, v float64) error { r[i][j] = v; return nil }
func (r raw) Clone() matrix.Matrix {
	out := make(raw, len(r))
	for i := range r {
		out[i] = append([]float64(nil), r[i]...)
	}

	return out
}

func dense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// lineMatrix places waypoint i at x = xs[i] and uses |xi − xj|.
func lineMatrix(t testing.TB, xs ...float64) *matrix.Dense {
	rows := make([][]float64, len(xs))
	for i := range xs {
		rows[i] = make([]float64, len(xs))
		for j := range xs {
			rows[i][j] = math.Abs(xs[i] - xs[j])
		}
	}

	return dense(t, rows)
}

// euclidean returns a symmetric matrix over n random points in a 100×100 box.
func euclidean(t testing.TB, n int, seed int64) *matrix.Dense {
	rng := rand.New(rand.NewSource(seed))
	xs, ys := make([]float64, n), make([]float64, n)
	for i := range xs {
		xs[i], ys[i] = rng.Float64()*100, rng.Float64()*100
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = math.Hypot(xs[i]-xs[j], ys[i]-ys[j])
		}
	}

	return dense(t, rows)
}

// asymmetric returns random integer weights in [1, 50], zero diagonal.
func asymmetric(t testing.TB, n int, seed int64) *matrix.Dense {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = float64(1 + rng.Intn(50))
			}
		}
	}

	return dense(t, rows)
}

// enumerate is an independent reference: the cheapest open route from 0
// over all permutations, optionally ending at pinned.
func enumerate(m *matrix.Dense, pinned int) float64 {
	rows := m.ToRows()
	n := len(rows)
	rest := make([]int, 0, n)
	for v := 1; v < n; v++ {
		if v != pinned {
			rest = append(rest, v)
		}
	}
	best := math.Inf(1)
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			order := append([]int{0}, rest...)
			if pinned > 0 {
				order = append(order, pinned)
			}
			c := 0.0
			for i := 0; i+1 < len(order); i++ {
				c += rows[order[i]][order[i+1]]
			}
			best = math.Min(best, c)

			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)

	return best
}
