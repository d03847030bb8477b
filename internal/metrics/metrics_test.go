package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aislenav/internal/metrics"
)

func TestNew_RegistersAndRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)

	m.ObservePlan(metrics.OutcomeOK, 20*time.Millisecond)
	m.ObservePlan(metrics.OutcomeOK, 30*time.Millisecond)
	m.ObservePlan(metrics.OutcomeError, time.Millisecond)
	m.ObserveGrid(1200, true)
	m.ObserveReachability(4, 1)
	m.ObserveSolver("held_karp")
	m.ObserveExtract(10, 2)
	m.ObserveStage("matrix", 3*time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(m.PlansTotal.WithLabelValues(metrics.OutcomeOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.PlansTotal.WithLabelValues(metrics.OutcomeError)))
	require.Equal(t, 1200.0, testutil.ToFloat64(m.GridCells))
	require.Equal(t, 1.0, testutil.ToFloat64(m.DeferredLayouts))
	require.Equal(t, 4.0, testutil.ToFloat64(m.UnreachablePairs))
	require.Equal(t, 1.0, testutil.ToFloat64(m.DroppedStops))
	require.Equal(t, 1.0, testutil.ToFloat64(m.SolverRunsTotal.WithLabelValues("held_karp")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.SegmentsSkipped))

	n, err := testutil.GatherAndCount(reg, "aislenav_plan_duration_ms")
	require.NoError(t, err)
	require.Equal(t, 2, n, "one series per outcome")
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)
	_, err = metrics.New(reg)
	require.Error(t, err)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics
	require.NotPanics(t, func() {
		m.ObservePlan(metrics.OutcomeOK, time.Second)
		m.ObserveGrid(1, false)
		m.ObserveReachability(1, 1)
		m.ObserveSolver("x")
		m.ObserveExtract(1, 1)
		m.ObserveStage("x", time.Second)
	})
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)
	m.ObserveSolver("brute_force")

	path := filepath.Join(t.TempDir(), "aislenav.prom")
	require.NoError(t, metrics.WriteTextfile(path, reg))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `aislenav_solver_runs_total{algorithm="brute_force"} 1`)
}
