// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors for route planning.
//
// Collectors are registered on an injected Registerer so tests and
// embedding programs keep separate registries. Every method is safe on a
// nil *Metrics, which disables instrumentation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "aislenav"

// Plan outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics is the set of planner collectors.
type Metrics struct {
	PlansTotal        *prometheus.CounterVec
	PlanDurationMs    *prometheus.HistogramVec
	StageDurationMs   *prometheus.HistogramVec
	UnreachablePairs  prometheus.Counter
	DroppedStops      prometheus.Counter
	GridCells         prometheus.Gauge
	DeferredLayouts   prometheus.Counter
	SolverRunsTotal   *prometheus.CounterVec
	SegmentsExtracted prometheus.Counter
	SegmentsSkipped   prometheus.Counter
}

// New creates the collectors and registers them on reg. A nil reg leaves
// them unregistered.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		PlansTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plans_total",
			Help:      "Total number of route plans by outcome",
		}, []string{"outcome"}),
		PlanDurationMs: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "plan_duration_ms",
			Help:      "Route plan duration in milliseconds",
			Buckets:   []float64{5, 10, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}, []string{"outcome"}),
		StageDurationMs: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_ms",
			Help:      "Pipeline stage duration in milliseconds",
			Buckets:   []float64{1, 5, 10, 50, 100, 500, 1000, 5000},
		}, []string{"stage"}),
		UnreachablePairs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unreachable_pairs_total",
			Help:      "Ordered waypoint pairs with no path",
		}),
		DroppedStops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dropped_stops_total",
			Help:      "Stops dropped as unreachable from the start",
		}),
		GridCells: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "grid_cells",
			Help:      "Cells in the most recently planned grid",
		}),
		DeferredLayouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deferred_layouts_total",
			Help:      "Layouts above the cell threshold that were downsampled",
		}),
		SolverRunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solver_runs_total",
			Help:      "Route optimizer runs by algorithm",
		}, []string{"algorithm"}),
		SegmentsExtracted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "segments_extracted_total",
			Help:      "Line segments accepted from layout entities",
		}),
		SegmentsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_skipped_total",
			Help:      "Layout entities skipped as unrecognized or malformed",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range m.collectors() {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.PlansTotal, m.PlanDurationMs, m.StageDurationMs, m.UnreachablePairs,
		m.DroppedStops, m.GridCells, m.DeferredLayouts, m.SolverRunsTotal,
		m.SegmentsExtracted, m.SegmentsSkipped,
	}
}

// ObservePlan records one finished plan.
func (m *Metrics) ObservePlan(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.PlansTotal.WithLabelValues(outcome).Inc()
	m.PlanDurationMs.WithLabelValues(outcome).Observe(ms(d))
}

// ObserveStage records the duration of one pipeline stage.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.StageDurationMs.WithLabelValues(stage).Observe(ms(d))
}

// ObserveGrid records the grid size and whether it came from a deferred layout.
func (m *Metrics) ObserveGrid(cells int, deferred bool) {
	if m == nil {
		return
	}
	m.GridCells.Set(float64(cells))
	if deferred {
		m.DeferredLayouts.Inc()
	}
}

// ObserveExtract records accepted segments and skipped entities.
func (m *Metrics) ObserveExtract(segments, skipped int) {
	if m == nil {
		return
	}
	m.SegmentsExtracted.Add(float64(segments))
	m.SegmentsSkipped.Add(float64(skipped))
}

// ObserveReachability records unreachable pairs and dropped stops.
func (m *Metrics) ObserveReachability(unreachablePairs, dropped int) {
	if m == nil {
		return
	}
	m.UnreachablePairs.Add(float64(unreachablePairs))
	m.DroppedStops.Add(float64(dropped))
}

// ObserveSolver counts a solver run.
func (m *Metrics) ObserveSolver(algorithm string) {
	if m == nil {
		return
	}
	m.SolverRunsTotal.WithLabelValues(algorithm).Inc()
}

// WriteTextfile dumps every metric gathered from g to path in the text
// exposition format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}

func ms(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }
