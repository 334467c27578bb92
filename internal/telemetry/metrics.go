// Package telemetry exposes Prometheus metrics for the emotion ranking
// pipeline.
//
// All Metrics methods are safe on a nil receiver, so components can record
// unconditionally and callers opt in by constructing Metrics.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nvandessel/emograph/internal/graph"
	"github.com/nvandessel/emograph/internal/ranking"
)

const metricsNamespace = "emograph"

// Outcome label values for RankQueriesTotal.
const (
	OutcomeRanked = "ranked"
	OutcomeEmpty  = "empty"
)

// Metrics holds the pipeline's collectors.
type Metrics struct {
	// RankQueriesTotal counts ranking traversals.
	// Labels: outcome (ranked, empty)
	RankQueriesTotal *prometheus.CounterVec

	// RankNodesExpanded observes nodes expanded per traversal.
	RankNodesExpanded prometheus.Histogram

	// RankDurationSeconds observes traversal latency.
	RankDurationSeconds prometheus.Histogram

	// GraphWarningsTotal counts graph build and configuration warnings.
	// Labels: kind (unknown-node, unknown-emotion, missing-keyword, disconnected)
	GraphWarningsTotal *prometheus.CounterVec

	// AdviceRequestsTotal counts end-to-end text analyses.
	// Labels: source (cli, mcp)
	AdviceRequestsTotal *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RankQueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "rank",
				Name:      "queries_total",
				Help:      "Total ranking traversals by outcome",
			},
			[]string{"outcome"},
		),
		RankNodesExpanded: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: "rank",
				Name:      "nodes_expanded",
				Help:      "Nodes expanded per ranking traversal",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		RankDurationSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: "rank",
				Name:      "duration_seconds",
				Help:      "Ranking traversal latency",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
		),
		GraphWarningsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "graph",
				Name:      "warnings_total",
				Help:      "Graph build and configuration warnings by kind",
			},
			[]string{"kind"},
		),
		AdviceRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "advice_requests_total",
				Help:      "Text analyses by request source",
			},
			[]string{"source"},
		),
	}
}

// ObserveRank records one traversal. It satisfies ranking.Observer.
func (m *Metrics) ObserveRank(s ranking.Stats) {
	if m == nil {
		return
	}
	outcome := OutcomeRanked
	if s.Returned == 0 {
		outcome = OutcomeEmpty
	}
	m.RankQueriesTotal.WithLabelValues(outcome).Inc()
	m.RankNodesExpanded.Observe(float64(s.Expanded))
	m.RankDurationSeconds.Observe(s.Duration.Seconds())
}

// RecordWarnings counts warnings by kind.
func (m *Metrics) RecordWarnings(warnings []graph.Warning) {
	if m == nil {
		return
	}
	for _, w := range warnings {
		m.GraphWarningsTotal.WithLabelValues(string(w.Kind)).Inc()
	}
}

// RecordAdvice counts one end-to-end analysis from source.
func (m *Metrics) RecordAdvice(source string) {
	if m == nil {
		return
	}
	m.AdviceRequestsTotal.WithLabelValues(source).Inc()
}
