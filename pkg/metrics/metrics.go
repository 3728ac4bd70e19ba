// Package metrics defines the Prometheus instrumentation shared across the
// application. Collectors are registered on the default registry and exposed
// by the API server's metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// AnalysesTotal counts finished analyses by outcome ("ok" or "error").
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "webaudit",
		Name:      "analyses_total",
		Help:      "Number of completed website analyses by outcome.",
	}, []string{"outcome"})

	// CategoryDegradesTotal counts adapter failures that were absorbed by
	// substituting the empty category report.
	CategoryDegradesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "webaudit",
		Name:      "category_degrades_total",
		Help:      "Number of audit categories degraded to an empty report.",
	}, []string{"category"})

	// AnalysisDuration observes end-to-end analysis latency in seconds,
	// including the five concurrent audit engine calls.
	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "webaudit",
		Name:      "analysis_duration_seconds",
		Help:      "End-to-end website analysis latency.",
		Buckets:   []float64{.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
	})
)
