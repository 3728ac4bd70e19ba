package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
	"webaudit/pkg/metrics"

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

// WithMetrics returns a middleware that records request count and duration
// instruments through the provided meter provider. Metrics are labeled with
// method, route and status code.
func WithMetrics(mp otelmetric.MeterProvider, next http.Handler) (http.Handler, error) {
	meter := mp.Meter("webaudit/api")

	requests, err := meter.Int64Counter("http.server.requests",
		otelmetric.WithDescription("Number of handled HTTP requests."))
	if err != nil {
		return nil, fmt.Errorf("could not create request counter: %w", err)
	}

	duration, err := meter.Float64Histogram("http.server.duration",
		otelmetric.WithDescription("HTTP request handling duration."),
		otelmetric.WithUnit("s"),
		otelmetric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		attrs := otelmetric.WithAttributes(
			attribute.String("method", r.Method),
			attribute.String("path", r.URL.Path),
			attribute.String("status", strconv.Itoa(rec.status)),
		)
		requests.Add(r.Context(), 1, attrs)
		duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
	}), nil
}
