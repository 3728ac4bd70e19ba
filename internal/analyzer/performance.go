package analyzer

import (
	"context"
	"webaudit/pkg/domain"
)

// Performance metric audit IDs used to fill the metrics extension.
const (
	auditFirstContentfulPaint   = "first-contentful-paint"
	auditLargestContentfulPaint = "largest-contentful-paint"
	auditSpeedIndex             = "speed-index"
	auditTotalBlockingTime      = "total-blocking-time"
	auditCumulativeLayoutShift  = "cumulative-layout-shift"
)

// Performance opportunity audit IDs referenced by the correlation and
// prioritization rule tables.
const (
	auditOptimizedImages        = "uses-optimized-images"
	auditTextCompression        = "uses-text-compression"
	auditRenderBlockingResource = "render-blocking-resources"
)

// auditPerformance runs the performance category and normalizes the result.
// The metrics extension is read from the numeric audit values: timings are in
// milliseconds, layout shift is unitless.
func (a analyzer) auditPerformance(ctx context.Context, URL string) (domain.PerformanceReport, error) {
	res, err := a.engine.Audit(ctx, URL, domain.CategoryPerformance)
	if err != nil {
		return domain.PerformanceReport{}, wrapEngineErr(err, domain.CategoryPerformance)
	}

	return domain.PerformanceReport{
		CategoryReport: normalizeCategory(res),
		Metrics: domain.PerformanceMetrics{
			FirstContentfulPaintMs:   numericValue(res, auditFirstContentfulPaint),
			LargestContentfulPaintMs: numericValue(res, auditLargestContentfulPaint),
			SpeedIndexMs:             numericValue(res, auditSpeedIndex),
			TotalBlockingTimeMs:      numericValue(res, auditTotalBlockingTime),
			CumulativeLayoutShift:    numericValue(res, auditCumulativeLayoutShift),
		},
	}, nil
}
