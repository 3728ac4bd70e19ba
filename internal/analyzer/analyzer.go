// Package analyzer implements the audit normalization, aggregation,
// correlation and prioritization engine. It fans out the five audit
// categories against one URL, normalizes each category into a canonical
// report, and derives the weighted overall score, cross-category insights,
// ranked action items, quick wins and summary totals.
package analyzer

import (
	"context"
	"fmt"
	"sync"
	"time"
	"webaudit/pkg/auditor"
	"webaudit/pkg/domain"
	"webaudit/pkg/logger"
	"webaudit/pkg/metrics"
	"webaudit/pkg/serrors"

	"go.uber.org/zap"
)

// reports bundles the five finished category reports handed to the pure
// compute stages. Once assembled it is never mutated.
type reports struct {
	performance   domain.PerformanceReport
	accessibility domain.AccessibilityReport
	seo           domain.SEOReport
	bestPractices domain.CategoryReport
	pwa           domain.PWAReport
}

// analyzer is the concrete implementation of the Analyzer interface. It holds
// no per-call state; every analysis builds a fresh result.
type analyzer struct {
	// engine runs one audit category against a URL.
	engine auditor.Engine
}

// Analyze runs the five category adapters concurrently against the URL, waits
// for all of them to settle, and assembles the comprehensive analysis from the
// (possibly degraded) reports.
//
// Per-category failures never fail the call: a failed adapter is replaced by
// the canonical empty report and logged. Only invalid input or a defect in the
// pure compute stage surfaces as an error.
func (a analyzer) Analyze(ctx context.Context, URL string) (*domain.ComprehensiveAnalysis, error) {
	URL, err := NormalizeURL(URL)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid URL")
	}

	start := time.Now()
	rep := a.collectReports(ctx, URL)

	analysis, err := a.assemble(URL, start, rep)
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("error").Inc()

		return nil, serrors.Wrap(serrors.ErrAnalysisFailed, err, "could not assemble analysis for %s", URL)
	}

	metrics.AnalysesTotal.WithLabelValues("ok").Inc()
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())

	return analysis, nil
}

// collectReports fans the five adapters out as independent goroutines and
// joins on all of them. The join is a full barrier: no downstream computation
// starts before every adapter has settled, there is no early return on first
// failure and no cancellation propagation between adapters. A failed adapter
// degrades once, immediately, to the empty sentinel report.
func (a analyzer) collectReports(ctx context.Context, URL string) reports {
	var (
		wg  sync.WaitGroup
		rep reports
	)

	degrade := func(category domain.Category, err error) {
		logger.Warn(ctx, "audit category degraded to empty report",
			zap.String("category", string(category)),
			zap.String("url", URL),
			zap.Error(err))
		metrics.CategoryDegradesTotal.WithLabelValues(string(category)).Inc()
	}

	wg.Add(5)

	go func() {
		defer wg.Done()
		r, err := a.auditPerformance(ctx, URL)
		if err != nil {
			degrade(domain.CategoryPerformance, err)
			r = emptyPerformanceReport()
		}
		rep.performance = r
	}()

	go func() {
		defer wg.Done()
		r, err := a.auditAccessibility(ctx, URL)
		if err != nil {
			degrade(domain.CategoryAccessibility, err)
			r = emptyAccessibilityReport()
		}
		rep.accessibility = r
	}()

	go func() {
		defer wg.Done()
		r, err := a.auditSEO(ctx, URL)
		if err != nil {
			degrade(domain.CategorySEO, err)
			r = emptySEOReport()
		}
		rep.seo = r
	}()

	go func() {
		defer wg.Done()
		r, err := a.auditBestPractices(ctx, URL)
		if err != nil {
			degrade(domain.CategoryBestPractices, err)
			r = emptyCategoryReport()
		}
		rep.bestPractices = r
	}()

	go func() {
		defer wg.Done()
		r, err := a.auditPWA(ctx, URL)
		if err != nil {
			degrade(domain.CategoryPWA, err)
			r = emptyPWAReport()
		}
		rep.pwa = r
	}()

	wg.Wait()

	return rep
}

// assemble runs the deterministic single-threaded pipeline over the five
// settled reports: aggregate score, insights, action items (which also
// consume the insight list), quick wins and summary. The stages are pure, so
// a panic here is a defect; it is recovered and returned as an error for the
// caller to wrap.
func (a analyzer) assemble(URL string, start time.Time, rep reports) (analysis *domain.ComprehensiveAnalysis, err error) {
	defer func() {
		if p := recover(); p != nil {
			analysis = nil
			err = fmt.Errorf("panic in compute stage: %v", p)
		}
	}()

	insights := crossCategoryInsights(rep)

	return &domain.ComprehensiveAnalysis{
		URL:        URL,
		AnalyzedAt: start.UTC(),

		OverallScore:   overallScore(rep),
		CategoryScores: categoryScores(rep),

		Performance:   rep.performance,
		Accessibility: rep.accessibility,
		SEO:           rep.seo,
		BestPractices: rep.bestPractices,
		PWA:           rep.pwa,

		CrossCategoryInsights:  insights,
		PrioritizedActionItems: prioritizeActions(rep, insights),
		QuickWins:              extractQuickWins(rep),
		Summary:                summarize(rep),
	}, nil
}

// Canonical empty reports substituted for failed adapters: score 0, all audit
// count buckets 0, empty issue lists, extension fields at their zero defaults.
// Slices are allocated so the JSON output stays [] rather than null.

func emptyCategoryReport() domain.CategoryReport {
	return domain.CategoryReport{Issues: []domain.Issue{}}
}

func emptyPerformanceReport() domain.PerformanceReport {
	return domain.PerformanceReport{CategoryReport: emptyCategoryReport()}
}

func emptyAccessibilityReport() domain.AccessibilityReport {
	return domain.AccessibilityReport{
		CategoryReport:             emptyCategoryReport(),
		PrioritizedRecommendations: []string{},
	}
}

func emptySEOReport() domain.SEOReport {
	return domain.SEOReport{CategoryReport: emptyCategoryReport()}
}

func emptyPWAReport() domain.PWAReport {
	return domain.PWAReport{
		CategoryReport: emptyCategoryReport(),
		Installability: domain.Installability{Issues: []string{}},
	}
}

// New creates a new Analyzer backed by the provided audit engine.
func New(engine auditor.Engine) Analyzer {
	return &analyzer{engine: engine}
}
