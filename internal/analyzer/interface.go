package analyzer

import (
	"context"
	"webaudit/pkg/domain"
)

// Analyzer produces one comprehensive analysis per URL.
//
//go:generate mockgen -package mockanalyzer -source=interface.go -destination=mock/mockanalyzer.go *
type Analyzer interface {
	// Analyze runs all five audit categories against the URL and returns the
	// consolidated analysis. Per-category failures degrade to empty reports;
	// the call itself only fails on invalid input or a compute-stage defect.
	Analyze(ctx context.Context, URL string) (*domain.ComprehensiveAnalysis, error)
}
