package analyzer

import (
	"errors"
	"math"
	"sort"
	"webaudit/pkg/auditor"
	"webaudit/pkg/domain"
	"webaudit/pkg/serrors"
)

// classification buckets for a single audit entry. Every entry lands in
// exactly one bucket, checked in this order: display mode first, then score.
func classify(a auditor.AuditResult) bucket {
	switch a.DisplayMode {
	case auditor.DisplayModeManual:
		return bucketManual
	case auditor.DisplayModeInformative:
		return bucketInformative
	case auditor.DisplayModeNotApplicable:
		return bucketNotApplicable
	}

	if a.Score != nil && *a.Score == 1 {
		return bucketPassed
	}

	return bucketFailed
}

type bucket int

const (
	bucketFailed bucket = iota
	bucketPassed
	bucketManual
	bucketInformative
	bucketNotApplicable
)

// severityForScore derives the severity of a failed audit from its raw score.
// The boundaries are asymmetric on purpose: exactly 0.5 is serious (inclusive)
// while exactly 0.7 falls through to moderate because the minor test is strict.
// A nil score also defaults to moderate.
func severityForScore(score *float64) domain.Severity {
	switch {
	case score != nil && *score == 0:
		return domain.SeverityCritical
	case score != nil && *score <= 0.5:
		return domain.SeveritySerious
	case score != nil && *score > 0.7:
		return domain.SeverityMinor
	default:
		return domain.SeverityModerate
	}
}

// normalizeCategory converts a raw engine category result into the canonical
// CategoryReport shape shared by all categories: a 0-100 score, the five-way
// audit count partition and one Issue per failed audit. Audit IDs are visited
// in sorted order so the issue list is deterministic.
func normalizeCategory(res *auditor.CategoryResult) domain.CategoryReport {
	report := domain.CategoryReport{
		Score:  int(math.Round(res.Score * 100)),
		Issues: []domain.Issue{},
	}

	ids := make([]string, 0, len(res.Audits))
	for id := range res.Audits {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		a := res.Audits[id]
		switch classify(a) {
		case bucketManual:
			report.AuditCounts.Manual++
		case bucketInformative:
			report.AuditCounts.Informative++
		case bucketNotApplicable:
			report.AuditCounts.NotApplicable++
		case bucketPassed:
			report.AuditCounts.Passed++
		case bucketFailed:
			report.AuditCounts.Failed++
			report.Issues = append(report.Issues, domain.Issue{
				ID:          id,
				Title:       a.Title,
				Description: a.Description,
				Score:       a.Score,
				Severity:    severityForScore(a.Score),
			})
		}
	}

	return report
}

// wrapEngineErr maps an engine failure onto the adapter error taxonomy:
// a missing category keeps its kind, anything else becomes an adapter
// invocation failure.
func wrapEngineErr(err error, category domain.Category) error {
	if errors.Is(err, serrors.ErrCategoryMissing) {
		return err
	}

	return serrors.Wrap(serrors.ErrAdapterFailed, err, "could not audit category %s", category)
}

// auditPassed reports whether the named audit exists in the raw result and
// scored a perfect 1. Used by extension derivation (installability checks).
func auditPassed(res *auditor.CategoryResult, id string) bool {
	a, ok := res.Audits[id]

	return ok && a.Score != nil && *a.Score == 1
}

// numericValue returns the measured value of the named audit, or 0 when the
// audit is absent or carries no numeric value.
func numericValue(res *auditor.CategoryResult, id string) float64 {
	a, ok := res.Audits[id]
	if !ok || a.NumericValue == nil {
		return 0
	}

	return *a.NumericValue
}
