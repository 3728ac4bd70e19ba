// Package auditor defines the interface and data types used to run a single
// audit category against a URL through a backing audit engine (typically a
// Lighthouse-compatible service or process).
package auditor

import (
	"context"
	"webaudit/pkg/domain"
)

// DisplayMode describes how the engine scored an audit. The values mirror the
// Lighthouse score display modes.
type DisplayMode string

const (
	// DisplayModeBinary marks pass/fail audits scored 0 or 1.
	DisplayModeBinary DisplayMode = "binary"
	// DisplayModeNumeric marks audits scored on a continuous 0-1 scale.
	DisplayModeNumeric DisplayMode = "numeric"
	// DisplayModeMetricSavings marks opportunity audits scored by estimated savings.
	DisplayModeMetricSavings DisplayMode = "metricSavings"
	// DisplayModeManual marks audits the engine cannot check automatically.
	DisplayModeManual DisplayMode = "manual"
	// DisplayModeInformative marks unscored audits that only report data.
	DisplayModeInformative DisplayMode = "informative"
	// DisplayModeNotApplicable marks audits that did not apply to the page.
	DisplayModeNotApplicable DisplayMode = "notApplicable"
	// DisplayModeError marks audits that errored while running.
	DisplayModeError DisplayMode = "error"
)

// AuditResult is the engine's raw outcome for one audit within a category.
type AuditResult struct {
	// ID is the engine's audit identifier, e.g. "image-alt".
	ID string
	// Title is the short human-readable name of the audit.
	Title string
	// Description explains what the audit checks.
	Description string
	// Score is the raw score in [0,1]; nil for unscored audits.
	Score *float64
	// DisplayMode describes how Score should be interpreted.
	DisplayMode DisplayMode
	// NumericValue carries the measured value for metric audits
	// (milliseconds for timing metrics, unitless for layout shift); nil otherwise.
	NumericValue *float64
}

// CategoryResult is the engine's raw result for one category of one URL.
type CategoryResult struct {
	// Score is the aggregate category score in [0,1].
	Score float64
	// Audits maps audit ID to its result for every audit in the category.
	Audits map[string]AuditResult
}

// Engine is the abstraction for audit engines. Implementations run one audit
// category against a URL and return the raw category result.
//
//go:generate mockgen -package mockauditor -source=interface.go -destination=mock/mockauditor.go *
type Engine interface {
	// Audit runs the given category against the URL. It returns
	// serrors.ErrCategoryMissing when the engine responded without the
	// requested category, and other errors for engine or transport failures.
	Audit(ctx context.Context, URL string, category domain.Category) (*CategoryResult, error)
}
