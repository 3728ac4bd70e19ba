package analyzer

import (
	"context"
	"webaudit/pkg/domain"
)

// Best-practices audit IDs referenced by the rule tables.
const (
	auditIsOnHTTPS     = "is-on-https"
	auditConsoleErrors = "errors-in-console"
)

// auditBestPractices runs the best-practices category. It has no
// category-specific extension; the canonical report is returned as-is.
func (a analyzer) auditBestPractices(ctx context.Context, URL string) (domain.CategoryReport, error) {
	res, err := a.engine.Audit(ctx, URL, domain.CategoryBestPractices)
	if err != nil {
		return domain.CategoryReport{}, wrapEngineErr(err, domain.CategoryBestPractices)
	}

	return normalizeCategory(res), nil
}
