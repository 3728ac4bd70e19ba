package analyzer

import (
	"context"
	"sort"
	"strings"
	"webaudit/pkg/domain"
)

// Accessibility audit IDs referenced by the rule tables.
const (
	auditImageAlt      = "image-alt"
	auditColorContrast = "color-contrast"
	auditHeadingOrder  = "heading-order"
	auditDocumentTitle = "document-title"
)

// maxRecommendations caps the prioritized recommendation list.
const maxRecommendations = 5

// auditAccessibility runs the accessibility category and normalizes the
// result. The extension is a short remediation list: issues sorted by severity
// (most urgent first), rendered as "<SEVERITY>: <title>", capped at five.
func (a analyzer) auditAccessibility(ctx context.Context, URL string) (domain.AccessibilityReport, error) {
	res, err := a.engine.Audit(ctx, URL, domain.CategoryAccessibility)
	if err != nil {
		return domain.AccessibilityReport{}, wrapEngineErr(err, domain.CategoryAccessibility)
	}

	report := normalizeCategory(res)

	return domain.AccessibilityReport{
		CategoryReport:             report,
		PrioritizedRecommendations: prioritizeRecommendations(report.Issues),
	}, nil
}

// prioritizeRecommendations renders the most urgent issues as short
// remediation strings. The sort is stable so issues of equal severity keep
// their original (ID-sorted) order.
func prioritizeRecommendations(issues []domain.Issue) []string {
	ranked := make([]domain.Issue, len(issues))
	copy(ranked, issues)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Severity.Rank() < ranked[j].Severity.Rank()
	})

	if len(ranked) > maxRecommendations {
		ranked = ranked[:maxRecommendations]
	}

	out := make([]string, 0, len(ranked))
	for _, issue := range ranked {
		out = append(out, strings.ToUpper(string(issue.Severity))+": "+issue.Title)
	}

	return out
}
