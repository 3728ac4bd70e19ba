package analyzer

import (
	"testing"
	"webaudit/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestExtractQuickWins_Empty(t *testing.T) {
	wins := extractQuickWins(reportsWithScores(100, 100, 100, 100, 100))

	require.NotNil(t, wins)
	require.Empty(t, wins)
}

func TestExtractQuickWins_ColorContrast(t *testing.T) {
	r := reportsWithScores(100, 80, 100, 100, 100)
	r.accessibility.Issues = []domain.Issue{issueWith(auditColorContrast, domain.SeveritySerious)}

	wins := extractQuickWins(r)

	require.Len(t, wins, 1)
	require.Equal(t, "Fix color contrast issues", wins[0].Title)
	require.Equal(t, domain.CategoryAccessibility, wins[0].Category)
	require.NotEmpty(t, wins[0].EstimatedTime)
	require.NotEmpty(t, wins[0].Action)
}

func TestExtractQuickWins_CategoryScoped(t *testing.T) {
	// viewport failing as an accessibility issue must not trigger the SEO
	// viewport quick win
	r := reportsWithScores(100, 80, 100, 100, 100)
	r.accessibility.Issues = []domain.Issue{issueWith(auditViewport, domain.SeveritySerious)}

	require.Empty(t, extractQuickWins(r))
}

func TestExtractQuickWins_TableOrderAndCap(t *testing.T) {
	r := reportsWithScores(40, 40, 40, 40, 40)
	r.seo.Issues = []domain.Issue{
		issueWith(auditMetaDescription, domain.SeveritySerious),
		issueWith(auditViewport, domain.SeveritySerious),
		issueWith(auditDocumentTitle, domain.SeveritySerious),
	}
	r.accessibility.Issues = []domain.Issue{
		issueWith(auditImageAlt, domain.SeverityCritical),
		issueWith(auditColorContrast, domain.SeveritySerious),
	}
	r.performance.Issues = []domain.Issue{
		issueWith(auditTextCompression, domain.SeverityModerate),
	}

	wins := extractQuickWins(r)

	require.Len(t, wins, maxQuickWins)

	titles := make([]string, 0, len(wins))
	for _, win := range wins {
		titles = append(titles, win.Title)
	}

	// output follows the fixed table order, not severity or category order
	require.Equal(t, []string{
		"Add a meta description",
		"Add alt text to images",
		"Enable text compression",
		"Add a viewport meta tag",
		"Add a descriptive page title",
		"Fix color contrast issues",
	}, titles)
}
