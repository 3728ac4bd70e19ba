package analyzer

import (
	"testing"
	"webaudit/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestPrioritizeActions_Empty(t *testing.T) {
	items := prioritizeActions(reportsWithScores(100, 100, 100, 100, 100), nil)

	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestPrioritizeActions_HTTPSMigrationRanksFirst(t *testing.T) {
	r := reportsWithScores(50, 50, 50, 40, 100)
	r.bestPractices.Issues = []domain.Issue{issueWith(auditIsOnHTTPS, domain.SeverityCritical)}
	r.performance.Metrics.LargestContentfulPaintMs = 4200
	r.seo.Issues = []domain.Issue{issueWith(auditMetaDescription, domain.SeveritySerious)}

	items := prioritizeActions(r, nil)

	require.GreaterOrEqual(t, len(items), 3)
	require.Equal(t, 1, items[0].Rank)
	require.Equal(t, "Migrate to HTTPS", items[0].Title)
	require.Equal(t, domain.SeverityCritical, items[0].Impact)
	require.Equal(t, domain.EffortMedium, items[0].Effort)
	require.Equal(t, 95, items[0].ROIScore)

	require.Equal(t, "Improve Largest Contentful Paint", items[1].Title)
	require.Equal(t, "Write meta descriptions", items[2].Title)
}

func TestPrioritizeActions_HTTPSGateRequiresCriticalSeverity(t *testing.T) {
	r := reportsWithScores(100, 100, 100, 90, 100)
	r.bestPractices.Issues = []domain.Issue{issueWith(auditIsOnHTTPS, domain.SeverityModerate)}

	require.Empty(t, prioritizeActions(r, nil))
}

func TestPrioritizeActions_LCPGateIsStrictlyAbove2500(t *testing.T) {
	r := reportsWithScores(100, 100, 100, 100, 100)
	r.performance.Metrics.LargestContentfulPaintMs = 2500

	require.Empty(t, prioritizeActions(r, nil))

	r.performance.Metrics.LargestContentfulPaintMs = 2501
	items := prioritizeActions(r, nil)
	require.Len(t, items, 1)
	require.Equal(t, "Improve Largest Contentful Paint", items[0].Title)
}

func TestPrioritizeActions_AccessibilityTitleCarriesCount(t *testing.T) {
	r := reportsWithScores(100, 40, 100, 100, 100)
	r.accessibility.Issues = []domain.Issue{
		issueWith("image-alt", domain.SeverityCritical),
		issueWith("label", domain.SeverityCritical),
		issueWith("color-contrast", domain.SeveritySerious),
	}

	items := prioritizeActions(r, nil)

	require.Len(t, items, 1)
	require.Equal(t, "Fix 2 critical accessibility violations", items[0].Title)
	require.Equal(t, domain.EffortLow, items[0].Effort)
	require.Equal(t, 85, items[0].ROIScore)
}

func TestPrioritizeActions_InsightVolumeAddsSprintItem(t *testing.T) {
	insights := []domain.Insight{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	items := prioritizeActions(reportsWithScores(100, 100, 100, 100, 100), insights)

	require.Len(t, items, 1)
	require.Equal(t, "Plan a combined remediation sprint", items[0].Title)
	require.Equal(t, 55, items[0].ROIScore)

	// two insights are not enough
	require.Empty(t, prioritizeActions(reportsWithScores(100, 100, 100, 100, 100), insights[:2]))
}

func TestPrioritizeActions_RanksAreDenseAndSorted(t *testing.T) {
	r := reportsWithScores(30, 30, 30, 30, 20)
	r.bestPractices.Issues = []domain.Issue{
		issueWith(auditIsOnHTTPS, domain.SeverityCritical),
		issueWith(auditConsoleErrors, domain.SeverityModerate),
	}
	r.performance.Metrics.LargestContentfulPaintMs = 6000
	r.performance.Issues = []domain.Issue{
		issueWith(auditRenderBlockingResource, domain.SeveritySerious),
		issueWith(auditOptimizedImages, domain.SeverityModerate),
	}
	r.accessibility.Issues = []domain.Issue{issueWith("image-alt", domain.SeverityCritical)}
	r.seo.Issues = []domain.Issue{issueWith(auditMetaDescription, domain.SeveritySerious)}
	r.pwa.Installability.Installable = false
	insights := []domain.Insight{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	items := prioritizeActions(r, insights)

	require.Len(t, items, 9)
	for i, item := range items {
		require.Equal(t, i+1, item.Rank)
		if i > 0 {
			require.LessOrEqual(t, item.ROIScore, items[i-1].ROIScore)
		}
	}
	require.Equal(t, "Migrate to HTTPS", items[0].Title)
	require.Equal(t, "Plan a combined remediation sprint", items[8].Title)
}
