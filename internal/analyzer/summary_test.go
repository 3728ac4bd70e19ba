package analyzer

import (
	"testing"
	"webaudit/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	r := reports{
		performance: domain.PerformanceReport{CategoryReport: domain.CategoryReport{
			AuditCounts: domain.AuditCounts{Passed: 10, Failed: 2, Manual: 3, Informative: 4, NotApplicable: 5},
			Issues: []domain.Issue{
				issueWith("a", domain.SeveritySerious),
				issueWith("b", domain.SeverityModerate),
			},
		}},
		accessibility: domain.AccessibilityReport{CategoryReport: domain.CategoryReport{
			AuditCounts: domain.AuditCounts{Passed: 5, Failed: 3},
			Issues: []domain.Issue{
				issueWith("c", domain.SeverityCritical),
				issueWith("d", domain.SeverityCritical),
				issueWith("e", domain.SeverityMinor),
			},
		}},
		seo: domain.SEOReport{CategoryReport: domain.CategoryReport{
			AuditCounts: domain.AuditCounts{Passed: 7, Failed: 1},
			Issues:      []domain.Issue{issueWith("f", domain.SeverityCritical)},
		}},
		bestPractices: domain.CategoryReport{
			AuditCounts: domain.AuditCounts{Passed: 4},
		},
		pwa: domain.PWAReport{CategoryReport: domain.CategoryReport{
			AuditCounts: domain.AuditCounts{Failed: 2, Manual: 1},
			Issues: []domain.Issue{
				issueWith("g", domain.SeverityModerate),
				issueWith("h", domain.SeverityModerate),
			},
		}},
	}

	s := summarize(r)

	require.Equal(t, 8, s.TotalIssues)
	require.Equal(t, 3, s.CriticalIssues)
	require.Equal(t, 26, s.PassedAudits)
	require.Equal(t, 8, s.FailedAudits)
	// manual, informative and not-applicable audits are excluded
	require.Equal(t, 34, s.TotalAudits)
}

func TestSummarize_Empty(t *testing.T) {
	require.Zero(t, summarize(reports{}))
}
