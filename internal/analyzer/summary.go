package analyzer

import "webaudit/pkg/domain"

// summarize totals issue and audit counts across the five categories. Total
// audits counts only conclusive outcomes (passed plus failed); manual,
// informative and not-applicable audits are excluded.
func summarize(r reports) domain.Summary {
	var s domain.Summary
	for _, report := range []domain.CategoryReport{
		r.performance.CategoryReport,
		r.accessibility.CategoryReport,
		r.seo.CategoryReport,
		r.bestPractices,
		r.pwa.CategoryReport,
	} {
		s.TotalIssues += len(report.Issues)
		s.CriticalIssues += report.CriticalIssues()
		s.PassedAudits += report.AuditCounts.Passed
		s.FailedAudits += report.AuditCounts.Failed
		s.TotalAudits += report.AuditCounts.Passed + report.AuditCounts.Failed
	}

	return s
}
