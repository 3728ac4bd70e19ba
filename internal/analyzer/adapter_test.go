package analyzer

import (
	"testing"
	"webaudit/pkg/auditor"
	"webaudit/pkg/domain"

	"github.com/stretchr/testify/require"
)

func fptr(f float64) *float64 { return &f }

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		in   auditor.AuditResult
		want bucket
	}{
		{
			name: "manual display mode wins over score",
			in:   auditor.AuditResult{DisplayMode: auditor.DisplayModeManual, Score: fptr(1)},
			want: bucketManual,
		},
		{
			name: "informative display mode",
			in:   auditor.AuditResult{DisplayMode: auditor.DisplayModeInformative},
			want: bucketInformative,
		},
		{
			name: "not applicable display mode",
			in:   auditor.AuditResult{DisplayMode: auditor.DisplayModeNotApplicable},
			want: bucketNotApplicable,
		},
		{
			name: "binary score 1 passes",
			in:   auditor.AuditResult{DisplayMode: auditor.DisplayModeBinary, Score: fptr(1)},
			want: bucketPassed,
		},
		{
			name: "numeric score 1 passes",
			in:   auditor.AuditResult{DisplayMode: auditor.DisplayModeNumeric, Score: fptr(1)},
			want: bucketPassed,
		},
		{
			name: "score below 1 fails",
			in:   auditor.AuditResult{DisplayMode: auditor.DisplayModeNumeric, Score: fptr(0.99)},
			want: bucketFailed,
		},
		{
			name: "nil score fails",
			in:   auditor.AuditResult{DisplayMode: auditor.DisplayModeBinary},
			want: bucketFailed,
		},
		{
			name: "error display mode fails",
			in:   auditor.AuditResult{DisplayMode: auditor.DisplayModeError},
			want: bucketFailed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, classify(tc.in))
		})
	}
}

func TestSeverityForScore(t *testing.T) {
	cases := []struct {
		name  string
		score *float64
		want  domain.Severity
	}{
		{name: "zero is critical", score: fptr(0), want: domain.SeverityCritical},
		{name: "0.3 is serious", score: fptr(0.3), want: domain.SeveritySerious},
		{name: "boundary 0.5 is serious (inclusive)", score: fptr(0.5), want: domain.SeveritySerious},
		{name: "0.6 is moderate", score: fptr(0.6), want: domain.SeverityModerate},
		// the minor test is a strict greater-than, so exactly 0.7 stays moderate
		{name: "boundary 0.7 is moderate, not minor", score: fptr(0.7), want: domain.SeverityModerate},
		{name: "0.71 is minor", score: fptr(0.71), want: domain.SeverityMinor},
		{name: "0.9 is minor", score: fptr(0.9), want: domain.SeverityMinor},
		{name: "nil score defaults to moderate", score: nil, want: domain.SeverityModerate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, severityForScore(tc.score))
		})
	}
}

func TestNormalizeCategory_CountsPartitionAllAudits(t *testing.T) {
	res := &auditor.CategoryResult{
		Score: 0.731,
		Audits: map[string]auditor.AuditResult{
			"a-passed":       {Score: fptr(1), DisplayMode: auditor.DisplayModeBinary},
			"b-failed":       {Score: fptr(0.4), DisplayMode: auditor.DisplayModeNumeric, Title: "B"},
			"c-manual":       {DisplayMode: auditor.DisplayModeManual},
			"d-informative":  {DisplayMode: auditor.DisplayModeInformative},
			"e-na":           {DisplayMode: auditor.DisplayModeNotApplicable},
			"f-failed-nil":   {DisplayMode: auditor.DisplayModeBinary, Title: "F"},
			"g-failed-zero":  {Score: fptr(0), DisplayMode: auditor.DisplayModeBinary, Title: "G"},
			"h-passed-metri": {Score: fptr(1), DisplayMode: auditor.DisplayModeNumeric},
		},
	}

	report := normalizeCategory(res)

	require.Equal(t, 73, report.Score, "category score is round(score*100)")

	counts := report.AuditCounts
	require.Equal(t, 3, counts.Failed)
	require.Equal(t, 2, counts.Passed)
	require.Equal(t, 1, counts.Manual)
	require.Equal(t, 1, counts.Informative)
	require.Equal(t, 1, counts.NotApplicable)

	// every audit entry lands in exactly one bucket
	require.Equal(t, len(res.Audits), counts.Total())

	// one issue per failed audit, in sorted ID order
	require.Len(t, report.Issues, 3)
	require.Equal(t, "b-failed", report.Issues[0].ID)
	require.Equal(t, "f-failed-nil", report.Issues[1].ID)
	require.Equal(t, "g-failed-zero", report.Issues[2].ID)

	require.Equal(t, domain.SeveritySerious, report.Issues[0].Severity)
	require.Equal(t, domain.SeverityModerate, report.Issues[1].Severity)
	require.Equal(t, domain.SeverityCritical, report.Issues[2].Severity)
}

func TestNormalizeCategory_EmptyResult(t *testing.T) {
	report := normalizeCategory(&auditor.CategoryResult{Audits: map[string]auditor.AuditResult{}})

	require.Zero(t, report.Score)
	require.Zero(t, report.AuditCounts.Total())
	require.NotNil(t, report.Issues)
	require.Empty(t, report.Issues)
}

func TestPrioritizeRecommendations(t *testing.T) {
	issues := []domain.Issue{
		{ID: "a", Title: "Minor thing", Severity: domain.SeverityMinor},
		{ID: "b", Title: "Broken labels", Severity: domain.SeverityCritical},
		{ID: "c", Title: "Low contrast", Severity: domain.SeveritySerious},
		{ID: "d", Title: "Another critical", Severity: domain.SeverityCritical},
		{ID: "e", Title: "Moderate thing", Severity: domain.SeverityModerate},
		{ID: "f", Title: "Yet another minor", Severity: domain.SeverityMinor},
	}

	recs := prioritizeRecommendations(issues)

	require.Equal(t, []string{
		"CRITICAL: Broken labels",
		"CRITICAL: Another critical",
		"SERIOUS: Low contrast",
		"MODERATE: Moderate thing",
		"MINOR: Minor thing",
	}, recs, "sorted by severity, stable within a tier, capped at five")

	// input order must not be mutated
	require.Equal(t, "a", issues[0].ID)
}
