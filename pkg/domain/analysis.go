package domain

import "time"

// Category identifies one of the five audit categories. The string values are
// also the JSON keys used in category_scores and for the per-category reports.
type Category string

const (
	// CategoryPerformance covers loading and runtime performance audits.
	CategoryPerformance Category = "performance"
	// CategoryAccessibility covers accessibility audits.
	CategoryAccessibility Category = "accessibility"
	// CategorySEO covers search engine optimization audits.
	CategorySEO Category = "seo"
	// CategoryBestPractices covers general web best-practice audits.
	CategoryBestPractices Category = "best_practices"
	// CategoryPWA covers progressive web app readiness audits.
	CategoryPWA Category = "pwa"
)

// Categories lists all audit categories in their canonical order.
// The order is used for deterministic iteration when assembling reports.
func Categories() []Category {
	return []Category{
		CategoryPerformance,
		CategoryAccessibility,
		CategorySEO,
		CategoryBestPractices,
		CategoryPWA,
	}
}

// Severity expresses how urgent an issue or insight is.
type Severity string

const (
	// SeverityCritical marks issues that block users or carry security impact.
	SeverityCritical Severity = "critical"
	// SeveritySerious marks issues with a large measurable impact.
	SeveritySerious Severity = "serious"
	// SeverityModerate marks issues with a noticeable but limited impact.
	SeverityModerate Severity = "moderate"
	// SeverityMinor marks issues that are worth fixing but low impact.
	SeverityMinor Severity = "minor"
)

// Rank returns the sort rank of the severity, most urgent first.
// Unknown severities sort last.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeveritySerious:
		return 1
	case SeverityModerate:
		return 2
	case SeverityMinor:
		return 3
	default:
		return 4
	}
}

// Effort is the estimated implementation effort of an action item.
type Effort string

const (
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

// Issue is a single failed audit normalized into the canonical shape shared by
// all categories. Raw engine output names the severity field differently per
// category ("impact" for accessibility, for example); adapters unify it here.
type Issue struct {
	// ID is the audit identifier assigned by the audit engine, e.g. "image-alt".
	ID string `json:"id"`
	// Title is the short human-readable name of the audit.
	Title string `json:"title"`
	// Description explains the problem and usually links to guidance.
	Description string `json:"description"`
	// Score is the raw audit score in [0,1]; nil when the engine reported none.
	Score *float64 `json:"score"`
	// Severity is derived from Score at normalization time.
	Severity Severity `json:"severity"`
}

// AuditCounts partitions the audit entries of one category into the five
// outcome buckets. Every audit entry is counted in exactly one bucket, so the
// fields always sum to the number of entries evaluated.
type AuditCounts struct {
	Failed        int `json:"failed"`
	Passed        int `json:"passed"`
	Manual        int `json:"manual"`
	Informative   int `json:"informative"`
	NotApplicable int `json:"not_applicable"`
}

// Total returns the number of audit entries counted across all buckets.
func (c AuditCounts) Total() int {
	return c.Failed + c.Passed + c.Manual + c.Informative + c.NotApplicable
}

// CategoryReport is the normalized result of one audit category.
type CategoryReport struct {
	// Score is the category score scaled to 0-100.
	Score int `json:"score"`
	// AuditCounts partitions all evaluated audits by outcome.
	AuditCounts AuditCounts `json:"audit_counts"`
	// Issues holds one entry per failed audit, in engine order.
	Issues []Issue `json:"issues"`
}

// CriticalIssues counts the issues with critical severity.
func (r CategoryReport) CriticalIssues() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityCritical {
			n++
		}
	}

	return n
}

// HasIssue reports whether the category contains an issue with the given audit ID.
func (r CategoryReport) HasIssue(id string) bool {
	_, ok := r.FindIssue(id)

	return ok
}

// FindIssue returns the issue with the given audit ID, if present.
func (r CategoryReport) FindIssue(id string) (Issue, bool) {
	for _, issue := range r.Issues {
		if issue.ID == id {
			return issue, true
		}
	}

	return Issue{}, false
}

// PerformanceMetrics carries the key lab metrics extracted from the
// performance category's numeric audits. Times are in milliseconds; the
// layout shift value is unitless.
type PerformanceMetrics struct {
	FirstContentfulPaintMs   float64 `json:"first_contentful_paint_ms"`
	LargestContentfulPaintMs float64 `json:"largest_contentful_paint_ms"`
	SpeedIndexMs             float64 `json:"speed_index_ms"`
	TotalBlockingTimeMs      float64 `json:"total_blocking_time_ms"`
	CumulativeLayoutShift    float64 `json:"cumulative_layout_shift"`
}

// PerformanceReport extends the common report with lab metrics.
type PerformanceReport struct {
	CategoryReport

	Metrics PerformanceMetrics `json:"metrics"`
}

// AccessibilityReport extends the common report with a short prioritized
// remediation list rendered as "<SEVERITY>: <title>" strings.
type AccessibilityReport struct {
	CategoryReport

	PrioritizedRecommendations []string `json:"prioritized_recommendations"`
}

// SEOGroupCounts counts SEO issues per topical audit group.
type SEOGroupCounts struct {
	// Mobile counts mobile-friendliness issues (viewport, font sizes, tap targets).
	Mobile int `json:"mobile"`
	// Crawl counts crawlability issues (robots, HTTP status, indexability).
	Crawl int `json:"crawl"`
	// Content counts content best-practice issues (titles, descriptions, link text).
	Content int `json:"content"`
}

// SEOReport extends the common report with per-group issue counts.
type SEOReport struct {
	CategoryReport

	GroupCounts SEOGroupCounts `json:"group_counts"`
}

// Installability describes whether the site qualifies as an installable
// progressive web app and which prerequisites are missing.
type Installability struct {
	// Installable is true when both the manifest and service worker audits pass.
	Installable bool `json:"installable"`
	// OfflineSupport is true when the site serves content without a network.
	OfflineSupport bool `json:"offline_support"`
	// Issues lists human-readable descriptions of missing prerequisites.
	Issues []string `json:"issues"`
}

// PWAReport extends the common report with installability details.
type PWAReport struct {
	CategoryReport

	Installability Installability `json:"installability"`
}

// Insight describes a problem spanning two or more audit categories, emitted
// when a fixed correlation rule matches. Insights are immutable once produced.
type Insight struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	AffectedCategories []Category `json:"affected_categories"`
	Impact             Severity   `json:"impact"`
	Recommendation     string     `json:"recommendation"`
}

// ActionItem is one entry of the ranked remediation plan.
type ActionItem struct {
	// Rank is the 1-based position after sorting by ROIScore, densely assigned.
	Rank int `json:"rank"`
	// Title names the remediation; some titles carry counts from the reports.
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Categories  []Category `json:"categories"`
	Impact      Severity   `json:"impact"`
	Effort      Effort     `json:"effort"`
	// ROIScore is a 0-100 priority value used only for sorting.
	ROIScore int `json:"roi_score"`
	// ActionSteps lists concrete remediation steps in order.
	ActionSteps []string `json:"action_steps"`
}

// QuickWin is a pre-identified low-effort fix tied to one specific audit ID.
type QuickWin struct {
	Title    string   `json:"title"`
	Category Category `json:"category"`
	// Impact is free text describing the expected benefit.
	Impact        string `json:"impact"`
	EstimatedTime string `json:"estimated_time"`
	Action        string `json:"action"`
}

// Summary totals issue and audit counts across the five categories. Manual,
// informative and not-applicable audits are excluded from the audit totals.
type Summary struct {
	TotalIssues    int `json:"total_issues"`
	CriticalIssues int `json:"critical_issues"`
	TotalAudits    int `json:"total_audits"`
	PassedAudits   int `json:"passed_audits"`
	FailedAudits   int `json:"failed_audits"`
}

// ComprehensiveAnalysis is the aggregate result of analyzing one URL across
// all five audit categories. It is created fresh per analysis, fully populated
// before being returned, and never mutated afterward.
type ComprehensiveAnalysis struct {
	// URL is the absolute URL that was analyzed.
	URL string `json:"url"`
	// AnalyzedAt is when the analysis started.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// OverallScore is the weighted combination of the five category scores.
	OverallScore int `json:"overall_score"`
	// CategoryScores maps each category to its 0-100 score.
	CategoryScores map[Category]int `json:"category_scores"`

	Performance   PerformanceReport   `json:"performance"`
	Accessibility AccessibilityReport `json:"accessibility"`
	SEO           SEOReport           `json:"seo"`
	BestPractices CategoryReport      `json:"best_practices"`
	PWA           PWAReport           `json:"pwa"`

	CrossCategoryInsights  []Insight    `json:"cross_category_insights"`
	PrioritizedActionItems []ActionItem `json:"prioritized_action_items"`
	QuickWins              []QuickWin   `json:"quick_wins"`
	Summary                Summary      `json:"summary"`
}
