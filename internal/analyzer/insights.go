package analyzer

import "webaudit/pkg/domain"

// insightRule pairs a predicate over the five finished reports with the
// literal insight it emits. Rules are evaluated independently in table order;
// matching rules may co-fire and the output keeps the table order.
type insightRule struct {
	match   func(r reports) bool
	insight domain.Insight
}

// insightRules is the fixed cross-category correlation table. Titles,
// descriptions and recommendations are literals, never computed.
var insightRules = []insightRule{ //nolint: gochecknoglobals
	{
		match: func(r reports) bool {
			return r.performance.HasIssue(auditOptimizedImages) &&
				r.accessibility.HasIssue(auditImageAlt)
		},
		insight: domain.Insight{
			ID:    "large-images-multi-impact",
			Title: "Unoptimized images hurt multiple categories",
			Description: "The page serves images that are both unoptimized and missing alternative text. " +
				"Oversized images slow down loading, and missing alt attributes hide content from " +
				"assistive technology and search crawlers alike.",
			AffectedCategories: []domain.Category{
				domain.CategoryPerformance,
				domain.CategoryAccessibility,
				domain.CategorySEO,
			},
			Impact: domain.SeveritySerious,
			Recommendation: "Compress and resize images to their rendered dimensions, serve modern formats, " +
				"and add descriptive alt text to every informative image.",
		},
	},
	{
		match: func(r reports) bool {
			return r.performance.Metrics.CumulativeLayoutShift > 0.1 &&
				r.seo.GroupCounts.Mobile > 0
		},
		insight: domain.Insight{
			ID:    "mobile-optimization-needed",
			Title: "Mobile experience needs attention",
			Description: "The layout shifts noticeably while loading and the page has mobile-friendliness " +
				"problems. Both frustrate mobile visitors and hurt mobile search rankings.",
			AffectedCategories: []domain.Category{
				domain.CategoryPerformance,
				domain.CategorySEO,
				domain.CategoryAccessibility,
			},
			Impact: domain.SeveritySerious,
			Recommendation: "Reserve space for images, ads and embeds to stabilize the layout, and fix the " +
				"reported viewport, font size and tap target issues.",
		},
	},
	{
		match: func(r reports) bool {
			return !r.pwa.Installability.Installable &&
				r.performance.Score < 70 &&
				!r.pwa.Installability.OfflineSupport
		},
		insight: domain.Insight{
			ID:    "pwa-capabilities-missing",
			Title: "Progressive web app capabilities missing",
			Description: "The site is slow, cannot be installed and does not work offline. A service worker " +
				"with sensible caching would address all three at once.",
			AffectedCategories: []domain.Category{
				domain.CategoryPWA,
				domain.CategoryPerformance,
			},
			Impact: domain.SeverityModerate,
			Recommendation: "Add a web app manifest and a service worker that precaches the application " +
				"shell and serves cached responses while offline.",
		},
	},
	{
		match: func(r reports) bool {
			return r.bestPractices.HasIssue(auditIsOnHTTPS) &&
				r.seo.GroupCounts.Crawl > 0
		},
		insight: domain.Insight{
			ID:    "https-security-seo",
			Title: "Insecure transport undermines search visibility",
			Description: "The page is served without HTTPS while crawlers are already having trouble " +
				"indexing it. Search engines penalize insecure pages, compounding the crawl problems.",
			AffectedCategories: []domain.Category{
				domain.CategoryBestPractices,
				domain.CategorySEO,
			},
			Impact: domain.SeverityCritical,
			Recommendation: "Obtain a TLS certificate, redirect all HTTP traffic to HTTPS, and re-verify " +
				"that the page is crawlable afterwards.",
		},
	},
	{
		match: func(r reports) bool {
			return (r.accessibility.HasIssue(auditHeadingOrder) ||
				r.accessibility.HasIssue(auditDocumentTitle)) &&
				r.seo.GroupCounts.Content > 0
		},
		insight: domain.Insight{
			ID:    "semantic-html-structure",
			Title: "Weak document structure affects readers and crawlers",
			Description: "Headings or the document title are not structured semantically, and the page also " +
				"has content-related SEO issues. Both assistive technology and search engines rely on the " +
				"same document outline.",
			AffectedCategories: []domain.Category{
				domain.CategoryAccessibility,
				domain.CategorySEO,
			},
			Impact: domain.SeverityModerate,
			Recommendation: "Use one h1 per page, nest headings without skipping levels, and give the " +
				"document a unique, descriptive title.",
		},
	},
}

// crossCategoryInsights evaluates every rule of the fixed table against the
// reports. No short-circuiting: each rule sees the same inputs, and the output
// order equals the rule table order.
func crossCategoryInsights(r reports) []domain.Insight {
	insights := []domain.Insight{}
	for _, rule := range insightRules {
		if rule.match(r) {
			insights = append(insights, rule.insight)
		}
	}

	return insights
}
