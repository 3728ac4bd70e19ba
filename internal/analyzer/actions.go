package analyzer

import (
	"fmt"
	"sort"
	"webaudit/pkg/domain"
)

// maxActionItems caps the remediation plan length.
const maxActionItems = 10

// actionCandidate builds one remediation plan entry when its gate matches.
// ROI scores and effort levels are literal product decisions per candidate;
// they are not derived from a formula.
type actionCandidate func(r reports, insights []domain.Insight) (domain.ActionItem, bool)

// actionCandidates is the fixed candidate table. The gates mirror the insight
// triggers without being identical to them.
var actionCandidates = []actionCandidate{ //nolint: gochecknoglobals
	func(r reports, _ []domain.Insight) (domain.ActionItem, bool) {
		issue, ok := r.bestPractices.FindIssue(auditIsOnHTTPS)
		if !ok || issue.Severity != domain.SeverityCritical {
			return domain.ActionItem{}, false
		}

		return domain.ActionItem{
			Title: "Migrate to HTTPS",
			Description: "The page is served over plain HTTP. Browsers mark it as not secure " +
				"and search engines rank it lower.",
			Categories: []domain.Category{domain.CategoryBestPractices, domain.CategorySEO},
			Impact:     domain.SeverityCritical,
			Effort:     domain.EffortMedium,
			ROIScore:   95,
			ActionSteps: []string{
				"Obtain a TLS certificate for the domain",
				"Install the certificate and enable HTTPS on the web server",
				"Redirect all HTTP requests to HTTPS with permanent redirects",
				"Update internal links and canonical URLs to the https scheme",
			},
		}, true
	},
	func(r reports, _ []domain.Insight) (domain.ActionItem, bool) {
		if r.performance.Metrics.LargestContentfulPaintMs <= 2500 {
			return domain.ActionItem{}, false
		}

		return domain.ActionItem{
			Title: "Improve Largest Contentful Paint",
			Description: "The largest content element takes too long to render, which is the " +
				"strongest signal of perceived load speed.",
			Categories: []domain.Category{domain.CategoryPerformance},
			Impact:     domain.SeveritySerious,
			Effort:     domain.EffortMedium,
			ROIScore:   90,
			ActionSteps: []string{
				"Identify the LCP element in the performance trace",
				"Preload the LCP image or critical font",
				"Remove render-blocking scripts and styles from the critical path",
				"Serve static assets from a CDN",
			},
		}, true
	},
	func(r reports, _ []domain.Insight) (domain.ActionItem, bool) {
		n := r.accessibility.CriticalIssues()
		if n < 1 {
			return domain.ActionItem{}, false
		}

		return domain.ActionItem{
			Title: fmt.Sprintf("Fix %d critical accessibility violations", n),
			Description: "Critical accessibility violations block users of assistive technology " +
				"from using the page at all.",
			Categories: []domain.Category{domain.CategoryAccessibility},
			Impact:     domain.SeverityCritical,
			Effort:     domain.EffortLow,
			ROIScore:   85,
			ActionSteps: []string{
				"Review each critical violation in the accessibility report",
				"Fix missing labels, roles and alternative text first",
				"Re-run the audit to confirm the violations are resolved",
			},
		}, true
	},
	func(r reports, _ []domain.Insight) (domain.ActionItem, bool) {
		if !r.seo.HasIssue(auditMetaDescription) {
			return domain.ActionItem{}, false
		}

		return domain.ActionItem{
			Title: "Write meta descriptions",
			Description: "Pages without meta descriptions let search engines improvise snippets, " +
				"which lowers click-through rates.",
			Categories: []domain.Category{domain.CategorySEO},
			Impact:     domain.SeveritySerious,
			Effort:     domain.EffortLow,
			ROIScore:   80,
			ActionSteps: []string{
				"Write a unique 150-160 character description for the page",
				"Summarize the page content and include the primary keyword",
			},
		}, true
	},
	func(r reports, _ []domain.Insight) (domain.ActionItem, bool) {
		if r.performance.HasIssue(auditRenderBlockingResource) {
			return domain.ActionItem{
				Title: "Eliminate render-blocking resources",
				Description: "Scripts and stylesheets in the document head delay the first paint " +
					"of the page.",
				Categories: []domain.Category{domain.CategoryPerformance},
				Impact:     domain.SeveritySerious,
				Effort:     domain.EffortLow,
				ROIScore:   75,
				ActionSteps: []string{
					"Defer or async non-critical scripts",
					"Inline critical CSS and load the rest asynchronously",
				},
			}, true
		}

		return domain.ActionItem{}, false
	},
	func(r reports, _ []domain.Insight) (domain.ActionItem, bool) {
		if !r.performance.HasIssue(auditOptimizedImages) {
			return domain.ActionItem{}, false
		}

		return domain.ActionItem{
			Title: "Optimize and compress images",
			Description: "Oversized or poorly compressed images dominate the page weight on " +
				"most slow pages.",
			Categories: []domain.Category{domain.CategoryPerformance, domain.CategorySEO},
			Impact:     domain.SeverityModerate,
			Effort:     domain.EffortMedium,
			ROIScore:   72,
			ActionSteps: []string{
				"Resize images to their rendered dimensions",
				"Convert photos to WebP or AVIF",
				"Lazy-load images below the fold",
			},
		}, true
	},
	func(r reports, _ []domain.Insight) (domain.ActionItem, bool) {
		if r.pwa.Installability.Installable || r.pwa.Score >= 50 {
			return domain.ActionItem{}, false
		}

		return domain.ActionItem{
			Title: "Make the site installable",
			Description: "The site misses the basics of an installable progressive web app, " +
				"giving up engagement from returning visitors.",
			Categories: []domain.Category{domain.CategoryPWA},
			Impact:     domain.SeverityModerate,
			Effort:     domain.EffortHigh,
			ROIScore:   70,
			ActionSteps: []string{
				"Add a web app manifest with name, icons and start URL",
				"Register a service worker that serves a cached application shell",
				"Verify installability in the browser's application panel",
			},
		}, true
	},
	func(r reports, _ []domain.Insight) (domain.ActionItem, bool) {
		if !r.bestPractices.HasIssue(auditConsoleErrors) {
			return domain.ActionItem{}, false
		}

		return domain.ActionItem{
			Title: "Resolve browser console errors",
			Description: "Errors logged to the console usually indicate broken functionality " +
				"that automated audits cannot fully assess.",
			Categories: []domain.Category{domain.CategoryBestPractices},
			Impact:     domain.SeverityModerate,
			Effort:     domain.EffortLow,
			ROIScore:   60,
			ActionSteps: []string{
				"Open the page with the developer console and reproduce each error",
				"Fix or remove the failing scripts and requests",
			},
		}, true
	},
	func(_ reports, insights []domain.Insight) (domain.ActionItem, bool) {
		if len(insights) < 3 {
			return domain.ActionItem{}, false
		}

		return domain.ActionItem{
			Title: "Plan a combined remediation sprint",
			Description: "Several problems span multiple audit categories; fixing them together " +
				"is cheaper than category by category.",
			Categories: []domain.Category{
				domain.CategoryPerformance,
				domain.CategoryAccessibility,
				domain.CategorySEO,
			},
			Impact:   domain.SeverityModerate,
			Effort:   domain.EffortMedium,
			ROIScore: 55,
			ActionSteps: []string{
				"Group the cross-category insights by affected page component",
				"Schedule the shared fixes (images, markup, transport) as one work item",
			},
		}, true
	},
}

// prioritizeActions builds the ranked remediation plan: construct every
// matching candidate in table order, stable-sort descending by ROI score so
// equal scores keep their table order, assign dense 1-based ranks, and cap the
// list at ten entries.
func prioritizeActions(r reports, insights []domain.Insight) []domain.ActionItem {
	items := []domain.ActionItem{}
	for _, candidate := range actionCandidates {
		if item, ok := candidate(r, insights); ok {
			items = append(items, item)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ROIScore > items[j].ROIScore
	})

	if len(items) > maxActionItems {
		items = items[:maxActionItems]
	}

	for i := range items {
		items[i].Rank = i + 1
	}

	return items
}
