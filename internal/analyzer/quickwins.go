package analyzer

import "webaudit/pkg/domain"

// maxQuickWins caps the quick win list.
const maxQuickWins = 6

// quickWinRule emits one literal quick win when one specific audit ID is
// present in one specific category's issue list.
type quickWinRule struct {
	category domain.Category
	issueID  string
	win      domain.QuickWin
}

// quickWinRules is the fixed quick win table. Output keeps the table order;
// it is deliberately not re-sorted by impact.
var quickWinRules = []quickWinRule{ //nolint: gochecknoglobals
	{
		category: domain.CategorySEO,
		issueID:  auditMetaDescription,
		win: domain.QuickWin{
			Title:         "Add a meta description",
			Category:      domain.CategorySEO,
			Impact:        "Better click-through rates from search results",
			EstimatedTime: "15 minutes",
			Action:        "Write a unique 150-160 character description for the page",
		},
	},
	{
		category: domain.CategoryAccessibility,
		issueID:  auditImageAlt,
		win: domain.QuickWin{
			Title:         "Add alt text to images",
			Category:      domain.CategoryAccessibility,
			Impact:        "Screen reader users can understand your images",
			EstimatedTime: "30 minutes",
			Action:        "Describe each informative image in its alt attribute",
		},
	},
	{
		category: domain.CategoryPerformance,
		issueID:  auditTextCompression,
		win: domain.QuickWin{
			Title:         "Enable text compression",
			Category:      domain.CategoryPerformance,
			Impact:        "Smaller transfers and faster page loads",
			EstimatedTime: "20 minutes",
			Action:        "Turn on gzip or brotli compression on the web server",
		},
	},
	{
		category: domain.CategorySEO,
		issueID:  auditViewport,
		win: domain.QuickWin{
			Title:         "Add a viewport meta tag",
			Category:      domain.CategorySEO,
			Impact:        "Pages render correctly on mobile devices",
			EstimatedTime: "5 minutes",
			Action:        `Add <meta name="viewport" content="width=device-width, initial-scale=1"> to the head`,
		},
	},
	{
		category: domain.CategorySEO,
		issueID:  auditDocumentTitle,
		win: domain.QuickWin{
			Title:         "Add a descriptive page title",
			Category:      domain.CategorySEO,
			Impact:        "Search engines and users understand the page topic",
			EstimatedTime: "10 minutes",
			Action:        "Add a unique title element to the document head",
		},
	},
	{
		category: domain.CategoryAccessibility,
		issueID:  auditColorContrast,
		win: domain.QuickWin{
			Title:         "Fix color contrast issues",
			Category:      domain.CategoryAccessibility,
			Impact:        "Text becomes readable for low-vision users",
			EstimatedTime: "45 minutes",
			Action:        "Adjust foreground or background colors to meet WCAG AA contrast",
		},
	},
}

// issuesFor returns the issue list of the named category.
func (r reports) issuesFor(category domain.Category) domain.CategoryReport {
	switch category {
	case domain.CategoryPerformance:
		return r.performance.CategoryReport
	case domain.CategoryAccessibility:
		return r.accessibility.CategoryReport
	case domain.CategorySEO:
		return r.seo.CategoryReport
	case domain.CategoryBestPractices:
		return r.bestPractices
	case domain.CategoryPWA:
		return r.pwa.CategoryReport
	default:
		return domain.CategoryReport{}
	}
}

// extractQuickWins evaluates the quick win table in order and caps the output
// at six entries.
func extractQuickWins(r reports) []domain.QuickWin {
	wins := []domain.QuickWin{}
	for _, rule := range quickWinRules {
		if len(wins) == maxQuickWins {
			break
		}
		if r.issuesFor(rule.category).HasIssue(rule.issueID) {
			wins = append(wins, rule.win)
		}
	}

	return wins
}
