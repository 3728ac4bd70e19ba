package analyzer

import (
	"context"
	"webaudit/pkg/domain"
)

// SEO audit IDs referenced by the rule tables.
const (
	auditMetaDescription = "meta-description"
	auditViewport        = "viewport"
)

// seoGroups assigns SEO audit IDs to topical groups. The group counts feed the
// cross-category rules (mobile friendliness, crawlability, content quality).
var seoGroups = map[string]string{ //nolint: gochecknoglobals
	// mobile friendliness
	"viewport":    "mobile",
	"font-size":   "mobile",
	"tap-targets": "mobile",

	// crawlability
	"is-crawlable":     "crawl",
	"robots-txt":       "crawl",
	"http-status-code": "crawl",

	// content quality
	"document-title":   "content",
	"meta-description": "content",
	"link-text":        "content",
	"hreflang":         "content",
	"canonical":        "content",
}

// auditSEO runs the SEO category and normalizes the result. The extension
// counts the category's issues per topical group; issues outside the known
// groups are still reported but not counted in any group.
func (a analyzer) auditSEO(ctx context.Context, URL string) (domain.SEOReport, error) {
	res, err := a.engine.Audit(ctx, URL, domain.CategorySEO)
	if err != nil {
		return domain.SEOReport{}, wrapEngineErr(err, domain.CategorySEO)
	}

	report := normalizeCategory(res)

	var counts domain.SEOGroupCounts
	for _, issue := range report.Issues {
		switch seoGroups[issue.ID] {
		case "mobile":
			counts.Mobile++
		case "crawl":
			counts.Crawl++
		case "content":
			counts.Content++
		}
	}

	return domain.SEOReport{
		CategoryReport: report,
		GroupCounts:    counts,
	}, nil
}
