// Package pagespeed provides an auditor.Engine implementation backed by the
// Google PageSpeed Insights v5 API, which runs Lighthouse remotely and returns
// the full per-audit result set for a requested category.
package pagespeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"webaudit/pkg/auditor"
	"webaudit/pkg/domain"
	"webaudit/pkg/serrors"
)

// DefaultBaseURL is the production endpoint of the PageSpeed Insights v5 API.
const DefaultBaseURL = "https://www.googleapis.com/pagespeedonline/v5/runPagespeed"

// Options configure the PageSpeed Insights client.
type Options struct {
	// BaseURL overrides the API endpoint; empty means DefaultBaseURL.
	BaseURL string
	// APIKey is the Google API key sent with every request. Anonymous requests
	// work but are rate limited aggressively.
	APIKey string
	// Strategy selects the analysis environment, "mobile" or "desktop".
	// Empty means the API default (desktop).
	Strategy string
}

// Client talks to the PageSpeed Insights REST API and fulfills the
// auditor.Engine interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the API
	options    Options
}

// categoryParams maps a domain category to the API's request parameter value
// and the key under which the category appears in the Lighthouse result.
var categoryParams = map[domain.Category]struct{ param, key string }{ //nolint: gochecknoglobals
	domain.CategoryPerformance:   {param: "PERFORMANCE", key: "performance"},
	domain.CategoryAccessibility: {param: "ACCESSIBILITY", key: "accessibility"},
	domain.CategorySEO:           {param: "SEO", key: "seo"},
	domain.CategoryBestPractices: {param: "BEST_PRACTICES", key: "best-practices"},
	domain.CategoryPWA:           {param: "PWA", key: "pwa"},
}

// lighthouseResponse mirrors the subset of the PSI v5 response we consume.
type lighthouseResponse struct {
	LighthouseResult struct {
		Categories map[string]struct {
			Score     *float64 `json:"score"`
			AuditRefs []struct {
				ID string `json:"id"`
			} `json:"auditRefs"`
		} `json:"categories"`
		Audits map[string]struct {
			ID               string   `json:"id"`
			Title            string   `json:"title"`
			Description      string   `json:"description"`
			Score            *float64 `json:"score"`
			ScoreDisplayMode string   `json:"scoreDisplayMode"`
			NumericValue     *float64 `json:"numericValue"`
		} `json:"audits"`
	} `json:"lighthouseResult"`
}

// Audit runs one Lighthouse category against the URL via the PSI API. The API
// returns audits for every requested category in one flat map; the category's
// auditRefs select which of them belong to the requested category.
func (c *Client) Audit(ctx context.Context, URL string, category domain.Category) (*auditor.CategoryResult, error) {
	names, ok := categoryParams[category]
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown audit category: %s", category)
	}

	q := url.Values{}
	q.Set("url", URL)
	q.Set("category", names.param)
	if c.options.Strategy != "" {
		q.Set("strategy", c.options.Strategy)
	}
	if c.options.APIKey != "" {
		q.Set("key", c.options.APIKey)
	}

	base := c.options.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("audit request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var rs lighthouseResponse
	if err := json.Unmarshal(b, &rs); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	cat, ok := rs.LighthouseResult.Categories[names.key]
	if !ok {
		return nil, serrors.With(serrors.ErrCategoryMissing, "category %q missing from engine response", names.key)
	}

	out := &auditor.CategoryResult{
		Audits: make(map[string]auditor.AuditResult, len(cat.AuditRefs)),
	}
	if cat.Score != nil {
		out.Score = *cat.Score
	}

	for _, ref := range cat.AuditRefs {
		a, ok := rs.LighthouseResult.Audits[ref.ID]
		if !ok {
			// referenced but absent audits are skipped rather than failing the
			// whole category
			continue
		}
		out.Audits[ref.ID] = auditor.AuditResult{
			ID:           a.ID,
			Title:        a.Title,
			Description:  a.Description,
			Score:        a.Score,
			DisplayMode:  auditor.DisplayMode(a.ScoreDisplayMode),
			NumericValue: a.NumericValue,
		}
	}

	return out, nil
}

// Ensure Client conforms to the auditor.Engine interface at compile time.
var _ auditor.Engine = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and options to
// interact with the PageSpeed Insights API.
func New(httpClient *http.Client, options Options) *Client {
	return &Client{
		httpClient: httpClient,
		options:    options,
	}
}
