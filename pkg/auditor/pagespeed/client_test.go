package pagespeed_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"webaudit/pkg/auditor"
	"webaudit/pkg/auditor/pagespeed"
	"webaudit/pkg/domain"
	"webaudit/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *pagespeed.Client {
	return pagespeed.New(&http.Client{Transport: fn}, pagespeed.Options{
		APIKey:   "test-key",
		Strategy: "mobile",
	})
}

const seoBody = `{
	"lighthouseResult": {
		"categories": {
			"seo": {
				"score": 0.85,
				"auditRefs": [
					{"id": "document-title"},
					{"id": "meta-description"},
					{"id": "viewport"},
					{"id": "structured-data"},
					{"id": "dangling-ref"}
				]
			}
		},
		"audits": {
			"document-title": {
				"id": "document-title",
				"title": "Document has a title element",
				"description": "The title describes the page.",
				"score": 1,
				"scoreDisplayMode": "binary"
			},
			"meta-description": {
				"id": "meta-description",
				"title": "Document has a meta description",
				"description": "Meta descriptions may be shown in search results.",
				"score": 0,
				"scoreDisplayMode": "binary"
			},
			"viewport": {
				"id": "viewport",
				"title": "Has a viewport meta tag",
				"description": "A viewport tag optimizes for mobile screens.",
				"score": null,
				"scoreDisplayMode": "notApplicable"
			},
			"structured-data": {
				"id": "structured-data",
				"title": "Structured data is valid",
				"description": "Run the validator on your structured data.",
				"score": null,
				"scoreDisplayMode": "manual"
			}
		}
	}
}`

func TestClient_Audit_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "www.googleapis.com", r.URL.Host)
		require.Equal(t, "/pagespeedonline/v5/runPagespeed", r.URL.Path)

		q := r.URL.Query()
		require.Equal(t, "https://example.com/", q.Get("url"))
		require.Equal(t, "SEO", q.Get("category"))
		require.Equal(t, "mobile", q.Get("strategy"))
		require.Equal(t, "test-key", q.Get("key"))

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(seoBody)),
		}, nil
	})

	res, err := c.Audit(context.Background(), "https://example.com/", domain.CategorySEO)
	require.NoError(t, err)
	require.InDelta(t, 0.85, res.Score, 1e-9)

	// dangling-ref points at a missing audit and is skipped
	require.Len(t, res.Audits, 4)

	md := res.Audits["meta-description"]
	require.Equal(t, "Document has a meta description", md.Title)
	require.NotNil(t, md.Score)
	require.Zero(t, *md.Score)
	require.Equal(t, auditor.DisplayModeBinary, md.DisplayMode)

	vp := res.Audits["viewport"]
	require.Nil(t, vp.Score)
	require.Equal(t, auditor.DisplayModeNotApplicable, vp.DisplayMode)
}

func TestClient_Audit_categoryMissing(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		// engine responded but without the requested category
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"lighthouseResult":{"categories":{}}}`)),
		}, nil
	})

	_, err := c.Audit(context.Background(), "https://example.com/", domain.CategoryPWA)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrCategoryMissing)
}

func TestClient_Audit_rateLimited429(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(strings.NewReader("slow down")),
		}, nil
	})

	_, err := c.Audit(context.Background(), "https://example.com/", domain.CategoryPerformance)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestClient_Audit_non2xx(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusInternalServerError,
			Body:       io.NopCloser(strings.NewReader("lighthouse crashed")),
		}, nil
	})

	_, err := c.Audit(context.Background(), "https://example.com/", domain.CategoryBestPractices)
	require.Error(t, err)
	require.Contains(t, err.Error(), "lighthouse crashed")
}

func TestClient_Audit_unknownCategory(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		t.Fatal("no request expected for an unknown category")

		return nil, nil
	})

	_, err := c.Audit(context.Background(), "https://example.com/", domain.Category("bogus"))
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestClient_Audit_decodeError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("{not json")),
		}, nil
	})

	_, err := c.Audit(context.Background(), "https://example.com/", domain.CategoryAccessibility)
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not decode response")
}
