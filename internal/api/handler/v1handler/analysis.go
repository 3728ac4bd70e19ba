package v1handler

import (
	"encoding/json"
	"io"
	"net/http"
	"webaudit/pkg/serrors"
)

// maxRequestBody bounds the analysis request body size.
const maxRequestBody = 1 << 20

// CreateAnalysisRequest is the JSON body of POST /v1/analyses.
type CreateAnalysisRequest struct {
	// URL is the absolute URL to analyze.
	URL string `json:"url"`
}

// CreateAnalysis runs a comprehensive analysis for the requested URL and
// returns the full analysis record. Per-category audit failures degrade
// inside the analyzer and still produce a 200 response.
func (h *Handler) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateAnalysisRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}
	if req.URL == "" {
		writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "url is required"))

		return
	}

	analysis, err := h.deps.Analyzer.Analyze(ctx, req.URL)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, analysis)
}
