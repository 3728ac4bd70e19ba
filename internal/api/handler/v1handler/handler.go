// Package v1handler implements the v1 HTTP handlers of the analysis API.
// Handlers translate between the JSON wire format and the analyzer, and map
// semantic error kinds onto HTTP status codes.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"webaudit/internal/analyzer"
	"webaudit/pkg/logger"
	"webaudit/pkg/serrors"

	"go.uber.org/zap"
)

// Deps bundles the collaborators the handlers need.
type Deps struct {
	// Analyzer runs the comprehensive website analysis.
	Analyzer analyzer.Analyzer
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts all v1 routes on the given mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/analyses", h.CreateAnalysis)
}

// ErrorResponse is the JSON error body shared by all v1 endpoints.
type ErrorResponse struct {
	// Code is the semantic error kind, e.g. "BAD_REQUEST".
	Code string `json:"code"`
	// Message is a human-readable description safe to show to clients.
	Message string `json:"message"`
}

// statusForKind maps semantic error kinds to HTTP status codes. Unknown kinds
// and plain errors map to 500 with a generic message so internals never leak.
var statusForKind = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:     http.StatusBadRequest,
	serrors.ErrNotFound:       http.StatusNotFound,
	serrors.ErrRateLimited:    http.StatusTooManyRequests,
	serrors.ErrTimeout:        http.StatusGatewayTimeout,
	serrors.ErrUnavailable:    http.StatusServiceUnavailable,
	serrors.ErrAnalysisFailed: http.StatusInternalServerError,
	serrors.ErrInternal:       http.StatusInternalServerError,
}

// writeError logs the error and writes the mapped JSON error response.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	logger.Error(ctx, "request failed", zap.Error(err))

	status := http.StatusInternalServerError
	resp := ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"}

	var serr *serrors.Error
	switch {
	case errors.As(err, &serr) && serr.Kind() != nil:
		if s, ok := statusForKind[serr.Kind()]; ok {
			status = s
			resp.Code = serr.Kind().Error()
			if status != http.StatusInternalServerError {
				resp.Message = serr.Message()
			}
		}
	default:
		var kind serrors.Kind
		if errors.As(err, &kind) {
			if s, ok := statusForKind[kind]; ok {
				status = s
				resp.Code = kind.Error()
				resp.Message = defaultKindMessage(kind)
			}
		}
	}

	writeJSON(w, status, resp)
}

// defaultKindMessage provides a client-safe message for bare kind sentinels.
func defaultKindMessage(kind serrors.Kind) string {
	switch kind {
	case serrors.ErrNotFound:
		return "resource not found"
	case serrors.ErrBadRequest:
		return "invalid request"
	case serrors.ErrRateLimited:
		return "too many requests"
	case serrors.ErrTimeout:
		return "request timed out"
	case serrors.ErrUnavailable:
		return "service unavailable"
	default:
		return "internal error"
	}
}

// writeJSON writes the value as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
