package controller

import "net/http"

// Headers and methods the analysis API accepts cross-origin. The API is
// unauthenticated, so the origin wildcard is acceptable here.
const (
	corsAllowedHeaders = "Accept, Content-Type, Content-Length, Accept-Encoding, Origin, Cache-Control, X-Request-Id"
	corsAllowedMethods = "GET, POST, OPTIONS"
)

// WithCORS returns a middleware that sets permissive CORS headers on every
// response and answers OPTIONS preflight requests directly with 204 No Content.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", corsAllowedHeaders)
		w.Header().Set("Access-Control-Allow-Methods", corsAllowedMethods)
		w.Header().Set("Access-Control-Max-Age", "300")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
