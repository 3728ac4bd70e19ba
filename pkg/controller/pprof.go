package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofMux returns a mux with the net/http/pprof handlers registered without
// touching http.DefaultServeMux. Mounted under /debug/pprof/ by the API server.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", pprof.Index)
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)

	return mux
}
