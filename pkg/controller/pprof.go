package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofMux builds a mux exposing the runtime profiling endpoints from
// net/http/pprof. It is meant to be mounted under a stripped debug prefix in
// the main HTTP server.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", pprof.Index)
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)
	for _, p := range []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} {
		mux.Handle("/"+p, pprof.Handler(p))
	}

	return mux
}
