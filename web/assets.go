package web

import (
	_ "embed"
	"net/http"
)

// The dashboard is a single self-contained page, embedded so the binary
// has no files to resolve at runtime.
//
//go:embed index.html
var indexHTML []byte

// mountAssets serves the embedded dashboard page at the root.
func (s *Server) mountAssets(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(indexHTML)
	})
}
