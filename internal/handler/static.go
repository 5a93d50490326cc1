package handler

import (
	"embed"
	"net/http"
)

//go:embed static/index.html static/openapi.json
var staticFS embed.FS

// HandleIndex serves the single-page UI at exactly "/".
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	data, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "index not available", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}

func (h *Handler) HandleOpenAPI(w http.ResponseWriter, r *http.Request) {
	data, err := staticFS.ReadFile("static/openapi.json")
	if err != nil {
		http.Error(w, "schema not available", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}
