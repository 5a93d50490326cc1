package server

import (
	"net/http"

	"loglens/internal/handler"
	"loglens/internal/middleware"
)

func NewMux(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/explain-log", h.HandleExplainLog)
	mux.HandleFunc("/explain-log/ws", h.HandleExplainWS)
	mux.HandleFunc("/explanations", h.HandleExplanations)
	mux.HandleFunc("/debug/transcript", h.HandleTranscript)
	mux.HandleFunc("/openapi.json", h.HandleOpenAPI)
	mux.HandleFunc("/healthz", h.HandleHealthz)
	mux.HandleFunc("/", h.HandleIndex)

	return middleware.CORS(mux)
}
