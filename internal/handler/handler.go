package handler

import (
	"net/http"

	"loglens/internal/explain"
	"loglens/internal/history"
	"loglens/internal/jsonutil"
	"loglens/internal/transcript"
)

// Handler serves the HTTP endpoints. All endpoints reply with the
// {status, result} envelope; ERROR envelopes carry a plain message.
type Handler struct {
	svc         *explain.Service
	history     history.Store
	transcripts transcript.Store
}

func New(svc *explain.Service, hist history.Store, trans transcript.Store) *Handler {
	return &Handler{svc: svc, history: hist, transcripts: trans}
}

func writeEnvelope(w http.ResponseWriter, code int, env explain.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	b, err := jsonutil.MarshalNoEscape(env)
	if err != nil {
		// Should not happen for the envelope types we emit.
		http.Error(w, "encoding failure", http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(b)
}

func (h *Handler) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"OK"}`))
}
