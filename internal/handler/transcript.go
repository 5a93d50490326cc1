package handler

import (
	"errors"
	"net/http"
	"strings"

	"loglens/internal/explain"
	"loglens/internal/transcript"
)

// HandleTranscript serves GET /debug/transcript?request_id=. The request ID
// is the explanation record ID listed by GET /explanations.
func (h *Handler) HandleTranscript(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeEnvelope(w, http.StatusMethodNotAllowed, explain.ErrorEnvelope("method not allowed"))
		return
	}
	requestID := strings.TrimSpace(r.URL.Query().Get("request_id"))
	if requestID == "" {
		writeEnvelope(w, http.StatusBadRequest, explain.ErrorEnvelope("'request_id' is required"))
		return
	}

	names, err := h.transcripts.List(r.Context(), requestID)
	if err != nil {
		writeEnvelope(w, http.StatusInternalServerError, explain.ErrorEnvelope("transcript lookup failed"))
		return
	}
	if len(names) == 0 {
		writeEnvelope(w, http.StatusNotFound, explain.ErrorEnvelope("transcript not found"))
		return
	}

	files := make(map[string]string, len(names))
	for _, name := range names {
		content, err := h.transcripts.Get(r.Context(), requestID, name)
		if err != nil {
			if errors.Is(err, transcript.ErrNotFound) {
				continue
			}
			writeEnvelope(w, http.StatusInternalServerError, explain.ErrorEnvelope("transcript lookup failed"))
			return
		}
		files[name] = string(content)
	}

	writeEnvelope(w, http.StatusOK, explain.Envelope{
		Status: explain.StatusOK,
		Result: map[string]any{
			"request_id": requestID,
			"files":      files,
		},
	})
}
