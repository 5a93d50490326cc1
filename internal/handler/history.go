package handler

import (
	"net/http"
	"strconv"
	"strings"

	"loglens/internal/explain"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// HandleExplanations serves GET /explanations?limit=N with the most recent
// explanation outcomes, newest first.
func (h *Handler) HandleExplanations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeEnvelope(w, http.StatusMethodNotAllowed, explain.ErrorEnvelope("method not allowed"))
		return
	}

	limit := defaultHistoryLimit
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeEnvelope(w, http.StatusBadRequest, explain.ErrorEnvelope("'limit' must be a positive integer"))
			return
		}
		limit = n
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	recs, err := h.history.Recent(r.Context(), limit)
	if err != nil {
		writeEnvelope(w, http.StatusInternalServerError, explain.ErrorEnvelope("history lookup failed"))
		return
	}
	writeEnvelope(w, http.StatusOK, explain.Envelope{Status: explain.StatusOK, Result: recs})
}
