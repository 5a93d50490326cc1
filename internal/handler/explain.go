package handler

import (
	"fmt"
	"io"
	"net/http"

	"loglens/internal/explain"
)

const maxBodyBytes = 1 << 20

// HandleExplainLog serves POST /explain-log. Validation failures and
// upstream call failures both map to an ERROR envelope; unparsable model
// output comes back as a degraded OK result instead.
func (h *Handler) HandleExplainLog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeEnvelope(w, http.StatusMethodNotAllowed, explain.ErrorEnvelope("method not allowed"))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, explain.ErrorEnvelope("unable to read request body"))
		return
	}

	req, err := explain.ParseRequest(body)
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, explain.ErrorEnvelope(err.Error()))
		return
	}

	res, err := h.svc.Explain(r.Context(), req)
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, explain.ErrorEnvelope(fmt.Sprintf("%v", err)))
		return
	}

	writeEnvelope(w, http.StatusOK, explain.OKEnvelope(res))
}
