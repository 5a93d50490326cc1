package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loglens/internal/explain"
	"loglens/internal/history"
	"loglens/internal/llm"
	"loglens/internal/transcript"
)

func seedHistory(t *testing.T, hist *history.MemoryStore, n int) {
	t.Helper()
	base := time.Date(2025, 11, 14, 3, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		err := hist.Append(context.Background(), history.Record{
			ID:        fmt.Sprintf("id-%02d", i),
			RawLog:    fmt.Sprintf("line %d", i),
			Summary:   fmt.Sprintf("summary %d", i),
			Severity:  "WARN",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}
}

func getExplanations(t *testing.T, h *Handler, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/explanations"+query, nil)
	rec := httptest.NewRecorder()
	h.HandleExplanations(rec, req)
	return rec
}

func TestExplanations_NewestFirst(t *testing.T) {
	hist := history.NewMemoryStore(0)
	seedHistory(t, hist, 3)
	svc, err := explain.NewService(explain.ServiceConfig{Client: llm.NewFakeClient()})
	require.NoError(t, err)
	h := New(svc, hist, transcript.NewMemoryStore())

	rec := getExplanations(t, h, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Status string           `json:"status"`
		Result []history.Record `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, explain.StatusOK, env.Status)
	require.Len(t, env.Result, 3)
	assert.Equal(t, "id-02", env.Result[0].ID)
	assert.Equal(t, "id-00", env.Result[2].ID)
}

func TestExplanations_LimitApplied(t *testing.T) {
	hist := history.NewMemoryStore(0)
	seedHistory(t, hist, 5)
	svc, err := explain.NewService(explain.ServiceConfig{Client: llm.NewFakeClient()})
	require.NoError(t, err)
	h := New(svc, hist, transcript.NewMemoryStore())

	rec := getExplanations(t, h, "?limit=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Result []history.Record `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Len(t, env.Result, 2)
}

func TestExplanations_BadLimit(t *testing.T) {
	svc, err := explain.NewService(explain.ServiceConfig{Client: llm.NewFakeClient()})
	require.NoError(t, err)
	h := New(svc, history.NewMemoryStore(0), transcript.NewMemoryStore())

	for _, q := range []string{"?limit=0", "?limit=-3", "?limit=abc"} {
		rec := getExplanations(t, h, q)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestExplanations_EmptyHistory(t *testing.T) {
	svc, err := explain.NewService(explain.ServiceConfig{Client: llm.NewFakeClient()})
	require.NoError(t, err)
	h := New(svc, history.NewMemoryStore(0), transcript.NewMemoryStore())

	rec := getExplanations(t, h, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Result []history.Record `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Empty(t, env.Result)
}
