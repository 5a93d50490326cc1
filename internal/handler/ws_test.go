package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loglens/internal/explain"
	"loglens/internal/llm"
)

func dialExplainWS(t *testing.T, h *Handler) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(h.HandleExplainWS))
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvents(t *testing.T, conn *websocket.Conn) []explainWSEvent {
	t.Helper()
	var events []explainWSEvent
	for {
		var evt explainWSEvent
		if err := conn.ReadJSON(&evt); err != nil {
			return events
		}
		events = append(events, evt)
		if evt.Type == "result" {
			return events
		}
	}
}

func TestExplainWS_ChunksThenResult(t *testing.T) {
	fake := &llm.FakeClient{Reply: validModelReply}
	h := newTestHandler(t, fake)
	conn := dialExplainWS(t, h)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"log": "ws line"}`)))
	events := readEvents(t, conn)

	require.Len(t, events, 2)
	assert.Equal(t, "chunk", events[0].Type)
	assert.Equal(t, validModelReply, events[0].Delta)

	assert.Equal(t, "result", events[1].Type)
	require.NotNil(t, events[1].Envelope)
	assert.Equal(t, explain.StatusOK, events[1].Envelope.Status)
}

func TestExplainWS_BadRequestGetsErrorEnvelope(t *testing.T) {
	h := newTestHandler(t, llm.NewFakeClient())
	conn := dialExplainWS(t, h)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"context": {}}`)))
	events := readEvents(t, conn)

	require.Len(t, events, 1)
	assert.Equal(t, "result", events[0].Type)
	require.NotNil(t, events[0].Envelope)
	assert.Equal(t, explain.StatusError, events[0].Envelope.Status)
}

func TestExplainWS_UpstreamFailure(t *testing.T) {
	fake := &llm.FakeClient{Err: errors.New("upstream timeout")}
	h := newTestHandler(t, fake)
	conn := dialExplainWS(t, h)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"log": "x"}`)))
	events := readEvents(t, conn)

	require.Len(t, events, 1)
	require.NotNil(t, events[0].Envelope)
	assert.Equal(t, explain.StatusError, events[0].Envelope.Status)
}
