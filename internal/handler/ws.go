package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"loglens/internal/explain"
)

const (
	explainWSWriteWait = 10 * time.Second
	explainWSReadWait  = 60 * time.Second
)

var explainWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type explainWSEvent struct {
	Type     string            `json:"type"` // "chunk" | "result"
	Delta    string            `json:"delta,omitempty"`
	Envelope *explain.Envelope `json:"envelope,omitempty"`
}

// HandleExplainWS serves GET /explain-log/ws. The client sends one
// {log, context} message; the server streams chunk events followed by a
// result event carrying the same envelope POST /explain-log would return.
func (h *Handler) HandleExplainWS(w http.ResponseWriter, r *http.Request) {
	conn, err := explainWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	if err := conn.SetReadDeadline(time.Now().Add(explainWSReadWait)); err != nil {
		return
	}
	conn.SetReadLimit(maxBodyBytes)
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return
	}

	req, err := explain.ParseRequest(msg)
	if err != nil {
		env := explain.ErrorEnvelope(err.Error())
		writeExplainWS(conn, explainWSEvent{Type: "result", Envelope: &env})
		return
	}

	// Chunks are emitted synchronously from inside the stream call, so a
	// single writer suffices.
	res, err := h.svc.ExplainStream(r.Context(), req, func(chunk string) {
		writeExplainWS(conn, explainWSEvent{Type: "chunk", Delta: chunk})
	})
	if err != nil {
		env := explain.ErrorEnvelope(err.Error())
		writeExplainWS(conn, explainWSEvent{Type: "result", Envelope: &env})
		return
	}

	env := explain.OKEnvelope(res)
	writeExplainWS(conn, explainWSEvent{Type: "result", Envelope: &env})
}

func writeExplainWS(conn *websocket.Conn, evt explainWSEvent) {
	if err := conn.SetWriteDeadline(time.Now().Add(explainWSWriteWait)); err != nil {
		return
	}
	_ = conn.WriteJSON(evt)
}
