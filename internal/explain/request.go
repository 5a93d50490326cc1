package explain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrMissingLog     = errors.New("missing 'log' field in JSON body")
	ErrBadLogType     = errors.New("'log' must be a non-empty string")
	ErrBadContextType = errors.New("'context' must be a JSON object")
)

// ParseRequest decodes and validates an explain-log request body.
// It rejects a missing/empty/non-string log and a context that is present
// but not a JSON object. A missing context is always fine.
func ParseRequest(body []byte) (ExplainRequest, error) {
	var raw struct {
		Log     json.RawMessage `json:"log"`
		Context json.RawMessage `json:"context"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return ExplainRequest{}, fmt.Errorf("invalid JSON body: %w", err)
	}

	if len(raw.Log) == 0 || bytes.Equal(raw.Log, []byte("null")) {
		return ExplainRequest{}, ErrMissingLog
	}
	var logLine string
	if err := json.Unmarshal(raw.Log, &logLine); err != nil {
		return ExplainRequest{}, ErrBadLogType
	}
	if logLine == "" {
		return ExplainRequest{}, ErrBadLogType
	}

	req := ExplainRequest{Log: logLine}
	if len(raw.Context) > 0 && !bytes.Equal(raw.Context, []byte("null")) {
		var ctx map[string]any
		if err := json.Unmarshal(raw.Context, &ctx); err != nil {
			return ExplainRequest{}, ErrBadContextType
		}
		req.Context = ctx
	}
	return req, nil
}
