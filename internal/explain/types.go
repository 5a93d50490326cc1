package explain

// ExplainRequest is the validated body of POST /explain-log. It lives for
// the duration of one request; nothing about it is persisted.
type ExplainRequest struct {
	Log     string         `json:"log"`
	Context map[string]any `json:"context,omitempty"`
}

// Result is the normalized explanation contract. Severity is free text,
// conventionally one of ERROR/WARN/INFO. Component and Severity are null
// when the model did not supply them. Debug is present only on degraded
// parses.
type Result struct {
	Summary            string   `json:"summary"`
	Severity           *string  `json:"severity"`
	Component          *string  `json:"component"`
	ProbableCauses     []string `json:"probable_causes"`
	RecommendedActions []string `json:"recommended_actions"`
	RawLog             string   `json:"raw_log"`
	Debug              string   `json:"_debug,omitempty"`
}

// Degraded reports whether the result was produced by fallback heuristics
// rather than a clean parse of the model reply.
func (r Result) Degraded() bool { return r.Debug != "" }

const (
	StatusOK    = "OK"
	StatusError = "ERROR"
)

// Envelope wraps every API response. Result holds a Result value when the
// status is OK and a plain error message when the status is ERROR.
type Envelope struct {
	Status string `json:"status"`
	Result any    `json:"result"`
}

func OKEnvelope(result Result) Envelope {
	return Envelope{Status: StatusOK, Result: result}
}

func ErrorEnvelope(message string) Envelope {
	return Envelope{Status: StatusError, Result: message}
}
