package history

import (
	"context"
	"os"
	"strings"
	"time"
)

// Record is one explanation served by the API, kept for the recent-history
// endpoint. It deliberately stores the outcome, not the full result: the
// explain contract itself stays per-request.
type Record struct {
	ID        string    `json:"id"`
	RawLog    string    `json:"raw_log"`
	Summary   string    `json:"summary"`
	Severity  string    `json:"severity,omitempty"`
	Degraded  bool      `json:"degraded"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists explanation records. Append failures are treated as
// best-effort by callers and never surface to the API client.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Recent(ctx context.Context, limit int) ([]Record, error)
}

// NewFromEnv returns a Postgres-backed store when HISTORY_PG_DSN is set and
// reachable, and an in-memory store otherwise.
func NewFromEnv() Store {
	dsn := strings.TrimSpace(os.Getenv("HISTORY_PG_DSN"))
	if dsn == "" {
		return NewMemoryStore(0)
	}
	s, err := NewPostgresStore(dsn)
	if err != nil {
		return NewMemoryStore(0)
	}
	return s
}
