package transcript

import (
	"context"
	"errors"
)

// Store keeps the raw prompt/reply pair of a model call, keyed by request ID
// and file name. Used for after-the-fact debugging of degraded parses.
type Store interface {
	Put(ctx context.Context, requestID, name string, content []byte) error
	Get(ctx context.Context, requestID, name string) ([]byte, error)
	List(ctx context.Context, requestID string) ([]string, error)
}

var ErrNotFound = errors.New("transcript not found")
