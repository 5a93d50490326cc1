package llm

import "context"

// Client is the minimal surface the explain service needs from a model
// provider. It only focuses on the API call itself. Cross-cutting concerns
// (rate limiting, logging) are applied via Middleware.
type Client interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
	GenerateStream(ctx context.Context, prompt string, onChunk func(chunk string)) (string, error)
	Close() error
}

// PermanentError indicates an error that will not resolve by resubmitting
// the same request (e.g. the prompt exceeds the model's context window).
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

func NewPermanentError(err error) error {
	return &PermanentError{Err: err}
}
