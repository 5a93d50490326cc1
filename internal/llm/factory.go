package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Provider identifies a model backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderGroq   Provider = "groq"
	ProviderFake   Provider = "fake"
)

// New creates a Client for the given provider. An empty provider defaults
// to Gemini. API keys are read from the environment (GEMINI_API_KEY,
// GROQ_API_KEY) when not supplied through config.
func New(ctx context.Context, provider Provider, model string) (Client, error) {
	switch Provider(strings.ToLower(string(provider))) {
	case ProviderGemini, "":
		return NewGeminiClient(ctx, os.Getenv("GEMINI_API_KEY"), model)
	case ProviderGroq:
		return NewGroqClient("", model)
	case ProviderFake:
		return NewFakeClient(), nil
	default:
		return nil, fmt.Errorf("llm: unsupported provider %q (supported: gemini, groq, fake)", provider)
	}
}
