package llm

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tagging struct {
	Client
	tag string
}

func (t *tagging) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := t.Client.Generate(ctx, prompt)
	return text + t.tag, err
}

func tagMW(tag string) Middleware {
	return func(next Client) Client {
		return &tagging{Client: next, tag: tag}
	}
}

func TestWrap_LeftToRightOrder(t *testing.T) {
	inner := &FakeClient{Reply: "base"}
	c := Wrap(inner, tagMW("+outer"), tagMW("+inner"))

	text, err := c.Generate(context.Background(), "p")
	require.NoError(t, err)
	// Wrap(inner, A, B) = A(B(inner)): B's tag lands first.
	assert.Equal(t, "base+inner+outer", text)
}

func TestWrap_NoMiddlewares(t *testing.T) {
	inner := &FakeClient{Reply: "base"}
	c := Wrap(inner)
	text, err := c.Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "base", text)
}

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	inner := &FakeClient{Reply: "ok"}
	c := Wrap(inner, RateLimit(0, 0))

	for i := 0; i < 5; i++ {
		text, err := c.Generate(context.Background(), "p")
		require.NoError(t, err)
		assert.Equal(t, "ok", text)
	}
	assert.Equal(t, 5, inner.Calls())
}

func TestRateLimit_CancelledContext(t *testing.T) {
	inner := &FakeClient{Reply: "ok"}
	c := Wrap(inner, RateLimit(0.001, 1))

	// First call consumes the only token.
	_, err := c.Generate(context.Background(), "p")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Generate(ctx, "p")
	require.Error(t, err)
	assert.Equal(t, 1, inner.Calls())
}

func TestWithLogging_DelegatesAndLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	inner := &FakeClient{Reply: "ok"}
	c := Wrap(inner, WithLogging(logger))

	text, err := c.Generate(context.Background(), "prompt here")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Contains(t, buf.String(), "FakeLLM")
	assert.Equal(t, "FakeLLM", c.Name())
}

func TestNew_FakeProvider(t *testing.T) {
	c, err := New(context.Background(), ProviderFake, "")
	require.NoError(t, err)
	assert.Equal(t, "FakeLLM", c.Name())
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(context.Background(), "watson", "")
	require.Error(t, err)
}
