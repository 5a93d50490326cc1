package llm

import (
	"context"
	"sync"
)

const fakeReply = `{
  "summary": "Fake explanation for offline use.",
  "severity": "INFO",
  "component": null,
  "probable_causes": [],
  "recommended_actions": []
}`

// FakeClient returns a deterministic canned reply for offline runs and tests.
// Reply and Err override the canned behavior when set.
type FakeClient struct {
	Reply string
	Err   error

	mu    sync.Mutex
	calls int
}

func NewFakeClient() *FakeClient { return &FakeClient{} }

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

// Calls reports how many times Generate/GenerateStream ran.
func (f *FakeClient) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *FakeClient) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.Err != nil {
		return "", f.Err
	}
	if f.Reply != "" {
		return f.Reply, nil
	}
	return fakeReply, nil
}

func (f *FakeClient) GenerateStream(ctx context.Context, prompt string, onChunk func(chunk string)) (string, error) {
	text, err := f.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if onChunk != nil && text != "" {
		onChunk(text)
	}
	return text, nil
}
