package explain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"loglens/internal/history"
	"loglens/internal/jsonutil"
	"loglens/internal/llm"
	"loglens/internal/transcript"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultCacheSize = 256

	recordTimeout = 5 * time.Second
)

type ServiceConfig struct {
	Client    llm.Client
	Timeout   time.Duration
	CacheSize int

	// Optional. History keeps recent outcomes for GET /explanations;
	// Transcripts keeps raw prompt/reply pairs for debugging. Both are
	// best-effort and never fail a request.
	History     history.Store
	Transcripts transcript.Store
}

// Service runs the explain flow: build prompt, call the model once, and
// normalize whatever comes back. Identical requests are answered from an
// LRU cache without a model call; degraded results are never cached.
type Service struct {
	client      llm.Client
	timeout     time.Duration
	cache       *lru.Cache[string, Result]
	history     history.Store
	transcripts transcript.Store
}

func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("explain: llm client is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, Result](cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	return &Service{
		client:      cfg.Client,
		timeout:     cfg.Timeout,
		cache:       cache,
		history:     cfg.History,
		transcripts: cfg.Transcripts,
	}, nil
}

func (s *Service) Close() error { return s.client.Close() }

// Explain runs one request end to end. The returned error covers only the
// upstream call; unparsable model output comes back as a degraded Result.
func (s *Service) Explain(ctx context.Context, req ExplainRequest) (Result, error) {
	return s.explain(ctx, req, nil)
}

// ExplainStream is Explain with reply chunks forwarded to onChunk as they
// arrive. A cache hit emits no chunks.
func (s *Service) ExplainStream(ctx context.Context, req ExplainRequest, onChunk func(chunk string)) (Result, error) {
	return s.explain(ctx, req, onChunk)
}

func (s *Service) explain(ctx context.Context, req ExplainRequest, onChunk func(chunk string)) (Result, error) {
	key := cacheKey(req)
	if res, ok := s.cache.Get(key); ok {
		return res, nil
	}

	prompt := BuildPrompt(req.Log, req.Context)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var rawText string
	var err error
	if onChunk != nil {
		rawText, err = s.client.GenerateStream(callCtx, prompt, onChunk)
	} else {
		rawText, err = s.client.Generate(callCtx, prompt)
	}
	if err != nil {
		return Result{}, fmt.Errorf("model API error: %w", err)
	}

	res := Normalize(rawText, req.Log)
	s.record(uuid.NewString(), prompt, rawText, res)
	if !res.Degraded() {
		s.cache.Add(key, res)
	}
	return res, nil
}

// record persists the outcome and raw transcript. Detached from the request
// context so a client disconnect does not lose the record.
func (s *Service) record(requestID, prompt, rawText string, res Result) {
	if s.history == nil && s.transcripts == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	if s.history != nil {
		rec := history.Record{
			ID:        requestID,
			RawLog:    res.RawLog,
			Summary:   res.Summary,
			Degraded:  res.Degraded(),
			CreatedAt: time.Now().UTC(),
		}
		if res.Severity != nil {
			rec.Severity = *res.Severity
		}
		if err := s.history.Append(ctx, rec); err != nil {
			log.Printf("history append failed (%s): %v", requestID, err)
		}
	}
	if s.transcripts != nil {
		if err := s.transcripts.Put(ctx, requestID, "prompt.txt", []byte(prompt)); err != nil {
			log.Printf("transcript put failed (%s): %v", requestID, err)
		}
		if err := s.transcripts.Put(ctx, requestID, "reply.txt", []byte(rawText)); err != nil {
			log.Printf("transcript put failed (%s): %v", requestID, err)
		}
	}
}

// cacheKey hashes the log line together with the canonical JSON encoding of
// the context. encoding/json sorts map keys, so the key is deterministic.
func cacheKey(req ExplainRequest) string {
	h := sha256.New()
	h.Write([]byte(req.Log))
	h.Write([]byte{0})
	if len(req.Context) > 0 {
		if b, err := jsonutil.MarshalNoEscape(req.Context); err == nil {
			h.Write(b)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
