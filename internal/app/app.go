package app

import (
	"context"
	"fmt"
	"log"

	"loglens/internal/config"
	"loglens/internal/explain"
	"loglens/internal/handler"
	"loglens/internal/history"
	"loglens/internal/llm"
	"loglens/internal/server"
	"loglens/internal/transcript"
)

type App struct {
	server *server.Server
	svc    *explain.Service
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	client, err := llm.New(ctx, llm.Provider(cfg.LLM.Provider), cfg.LLM.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to init llm client: %w", err)
	}
	client = llm.Wrap(client,
		llm.WithLogging(nil),
		llm.RateLimit(cfg.LLM.RPS, cfg.LLM.Burst),
	)

	histStore := history.NewFromEnv()

	var transStore transcript.Store = transcript.NewMemoryStore()
	if cfg.Transcript.Enabled {
		s3, err := transcript.NewS3Store(transcript.S3Config{
			Endpoint:  cfg.Transcript.Endpoint,
			Region:    cfg.Transcript.Region,
			AccessKey: cfg.Transcript.AccessKey,
			SecretKey: cfg.Transcript.SecretKey,
			Bucket:    cfg.Transcript.Bucket,
			UseSSL:    cfg.Transcript.UseSSL,
		})
		if err != nil {
			log.Printf("transcript s3 store unavailable, using memory store: %v", err)
		} else {
			transStore = s3
		}
	}

	svc, err := explain.NewService(explain.ServiceConfig{
		Client:      client,
		Timeout:     cfg.LLM.Timeout,
		CacheSize:   cfg.LLM.CacheSize,
		History:     histStore,
		Transcripts: transStore,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init explain service: %w", err)
	}

	h := handler.New(svc, histStore, transStore)
	srv := server.New(cfg.Port, server.NewMux(h))

	return &App{server: srv, svc: svc}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	if err := a.server.Shutdown(ctx); err != nil {
		return err
	}
	return a.svc.Close()
}
