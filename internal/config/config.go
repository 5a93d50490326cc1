package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	LLM        LLMConfig
	Transcript TranscriptConfig
}

type LLMConfig struct {
	Provider  string
	Model     string
	Timeout   time.Duration
	RPS       float64
	Burst     int
	CacheSize int
}

type TranscriptConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8080", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:       *port,
		Env:        env,
		LLM:        loadLLMConfig(),
		Transcript: loadTranscriptConfig(env),
	}, nil
}

func loadLLMConfig() LLMConfig {
	timeout := 60 * time.Second
	if raw := strings.TrimSpace(os.Getenv("LLM_TIMEOUT_SECONDS")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}
	rps := 0.0
	if raw := strings.TrimSpace(os.Getenv("LLM_RPS")); raw != "" {
		rps, _ = strconv.ParseFloat(raw, 64)
	}
	burst := 0
	if raw := strings.TrimSpace(os.Getenv("LLM_BURST")); raw != "" {
		burst, _ = strconv.Atoi(raw)
	}
	cacheSize := 0
	if raw := strings.TrimSpace(os.Getenv("EXPLAIN_CACHE_SIZE")); raw != "" {
		cacheSize, _ = strconv.Atoi(raw)
	}
	return LLMConfig{
		Provider:  strings.TrimSpace(os.Getenv("LLM_PROVIDER")),
		Model:     strings.TrimSpace(os.Getenv("LLM_MODEL")),
		Timeout:   timeout,
		RPS:       rps,
		Burst:     burst,
		CacheSize: cacheSize,
	}
}

func loadTranscriptConfig(env string) TranscriptConfig {
	endpoint := resolveTranscriptEndpoint(env)
	return TranscriptConfig{
		Enabled:   endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("TRANSCRIPT_S3_REGION")), "us-east-1"),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("TRANSCRIPT_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("TRANSCRIPT_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("TRANSCRIPT_S3_BUCKET")), "loglens-transcripts"),
		UseSSL:    resolveTranscriptUseSSL(env),
	}
}

func resolveTranscriptEndpoint(env string) string {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return strings.TrimSpace(os.Getenv("TRANSCRIPT_MINIO_ENDPOINT"))
	}
	return strings.TrimSpace(os.Getenv("TRANSCRIPT_S3_ENDPOINT"))
}

func resolveTranscriptUseSSL(env string) bool {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return false
	}
	raw := strings.TrimSpace(os.Getenv("TRANSCRIPT_S3_USE_SSL"))
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
