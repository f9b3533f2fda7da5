package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go_vidpost/internal/engine"
	"gopkg.in/yaml.v3"
)

// configBlob is the --config payload. JSON is valid YAML, so one decoder serves both.
type configBlob struct {
	OpenAIAPIKey  string `yaml:"OPENAI_API_KEY"`
	YouTubeAPIKey string `yaml:"YOUTUBE_API_KEY"`
	LLMProvider   string `yaml:"LLM_PROVIDER"`
	LLMModel      string `yaml:"LLM_MODEL"`
	LLMAPIBase    string `yaml:"LLM_API_BASE"`
}

func parseConfigBlob(blob string) (configBlob, error) {
	var c configBlob
	if strings.TrimSpace(blob) == "" {
		return c, nil
	}
	if err := yaml.Unmarshal([]byte(blob), &c); err != nil {
		return configBlob{}, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

// settings is everything main needs, resolved from env, .env and flags.
type settings struct {
	Engine        engine.Config
	Tracing       engine.TracingConfig
	CompletionKey string
	TranscriptKey string
	Transport     string
	Port          string
	LogLevel      string
	LogFormat     string
}

// loadSettings reads the environment, then lets the config blob override it.
// A malformed blob is logged and ignored.
func loadSettings(blob string) settings {
	s := settings{
		Engine: engine.Config{
			LLMProvider:    env.Str("LLM_PROVIDER", engine.ProviderOpenAI),
			LLMAPIBase:     env.Str("LLM_API_BASE", "https://api.openai.com/v1"),
			LLMModel:       env.Str("LLM_MODEL", "gpt-3.5-turbo"),
			LLMTimeout:     env.Duration("LLM_TIMEOUT", 0),
			FetchTimeout:   env.Duration("FETCH_TIMEOUT", 0),
			YouTubeAPIBase: env.Str("YOUTUBE_API_BASE", "https://www.googleapis.com/youtube/v3"),
			YouTubeLangs:   env.List("YOUTUBE_LANGS", "en"),
			HTTPClient: &http.Client{
				Transport: &http.Transport{
					MaxIdleConns:        20,
					MaxIdleConnsPerHost: 10,
					IdleConnTimeout:     60 * time.Second,
				},
			},
		},
		Tracing: engine.TracingConfig{
			Endpoint:    env.Str("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Insecure:    env.Str("OTEL_INSECURE", "false") == "true",
			SampleRate:  env.Float("OTEL_SAMPLE_RATE", 1.0),
			ServiceName: "go_vidpost",
		},
		CompletionKey: env.Str("OPENAI_API_KEY", ""),
		TranscriptKey: env.Str("YOUTUBE_API_KEY", ""),
		Transport:     env.Str("MCP_TRANSPORT", "stdio"),
		Port:          env.Str("MCP_PORT", "8893"),
		LogLevel:      env.Str("LOG_LEVEL", "info"),
		LogFormat:     env.Str("LOG_FORMAT", "text"),
	}

	c, err := parseConfigBlob(blob)
	if err != nil {
		slog.Error("ignoring --config", slog.Any("error", err))
		return s
	}
	if c.OpenAIAPIKey != "" {
		s.CompletionKey = c.OpenAIAPIKey
	}
	if c.YouTubeAPIKey != "" {
		s.TranscriptKey = c.YouTubeAPIKey
	}
	if c.LLMProvider != "" {
		s.Engine.LLMProvider = c.LLMProvider
	}
	if c.LLMModel != "" {
		s.Engine.LLMModel = c.LLMModel
	}
	if c.LLMAPIBase != "" {
		s.Engine.LLMAPIBase = c.LLMAPIBase
	}
	return s
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger builds the process logger. Output must not go to stdout,
// which carries the stdio MCP stream.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
