package engine

import (
	"net/http"
	"time"
)

// LLM backend identifiers accepted by Config.LLMProvider.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config holds engine configuration, built in main and handed to constructors.
type Config struct {
	LLMProvider    string // openai (any OpenAI-compatible API) or anthropic
	LLMAPIBase     string
	LLMModel       string
	LLMTimeout     time.Duration // 0 = no timeout
	FetchTimeout   time.Duration // 0 = no timeout
	YouTubeAPIBase string        // Data API v3 root, overridable for tests
	YouTubeLangs   []string
	HTTPClient     *http.Client
}

// DefaultConfig returns the values used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		LLMProvider:    ProviderOpenAI,
		LLMAPIBase:     "https://api.openai.com/v1",
		LLMModel:       "gpt-3.5-turbo",
		YouTubeAPIBase: "https://www.googleapis.com/youtube/v3",
		YouTubeLangs:   []string{"en"},
		HTTPClient:     http.DefaultClient,
	}
}

// FetchClient returns the HTTP client used for transcript scraping.
func (c Config) FetchClient() *http.Client {
	if c.HTTPClient == nil {
		return &http.Client{Timeout: c.FetchTimeout}
	}
	if c.FetchTimeout > 0 && c.HTTPClient.Timeout == 0 {
		hc := *c.HTTPClient
		hc.Timeout = c.FetchTimeout
		return &hc
	}
	return c.HTTPClient
}
