package engine

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/aktagon/llmkit/anthropic"
	"github.com/aktagon/llmkit/anthropic/types"
	"github.com/anatolykoptev/go-kit/llm"
)

// CompletionRequest is one system + user exchange.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Completer sends a completion request using the caller's API key.
// An empty string with a nil error means the provider returned no choices.
// Implementations must not cache the key.
type Completer interface {
	Complete(ctx context.Context, apiKey string, req CompletionRequest) (string, error)
}

// NewCompleter returns the backend named by cfg.LLMProvider.
func NewCompleter(cfg Config, m *Metrics) (Completer, error) {
	switch strings.ToLower(cfg.LLMProvider) {
	case "", ProviderOpenAI:
		return &openAICompleter{
			base:    cfg.LLMAPIBase,
			model:   cfg.LLMModel,
			client:  &http.Client{Timeout: cfg.LLMTimeout},
			metrics: m,
		}, nil
	case ProviderAnthropic:
		model := cfg.LLMModel
		if model == "" || strings.HasPrefix(model, "gpt-") {
			model = "claude-3-5-haiku-latest"
		}
		return &anthropicCompleter{model: model, metrics: m}, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```markdown")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// openAICompleter talks to any OpenAI-compatible chat completions API.
type openAICompleter struct {
	base    string
	model   string
	client  *http.Client
	metrics *Metrics
}

func (c *openAICompleter) Complete(ctx context.Context, apiKey string, req CompletionRequest) (string, error) {
	client := llm.NewClient(c.base, apiKey, c.model,
		llm.WithHTTPClient(c.client),
		llm.WithMaxTokens(req.MaxTokens),
		llm.WithTemperature(req.Temperature),
	)
	resp, err := client.Complete(ctx, req.System, req.User,
		llm.WithChatTemperature(req.Temperature),
		llm.WithChatMaxTokens(req.MaxTokens),
	)
	c.metrics.ObserveLLM(ProviderOpenAI, err)
	if err != nil {
		return "", err
	}
	return stripFences(resp), nil
}

// anthropicCompleter uses the Anthropic Messages API through llmkit.
type anthropicCompleter struct {
	model   string
	metrics *Metrics
}

func (c *anthropicCompleter) Complete(ctx context.Context, apiKey string, req CompletionRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	settings := types.RequestSettings{
		Model:       c.model,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	resp, err := anthropic.PromptWithSettings(req.System, req.User, "", apiKey, settings)
	c.metrics.ObserveLLM(ProviderAnthropic, err)
	if err != nil {
		return "", err
	}
	if len(resp.Content) == 0 {
		return "", nil
	}
	return stripFences(resp.Content[0].Text), nil
}
