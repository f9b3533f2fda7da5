// Package writer turns transcripts into summaries and summaries into social posts
// through a hosted completion provider.
package writer

import (
	"context"
	"strings"

	"github.com/anatolykoptev/go_vidpost/internal/engine"
)

// Completion parameters for each step.
const (
	MaxTranscriptChars = 15000

	summaryTemperature = 0.7
	summaryMaxTokens   = 500
	postTemperature    = 0.7
	postMaxTokens      = 700
)

// Writer owns the completion backend. API keys are supplied per call.
type Writer struct {
	llm engine.Completer
}

// New returns a Writer using c for completions.
func New(c engine.Completer) *Writer {
	return &Writer{llm: c}
}

// complete runs one request and classifies failures under failKind.
func (w *Writer) complete(ctx context.Context, op string, apiKey string, req engine.CompletionRequest, failKind engine.Kind, failMsg string) (string, error) {
	var out string
	err := engine.TrackOperation(ctx, op, func(ctx context.Context) error {
		resp, err := w.llm.Complete(ctx, apiKey, req)
		out = strings.TrimSpace(resp)
		return err
	})
	if err != nil {
		return "", engine.Wrap(failKind, failMsg, err)
	}
	if out == "" {
		return "", engine.Wrap(engine.KindEmptyResult, failMsg, engine.ErrEmptyResult)
	}
	return out, nil
}

func requireKey(apiKey string) error {
	if strings.TrimSpace(apiKey) == "" {
		return engine.Errorf(engine.KindMissingCredential, "completion-provider credential not provided")
	}
	return nil
}
