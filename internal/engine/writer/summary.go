package writer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/anatolykoptev/go_vidpost/internal/engine"
)

// SummaryRequest describes one summarization.
type SummaryRequest struct {
	Transcript string
	Tone       string
	Audience   string
	WordCount  int
}

// Summarize condenses a transcript. Transcripts longer than MaxTranscriptChars
// are cut at a sentence boundary first.
func (w *Writer) Summarize(ctx context.Context, apiKey string, r SummaryRequest) (string, error) {
	if err := requireKey(apiKey); err != nil {
		return "", err
	}
	if strings.TrimSpace(r.Transcript) == "" {
		return "", engine.Errorf(engine.KindEmptyInput, "empty transcript provided")
	}

	slog.Info("summarizing transcript",
		slog.Int("chars", utf8.RuneCountInString(r.Transcript)),
		slog.String("tone", r.Tone),
		slog.String("audience", r.Audience),
	)

	req := engine.CompletionRequest{
		System:      fmt.Sprintf(engine.SummarySystemPrompt, r.Tone, r.Audience, r.WordCount),
		User:        fmt.Sprintf(engine.SummaryUserPrompt, engine.TruncateAtSentence(r.Transcript, MaxTranscriptChars)),
		Temperature: summaryTemperature,
		MaxTokens:   summaryMaxTokens,
	}
	return w.complete(ctx, "summarize", apiKey, req, engine.KindSummarizationFailed, "failed to summarize transcript")
}
