package sources

import (
	"context"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_vidpost/internal/engine"
)

// Transcript is the whitespace-normalized caption text of one video.
type Transcript struct {
	VideoID string
	Text    string
}

// FallbackSource fetches a transcript with a transcript-provider key.
type FallbackSource interface {
	Transcript(ctx context.Context, videoID, apiKey string) (string, error)
}

// Fetcher maps a video URL to transcript text.
type Fetcher struct {
	primary  SegmentSource
	fallback FallbackSource
	metrics  *engine.Metrics
}

// NewFetcher wires the given sources. Either may be replaced in tests.
func NewFetcher(primary SegmentSource, fallback FallbackSource, m *engine.Metrics) *Fetcher {
	return &Fetcher{primary: primary, fallback: fallback, metrics: m}
}

// NewYouTubeFetcher builds the production fetcher.
func NewYouTubeFetcher(cfg engine.Config, m *engine.Metrics) *Fetcher {
	return NewFetcher(NewYouTubeScraper(cfg), NewCaptionsAPI(cfg), m)
}

// JoinSegments joins segment texts with spaces and collapses whitespace.
func JoinSegments(segs []Segment) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.Text
	}
	return strings.TrimSpace(engine.CollapseSpaces(strings.Join(parts, " ")))
}

// Fetch extracts the transcript for rawURL. fallbackKey may be empty.
func (f *Fetcher) Fetch(ctx context.Context, rawURL, fallbackKey string) (*Transcript, error) {
	slog.Info("extracting transcript", slog.String("url", rawURL))

	videoID, err := ExtractVideoID(rawURL)
	if err != nil {
		return nil, err
	}

	text, perr := f.primaryText(ctx, videoID)
	if perr == nil {
		return &Transcript{VideoID: videoID, Text: text}, nil
	}
	slog.Warn("primary transcript path failed", slog.String("id", videoID), slog.Any("error", perr))

	if fallbackKey == "" || f.fallback == nil {
		return nil, engine.Wrap(engine.KindTranscriptExtractionFailed, "failed to extract transcript", perr)
	}

	// CaptionsAPI never succeeds; other fallbacks may.
	text, ferr := f.fallback.Transcript(ctx, videoID, fallbackKey)
	f.metrics.ObserveTranscript("fallback", ferr)
	if ferr != nil {
		return nil, ferr
	}
	return &Transcript{VideoID: videoID, Text: engine.CollapseSpaces(text)}, nil
}

func (f *Fetcher) primaryText(ctx context.Context, videoID string) (string, error) {
	segs, err := f.primary.Segments(ctx, videoID)
	if err == nil && len(segs) == 0 {
		err = engine.Errorf(engine.KindNoTranscript, "no transcript available")
	}
	f.metrics.ObserveTranscript("primary", err)
	if err != nil {
		return "", err
	}
	text := JoinSegments(segs)
	if strings.TrimSpace(text) == "" {
		return "", engine.Errorf(engine.KindNoTranscript, "no transcript available")
	}
	return text, nil
}
