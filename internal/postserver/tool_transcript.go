package postserver

import (
	"context"

	"github.com/anatolykoptev/go_vidpost/internal/engine"
)

func (d *Dispatcher) extractTranscriptTool() Tool {
	return newTool(d, "extract_transcript",
		"Extract the caption transcript of a YouTube video as a single whitespace-normalized string.",
		true,
		func(in *engine.ExtractTranscriptInput) error {
			return required("videoUrl", in.VideoURL)
		},
		func(ctx context.Context, in engine.ExtractTranscriptInput) (map[string]any, error) {
			t, err := d.fetcher.Fetch(ctx, in.VideoURL, d.transcriptKey())
			if err != nil {
				return nil, err
			}
			return map[string]any{
				"videoId":    t.VideoID,
				"transcript": t.Text,
			}, nil
		})
}
