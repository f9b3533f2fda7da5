package postserver

import (
	"context"
	"log/slog"

	"github.com/anatolykoptev/go_vidpost/internal/engine"
	"github.com/anatolykoptev/go_vidpost/internal/engine/writer"
)

const (
	transcriptPreviewRunes = 300
	fallbackVideoTitle     = "YouTube Video"
)

func (d *Dispatcher) videoToPostTool() Tool {
	return newTool(d, "video_to_post",
		"Turn a YouTube video URL into a post draft: extract the transcript, summarize it, then write the post.",
		true,
		func(in *engine.VideoToPostInput) error {
			if err := required("videoUrl", in.VideoURL); err != nil {
				return err
			}
			if err := oneOf("tone", &in.Tone, engine.PostToneFirstPerson, engine.PostTones); err != nil {
				return err
			}
			if err := oneOf("summaryTone", &in.SummaryTone, engine.ToneProfessional, engine.SummaryTones); err != nil {
				return err
			}
			return oneOf("audience", &in.Audience, engine.AudienceGeneral, engine.Audiences)
		},
		func(ctx context.Context, in engine.VideoToPostInput) (map[string]any, error) {
			key, err := d.completionKey()
			if err != nil {
				return nil, err
			}

			t, err := d.fetcher.Fetch(ctx, in.VideoURL, d.transcriptKey())
			if err != nil {
				return nil, err
			}

			title, err := writer.VideoTitle(in.VideoURL)
			if err != nil {
				slog.Warn("video title lookup failed, using placeholder",
					slog.String("url", in.VideoURL), slog.Any("error", err))
				title = fallbackVideoTitle
			}

			summary, err := d.writer.Summarize(ctx, key, writer.SummaryRequest{
				Transcript: t.Text,
				Tone:       in.SummaryTone,
				Audience:   in.Audience,
				WordCount:  engine.DefaultWordCount,
			})
			if err != nil {
				return nil, err
			}

			// Speaker is unknown without a metadata lookup.
			post, err := d.writer.GeneratePost(ctx, key, writer.PostRequest{
				Summary:             summary,
				VideoTitle:          title,
				Hashtags:            in.Hashtags,
				Tone:                in.Tone,
				IncludeCallToAction: boolOr(in.IncludeCallToAction, true),
			})
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"videoTitle": title,
				"transcript": engine.Preview(t.Text, transcriptPreviewRunes),
				"summary":    summary,
				"post":       post,
			}, nil
		})
}
