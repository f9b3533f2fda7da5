package postserver

import (
	"context"

	"github.com/anatolykoptev/go_vidpost/internal/engine"
	"github.com/anatolykoptev/go_vidpost/internal/engine/writer"
)

func (d *Dispatcher) summarizeTool() Tool {
	return newTool(d, "summarize_transcript",
		"Summarize a video transcript for a given tone, audience and approximate word count.",
		true,
		func(in *engine.SummarizeInput) error {
			if err := oneOf("tone", &in.Tone, engine.ToneProfessional, engine.SummaryTones); err != nil {
				return err
			}
			if err := oneOf("audience", &in.Audience, engine.AudienceGeneral, engine.Audiences); err != nil {
				return err
			}
			n, err := wordCount(in.WordCount)
			if err != nil {
				return err
			}
			in.WordCount = &n
			return nil
		},
		func(ctx context.Context, in engine.SummarizeInput) (map[string]any, error) {
			key, err := d.completionKey()
			if err != nil {
				return nil, err
			}
			summary, err := d.writer.Summarize(ctx, key, writer.SummaryRequest{
				Transcript: in.Transcript,
				Tone:       in.Tone,
				Audience:   in.Audience,
				WordCount:  *in.WordCount,
			})
			if err != nil {
				return nil, err
			}
			return map[string]any{"summary": summary}, nil
		})
}
