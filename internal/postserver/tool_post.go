package postserver

import (
	"context"

	"github.com/anatolykoptev/go_vidpost/internal/engine"
	"github.com/anatolykoptev/go_vidpost/internal/engine/writer"
)

func (d *Dispatcher) generatePostTool() Tool {
	return newTool(d, "generate_post",
		"Draft a professional social post from a video summary, with optional speaker, hashtags and call to action.",
		true,
		func(in *engine.GeneratePostInput) error {
			if err := required("videoTitle", in.VideoTitle); err != nil {
				return err
			}
			return oneOf("tone", &in.Tone, engine.PostToneFirstPerson, engine.PostTones)
		},
		func(ctx context.Context, in engine.GeneratePostInput) (map[string]any, error) {
			key, err := d.completionKey()
			if err != nil {
				return nil, err
			}
			post, err := d.writer.GeneratePost(ctx, key, writer.PostRequest{
				Summary:             in.Summary,
				VideoTitle:          in.VideoTitle,
				SpeakerName:         in.SpeakerName,
				Hashtags:            in.Hashtags,
				Tone:                in.Tone,
				IncludeCallToAction: boolOr(in.IncludeCallToAction, true),
			})
			if err != nil {
				return nil, err
			}
			return map[string]any{"post": post}, nil
		})
}
