package writer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_vidpost/internal/engine"
)

// PostRequest describes one post.
type PostRequest struct {
	Summary             string
	VideoTitle          string
	SpeakerName         string
	Hashtags            []string
	Tone                string
	IncludeCallToAction bool
}

// NormalizeHashtags prefixes each tag with # and joins them with spaces.
// Tags that are blank once a leading # is removed are dropped.
func NormalizeHashtags(tags []string) string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(t), "#"))
		if t == "" {
			continue
		}
		out = append(out, "#"+t)
	}
	return strings.Join(out, " ")
}

func buildPostPrompts(r PostRequest, hashtagLine string) (system, user string) {
	cta := ""
	if r.IncludeCallToAction {
		cta = engine.PostCallToActionLine
	}
	speaker := ""
	if name := strings.TrimSpace(r.SpeakerName); name != "" {
		speaker = " by " + name
	}
	suggested := ""
	if hashtagLine != "" {
		suggested = "\nSuggested hashtags: " + hashtagLine + "\n"
	}
	system = fmt.Sprintf(engine.PostSystemPrompt, r.Tone, cta)
	user = fmt.Sprintf(engine.PostUserPrompt, r.VideoTitle, speaker, r.Summary, suggested)
	return system, user
}

// GeneratePost writes a social post from a summary. When hashtags are given and
// the model left them out, the hashtag line is appended as its own paragraph.
func (w *Writer) GeneratePost(ctx context.Context, apiKey string, r PostRequest) (string, error) {
	if err := requireKey(apiKey); err != nil {
		return "", err
	}
	if strings.TrimSpace(r.Summary) == "" {
		return "", engine.Errorf(engine.KindEmptyInput, "empty summary provided")
	}

	slog.Info("generating post", slog.String("tone", r.Tone), slog.Bool("cta", r.IncludeCallToAction))

	hashtagLine := NormalizeHashtags(r.Hashtags)
	system, user := buildPostPrompts(r, hashtagLine)
	post, err := w.complete(ctx, "generate_post", apiKey, engine.CompletionRequest{
		System:      system,
		User:        user,
		Temperature: postTemperature,
		MaxTokens:   postMaxTokens,
	}, engine.KindPostGenerationFailed, "failed to generate post")
	if err != nil {
		return "", err
	}

	if hashtagLine != "" && !strings.Contains(post, hashtagLine) {
		post += "\n\n" + hashtagLine
	}
	return post, nil
}
