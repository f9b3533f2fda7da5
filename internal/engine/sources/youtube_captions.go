package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/anatolykoptev/go_vidpost/internal/engine"
)

// CaptionsAPI is the keyed fallback path through the YouTube Data API v3.
// Listing caption tracks works with an API key, but downloading one requires
// OAuth2, so Transcript always ends in FallbackUnsupported.
type CaptionsAPI struct {
	client *http.Client
	base   string
}

// NewCaptionsAPI builds the fallback from engine configuration.
func NewCaptionsAPI(cfg engine.Config) *CaptionsAPI {
	base := cfg.YouTubeAPIBase
	if base == "" {
		base = engine.DefaultConfig().YouTubeAPIBase
	}
	return &CaptionsAPI{client: cfg.FetchClient(), base: base}
}

type ytCaptionsListResp struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Language  string `json:"language"`
			TrackKind string `json:"trackKind"`
		} `json:"snippet"`
	} `json:"items"`
}

// listCaptions returns the number of caption tracks the Data API reports.
func (c *CaptionsAPI) listCaptions(ctx context.Context, videoID, apiKey string) (int, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("videoId", videoID)
	params.Set("key", apiKey)

	resp, err := get(ctx, c.client, c.base+"/captions?"+params.Encode(), map[string]string{"User-Agent": engine.UserAgentBot})
	if err != nil {
		return 0, fmt.Errorf("youtube data API: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("youtube data API error: %s", http.StatusText(resp.StatusCode))
	}

	var result ytCaptionsListResp
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1024*1024)).Decode(&result); err != nil {
		return 0, fmt.Errorf("decode youtube data API: %w", err)
	}
	return len(result.Items), nil
}

// Transcript always fails with FallbackUnsupported; the message says how far it got.
func (c *CaptionsAPI) Transcript(ctx context.Context, videoID, apiKey string) (string, error) {
	n, err := c.listCaptions(ctx, videoID, apiKey)
	switch {
	case err != nil:
		return "", engine.Wrap(engine.KindFallbackUnsupported, "failed to extract transcript via YouTube API", err)
	case n == 0:
		return "", engine.Errorf(engine.KindFallbackUnsupported, "failed to extract transcript: no captions available for this video")
	default:
		return "", engine.Errorf(engine.KindFallbackUnsupported, "failed to extract transcript: YouTube API fallback requires OAuth2 authentication")
	}
}
