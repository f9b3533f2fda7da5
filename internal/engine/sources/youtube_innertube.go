package sources

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/anatolykoptev/go_vidpost/internal/engine"
)

// YouTube Innertube API: low-level constants, types and HTTP primitives.

const (
	ytWatchURL       = "https://www.youtube.com/watch"
	ytInnertubeURL   = "https://www.youtube.com/youtubei/v1/player"
	ytAndroidVersion = "20.10.38"
	ytAndroidUA      = "com.google.android.youtube/" + ytAndroidVersion + " (Linux; U; Android 11) gzip"
)

// --- ANDROID client types (/player endpoint) ---

type innertubeReq struct {
	VideoID        string       `json:"videoId"`
	Context        innertubeCtx `json:"context"`
	RacyCheckOk    bool         `json:"racyCheckOk"`
	ContentCheckOk bool         `json:"contentCheckOk"`
}

type innertubeCtx struct {
	Client innertubeClient `json:"client"`
}

type innertubeClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
	Hl                string `json:"hl,omitempty"`
	Gl                string `json:"gl,omitempty"`
}

type innertubePlayerResp struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

// tracks returns caption tracks or an error naming why there are none.
func (p innertubePlayerResp) tracks() ([]captionTrack, error) {
	if p.Captions == nil {
		if p.PlayabilityStatus != nil && p.PlayabilityStatus.Reason != "" {
			return nil, fmt.Errorf("captions unavailable: %s", p.PlayabilityStatus.Reason)
		}
		return nil, fmt.Errorf("no captions in player response")
	}
	t := p.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(t) == 0 {
		return nil, fmt.Errorf("no caption tracks")
	}
	return t, nil
}

// --- Timedtext XML types ---

// ytTimedText covers both the legacy <transcript><text> layout and
// format 3 (<timedtext><body><p>).
type ytTimedText struct {
	Lines      []ytLine `xml:"text"`
	Paragraphs []ytLine `xml:"body>p"`
}

type ytLine struct {
	Text string `xml:",innerxml"`
}

// parseTimedText converts a timedtext document into ordered segments.
func parseTimedText(body []byte) ([]Segment, error) {
	var tt ytTimedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}
	lines := tt.Lines
	if len(lines) == 0 {
		lines = tt.Paragraphs
	}
	segs := make([]Segment, 0, len(lines))
	for _, line := range lines {
		// Caption text is entity-encoded twice: once by XML, once by YouTube.
		text := strings.TrimSpace(html.UnescapeString(html.UnescapeString(engine.CleanHTML(line.Text))))
		if text != "" {
			segs = append(segs, Segment{Text: text})
		}
	}
	return segs, nil
}

// readOK returns the body of a 200 response, capped at limit bytes.
func readOK(resp *http.Response, limit int64) ([]byte, error) {
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return io.ReadAll(io.LimitReader(resp.Body, limit))
}

// get performs a GET with the given headers.
func get(ctx context.Context, client *http.Client, rawURL string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return client.Do(req)
}
