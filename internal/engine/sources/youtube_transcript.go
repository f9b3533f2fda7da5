package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	stealth "github.com/anatolykoptev/go-stealth"
	"github.com/anatolykoptev/go_vidpost/internal/engine"
)

// Segment is one caption line, in playback order.
type Segment struct {
	Text string `json:"text"`
}

// SegmentSource returns the ordered caption segments of a video.
type SegmentSource interface {
	Segments(ctx context.Context, videoID string) ([]Segment, error)
}

// YouTubeScraper reads captions without an API key.
// Primary:  scrape watch page ytInitialPlayerResponse → caption XML
// Fallback: ANDROID Innertube /player → captionTracks
type YouTubeScraper struct {
	client    *http.Client
	langs     []string
	watchURL  string
	playerURL string
}

// NewYouTubeScraper builds a scraper from engine configuration.
func NewYouTubeScraper(cfg engine.Config) *YouTubeScraper {
	langs := cfg.YouTubeLangs
	if len(langs) == 0 {
		langs = []string{"en"}
	}
	return &YouTubeScraper{
		client:    cfg.FetchClient(),
		langs:     langs,
		watchURL:  ytWatchURL,
		playerURL: ytInnertubeURL,
	}
}

// Segments tries the watch page first, then the ANDROID player.
func (s *YouTubeScraper) Segments(ctx context.Context, videoID string) ([]Segment, error) {
	segs, err := s.viaPageScrape(ctx, videoID)
	if err == nil {
		return segs, nil
	}
	slog.Warn("youtube: page scrape failed, trying player",
		slog.String("id", videoID), slog.Any("err", err))

	segs, perr := s.viaPlayer(ctx, videoID)
	if perr != nil {
		return nil, fmt.Errorf("page scrape: %v; player: %w", err, perr)
	}
	return segs, nil
}

// needsPoToken reports whether a caption track URL requires a PoToken (browser-only).
// Tracks with &exp=xpe cannot be fetched server-side.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// pickBestTrack selects the best usable caption track for the given language preferences.
// Skips tracks that require PoToken; those only work in a browser.
func pickBestTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if !needsPoToken(t.BaseURL) {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return captionTrack{}, false
	}
	// 1. Manual track in preferred language
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t, true
			}
		}
	}
	// 2. Auto-generated track in preferred language
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}
	// 3. Any English track
	for _, t := range usable {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t, true
		}
	}
	return usable[0], true
}

// fetchTimedText downloads and parses a caption track.
func (s *YouTubeScraper) fetchTimedText(ctx context.Context, baseURL string) ([]Segment, error) {
	resp, err := get(ctx, s.client, baseURL, map[string]string{"User-Agent": engine.UserAgentBot})
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}
	body, err := readOK(resp, 512*1024)
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}
	return parseTimedText(body)
}

func (s *YouTubeScraper) segmentsFromPlayer(ctx context.Context, p innertubePlayerResp) ([]Segment, error) {
	tracks, err := p.tracks()
	if err != nil {
		return nil, err
	}
	track, ok := pickBestTrack(tracks, s.langs)
	if !ok {
		return nil, errors.New("all caption tracks require PoToken")
	}
	return s.fetchTimedText(ctx, track.BaseURL)
}

// ytInitialPlayerResponseMarker marks the start of the player response JSON in watch page HTML.
const ytInitialPlayerResponseMarker = "ytInitialPlayerResponse = "

// viaPageScrape scrapes the watch page HTML and extracts the caption track
// URL from ytInitialPlayerResponse. Works from any IP.
func (s *YouTubeScraper) viaPageScrape(ctx context.Context, videoID string) ([]Segment, error) {
	watchURL := s.watchURL + "?v=" + url.QueryEscape(videoID)
	resp, err := get(ctx, s.client, watchURL, map[string]string{
		"User-Agent":      stealth.RandomUserAgent(),
		"Accept-Language": "en-US,en;q=0.9",
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	})
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}
	body, err := readOK(resp, 6*1024*1024)
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}

	idx := bytes.Index(body, []byte(ytInitialPlayerResponseMarker))
	if idx < 0 {
		return nil, errors.New("ytInitialPlayerResponse not found in watch page")
	}
	jsonData := extractJSON(body[idx+len(ytInitialPlayerResponseMarker):])
	if jsonData == nil {
		return nil, errors.New("failed to extract ytInitialPlayerResponse JSON")
	}

	var playerResp innertubePlayerResp
	if err := json.Unmarshal(jsonData, &playerResp); err != nil {
		return nil, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	return s.segmentsFromPlayer(ctx, playerResp)
}

// viaPlayer uses the ANDROID Innertube /player endpoint.
func (s *YouTubeScraper) viaPlayer(ctx context.Context, videoID string) ([]Segment, error) {
	reqBody, err := json.Marshal(innertubeReq{
		VideoID: videoID,
		Context: innertubeCtx{
			Client: innertubeClient{
				ClientName:        "ANDROID",
				ClientVersion:     ytAndroidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.playerURL+"?prettyPrint=false", bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", ytAndroidUA)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", ytAndroidVersion)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("android innertube: %w", err)
	}
	body, err := readOK(resp, 3*1024*1024)
	if err != nil {
		return nil, fmt.Errorf("android innertube: %w", err)
	}

	var playerResp innertubePlayerResp
	if err := json.Unmarshal(body, &playerResp); err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	return s.segmentsFromPlayer(ctx, playerResp)
}

// extractJSON returns the balanced JSON object at the start of b.
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	inStr := false
	escaped := false
	for i, c := range b {
		if inStr {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[:i+1]
			}
		}
	}
	return nil
}
