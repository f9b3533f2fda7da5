package sources

// YouTube implementation is split across files by responsibility:
//   youtube.go            video ID parsing
//   youtube_innertube.go  Innertube/timedtext types, constants, and HTTP primitives
//   youtube_transcript.go caption scraping (watch page + ANDROID player)
//   youtube_captions.go   Data API v3 captions fallback
//   transcript.go         Fetcher tying primary and fallback paths together

import (
	"net/url"
	"strings"

	"github.com/anatolykoptev/go_vidpost/internal/engine"
)

// ExtractVideoID returns the video ID from a youtube.com/watch?v=ID or youtu.be/ID URL.
func ExtractVideoID(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return "", engine.Errorf(engine.KindInvalidURL, "invalid YouTube URL %q: could not extract video ID", rawURL)
	}
	host := strings.ToLower(u.Hostname())
	var id string
	switch {
	case strings.Contains(host, "youtube.com"):
		id = u.Query().Get("v")
	case host == "youtu.be":
		id, _, _ = strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
	}
	if id == "" {
		return "", engine.Errorf(engine.KindInvalidURL, "invalid YouTube URL %q: could not extract video ID", rawURL)
	}
	return id, nil
}
