package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTimedText = `<?xml version="1.0" encoding="utf-8" ?><transcript>
<text start="0.0" dur="1.5">Hello   world</text>
<text start="1.5" dur="2.0">it&amp;#39;s a   test</text>
<text start="3.5" dur="1.0">   </text>
<text start="4.5" dur="1.0">final line.</text>
</transcript>`

const sampleTimedTextFormat3 = `<?xml version="1.0" encoding="utf-8" ?><timedtext format="3"><body>
<p t="0" d="1500"><s>Hello</s><s> there</s></p>
<p t="1500" d="2000">second</p>
</body></timedtext>`

func TestParseTimedText(t *testing.T) {
	segs, err := parseTimedText([]byte(sampleTimedText))
	require.NoError(t, err)
	require.Len(t, segs, 3)
	assert.Equal(t, "Hello   world", segs[0].Text)
	assert.Equal(t, "it's a   test", segs[1].Text)
	assert.Equal(t, "final line.", segs[2].Text)
}

func TestParseTimedTextFormat3(t *testing.T) {
	segs, err := parseTimedText([]byte(sampleTimedTextFormat3))
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, "Hello there", segs[0].Text)
	assert.Equal(t, "second", segs[1].Text)
}

func TestParseTimedTextInvalid(t *testing.T) {
	_, err := parseTimedText([]byte("<transcript><text>unclosed"))
	assert.Error(t, err)
}

func TestPickBestTrack(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "https://x/a&exp=xpe", LanguageCode: "en"},
		{BaseURL: "https://x/b", LanguageCode: "de"},
		{BaseURL: "https://x/c", LanguageCode: "en", Kind: "asr"},
		{BaseURL: "https://x/d", LanguageCode: "en"},
	}
	got, ok := pickBestTrack(tracks, []string{"en"})
	require.True(t, ok)
	assert.Equal(t, "https://x/d", got.BaseURL, "manual track wins over asr")

	got, ok = pickBestTrack(tracks[:3], []string{"en"})
	require.True(t, ok)
	assert.Equal(t, "https://x/c", got.BaseURL, "asr track in preferred language")

	got, ok = pickBestTrack(tracks[:2], []string{"fr"})
	require.True(t, ok)
	assert.Equal(t, "https://x/b", got.BaseURL, "first usable track as last resort")

	_, ok = pickBestTrack(tracks[:1], []string{"en"})
	assert.False(t, ok, "PoToken-only tracks are unusable")
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", `{"a":1};var x`, `{"a":1}`},
		{"nested", `{"a":{"b":"}"}} trailing`, `{"a":{"b":"}"}}`},
		{"escaped quote", `{"a":"x\"}"}rest`, `{"a":"x\"}"}`},
		{"escaped backslash", `{"a":"x\\"}rest`, `{"a":"x\\"}`},
		{"not object", `[1,2]`, ``},
		{"unbalanced", `{"a":1`, ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(extractJSON([]byte(tt.in)))
			if got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func newScraperServer(t *testing.T, watchOK, playerOK bool) (*httptest.Server, *YouTubeScraper) {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	playerJSON := fmt.Sprintf(`{"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[{"baseUrl":%q,"languageCode":"en"}]}}}`, srv.URL+"/timedtext?v=ABC123")

	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		if !watchOK {
			http.Error(w, "blocked", http.StatusTooManyRequests)
			return
		}
		assert.Equal(t, "ABC123", r.URL.Query().Get("v"))
		fmt.Fprintf(w, `<html><script>var ytInitialPlayerResponse = %s;var meta = {};</script></html>`, playerJSON)
	})
	mux.HandleFunc("/player", func(w http.ResponseWriter, r *http.Request) {
		if !playerOK {
			fmt.Fprint(w, `{"playabilityStatus":{"status":"LOGIN_REQUIRED","reason":"Sign in to confirm you're not a bot"}}`)
			return
		}
		assert.Equal(t, http.MethodPost, r.Method)
		fmt.Fprint(w, playerJSON)
	})
	mux.HandleFunc("/timedtext", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sampleTimedText)
	})

	s := &YouTubeScraper{
		client:    srv.Client(),
		langs:     []string{"en"},
		watchURL:  srv.URL + "/watch",
		playerURL: srv.URL + "/player",
	}
	return srv, s
}

func TestScraperPageScrape(t *testing.T) {
	_, s := newScraperServer(t, true, false)
	segs, err := s.Segments(context.Background(), "ABC123")
	require.NoError(t, err)
	require.Len(t, segs, 3)
	assert.Equal(t, "Hello world it's a test final line.", JoinSegments(segs))
}

func TestScraperFallsBackToPlayer(t *testing.T) {
	_, s := newScraperServer(t, false, true)
	segs, err := s.Segments(context.Background(), "ABC123")
	require.NoError(t, err)
	assert.Len(t, segs, 3)
}

func TestScraperBothFail(t *testing.T) {
	_, s := newScraperServer(t, false, false)
	_, err := s.Segments(context.Background(), "ABC123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Sign in to confirm")
	assert.Contains(t, err.Error(), "HTTP 429")
}
