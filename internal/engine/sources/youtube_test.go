package sources

import (
	"errors"
	"testing"

	"github.com/anatolykoptev/go_vidpost/internal/engine"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"watch URL", "https://www.youtube.com/watch?v=ABC123", "ABC123", false},
		{"watch URL extra params", "https://www.youtube.com/watch?feature=share&v=ABC123&t=42", "ABC123", false},
		{"mobile host", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"short link", "https://youtu.be/ABC123", "ABC123", false},
		{"short link with query", "https://youtu.be/ABC123?si=xyz", "ABC123", false},
		{"other domain", "https://example.com/x", "", true},
		{"youtube without v", "https://www.youtube.com/channel/UC123", "", true},
		{"short link without id", "https://youtu.be/", "", true},
		{"not a url", "not a url", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVideoID(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ExtractVideoID(%q) = %q, want error", tt.url, got)
				}
				if !errors.Is(err, engine.ErrInvalidURL) {
					t.Errorf("error kind = %q, want InvalidUrl", engine.KindOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractVideoID(%q) error: %v", tt.url, err)
			}
			if got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
