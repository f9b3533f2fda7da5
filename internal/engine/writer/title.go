package writer

import (
	"net/url"

	"github.com/anatolykoptev/go_vidpost/internal/engine"
)

// VideoTitle returns a placeholder title built from the v query parameter.
// No metadata service is called.
func VideoTitle(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", engine.Wrap(engine.KindInvalidURL, "could not extract video ID from URL", err)
	}
	id := u.Query().Get("v")
	if id == "" {
		return "", engine.Errorf(engine.KindInvalidURL, "could not extract video ID from URL")
	}
	return "YouTube Video (" + id + ")", nil
}
