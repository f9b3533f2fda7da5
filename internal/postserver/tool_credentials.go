package postserver

import (
	"context"
	"strings"

	"github.com/anatolykoptev/go_vidpost/internal/engine"
	"github.com/anatolykoptev/go_vidpost/internal/keystore"
)

func (d *Dispatcher) setCredentialsTool() Tool {
	return newTool(d, "set_credentials",
		"Set API keys for the completion provider (required) and the YouTube Data API (optional). Keys live in memory until the server exits.",
		false,
		nil,
		func(_ context.Context, in engine.SetCredentialsInput) (map[string]any, error) {
			if err := d.store.Set(keystore.Completion, in.CompletionAPIKey); err != nil {
				return nil, err
			}
			if strings.TrimSpace(in.TranscriptAPIKey) != "" {
				if err := d.store.Set(keystore.Transcript, in.TranscriptAPIKey); err != nil {
					return nil, err
				}
			}
			return map[string]any{
				"message": "Credentials set successfully. You can now use the other tools.",
			}, nil
		})
}

func (d *Dispatcher) checkCredentialsTool() Tool {
	return newTool(d, "check_credentials",
		"Report which API keys are set. Keys are shown masked to their last 4 characters.",
		true,
		nil,
		func(_ context.Context, _ engine.CheckCredentialsInput) (map[string]any, error) {
			out := make(map[string]any, len(keystore.Providers))
			for p, st := range d.store.Status() {
				out[string(p)] = st
			}
			return out, nil
		})
}
