// Package toolutil renders tool outcomes as the JSON envelope returned to MCP clients.
package toolutil

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Envelope is the uniform result of every tool. Success carries Payload
// fields spread at the top level; failure carries only Error.
type Envelope struct {
	Success bool
	Payload map[string]any
	Error   string
}

// OK builds a success envelope.
func OK(payload map[string]any) Envelope {
	return Envelope{Success: true, Payload: payload}
}

// Fail builds a failure envelope from err's message.
func Fail(err error) Envelope {
	msg := "unknown error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return Envelope{Error: msg}
}

// Failf builds a failure envelope from a fixed message.
func Failf(msg string) Envelope {
	return Fail(errors.New(msg))
}

// MarshalJSON writes {"success":true,...payload} or {"success":false,"error":msg}.
// A payload key named "success" or "error" is ignored.
func (e Envelope) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Payload)+1)
	if e.Success {
		for k, v := range e.Payload {
			if k == "success" || k == "error" {
				continue
			}
			out[k] = v
		}
	} else {
		out["error"] = e.Error
	}
	out["success"] = e.Success
	return json.Marshal(out)
}

// Text renders the envelope as two-space indented JSON.
func (e Envelope) Text() string {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		slog.Error("envelope marshal failed", slog.Any("error", err))
		return `{"success": false, "error": "failed to encode result"}`
	}
	return string(data)
}

// Result wraps the envelope as a single text content block.
// IsError mirrors a failed envelope so clients can tell outcomes apart.
func Result(e Envelope) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: e.Text()}},
		IsError: !e.Success,
	}
}
