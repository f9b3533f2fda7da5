package toolutil

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, e Envelope) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(e.Text()), &m))
	return m
}

func TestOKSpreadsPayload(t *testing.T) {
	m := decode(t, OK(map[string]any{"summary": "hi", "success": false}))
	assert.Equal(t, true, m["success"])
	assert.Equal(t, "hi", m["summary"])
	assert.NotContains(t, m, "error")
	assert.Len(t, m, 2)
}

func TestFailCarriesOnlyError(t *testing.T) {
	m := decode(t, Fail(errors.New("failed to extract transcript")))
	assert.Equal(t, false, m["success"])
	assert.Equal(t, "failed to extract transcript", m["error"])
	assert.Len(t, m, 2)
}

func TestFailNilError(t *testing.T) {
	assert.Equal(t, "unknown error", Fail(nil).Error)
	assert.Equal(t, "bad", Failf("bad").Error)
}

func TestTextIsIndented(t *testing.T) {
	text := OK(map[string]any{"post": "x"}).Text()
	assert.True(t, strings.HasPrefix(text, "{\n  \""), "got %q", text)
}

func TestResult(t *testing.T) {
	tests := []struct {
		name    string
		env     Envelope
		isError bool
	}{
		{"success", OK(map[string]any{"message": "ok"}), false},
		{"failure", Failf("nope"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Result(tt.env)
			require.Len(t, res.Content, 1)
			tc, ok := res.Content[0].(*mcp.TextContent)
			require.True(t, ok)
			assert.Equal(t, tt.env.Text(), tc.Text)
			assert.Equal(t, tt.isError, res.IsError)
		})
	}
}
