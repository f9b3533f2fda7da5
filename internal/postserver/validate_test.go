package postserver

import (
	"encoding/json"
	"testing"

	"github.com/anatolykoptev/go_vidpost/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	require.NoError(t, required("videoUrl", "https://youtu.be/x"))

	err := required("videoUrl", "  ")
	assert.ErrorIs(t, err, engine.ErrValidation)
	assert.Equal(t, "videoUrl is required", err.Error())
}

func TestOneOf(t *testing.T) {
	allowed := []string{"a", "b"}
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"empty takes default", "", "a", false},
		{"trimmed", " b ", "b", false},
		{"rejected", "c", "c", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.in
			err := oneOf("tone", &v, "a", allowed)
			assert.Equal(t, tt.want, v)
			if tt.wantErr {
				assert.ErrorIs(t, err, engine.ErrValidation)
				assert.Contains(t, err.Error(), "must be one of a, b")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestWordCount(t *testing.T) {
	n, err := wordCount(nil)
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultWordCount, n)

	for _, v := range []int{engine.MinWordCount - 1, engine.MaxWordCount + 1} {
		_, err := wordCount(&v)
		assert.ErrorIs(t, err, engine.ErrValidation, "wordCount %d", v)
	}
	v := engine.MaxWordCount
	n, err = wordCount(&v)
	require.NoError(t, err)
	assert.Equal(t, engine.MaxWordCount, n)
}

func TestDecodeArgs(t *testing.T) {
	var in engine.ExtractTranscriptInput
	require.NoError(t, decodeArgs(nil, &in))
	require.NoError(t, decodeArgs(json.RawMessage(" null "), &in))

	err := decodeArgs(json.RawMessage(`{"videoUrl":`), &in)
	assert.ErrorIs(t, err, engine.ErrValidation)
	assert.Contains(t, err.Error(), "invalid arguments")
}
