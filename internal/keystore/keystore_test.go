package keystore

import (
	"errors"
	"strings"
	"testing"

	"github.com/anatolykoptev/go_vidpost/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	s := New()
	require.NoError(t, s.Set(Completion, "  sk-test-1234  "))

	got, ok := s.Get(Completion)
	require.True(t, ok)
	assert.Equal(t, "sk-test-1234", got)
	assert.True(t, s.Has(Completion))
	assert.False(t, s.Has(Transcript))
}

func TestSetOverwrites(t *testing.T) {
	s := New()
	require.NoError(t, s.Set(Transcript, "first"))
	require.NoError(t, s.Set(Transcript, "second"))
	got, _ := s.Get(Transcript)
	assert.Equal(t, "second", got)
}

func TestSetRejectsBlank(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tabs and newlines", "\t\n "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			require.NoError(t, s.Set(Completion, "original-key"))

			err := s.Set(Completion, tt.secret)
			require.Error(t, err)
			assert.True(t, errors.Is(err, engine.ErrInvalidCredential))

			got, ok := s.Get(Completion)
			assert.True(t, ok)
			assert.Equal(t, "original-key", got, "store must be unchanged after a failed set")
		})
	}
}

func TestSetRejectsUnknownProvider(t *testing.T) {
	s := New()
	err := s.Set(Provider("weather-provider"), "abc")
	assert.ErrorIs(t, err, engine.ErrInvalidCredential)
}

func TestMask(t *testing.T) {
	secrets := []string{"abcd", "sk-1234567890", "a-much-longer-secret-value-XYZ9", "ключ-секрет-кириллица"}
	for _, secret := range secrets {
		m := Mask(secret)
		last4 := engine.LastRunes(secret, 4)
		if !strings.HasSuffix(m, last4) {
			t.Errorf("Mask(%q) = %q, want suffix %q", secret, m, last4)
		}
		if !strings.HasPrefix(m, maskPrefix) {
			t.Errorf("Mask(%q) = %q, want prefix %q", secret, m, maskPrefix)
		}
		rest := strings.TrimSuffix(secret, last4)
		if len(rest) >= 4 && strings.Contains(m, rest) {
			t.Errorf("Mask(%q) = %q leaks %q", secret, m, rest)
		}
	}
}

func TestStatus(t *testing.T) {
	s := New()
	st := s.Status()
	require.Len(t, st, 2)
	assert.False(t, st[Completion].IsSet)
	assert.Nil(t, st[Completion].Masked)

	require.NoError(t, s.Set(Completion, "sk-secret-9876"))
	st = s.Status()
	assert.True(t, st[Completion].IsSet)
	require.NotNil(t, st[Completion].Masked)
	assert.Equal(t, "********9876", *st[Completion].Masked)
	assert.False(t, st[Transcript].IsSet)
}

func TestSeedSkipsBlank(t *testing.T) {
	s := New()
	s.Seed(map[Provider]string{Completion: "sk-env", Transcript: "  "})
	assert.True(t, s.Has(Completion))
	assert.False(t, s.Has(Transcript))
}
