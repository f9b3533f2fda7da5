package engine

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesKind(t *testing.T) {
	err := Errorf(KindMissingCredential, "completion-provider credential not set")
	if !errors.Is(err, ErrMissingCredential) {
		t.Error("expected errors.Is to match sentinel of same kind")
	}
	if errors.Is(err, ErrInvalidURL) {
		t.Error("expected errors.Is not to match a different kind")
	}
	if err.Error() != "completion-provider credential not set" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("HTTP 500")
	err := Wrap(KindSummarizationFailed, "failed to summarize transcript", cause)
	if err.Error() != "failed to summarize transcript: HTTP 500" {
		t.Errorf("message = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("cause lost")
	}
	if KindOf(err) != KindSummarizationFailed {
		t.Errorf("KindOf = %q", KindOf(err))
	}
}

func TestWrapNested(t *testing.T) {
	inner := Errorf(KindNoTranscript, "no transcript available")
	outer := Wrap(KindTranscriptExtractionFailed, "failed to extract transcript", inner)
	if KindOf(outer) != KindTranscriptExtractionFailed {
		t.Errorf("outer kind = %q", KindOf(outer))
	}
	if !errors.Is(outer, ErrNoTranscript) {
		t.Error("inner kind should still match")
	}
	wrapped := fmt.Errorf("tool: %w", outer)
	if KindOf(wrapped) != KindTranscriptExtractionFailed {
		t.Errorf("KindOf through fmt wrap = %q", KindOf(wrapped))
	}
}

func TestErrorfWithVerb(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := Errorf(KindFallbackUnsupported, "captions: %w", cause)
	if !errors.Is(err, cause) {
		t.Error("%w cause not kept")
	}
	if err.Error() != "captions: dial tcp: refused" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestKindOfPlainError(t *testing.T) {
	if k := KindOf(errors.New("x")); k != "" {
		t.Errorf("KindOf plain = %q", k)
	}
	if k := KindOf(nil); k != "" {
		t.Errorf("KindOf nil = %q", k)
	}
}
