package engine

import (
	"errors"
	"fmt"
)

// Kind classifies a failure surfaced to tool callers.
type Kind string

const (
	KindInvalidCredential          Kind = "InvalidCredential"
	KindMissingCredential          Kind = "MissingCredential"
	KindInvalidURL                 Kind = "InvalidUrl"
	KindNoTranscript               Kind = "NoTranscript"
	KindFallbackUnsupported        Kind = "FallbackUnsupported"
	KindTranscriptExtractionFailed Kind = "TranscriptExtractionFailed"
	KindEmptyInput                 Kind = "EmptyInput"
	KindSummarizationFailed        Kind = "SummarizationFailed"
	KindPostGenerationFailed       Kind = "PostGenerationFailed"
	KindEmptyResult                Kind = "EmptyResult"
	KindValidation                 Kind = "ValidationError"
)

// Sentinels for errors.Is. Any *Error of the same kind matches.
var (
	ErrInvalidCredential          = &Error{Kind: KindInvalidCredential, Msg: "invalid credential"}
	ErrMissingCredential          = &Error{Kind: KindMissingCredential, Msg: "credential not set"}
	ErrInvalidURL                 = &Error{Kind: KindInvalidURL, Msg: "invalid video URL"}
	ErrNoTranscript               = &Error{Kind: KindNoTranscript, Msg: "no transcript available"}
	ErrFallbackUnsupported        = &Error{Kind: KindFallbackUnsupported, Msg: "fallback transcript path unsupported"}
	ErrTranscriptExtractionFailed = &Error{Kind: KindTranscriptExtractionFailed, Msg: "failed to extract transcript"}
	ErrEmptyInput                 = &Error{Kind: KindEmptyInput, Msg: "empty input"}
	ErrSummarizationFailed        = &Error{Kind: KindSummarizationFailed, Msg: "failed to summarize transcript"}
	ErrPostGenerationFailed       = &Error{Kind: KindPostGenerationFailed, Msg: "failed to generate post"}
	ErrEmptyResult                = &Error{Kind: KindEmptyResult, Msg: "provider returned no content"}
	ErrValidation                 = &Error{Kind: KindValidation, Msg: "invalid arguments"}
)

// Error is a classified failure with a human-readable message and an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error carrying the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Errorf builds a classified error. %w verbs are honored and become the cause.
func Errorf(kind Kind, format string, args ...any) error {
	wrapped := fmt.Errorf(format, args...)
	return &Error{Kind: kind, Msg: wrapped.Error(), Err: errors.Unwrap(wrapped)}
}

// Wrap classifies err under kind with a message prefix.
func Wrap(kind Kind, msg string, err error) error {
	if err == nil {
		return &Error{Kind: kind, Msg: msg}
	}
	return &Error{Kind: kind, Msg: msg + ": " + err.Error(), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
