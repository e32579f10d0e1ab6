package api

import (
	"errors"
	"fmt"
)

// Kind classifies a failed backend call for the views: they word the
// inline message differently per kind but never retry.
type Kind int

const (
	// KindNetwork is a transport failure: backend unreachable, reset, etc.
	KindNetwork Kind = iota
	// KindValidation means the backend rejected the input (4xx) and
	// supplied a human-readable detail message.
	KindValidation
	// KindServiceUnavailable covers the AI endpoints erroring or being
	// unreachable.
	KindServiceUnavailable
)

// Error is the failure of a single backend call.
type Error struct {
	Kind    Kind
	Message string
	Status  int // HTTP status, 0 for transport failures
	cause   error
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("api: %s (HTTP %d)", e.Message, e.Status)
	}
	return "api: " + e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// UserMessage is the text a view shows inline for this failure.
func (e *Error) UserMessage() string { return e.Message }

func IsValidation(err error) bool         { return hasKind(err, KindValidation) }
func IsNetwork(err error) bool            { return hasKind(err, KindNetwork) }
func IsServiceUnavailable(err error) bool { return hasKind(err, KindServiceUnavailable) }

func hasKind(err error, k Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == k
}

// UserMessage extracts the displayable message from any backend-call
// error, falling back to a generic line for unexpected failures.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
