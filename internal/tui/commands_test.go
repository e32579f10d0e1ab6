package tui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rgdevment/phone-tracer/internal/platform/api"
)

func TestUserMessageWordsEachErrorKind(t *testing.T) {
	validation := &api.Error{Kind: api.KindValidation, Message: "Invalid phone number format", Status: 400}
	network := &api.Error{Kind: api.KindNetwork, Message: "connection refused"}
	unavailable := &api.Error{Kind: api.KindServiceUnavailable, Message: "AI service error", Status: 503}

	assert.Equal(t, "Invalid phone number format", userMessage(validation, "fallback"))
	assert.Equal(t, "Cannot reach the backend. Is it running?", userMessage(network, "fallback"))
	assert.Equal(t, "The AI service is unavailable right now. Try again in a moment.", userMessage(unavailable, "fallback"))
	assert.Equal(t, "fallback", userMessage(errMock, "fallback"))
}

func TestUserMessageUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("submit report: %w", &api.Error{Kind: api.KindNetwork, Message: "dial tcp: refused"})

	assert.Equal(t, "Cannot reach the backend. Is it running?", userMessage(wrapped, "fallback"))
}
