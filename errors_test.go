package solvium

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	auth := &AuthError{Message: "Invalid API key"}
	validation := &ValidationError{Field: "sitekey", Reason: "required"}
	transport := &TransportError{Op: "task status", Err: errors.New("connection refused")}
	notFound := &NotFoundError{TaskID: "42"}

	assert.True(t, IsAuthError(auth))
	assert.True(t, IsValidationError(validation))
	assert.True(t, IsTransportError(transport))
	assert.True(t, IsNotFoundError(notFound))

	// The helpers must not match across types.
	assert.False(t, IsAuthError(transport))
	assert.False(t, IsValidationError(auth))
	assert.False(t, IsTransportError(notFound))
	assert.False(t, IsNotFoundError(validation))

	assert.Contains(t, auth.Error(), "Invalid API key")
	assert.Contains(t, validation.Error(), "sitekey")
	assert.Contains(t, transport.Error(), "task status")
	assert.Contains(t, notFound.Error(), "42")
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: timed out")
	err := &TransportError{Op: "create turnstile task", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsTransportError(fmt.Errorf("solve: %w", err)))
}
