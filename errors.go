package solvium

import (
	"errors"
	"fmt"
)

// AuthError means the service rejected the API key.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "solvium: API key rejected"
	}
	return fmt.Sprintf("solvium: API key rejected: %s", e.Message)
}

// ValidationError means a task or client parameter is missing or malformed.
// It is raised before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("solvium: invalid %s: %s", e.Field, e.Reason)
}

// TransportError means the call to the service failed: network fault,
// unexpected HTTP status, or a response body that could not be decoded.
type TransportError struct {
	Op  string // operation that failed, e.g. "create turnstile task"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("solvium: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NotFoundError means the service does not recognize the task handle.
type NotFoundError struct {
	TaskID TaskID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("solvium: task %q not found", string(e.TaskID))
}

// IsAuthError reports whether err is an AuthError anywhere in its chain.
func IsAuthError(err error) bool {
	var target *AuthError
	return errors.As(err, &target)
}

// IsValidationError reports whether err is a ValidationError anywhere in its chain.
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsTransportError reports whether err is a TransportError anywhere in its chain.
func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// IsNotFoundError reports whether err is a NotFoundError anywhere in its chain.
func IsNotFoundError(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}
