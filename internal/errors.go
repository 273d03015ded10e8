package internal

import (
	"errors"
	"fmt"
)

// Failure kinds surfaced to callers. Callers branch on the kind via
// errors.Is, never on message content.
var (
	ErrConfiguration   = errors.New("configuration error")
	ErrAuthentication  = errors.New("authentication failed")
	ErrSessionCreation = errors.New("session creation failed")
)

// checkoutError carries a failure kind together with the richest diagnostic
// message available at the point of failure. The message of an inner
// component is passed upward intact, never re-wrapped.
type checkoutError struct {
	kind    error
	message string
}

func (e *checkoutError) Error() string {
	return e.message
}

func (e *checkoutError) Unwrap() error {
	return e.kind
}

func configurationError(format string, args ...any) error {
	return &checkoutError{kind: ErrConfiguration, message: fmt.Sprintf(format, args...)}
}

func authenticationError(format string, args ...any) error {
	return &checkoutError{kind: ErrAuthentication, message: fmt.Sprintf(format, args...)}
}

func sessionCreationError(format string, args ...any) error {
	return &checkoutError{kind: ErrSessionCreation, message: fmt.Sprintf(format, args...)}
}
