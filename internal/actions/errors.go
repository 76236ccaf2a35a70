package actions

import (
	"errors"
)

// Error kinds. Every error returned by this package wraps one of them.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrUnexpected         = errors.New("unexpected error")
)

const msgUnexpected = "An unexpected error occurred"

// Failure is an operation error carrying the message shown to the user.
type Failure struct {
	Kind    error
	Message string
}

func (f *Failure) Error() string { return f.Message }

func (f *Failure) Unwrap() error { return f.Kind }

func fail(kind error, message string) *Failure {
	return &Failure{Kind: kind, Message: message}
}

// Message returns the user-facing text for err.
func Message(err error) string {
	var f *Failure
	if errors.As(err, &f) {
		return f.Message
	}
	return msgUnexpected
}

// unexpected converts an infrastructure error into the generic failure.
func unexpected(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return fail(ErrUnexpected, msgUnexpected)
}
