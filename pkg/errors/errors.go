package errors

import (
	"errors"
	"fmt"
)

// Application error taxonomy. Services wrap these so handlers can classify
// failures with errors.Is regardless of the message.

var (
	// ErrInvalidInput indicates missing or malformed input
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates missing or invalid authentication
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAccessDenied indicates an authenticated user acting on an entity they do not own
	ErrAccessDenied = errors.New("access denied")

	// ErrNotFound indicates a referenced entity is absent
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a uniqueness, duplicate-edge or state conflict
	ErrConflict = errors.New("conflict")

	// ErrStore indicates an underlying persistence failure
	ErrStore = errors.New("store failure")

	// ErrMail indicates the mail collaborator failed to accept a message
	ErrMail = errors.New("mail dispatch failure")
)

// NotFoundError creates a not found error with context
func NotFoundError(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// AccessDeniedError creates an access denied error with context
func AccessDeniedError(reason string) error {
	if reason != "" {
		return fmt.Errorf("%s: %w", reason, ErrAccessDenied)
	}
	return ErrAccessDenied
}

// InvalidInputError creates an invalid input error with context
func InvalidInputError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrInvalidInput)
}

// ConflictError creates a conflict error with context
func ConflictError(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrConflict)
}

// StoreError wraps a persistence failure. The cause stays in the chain for logging.
func StoreError(operation string, cause error) error {
	return fmt.Errorf("%s: %w: %w", operation, ErrStore, cause)
}

// MailError wraps a mail dispatch failure
func MailError(cause error) error {
	return fmt.Errorf("%w: %w", ErrMail, cause)
}

// publicError attaches a client-safe message to an error
type publicError struct {
	message string
	err     error
}

func (e *publicError) Error() string { return e.err.Error() }
func (e *publicError) Unwrap() error { return e.err }

// WithMessage attaches message, safe to show to clients, to err
func WithMessage(err error, message string) error {
	if err == nil {
		return nil
	}
	return &publicError{message: message, err: err}
}

// PublicMessage returns the outermost client-safe message attached to err
func PublicMessage(err error) (string, bool) {
	var pe *publicError
	if errors.As(err, &pe) {
		return pe.message, true
	}
	return "", false
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New is a passthrough to the standard errors.New so callers need a single import
func New(text string) error {
	return errors.New(text)
}
