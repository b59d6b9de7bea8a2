package services

import (
	"fmt"

	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

const msgInvalidLogin = "Invalid email, password or role."

var (
	// ErrUserNotFound means no account matched the login email and role
	ErrUserNotFound = apperrors.WithMessage(
		fmt.Errorf("user not found: %w", apperrors.ErrUnauthorized), msgInvalidLogin)

	// ErrInvalidCredentials means the password did not match the stored hash
	ErrInvalidCredentials = apperrors.WithMessage(
		fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized), msgInvalidLogin)

	// ErrInvalidVerificationCode means a reset code was wrong, expired or already used
	ErrInvalidVerificationCode = apperrors.WithMessage(
		apperrors.InvalidInputError("code", "invalid or expired"), "Invalid or expired verification code.")
)

// validationError builds an invalid-input error carrying a client message
func validationError(field, reason, message string) error {
	return apperrors.WithMessage(apperrors.InvalidInputError(field, reason), message)
}

// withNotFound replaces a not-found error from the store with a client message.
// Any other error is returned unchanged.
func withNotFound(err error, message string) error {
	if apperrors.Is(err, apperrors.ErrNotFound) {
		return apperrors.WithMessage(err, message)
	}
	return err
}

// withConflict replaces a conflict error from the store with a client message
func withConflict(err error, message string) error {
	if apperrors.Is(err, apperrors.ErrConflict) {
		return apperrors.WithMessage(err, message)
	}
	return err
}

// outcome converts an error into a metrics status label
func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case apperrors.Is(err, apperrors.ErrStore), apperrors.Is(err, apperrors.ErrMail):
		return "error"
	default:
		return "rejected"
	}
}
