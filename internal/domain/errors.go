package domain

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTooManyAttempts is returned while an email is throttled.
	ErrTooManyAttempts = errors.New("too many login attempts")
	// ErrAdminNotFound is returned by the credential store on a missing email.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrNoticeNotFound is returned by single-notice reads.
	ErrNoticeNotFound = errors.New("notice not found")
)

// ValidationError lists offending fields with a message per field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
