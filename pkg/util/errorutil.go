package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spec-kit/notice-board/internal/domain"
)

// Error codes rendered in the response envelope.
const (
	CodeValidation         = "VALIDATION_FAILED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeNotFound           = "NOT_FOUND"
	CodeTooManyAttempts    = "TOO_MANY_ATTEMPTS"
	CodeInternal           = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewInvalidCredentials deliberately carries one message for every login failure.
func NewInvalidCredentials() error {
	return NewDomainError(CodeInvalidCredentials, "Invalid credentials", http.StatusBadRequest, nil)
}

func NewUnauthorized(message string) error {
	return NewDomainError(CodeUnauthorized, message, http.StatusUnauthorized, nil)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewTooManyAttempts() error {
	return NewDomainError(CodeTooManyAttempts, "too many login attempts, try again later", http.StatusTooManyRequests, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts service and storage errors to DomainError.
// Anything unrecognised is treated as a storage failure.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		details := make(map[string]any, len(validationErr.Fields))
		for field, msg := range validationErr.Fields {
			details[field] = msg
		}
		return NewDomainError(CodeValidation, "validation failed", http.StatusBadRequest, details)
	}
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return NewInvalidCredentials().(*DomainError)
	case errors.Is(err, domain.ErrTooManyAttempts):
		return NewTooManyAttempts().(*DomainError)
	case errors.Is(err, domain.ErrNoticeNotFound):
		return NewNotFound("notice", nil).(*DomainError)
	}
	return NewInternalError(err).(*DomainError)
}
