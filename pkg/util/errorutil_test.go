package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/spec-kit/notice-board/internal/domain"
)

func TestToDomainError(t *testing.T) {
	storage := errors.New("connection refused")

	cases := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"credentials", fmt.Errorf("login: %w", domain.ErrInvalidCredentials), CodeInvalidCredentials, http.StatusBadRequest},
		{"throttled", domain.ErrTooManyAttempts, CodeTooManyAttempts, http.StatusTooManyRequests},
		{"validation", domain.NewValidationError("title", "title is required"), CodeValidation, http.StatusBadRequest},
		{"unauthorized", NewUnauthorized("invalid token"), CodeUnauthorized, http.StatusUnauthorized},
		{"storage", storage, CodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToDomainError(tc.err)
			if got.Code != tc.code {
				t.Fatalf("code = %s, want %s", got.Code, tc.code)
			}
			if got.HTTPStatus != tc.status {
				t.Fatalf("status = %d, want %d", got.HTTPStatus, tc.status)
			}
		})
	}
}

func TestStorageErrorHidesCause(t *testing.T) {
	got := ToDomainError(errors.New("dial tcp 10.0.0.5:5432: refused"))
	if got.Message != "internal server error" {
		t.Fatalf("unexpected message %q", got.Message)
	}
	if got.Err == nil {
		t.Fatalf("cause should be kept for logging")
	}
}

func TestValidationDetails(t *testing.T) {
	got := ToDomainError(&domain.ValidationError{Fields: map[string]string{"date": "date must be YYYY-MM-DD"}})
	if got.Details["date"] != "date must be YYYY-MM-DD" {
		t.Fatalf("details not copied: %v", got.Details)
	}
}

func TestToDomainErrorNil(t *testing.T) {
	if ToDomainError(nil) != nil {
		t.Fatalf("expected nil")
	}
}
