package dto

import (
	"time"

	"github.com/spec-kit/notice-board/internal/domain"
)

// LoginRequest payload for admin login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned by POST /api/auth/login.
type LoginResponse struct {
	Message   string              `json:"message"`
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expires_at"`
	Admin     domain.AdminSummary `json:"admin"`
}
