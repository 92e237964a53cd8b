package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/notice-board/internal/api/dto"
	"github.com/spec-kit/notice-board/internal/domain"
	"github.com/spec-kit/notice-board/internal/service"
)

// AuthHandler exposes the admin login endpoint.
type AuthHandler struct {
	auth      *service.AuthService
	validator *RequestValidator
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, validator *RequestValidator) *AuthHandler {
	return &AuthHandler{auth: authService, validator: validator}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("body", "invalid JSON payload")
	}
	if err := h.validator.Validate(&req); err != nil {
		return err
	}

	res, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{
		Message:   "Login successful",
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		Admin:     res.Admin,
	})
}
