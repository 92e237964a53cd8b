package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/notice-board/internal/auth"
	"github.com/spec-kit/notice-board/internal/config"
	"github.com/spec-kit/notice-board/internal/domain"
	"github.com/spec-kit/notice-board/internal/observability"
	"github.com/spec-kit/notice-board/internal/repository"
)

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Admin     domain.AdminSummary
}

// AuthService coordinates admin login and provisioning.
type AuthService struct {
	admins     repository.AdminRepository
	tokenMgr   *auth.TokenManager
	limiter    LoginLimiter
	bcryptCost int
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	AdminRepo    repository.AdminRepository
	TokenManager *auth.TokenManager
	Limiter      LoginLimiter
	Logger       *zap.Logger
	Metrics      *observability.Metrics
}

// NewAuthService builds the service. A nil limiter disables throttling.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	tokenMgr := deps.TokenManager
	if tokenMgr == nil {
		tokenMgr = auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL())
	}
	limiter := deps.Limiter
	if limiter == nil {
		limiter = NoopLoginLimiter{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		admins:     deps.AdminRepo,
		tokenMgr:   tokenMgr,
		limiter:    limiter,
		bcryptCost: cfg.BcryptCost,
		logger:     logger,
		metrics:    deps.Metrics,
	}
}

// Login authenticates an administrator by email and password. An unknown
// email and a wrong password fail identically with ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	allowed, err := s.limiter.Allow(ctx, email)
	if err != nil {
		s.logger.Warn("login limiter unavailable", zap.Error(err))
		allowed = true
	}
	if !allowed {
		s.metrics.RecordLogin("throttled")
		return nil, domain.ErrTooManyAttempts
	}

	admin, err := s.admins.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrAdminNotFound) {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := auth.ComparePassword(admin.PasswordHash, password); err != nil {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	token, exp, err := s.tokenMgr.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		return nil, err
	}
	if err := s.limiter.Reset(ctx, email); err != nil {
		s.logger.Warn("login limiter reset failed", zap.Error(err))
	}
	s.metrics.RecordLogin("success")
	return &LoginResult{Token: token, ExpiresAt: exp, Admin: admin.Summary()}, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	s.metrics.RecordLogin("invalid")
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.logger.Warn("login limiter record failed", zap.Error(err))
	}
}

// CreateAdmin provisions an administrator with a bcrypt hash of password.
func (s *AuthService) CreateAdmin(ctx context.Context, name, email, password string) (*domain.Admin, error) {
	fields := map[string]string{}
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		fields["name"] = "name is required"
	}
	if email == "" {
		fields["email"] = "email is required"
	}
	if password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	admin := &domain.Admin{Name: name, Email: email, PasswordHash: hash}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
