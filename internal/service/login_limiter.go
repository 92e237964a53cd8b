package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter counts failed logins per email.
type LoginLimiter interface {
	// Allow reports whether another attempt may be made for email.
	Allow(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// NoopLoginLimiter never throttles.
type NoopLoginLimiter struct{}

func (NoopLoginLimiter) Allow(context.Context, string) (bool, error) { return true, nil }
func (NoopLoginLimiter) RecordFailure(context.Context, string) error { return nil }
func (NoopLoginLimiter) Reset(context.Context, string) error         { return nil }

// RedisLoginLimiter keeps a fixed-window failure counter per email.
// Key format: login_failures:<lowercased email>
type RedisLoginLimiter struct {
	client      redis.Cmdable
	maxAttempts int
	window      time.Duration
}

// NewRedisLoginLimiter creates a limiter allowing maxAttempts failures per window.
func NewRedisLoginLimiter(client redis.Cmdable, maxAttempts int, window time.Duration) *RedisLoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &RedisLoginLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

func (l *RedisLoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(email)).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("login limiter get: %w", err)
	}
	return n < l.maxAttempts, nil
}

func (l *RedisLoginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := l.key(email)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("login limiter incr: %w", err)
	}
	// The window starts at the first failure.
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("login limiter expire: %w", err)
		}
	}
	return nil
}

func (l *RedisLoginLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, l.key(email)).Err()
}

func (l *RedisLoginLimiter) key(email string) string {
	return "login_failures:" + strings.ToLower(strings.TrimSpace(email))
}
