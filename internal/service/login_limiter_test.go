package service

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestRedisLoginLimiterReportsBackendErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	limiter := NewRedisLoginLimiter(client, 3, time.Minute)
	ctx := context.Background()

	if _, err := limiter.Allow(ctx, "admin@college.edu"); err == nil {
		t.Fatalf("expected error from unreachable redis")
	}
	if err := limiter.RecordFailure(ctx, "admin@college.edu"); err == nil {
		t.Fatalf("expected error from unreachable redis")
	}
}

func TestRedisLoginLimiterKeyIsCaseInsensitive(t *testing.T) {
	limiter := NewRedisLoginLimiter(nil, 0, 0)
	if limiter.key(" Admin@College.edu ") != "login_failures:admin@college.edu" {
		t.Fatalf("unexpected key %q", limiter.key(" Admin@College.edu "))
	}
	if limiter.maxAttempts != 5 || limiter.window != 15*time.Minute {
		t.Fatalf("defaults not applied: %d %s", limiter.maxAttempts, limiter.window)
	}
}
