package rate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, cfg Config) (*Limiter, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(client, cfg), mr
}

func TestLimiterBudget(t *testing.T) {
	limiter, _ := newTestLimiter(t, Config{
		EnableIPThrottle: true,
		MaxAttempts:      3,
		Cooldown:         time.Minute,
	})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := limiter.Check(ctx, "ann@example.com", "10.0.0.1"); err != nil {
			t.Fatalf("attempt %d: unexpected check failure: %v", i, err)
		}
		if err := limiter.Increment(ctx, "ann@example.com", "10.0.0.1"); err != nil {
			t.Fatalf("attempt %d: unexpected increment failure: %v", i, err)
		}
	}

	if err := limiter.Increment(ctx, "ann@example.com", "10.0.0.1"); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if err := limiter.Check(ctx, "ann@example.com", "10.0.0.1"); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited on check, got %v", err)
	}
}

func TestLimiterWindowExpiry(t *testing.T) {
	limiter, mr := newTestLimiter(t, Config{
		MaxAttempts: 1,
		Cooldown:    time.Minute,
	})
	ctx := context.Background()

	if err := limiter.Increment(ctx, "ann@example.com", ""); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if err := limiter.Increment(ctx, "ann@example.com", ""); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if err := limiter.Check(ctx, "ann@example.com", ""); err != nil {
		t.Fatalf("expected window to have expired, got %v", err)
	}
}

func TestLimiterReset(t *testing.T) {
	limiter, _ := newTestLimiter(t, Config{
		EnableIPThrottle: true,
		MaxAttempts:      1,
		Cooldown:         time.Minute,
	})
	ctx := context.Background()

	if err := limiter.Increment(ctx, "ann@example.com", "10.0.0.1"); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if err := limiter.Reset(ctx, "ann@example.com", "10.0.0.1"); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	attempts, err := limiter.Attempts(ctx, "ann@example.com")
	if err != nil {
		t.Fatalf("Attempts failed: %v", err)
	}
	if attempts != 0 {
		t.Fatalf("expected counter cleared, got %d", attempts)
	}
}

func TestLimiterBackendDown(t *testing.T) {
	limiter, mr := newTestLimiter(t, Config{
		MaxAttempts: 1,
		Cooldown:    time.Minute,
	})
	mr.Close()

	err := limiter.Increment(context.Background(), "ann@example.com", "")
	if !errors.Is(err, ErrRedisUnavailable) {
		t.Fatalf("expected ErrRedisUnavailable, got %v", err)
	}
}
