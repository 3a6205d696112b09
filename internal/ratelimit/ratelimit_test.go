package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		docsPerSecond float64
		burst         int
		wantRate      float64
		wantBurst     int
	}{
		{name: "unlimited_zero", docsPerSecond: 0, burst: 1, wantRate: 0, wantBurst: 1},
		{name: "unlimited_negative", docsPerSecond: -3, burst: 1, wantRate: 0, wantBurst: 1},
		{name: "limited_ten", docsPerSecond: 10, burst: 1, wantRate: 10, wantBurst: 1},
		{name: "limited_fractional", docsPerSecond: 0.5, burst: 2, wantRate: 0.5, wantBurst: 2},
		{name: "burst_clamped", docsPerSecond: 5, burst: 0, wantRate: 5, wantBurst: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			limiter := New(tt.docsPerSecond, tt.burst)
			if got := limiter.Rate(); got != tt.wantRate {
				t.Errorf("Rate() = %v, want %v", got, tt.wantRate)
			}
			if got := limiter.Burst(); got != tt.wantBurst {
				t.Errorf("Burst() = %v, want %v", got, tt.wantBurst)
			}
		})
	}
}

func TestLimiter_Allow(t *testing.T) {
	t.Run("unlimited_allows_all", func(t *testing.T) {
		limiter := New(0, 1)
		for i := range 100 {
			if !limiter.Allow() {
				t.Fatalf("document %d denied by unlimited limiter", i)
			}
		}
	})

	t.Run("limited_spends_burst", func(t *testing.T) {
		limiter := New(1, 2)
		if !limiter.Allow() || !limiter.Allow() {
			t.Fatal("burst documents should be allowed")
		}
		if limiter.Allow() {
			t.Error("document past the burst should be denied")
		}
	})
}

func TestLimiter_Wait(t *testing.T) {
	t.Run("unlimited_no_wait", func(t *testing.T) {
		limiter := New(0, 1)

		start := time.Now()
		for range 50 {
			if err := limiter.Wait(context.Background()); err != nil {
				t.Fatalf("Wait() error = %v", err)
			}
		}
		if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
			t.Errorf("unlimited limiter took %v", elapsed)
		}
	})

	t.Run("limited_paces_documents", func(t *testing.T) {
		limiter := New(20, 1)

		if err := limiter.Wait(context.Background()); err != nil {
			t.Fatalf("first Wait() error = %v", err)
		}

		start := time.Now()
		if err := limiter.Wait(context.Background()); err != nil {
			t.Fatalf("second Wait() error = %v", err)
		}
		if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
			t.Errorf("second document waited %v, expected about 50ms", elapsed)
		}
	})

	t.Run("cancelled_context_unlimited", func(t *testing.T) {
		limiter := New(0, 1)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := limiter.Wait(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("Wait() error = %v, want context.Canceled", err)
		}
	})

	t.Run("deadline_before_next_token", func(t *testing.T) {
		limiter := New(1, 1)
		if err := limiter.Wait(context.Background()); err != nil {
			t.Fatalf("first Wait() error = %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		if err := limiter.Wait(ctx); err == nil {
			t.Error("Wait() should fail when the deadline precedes the next token")
		}
	})
}
