package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	limiter := NewLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("openai") {
			t.Errorf("request %d: expected allowed within burst", i)
		}
	}

	if limiter.Allow("openai") {
		t.Error("expected request beyond burst to be denied")
	}
}

func TestLimiter_EndpointsAreIndependent(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if !limiter.Allow("openai") {
		t.Error("expected first openai request allowed")
	}
	if limiter.Allow("openai") {
		t.Error("expected second openai request denied")
	}
	// A different endpoint has its own bucket.
	if !limiter.Allow("ollama") {
		t.Error("expected ollama request allowed")
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	limiter := NewLimiter(0.001, 1)

	// Drain the burst so the next Wait would block for a long time.
	if !limiter.Allow("openai") {
		t.Fatal("expected burst request allowed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := limiter.Wait(ctx, "openai"); err == nil {
		t.Error("expected context deadline error")
	}
}

func TestLimiter_SetEndpointRate(t *testing.T) {
	limiter := NewLimiter(1, 1)
	limiter.SetEndpointRate("openai", 100, 10)

	allowed := 0
	for i := 0; i < 10; i++ {
		if limiter.Allow("openai") {
			allowed++
		}
	}
	if allowed != 10 {
		t.Errorf("expected custom burst of 10, got %d allowed", allowed)
	}
}

func TestLimiter_DefaultBurst(t *testing.T) {
	limiter := NewLimiter(1, 0)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected default burst 5, got %d", limiter.defaultBurst)
	}
}
