package client

import (
	"context"
	"math"
	"sync"
	"time"
)

// TokenBucketThrottle admits bursts of up to burst requests and refills at
// rate requests per second. Install it with WithCustomThrottle.
type TokenBucketThrottle struct {
	mu         sync.Mutex
	tokens     float64
	burst      float64
	rate       float64 // tokens per second
	lastRefill time.Time
	admitted   int
	now        func() time.Time
}

// NewTokenBucketThrottle creates a token bucket throttle. Non-positive
// arguments fall back to the sliding window defaults spread over a second.
func NewTokenBucketThrottle(rate float64, burst int) *TokenBucketThrottle {
	if rate <= 0 {
		rate = float64(DefaultThrottleLimit) / DefaultThrottleWindow.Seconds()
	}
	if burst <= 0 {
		burst = int(math.Ceil(rate))
	}
	return &TokenBucketThrottle{
		tokens:     float64(burst),
		burst:      float64(burst),
		rate:       rate,
		lastRefill: time.Now(),
		now:        time.Now,
	}
}

// Acquire blocks until a token is available or ctx is done.
func (t *TokenBucketThrottle) Acquire(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		t.mu.Lock()
		t.refill()
		if t.tokens >= 1 {
			t.tokens--
			t.admitted++
			t.mu.Unlock()
			return nil
		}
		wait := time.Duration((1 - t.tokens) / t.rate * float64(time.Second))
		t.mu.Unlock()

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// refill must be called with t.mu held.
func (t *TokenBucketThrottle) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed > 0 {
		t.tokens = min(t.tokens+elapsed*t.rate, t.burst)
	}
	t.lastRefill = now
}

// WindowCount returns the number of requests admitted since the last Reset.
func (t *TokenBucketThrottle) WindowCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.admitted
}

// Remaining returns the whole tokens currently in the bucket.
func (t *TokenBucketThrottle) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.refill()
	return int(t.tokens)
}

// Reset refills the bucket.
func (t *TokenBucketThrottle) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tokens = t.burst
	t.admitted = 0
	t.lastRefill = t.now()
}
