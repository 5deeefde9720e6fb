package client

import (
	"context"
	"sync"
	"time"
)

// Default throttle settings used when WithThrottle gets non-positive values.
const (
	DefaultThrottleLimit  = 50
	DefaultThrottleWindow = 10 * time.Second
)

// Throttle paces outgoing requests before they reach the network.
type Throttle interface {
	// Acquire blocks until a request slot is available or ctx is done.
	Acquire(ctx context.Context) error
	// WindowCount returns the number of requests in the current window.
	WindowCount() int
	// Remaining returns the requests still available in the current window.
	Remaining() int
	// Reset clears the throttle state.
	Reset()
}

// SlidingWindowThrottle admits at most limit requests in any window-long
// interval. Callers over the limit wait until the oldest request leaves
// the window.
type SlidingWindowThrottle struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	sent   []time.Time
	now    func() time.Time
}

// NewSlidingWindowThrottle creates a new sliding window throttle.
func NewSlidingWindowThrottle(limit int, window time.Duration) *SlidingWindowThrottle {
	if limit <= 0 {
		limit = DefaultThrottleLimit
	}
	if window <= 0 {
		window = DefaultThrottleWindow
	}
	return &SlidingWindowThrottle{
		limit:  limit,
		window: window,
		sent:   make([]time.Time, 0, limit),
		now:    time.Now,
	}
}

// Acquire waits until a request slot is available.
func (t *SlidingWindowThrottle) Acquire(ctx context.Context) error {
	for {
		wait := t.tryAcquire()
		if wait == 0 {
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// tryAcquire records a request and returns 0, or returns how long to wait.
func (t *SlidingWindowThrottle) tryAcquire() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.prune(now)
	if len(t.sent) < t.limit {
		t.sent = append(t.sent, now)
		return 0
	}
	if wait := t.sent[0].Add(t.window).Sub(now); wait > 0 {
		return wait
	}
	return time.Millisecond
}

// prune drops timestamps that have left the window. Caller holds mu.
func (t *SlidingWindowThrottle) prune(now time.Time) {
	cutoff := now.Add(-t.window)
	i := 0
	for i < len(t.sent) && !t.sent[i].After(cutoff) {
		i++
	}
	t.sent = append(t.sent[:0], t.sent[i:]...)
}

// WindowCount returns the number of requests in the current window.
func (t *SlidingWindowThrottle) WindowCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.prune(t.now())
	return len(t.sent)
}

// Remaining returns remaining requests available in the current window.
func (t *SlidingWindowThrottle) Remaining() int {
	return max(0, t.limit-t.WindowCount())
}

// Reset clears the throttle state.
func (t *SlidingWindowThrottle) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sent = t.sent[:0]
}

// noThrottle admits every request immediately.
type noThrottle struct{}

func (noThrottle) Acquire(ctx context.Context) error { return ctx.Err() }
func (noThrottle) WindowCount() int                  { return 0 }
func (noThrottle) Remaining() int                    { return int(^uint(0) >> 1) }
func (noThrottle) Reset()                            {}
