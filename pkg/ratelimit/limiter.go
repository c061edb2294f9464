package ratelimit

import (
	"context"
	"sync"
	"time"

	"jugaad-deals-be/internal/pkg/logger"
)

const module = "RATELIMIT"

// Clock abstracts time so the window can be driven by tests.
type Clock interface {
	Now() time.Time
	// Sleep waits for d or until ctx is done.
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Limiter is a sliding-window admission gate. Callers over the limit are
// delayed until the oldest admit leaves the window; they are never refused.
type Limiter struct {
	mu       sync.Mutex
	max      int
	window   time.Duration
	requests []time.Time
	clock    Clock
	logger   logger.ILogger
}

func NewLimiter(max int, window time.Duration, log logger.ILogger) *Limiter {
	return NewLimiterWithClock(max, window, log, realClock{})
}

func NewLimiterWithClock(max int, window time.Duration, log logger.ILogger, clock Clock) *Limiter {
	if max <= 0 {
		max = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{
		max:      max,
		window:   window,
		requests: make([]time.Time, 0, max),
		clock:    clock,
		logger:   log,
	}
}

// Admit blocks until the call fits in the window, then records it. Prune,
// check and append happen under the lock; the wait does not, so every caller
// sees its own ctx. Only a cancelled ctx makes it return early, with ctx.Err().
func (l *Limiter) Admit(ctx context.Context) error {
	for {
		wait, ok := l.tryAdmit()
		if ok {
			return nil
		}

		l.logger.Warn(module, "Rate limit reached, waiting before continuing", map[string]interface{}{
			"wait_seconds": wait.Seconds(),
			"max":          l.max,
			"window":       l.window.String(),
		})

		if err := l.clock.Sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// tryAdmit records an admit when there is room, or returns how long until the
// oldest admit leaves the window.
func (l *Limiter) tryAdmit() (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	l.prune(now)

	if len(l.requests) < l.max {
		l.requests = append(l.requests, now)
		return 0, true
	}
	return l.requests[0].Add(l.window).Sub(now), false
}

// prune drops admits that are at least one window old.
func (l *Limiter) prune(now time.Time) {
	cutoff := now.Add(-l.window)
	i := 0
	for i < len(l.requests) && !l.requests[i].After(cutoff) {
		i++
	}
	if i > 0 {
		l.requests = append(l.requests[:0], l.requests[i:]...)
	}
}

// InWindow returns how many admits are currently counted.
func (l *Limiter) InWindow() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prune(l.clock.Now())
	return len(l.requests)
}
