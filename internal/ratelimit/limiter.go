// Package ratelimit gates outbound provider requests to a sliding-window quota.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/TradingPost_Go/internal/logger"
	"github.com/osse101/TradingPost_Go/internal/metrics"
)

// Config describes the provider quota.
type Config struct {
	RequestsPerMinute int
	SafetyMargin      float64
	Window            time.Duration
	Cooldown          time.Duration
}

// DefaultConfig returns the provider's published quota with a 10% margin
func DefaultConfig() Config {
	return Config{
		RequestsPerMinute: DefaultRequestsPerMinute,
		SafetyMargin:      DefaultSafetyMargin,
		Window:            DefaultWindow,
		Cooldown:          DefaultCooldown,
	}
}

// Threshold is the number of requests allowed inside one window
func (c Config) Threshold() int {
	n := int(float64(c.RequestsPerMinute) * c.SafetyMargin)
	if n < 1 {
		return 1
	}
	return n
}

// Limiter keeps a log of issued request timestamps. When the trailing window
// is full it sleeps for a fixed cool-down and rechecks rather than computing
// the exact wait.
type Limiter struct {
	mu        sync.Mutex
	clock     clockwork.Clock
	window    time.Duration
	cooldown  time.Duration
	threshold int
	history   []time.Time
}

// New creates a limiter. A nil clock uses the real clock.
func New(cfg Config, clock clockwork.Clock) *Limiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultCooldown
	}
	return &Limiter{
		clock:     clock,
		window:    cfg.Window,
		cooldown:  cfg.Cooldown,
		threshold: cfg.Threshold(),
	}
}

// Acquire blocks until one more request fits in the quota, then records it.
// It only returns an error when ctx is done while cooling down.
func (l *Limiter) Acquire(ctx context.Context) error {
	for {
		if l.tryRecord() {
			return nil
		}

		metrics.RateLimitWaits.Inc()
		logger.FromContext(ctx).Warn(LogMsgQuotaReached, "cooldown", l.cooldown, "threshold", l.threshold)

		select {
		case <-l.clock.After(l.cooldown):
			logger.FromContext(ctx).Info(LogMsgResuming)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// InWindow returns how many requests were issued in the trailing window
func (l *Limiter) InWindow() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prune(l.clock.Now())
	return len(l.history)
}

func (l *Limiter) tryRecord() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	l.prune(now)
	if len(l.history) >= l.threshold {
		return false
	}
	l.history = append(l.history, now)
	return true
}

// prune drops timestamps outside the trailing window
// Caller must hold the mutex
func (l *Limiter) prune(now time.Time) {
	start := now.Add(-l.window)
	keep := 0
	for keep < len(l.history) && !l.history[keep].After(start) {
		keep++
	}
	if keep > 0 {
		l.history = append(l.history[:0], l.history[keep:]...)
	}
}
