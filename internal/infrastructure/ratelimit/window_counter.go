package ratelimit

import (
	"sync"
	"time"
)

// WindowCounter is a fixed-window per-key request counter.
//
// It backs both the HTTP rate-limit middleware (keyed by client IP) and the
// fraud scorer's velocity rule (keyed by customer document). Fixed windows are
// less precise at boundaries than sliding ones but need no external store.

type WindowCounter struct {
	mu      sync.Mutex
	window  time.Duration
	buckets map[string]*bucket
	now     func() time.Time
}

type bucket struct {
	count   int64
	started time.Time
}

func NewWindowCounter(window time.Duration) *WindowCounter {
	return &WindowCounter{
		window:  window,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Incr records one hit for key and returns the count accumulated in the
// current window, including this hit.
func (c *WindowCounter) Incr(key string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	b, ok := c.buckets[key]
	if !ok || now.Sub(b.started) >= c.window {
		b = &bucket{started: now}
		c.buckets[key] = b
	}
	b.count++
	return b.count
}

// Allow records one hit and reports whether key is still within limit.
func (c *WindowCounter) Allow(key string, limit int64) bool {
	return c.Incr(key) <= limit
}
