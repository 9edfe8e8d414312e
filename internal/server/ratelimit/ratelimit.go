// Package ratelimit guards the scoring endpoint with a token bucket per
// client. Every match request costs at least one embedding provider call,
// so the server throttles before the provider's quota does.
package ratelimit

import (
	"sync"
	"time"
)

// Default bucket parameters
const (
	DefaultCapacity   = 10
	DefaultRefillRate = 0.5 // tokens per second
)

// bucket is a token bucket for a single client
type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// Limiter tracks a token bucket per client identifier
type Limiter struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	capacity   int
	refillRate float64
	stop       chan struct{}
}

// NewLimiter creates a limiter with the given burst capacity and refill
// rate in tokens per second. Non-positive values fall back to defaults.
func NewLimiter(capacity int, refillRate float64) *Limiter {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if refillRate <= 0 {
		refillRate = DefaultRefillRate
	}

	l := &Limiter{
		buckets:    make(map[string]*bucket),
		capacity:   capacity,
		refillRate: refillRate,
		stop:       make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow consumes a token for the client, reporting whether the request may
// proceed and how many tokens remain.
func (l *Limiter) Allow(clientID string) (allowed bool, remaining int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: float64(l.capacity), lastRefill: time.Now()}
		l.buckets[clientID] = b
	}

	now := time.Now()
	b.tokens += now.Sub(b.lastRefill).Seconds() * l.refillRate
	if b.tokens > float64(l.capacity) {
		b.tokens = float64(l.capacity)
	}
	b.lastRefill = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true, int(b.tokens)
	}
	return false, 0
}

// Stop terminates the background cleanup goroutine
func (l *Limiter) Stop() {
	close(l.stop)
}

// cleanupLoop drops buckets that have been idle long enough to refill
// completely; they are indistinguishable from fresh ones.
func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.cleanup()
		}
	}
}

func (l *Limiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	idle := time.Duration(float64(l.capacity)/l.refillRate) * time.Second
	cutoff := time.Now().Add(-idle)
	for id, b := range l.buckets {
		if b.lastRefill.Before(cutoff) {
			delete(l.buckets, id)
		}
	}
}
