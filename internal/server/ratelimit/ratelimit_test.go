package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllow_ConsumesBurst(t *testing.T) {
	limiter := NewLimiter(3, 0.001)
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("client-a")
		assert.True(t, allowed, "request %d within burst should pass", i+1)
	}

	allowed, remaining := limiter.Allow("client-a")
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(1, 0.001)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("client-a")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("client-a")
	assert.False(t, allowed)

	allowed, _ = limiter.Allow("client-b")
	assert.True(t, allowed)
}

func TestNewLimiter_Defaults(t *testing.T) {
	limiter := NewLimiter(0, -1)
	defer limiter.Stop()

	assert.Equal(t, DefaultCapacity, limiter.capacity)
	assert.Equal(t, DefaultRefillRate, limiter.refillRate)
}
