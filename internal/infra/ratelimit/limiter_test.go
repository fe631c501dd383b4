package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"parkplan/config"
)

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestLimiter(rps float64, burst int, idleTTL time.Duration) (*Limiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)}
	cfg := &config.Config{
		RateLimit: &config.RateLimitConfig{
			RequestsPerSecond: rps,
			Burst:             burst,
			IdleTTL:           idleTTL,
		},
	}

	return New(cfg, clock), clock
}

func TestLimiter_BurstThenThrottle(t *testing.T) {
	t.Parallel()

	limiter, clock := newTestLimiter(1, 3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("alice"), "burst request %d", i)
	}
	assert.False(t, limiter.Allow("alice"))

	// One token refills per second.
	clock.advance(time.Second)
	assert.True(t, limiter.Allow("alice"))
	assert.False(t, limiter.Allow("alice"))
}

func TestLimiter_IdentitiesAreIndependent(t *testing.T) {
	t.Parallel()

	limiter, _ := newTestLimiter(1, 1, time.Minute)

	assert.True(t, limiter.Allow("alice"))
	assert.False(t, limiter.Allow("alice"))

	// Bob's bucket is untouched by alice's burn rate.
	assert.True(t, limiter.Allow("bob"))
}

func TestLimiter_EvictsIdleIdentities(t *testing.T) {
	t.Parallel()

	limiter, clock := newTestLimiter(1, 1, time.Minute)

	limiter.Allow("alice")
	limiter.Allow("bob")
	assert.Equal(t, 2, limiter.Size())

	// Only carol stays active past the idle window.
	clock.advance(2 * time.Minute)
	limiter.Allow("carol")
	assert.Equal(t, 1, limiter.Size())
}

func TestLimiter_DefaultsWhenUnconfigured(t *testing.T) {
	t.Parallel()

	limiter := New(&config.Config{}, SystemClock())

	for i := 0; i < defaultBurst; i++ {
		assert.True(t, limiter.Allow("alice"))
	}
	assert.False(t, limiter.Allow("alice"))
}
