package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"parkplan/config"
)

const (
	defaultRequestsPerSecond = 5
	defaultBurst             = 10
	defaultIdleTTL           = 10 * time.Minute
)

// bucket pairs one identity's limiter with its last activity, so idle
// identities can be evicted.
type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter is a per-identity token bucket. Each UID gets its own bucket,
// created lazily on first use and dropped after IdleTTL of inactivity.
type Limiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	lastPurge time.Time

	rps     rate.Limit
	burst   int
	idleTTL time.Duration
	clock   Clock
}

// New creates a Limiter from configuration, falling back to sane defaults
// when the rate-limit block is absent.
func New(cfg *config.Config, clock Clock) *Limiter {
	rps := rate.Limit(defaultRequestsPerSecond)
	burst := defaultBurst
	idleTTL := defaultIdleTTL

	if rl := cfg.RateLimit; rl != nil {
		if rl.RequestsPerSecond > 0 {
			rps = rate.Limit(rl.RequestsPerSecond)
		}
		if rl.Burst > 0 {
			burst = rl.Burst
		}
		if rl.IdleTTL > 0 {
			idleTTL = rl.IdleTTL
		}
	}

	return &Limiter{
		buckets:   make(map[string]*bucket),
		lastPurge: clock.Now(),
		rps:       rps,
		burst:     burst,
		idleTTL:   idleTTL,
		clock:     clock,
	}
}

// Allow reports whether the identity may perform one more operation now.
// Anonymous callers share a single bucket keyed by the empty string.
func (l *Limiter) Allow(uid string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastPurge) >= l.idleTTL {
		l.purgeLocked(now)
	}

	b, ok := l.buckets[uid]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.buckets[uid] = b
	}
	b.lastSeen = now

	return b.limiter.AllowN(now, 1)
}

// Size returns the number of tracked identities.
func (l *Limiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.buckets)
}

// purgeLocked drops buckets idle longer than IdleTTL. Caller holds the lock.
func (l *Limiter) purgeLocked(now time.Time) {
	for uid, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.idleTTL {
			delete(l.buckets, uid)
		}
	}
	l.lastPurge = now
}
