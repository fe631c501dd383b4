package service

// RateLimiter admits or rejects operations per identity. Anonymous callers
// share one bucket keyed by the empty string.
type RateLimiter interface {
	// Allow reports whether the identity may perform one more operation now.
	Allow(uid string) bool
}
