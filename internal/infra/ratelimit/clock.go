// Package ratelimit holds the per-identity token bucket placed in front of
// every authenticated operation. The per-document write interval enforced by
// the policy engine remains as a backstop only.
package ratelimit

import "time"

// Clock abstracts time for the limiter so tests can drive it deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock {
	return systemClock{}
}
