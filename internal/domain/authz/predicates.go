package authz

import (
	"encoding/json"
	"regexp"
	"time"
	"unicode/utf8"
)

const (
	// MaxDocumentBytes is the serialized size ceiling for any single write.
	MaxDocumentBytes = 1 << 20

	// MinWriteInterval is the minimum gap between successive writes to the
	// same document. This is a per-document backstop only; the real limiter
	// is the per-identity token bucket in front of the services.
	MinWriteInterval = time.Second
)

// Timestamp sanity bounds. Values outside this window are treated as clock
// skew or garbage, not as valid data.
var (
	timestampFloor = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	timestampCeil  = time.Date(2030, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// Shape-only checks. No DNS or liveness verification.
var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	urlPattern   = regexp.MustCompile(`^https?://[^\s]+$`)
)

// ValidTimestamp reports whether t lies strictly between the fixed epoch bounds.
func ValidTimestamp(t time.Time) bool {
	return t.After(timestampFloor) && t.Before(timestampCeil)
}

// ValidString reports whether s is within the given rune-length bounds.
func ValidString(s string, minLen, maxLen int) bool {
	n := utf8.RuneCountInString(s)

	return n >= minLen && n <= maxLen
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return ValidString(s, 3, 254) && emailPattern.MatchString(s)
}

// ValidURL reports whether s looks like an http(s) URL.
func ValidURL(s string) bool {
	return ValidString(s, 10, 2048) && urlPattern.MatchString(s)
}

// WithinSizeLimit reports whether the serialized document stays below the
// size ceiling. A document that cannot be serialized fails the check.
func WithinSizeLimit(doc Document) bool {
	raw, err := json.Marshal(doc)
	if err != nil {
		return false
	}

	return len(raw) < MaxDocumentBytes
}

// WriteIntervalElapsed reports whether a write to a document is permitted
// under the per-document throttle: allowed when no prior write exists, or
// when more than MinWriteInterval has passed since the document's last
// recorded write timestamp.
func WriteIntervalElapsed(old Document, now time.Time) bool {
	if old == nil {
		return true
	}

	last, ok := old.GetTime("updatedAt")
	if !ok {
		return true
	}

	return now.Sub(last) > MinWriteInterval
}
