package authz

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"inside window", time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC), true},
		{"before floor", time.Date(2019, 12, 31, 23, 59, 59, 0, time.UTC), false},
		{"exactly floor", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"after ceiling", time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"zero value", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ValidTimestamp(tt.t))
		})
	}
}

func TestValidString(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidString("hello", 1, 10))
	assert.False(t, ValidString("", 1, 10))
	assert.False(t, ValidString("too long for the limit", 1, 10))
	// Rune length, not byte length.
	assert.True(t, ValidString("café", 1, 4))
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidEmail("traveler@example.com"))
	assert.True(t, ValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("@example.com"))
	assert.False(t, ValidEmail("user@"))
	assert.False(t, ValidEmail(""))
}

func TestValidURL(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidURL("https://example.com/photo.png"))
	assert.True(t, ValidURL("http://example.com/a"))
	assert.False(t, ValidURL("ftp://example.com/file"))
	assert.False(t, ValidURL("example.com"))
	assert.False(t, ValidURL("https://bad url.com"))
}

func TestWithinSizeLimit(t *testing.T) {
	t.Parallel()

	assert.True(t, WithinSizeLimit(Document{"name": "small"}))

	huge := Document{"blob": strings.Repeat("x", MaxDocumentBytes)}
	assert.False(t, WithinSizeLimit(huge))

	// The ceiling is exclusive. {"blob":"..."} adds 11 bytes of framing, so
	// this document serializes to exactly MaxDocumentBytes.
	exact := Document{"blob": strings.Repeat("x", MaxDocumentBytes-11)}
	assert.False(t, WithinSizeLimit(exact))
	assert.True(t, WithinSizeLimit(Document{"blob": strings.Repeat("x", MaxDocumentBytes-12)}))
}

func TestWriteIntervalElapsed(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// First write to a path is always permitted.
	assert.True(t, WriteIntervalElapsed(nil, now))
	assert.True(t, WriteIntervalElapsed(Document{"name": "no timestamp"}, now))

	recent := Document{"updatedAt": now.Add(-500 * time.Millisecond)}
	assert.False(t, WriteIntervalElapsed(recent, now))

	exact := Document{"updatedAt": now.Add(-time.Second)}
	assert.False(t, WriteIntervalElapsed(exact, now))

	stale := Document{"updatedAt": now.Add(-1100 * time.Millisecond)}
	assert.True(t, WriteIntervalElapsed(stale, now))
}

func TestUnchanged(t *testing.T) {
	t.Parallel()

	old := Document{"createdBy": "alice", "name": "Trip"}
	updated := Document{"createdBy": "alice", "name": "Renamed"}
	assert.True(t, Unchanged(old, updated, "createdBy"))
	assert.False(t, Unchanged(old, updated, "name"))

	// Absent from both sides counts as unchanged.
	assert.True(t, Unchanged(old, updated, "missing"))

	// time.Time and its RFC3339 form compare equal.
	ts := time.Date(2026, 5, 1, 8, 30, 0, 0, time.UTC)
	a := Document{"createdAt": ts}
	b := Document{"createdAt": ts.Format(time.RFC3339Nano)}
	assert.True(t, Unchanged(a, b, "createdAt"))
}

func TestOnlyChanged(t *testing.T) {
	t.Parallel()

	old := Document{"body": "hi", "reactions": map[string]any{}}
	updated := Document{"body": "hi", "reactions": map[string]any{"u1": "👍"}}
	assert.True(t, OnlyChanged(old, updated, "reactions"))

	tampered := Document{"body": "changed", "reactions": map[string]any{"u1": "👍"}}
	assert.False(t, OnlyChanged(old, tampered, "reactions"))

	// Introducing a key outside the allowed set fails.
	extra := Document{"body": "hi", "reactions": map[string]any{}, "pinned": true}
	assert.False(t, OnlyChanged(old, extra, "reactions"))
}

func TestDocumentOf(t *testing.T) {
	t.Parallel()

	type model struct {
		CreatedBy string `json:"createdBy"`
		Adults    int    `json:"adults"`
	}

	doc, err := DocumentOf(&model{CreatedBy: "alice", Adults: 2})
	assert.NoError(t, err)
	assert.Equal(t, "alice", doc.GetString("createdBy"))
	assert.Equal(t, float64(2), doc.GetFloat("adults"))
	assert.True(t, doc.Has("createdBy", "adults"))
	assert.False(t, doc.Has("missing"))
}
