// Package authz is the authorization core: validation predicates, identity
// and membership resolution, and the per-collection access policy evaluated
// in front of every data-access call. Policy evaluation is default-deny, and
// every failure collapses into a single opaque permission error so callers
// cannot probe for resource existence.
package authz

import (
	"encoding/json"
	"reflect"
	"time"

	"parkplan/internal/errors"
)

// Document is the generic key/value view of a stored record that the policy
// evaluates. Keys follow the wire-level camelCase naming of the persistence
// models, not Go field names.
type Document map[string]any

// DocumentOf converts a persistence model into a Document by round-tripping
// it through JSON, so the policy sees exactly the keys the store would see.
func DocumentOf(v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshal document")
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "unmarshal document")
	}

	return doc, nil
}

// Has reports whether every listed key is present.
func (d Document) Has(keys ...string) bool {
	for _, key := range keys {
		if _, ok := d[key]; !ok {
			return false
		}
	}

	return true
}

// GetString returns the string value of a key, or "" when absent or not a string.
func (d Document) GetString(key string) string {
	s, _ := d[key].(string)

	return s
}

// GetBool returns the boolean value of a key, or false when absent or not a bool.
func (d Document) GetBool(key string) bool {
	b, _ := d[key].(bool)

	return b
}

// GetFloat returns the numeric value of a key, or 0 when absent or not numeric.
func (d Document) GetFloat(key string) float64 {
	switch v := d[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()

		return f
	default:
		return 0
	}
}

// GetTime returns the timestamp value of a key. Values arrive either as
// time.Time (documents built in process) or as RFC3339 strings (documents
// that went through JSON).
func (d Document) GetTime(key string) (time.Time, bool) {
	switch v := d[key].(type) {
	case time.Time:
		return v, true
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return time.Time{}, false
		}

		return t, true
	default:
		return time.Time{}, false
	}
}

// Unchanged reports whether every listed key carries the same value in both
// document states. A key absent from both counts as unchanged.
func Unchanged(old, updated Document, keys ...string) bool {
	for _, key := range keys {
		if !equalValue(old[key], updated[key]) {
			return false
		}
	}

	return true
}

// OnlyChanged reports whether every key outside the allowed set is unchanged
// between the two document states.
func OnlyChanged(old, updated Document, allowed ...string) bool {
	allow := make(map[string]bool, len(allowed))
	for _, key := range allowed {
		allow[key] = true
	}

	for key := range old {
		if !allow[key] && !equalValue(old[key], updated[key]) {
			return false
		}
	}

	for key := range updated {
		if _, seen := old[key]; seen {
			continue
		}
		if !allow[key] {
			return false
		}
	}

	return true
}

// equalValue compares document values, treating time.Time and its RFC3339
// string form as the same value.
func equalValue(a, b any) bool {
	if at, aok := asTime(a); aok {
		bt, bok := asTime(b)

		return bok && at.Equal(bt)
	}

	return reflect.DeepEqual(a, b)
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return time.Time{}, false
		}

		return parsed, true
	default:
		return time.Time{}, false
	}
}
