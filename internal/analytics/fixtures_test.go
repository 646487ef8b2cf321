package analytics

import (
	"testing"
	"time"
)

// ts parses an RFC 3339 timestamp for fixtures.
func ts(t *testing.T, s string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("bad fixture timestamp %q: %v", s, err)
	}
	parsed = parsed.UTC()
	return &parsed
}

// refTime is the fixed "now" used across the analytics tests.
func refTime(t *testing.T) time.Time {
	t.Helper()
	return (*ts(t, "2026-08-24T12:00:00Z"))
}
