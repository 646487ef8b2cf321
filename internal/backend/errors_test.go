package backend

import (
	"errors"
	"strings"
	"testing"
)

func TestUpstreamErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  UpstreamError
		want string
	}{
		{"auth", UpstreamError{Op: "list notes", StatusCode: 401},
			"list notes: authentication failed: invalid or expired token"},
		{"forbidden", UpstreamError{Op: "list notes", StatusCode: 403},
			"list notes: authorization failed: insufficient permissions"},
		{"rate limited", UpstreamError{Op: "list notes", StatusCode: 429},
			"list notes: rate limit exceeded: too many requests"},
		{"detail", UpstreamError{Op: "create note", StatusCode: 422, Detail: "title required"},
			"create note: request failed: title required"},
		{"no detail", UpstreamError{Op: "create note", StatusCode: 404},
			"create note: request failed: HTTP 404"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Errorf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUpstreamErrorNetwork(t *testing.T) {
	inner := errors.New("connection refused")
	e := &UpstreamError{Op: "list tasks", Err: inner}

	if !strings.Contains(e.Error(), "network error") {
		t.Errorf("Error() = %q, want network error message", e.Error())
	}
	if !errors.Is(e, inner) {
		t.Error("Unwrap should expose the underlying error")
	}
}

func TestUpstreamErrorRecoverable(t *testing.T) {
	cases := []struct {
		status int
		want   bool
	}{
		{0, true},
		{408, true},
		{429, true},
		{500, true},
		{503, true},
		{400, false},
		{401, false},
		{403, false},
		{404, false},
		{422, false},
	}
	for _, tc := range cases {
		e := &UpstreamError{StatusCode: tc.status}
		if got := e.Recoverable(); got != tc.want {
			t.Errorf("Recoverable(%d) = %v, want %v", tc.status, got, tc.want)
		}
	}
}
