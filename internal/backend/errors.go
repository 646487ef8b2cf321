package backend

import (
	"errors"
	"fmt"
)

// ErrRouteDenied is returned when a request targets a method+path
// combination outside the route policy table. It is raised before any
// network I/O happens.
var ErrRouteDenied = errors.New("backend route not permitted by policy")

// UpstreamError describes a failed backend call: network failure,
// auth rejection, or a non-2xx response. StatusCode is 0 for
// network-level failures.
type UpstreamError struct {
	Op         string
	StatusCode int
	Detail     string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode == 401:
		return fmt.Sprintf("%s: authentication failed: invalid or expired token", e.Op)
	case e.StatusCode == 403:
		return fmt.Sprintf("%s: authorization failed: insufficient permissions", e.Op)
	case e.StatusCode == 429:
		return fmt.Sprintf("%s: rate limit exceeded: too many requests", e.Op)
	case e.StatusCode >= 400:
		if e.Detail != "" {
			return fmt.Sprintf("%s: request failed: %s", e.Op, e.Detail)
		}
		return fmt.Sprintf("%s: request failed: HTTP %d", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: request failed", e.Op)
	}
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Recoverable reports whether retrying the request could succeed.
// Client errors are final except for timeouts and rate limiting;
// server errors and network failures are transient.
func (e *UpstreamError) Recoverable() bool {
	switch {
	case e.StatusCode == 0:
		return true // network-level failure
	case e.StatusCode == 408, e.StatusCode == 429:
		return true
	case e.StatusCode >= 500:
		return true
	default:
		return false
	}
}
