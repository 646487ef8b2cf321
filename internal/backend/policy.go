package backend

import "strings"

// Rule permits one HTTP method on a path prefix.
type Rule struct {
	Method string
	Prefix string
}

// Policy is an explicit allowlist of backend routes the adapter may
// call. Anything not in the table is denied before network I/O, so
// sensitive backend surface (user administration, password recovery,
// signup, admin endpoints) is unreachable by construction rather than
// by keyword matching.
type Policy struct {
	rules []Rule
}

// NewPolicy creates a policy from an explicit rule table.
func NewPolicy(rules []Rule) *Policy {
	return &Policy{rules: rules}
}

// DefaultPolicy permits exactly the routes this adapter uses: the
// notes, tasks, and categories collections, plus the two identity
// endpoints the token resolver needs. The identity endpoints are never
// exposed as tools.
func DefaultPolicy() *Policy {
	return NewPolicy([]Rule{
		{Method: "GET", Prefix: "/api/v1/notes/"},
		{Method: "POST", Prefix: "/api/v1/notes/"},
		{Method: "PUT", Prefix: "/api/v1/notes/"},
		{Method: "DELETE", Prefix: "/api/v1/notes/"},
		{Method: "GET", Prefix: "/api/v1/tasks/"},
		{Method: "POST", Prefix: "/api/v1/tasks/"},
		{Method: "PUT", Prefix: "/api/v1/tasks/"},
		{Method: "DELETE", Prefix: "/api/v1/tasks/"},
		{Method: "GET", Prefix: "/api/v1/categories/"},
		{Method: "POST", Prefix: "/api/v1/categories/"},
		{Method: "PUT", Prefix: "/api/v1/categories/"},
		{Method: "POST", Prefix: "/api/v1/login/access-token"},
		{Method: "GET", Prefix: "/api/v1/users/me"},
	})
}

// Allow reports whether the method+path combination is in the table.
func (p *Policy) Allow(method, path string) bool {
	for _, r := range p.rules {
		if r.Method == method && strings.HasPrefix(path, r.Prefix) {
			return true
		}
	}
	return false
}
