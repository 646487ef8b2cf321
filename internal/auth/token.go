// Package auth resolves the bearer token used for backend calls.
//
// Tool callers pass a "user_id" parameter that is either already a JWT
// (used as-is — the backend validates it) or an opaque user name, in
// which case the resolver logs in with the configured credentials and
// caches the resulting token until shortly before it expires.
//
// Tokens are never verified here: decoding is limited to reading the
// exp claim from the payload segment so the cache knows when to
// refresh. The backend is the only verifier.
package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// expiryMargin refreshes cached tokens slightly before their exp claim
// so a token never goes stale mid-request.
const expiryMargin = 30 * time.Second

// LoginClient obtains tokens from the backend. *backend.Client
// satisfies it.
type LoginClient interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Resolver turns tool-level user identifiers into bearer tokens.
type Resolver struct {
	backend  LoginClient
	email    string
	password string
	log      zerolog.Logger
	now      func() time.Time

	mu     sync.Mutex
	cached string
	expiry time.Time
}

// NewResolver creates a Resolver with the given fallback credentials.
func NewResolver(backend LoginClient, email, password string, log zerolog.Logger) *Resolver {
	return &Resolver{
		backend:  backend,
		email:    email,
		password: password,
		log:      log,
		now:      time.Now,
	}
}

// Resolve returns the bearer token for a tool call. If user already
// looks like a JWT it is passed through untouched. Otherwise the
// cached login token is reused while valid, or a fresh login is
// performed. When login fails the original identifier is returned so
// the backend produces a meaningful auth error instead of the tool
// failing silently.
func (r *Resolver) Resolve(ctx context.Context, user string) string {
	if LooksLikeToken(user) {
		return user
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != "" && r.now().Add(expiryMargin).Before(r.expiry) {
		return r.cached
	}

	token, err := r.backend.Login(ctx, r.email, r.password)
	if err != nil {
		r.log.Warn().Err(err).Msg("token resolution failed, passing identifier through")
		return user
	}

	r.cached = token
	r.expiry = tokenExpiry(token)
	return token
}

// LooksLikeToken reports whether s is plausibly a JWT: three
// dot-separated segments and long enough to not be a plain user name.
func LooksLikeToken(s string) bool {
	return len(s) > 50 && strings.Count(s, ".") == 2
}

// tokenExpiry reads the exp claim from a JWT without verifying it.
// Tokens without a readable exp claim get a short fixed lifetime so
// the cache still refreshes.
func tokenExpiry(token string) time.Time {
	fallback := time.Now().Add(5 * time.Minute)

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return fallback
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return fallback
	}
	var claims struct {
		Exp int64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil || claims.Exp == 0 {
		return fallback
	}
	return time.Unix(claims.Exp, 0)
}
