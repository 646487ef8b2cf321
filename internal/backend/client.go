// Package backend is the authenticated REST client for the notes and
// tasks backend. It is a thin transport layer: it fetches and decodes
// records, enforces the route policy, and retries transient failures.
// All interpretation of records happens in internal/analytics.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client talks to the backend over authenticated HTTP.
type Client struct {
	http        *resty.Client
	policy      *Policy
	maxAttempts int
	log         zerolog.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL     string
	Timeout     time.Duration
	MaxAttempts int
	Policy      *Policy
	Logger      zerolog.Logger
}

// New creates a backend client. A nil policy falls back to the default
// allowlist.
func New(opts Options) *Client {
	if opts.Policy == nil {
		opts.Policy = DefaultPolicy()
	}
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}

	c := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(opts.Timeout)

	return &Client{
		http:        c,
		policy:      opts.Policy,
		maxAttempts: opts.MaxAttempts,
		log:         opts.Logger,
	}
}

// ListQuery holds list-endpoint filters. Zero values mean "omit".
type ListQuery struct {
	Limit  int
	Skip   int
	Search string
	Status string
}

func (q ListQuery) params() map[string]string {
	p := map[string]string{}
	if q.Limit > 0 {
		p["limit"] = strconv.Itoa(q.Limit)
	}
	if q.Skip > 0 {
		p["skip"] = strconv.Itoa(q.Skip)
	}
	if q.Search != "" {
		p["search"] = q.Search
	}
	if q.Status != "" {
		p["status"] = q.Status
	}
	return p
}

// ListNotes fetches notes as raw records for the normalizer.
func (c *Client) ListNotes(ctx context.Context, token string, q ListQuery) ([]map[string]any, error) {
	body, err := c.do(ctx, "list notes", "GET", "/api/v1/notes/", token, nil, q.params())
	if err != nil {
		return nil, err
	}
	return decodeEnvelope(body), nil
}

// ListTasks fetches tasks as raw records, optionally filtered by
// status.
func (c *Client) ListTasks(ctx context.Context, token string, q ListQuery) ([]map[string]any, error) {
	body, err := c.do(ctx, "list tasks", "GET", "/api/v1/tasks/", token, nil, q.params())
	if err != nil {
		return nil, err
	}
	return decodeEnvelope(body), nil
}

// ListCategories fetches all categories as raw records.
func (c *Client) ListCategories(ctx context.Context, token string) ([]map[string]any, error) {
	body, err := c.do(ctx, "list categories", "GET", "/api/v1/categories/", token, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope(body), nil
}

// CreateNote creates a note and returns the created record.
func (c *Client) CreateNote(ctx context.Context, token string, payload map[string]any) (map[string]any, error) {
	return c.doRecord(ctx, "create note", "POST", "/api/v1/notes/", token, payload)
}

// UpdateNote applies a partial update to a note.
func (c *Client) UpdateNote(ctx context.Context, token, noteID string, payload map[string]any) (map[string]any, error) {
	return c.doRecord(ctx, "update note", "PUT", "/api/v1/notes/"+noteID, token, payload)
}

// DeleteNote deletes a note by id.
func (c *Client) DeleteNote(ctx context.Context, token, noteID string) error {
	_, err := c.do(ctx, "delete note", "DELETE", "/api/v1/notes/"+noteID, token, nil, nil)
	return err
}

// CreateTask creates a task and returns the created record.
func (c *Client) CreateTask(ctx context.Context, token string, payload map[string]any) (map[string]any, error) {
	return c.doRecord(ctx, "create task", "POST", "/api/v1/tasks/", token, payload)
}

// UpdateTask applies a partial update to a task.
func (c *Client) UpdateTask(ctx context.Context, token, taskID string, payload map[string]any) (map[string]any, error) {
	return c.doRecord(ctx, "update task", "PUT", "/api/v1/tasks/"+taskID, token, payload)
}

// DeleteTask deletes a task by id.
func (c *Client) DeleteTask(ctx context.Context, token, taskID string) error {
	_, err := c.do(ctx, "delete task", "DELETE", "/api/v1/tasks/"+taskID, token, nil, nil)
	return err
}

// CreateCategory creates a category and returns the created record.
func (c *Client) CreateCategory(ctx context.Context, token string, payload map[string]any) (map[string]any, error) {
	return c.doRecord(ctx, "create category", "POST", "/api/v1/categories/", token, payload)
}

// Login exchanges credentials for an access token via the OAuth2
// password grant (form-encoded, "username" carries the email).
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	const op = "login"
	const path = "/api/v1/login/access-token"
	if !c.policy.Allow("POST", path) {
		return "", fmt.Errorf("%s: %w", op, ErrRouteDenied)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString()).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(map[string]string{
			"username": email,
			"password": password,
		}).
		Post(path)
	if err != nil {
		return "", &UpstreamError{Op: op, Err: err}
	}
	if resp.IsError() {
		return "", &UpstreamError{Op: op, StatusCode: resp.StatusCode(), Detail: detailOf(resp.Body())}
	}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(resp.Body(), &out); err != nil || out.AccessToken == "" {
		return "", &UpstreamError{Op: op, StatusCode: resp.StatusCode(), Detail: "no access token in response"}
	}
	return out.AccessToken, nil
}

// CurrentUser fetches the profile behind a token.
func (c *Client) CurrentUser(ctx context.Context, token string) (map[string]any, error) {
	return c.doRecord(ctx, "current user", "GET", "/api/v1/users/me", token, nil)
}

// doRecord runs a request and decodes the response body as a single
// record.
func (c *Client) doRecord(ctx context.Context, op, method, path, token string, payload map[string]any) (map[string]any, error) {
	body, err := c.do(ctx, op, method, path, token, payload, nil)
	if err != nil {
		return nil, err
	}
	var record map[string]any
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, &UpstreamError{Op: op, Detail: "malformed response body", Err: err}
	}
	return record, nil
}

// do runs one backend request with policy enforcement and
// exponential-backoff retries for recoverable failures.
func (c *Client) do(ctx context.Context, op, method, path, token string, body any, query map[string]string) ([]byte, error) {
	if !c.policy.Allow(method, path) {
		c.log.Warn().Str("method", method).Str("path", path).Msg("route denied by policy")
		return nil, fmt.Errorf("%s: %w", op, ErrRouteDenied)
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 250 * time.Millisecond
	exp.MaxInterval = 5 * time.Second
	exp.Reset()

	var lastErr *UpstreamError
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		req := c.http.R().
			SetContext(ctx).
			SetHeader("X-Request-ID", uuid.NewString())
		if token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		if len(query) > 0 {
			req.SetQueryParams(query)
		}
		if body != nil {
			req.SetBody(body)
		}

		resp, err := req.Execute(method, path)
		switch {
		case err != nil:
			lastErr = &UpstreamError{Op: op, Err: err}
		case resp.IsError():
			lastErr = &UpstreamError{Op: op, StatusCode: resp.StatusCode(), Detail: detailOf(resp.Body())}
		default:
			return resp.Body(), nil
		}

		if !lastErr.Recoverable() || attempt == c.maxAttempts {
			break
		}

		wait := exp.NextBackOff()
		c.log.Debug().Str("op", op).Int("attempt", attempt).Dur("wait", wait).Msg("retrying backend call")
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, &UpstreamError{Op: op, Err: ctx.Err()}
		}
	}

	return nil, lastErr
}

// decodeEnvelope extracts the record list from a {data: [...]}
// response. A missing, null, or wrong-typed data field is an empty
// list, never an error — the analytics layer must always receive a
// sequence.
func decodeEnvelope(body []byte) []map[string]any {
	var envelope map[string]any
	if err := json.Unmarshal(body, &envelope); err != nil {
		return []map[string]any{}
	}
	items, ok := envelope["data"].([]any)
	if !ok {
		return []map[string]any{}
	}
	records := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if r, ok := item.(map[string]any); ok {
			records = append(records, r)
		}
	}
	return records
}

// detailOf pulls the backend's "detail" message out of an error body.
func detailOf(body []byte) string {
	var out struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return ""
	}
	return out.Detail
}
