// Package tools implements the MCP tool handlers.
//
// Each tool is a struct with its dependencies injected via a
// constructor, a Definition() returning the mcp-go schema, and a
// Handle() processing the call. Tools depend on the Backend and
// TokenResolver interfaces below, not on concrete clients, so tests
// run against in-package fakes.
//
// Error policy: validation failures and total upstream failures become
// MCP error results; nothing panics or escapes as a raw fault past the
// tool boundary. Successful results are JSON text.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TechWithTy/lightspeed-mcp/internal/backend"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
)

// defaultUser is the identifier used when a tool call carries none.
const defaultUser = "demo-user"

// Backend is the slice of the REST client the tools consume.
type Backend interface {
	ListNotes(ctx context.Context, token string, q backend.ListQuery) ([]map[string]any, error)
	ListTasks(ctx context.Context, token string, q backend.ListQuery) ([]map[string]any, error)
	ListCategories(ctx context.Context, token string) ([]map[string]any, error)
	CreateNote(ctx context.Context, token string, payload map[string]any) (map[string]any, error)
	UpdateNote(ctx context.Context, token, noteID string, payload map[string]any) (map[string]any, error)
	DeleteNote(ctx context.Context, token, noteID string) error
	CreateTask(ctx context.Context, token string, payload map[string]any) (map[string]any, error)
	UpdateTask(ctx context.Context, token, taskID string, payload map[string]any) (map[string]any, error)
	DeleteTask(ctx context.Context, token, taskID string) error
	CreateCategory(ctx context.Context, token string, payload map[string]any) (map[string]any, error)
}

// TokenResolver turns a user identifier into a bearer token.
type TokenResolver interface {
	Resolve(ctx context.Context, user string) string
}

// Deps bundles the collaborators shared by every tool.
type Deps struct {
	Backend Backend
	Tokens  TokenResolver

	// FetchLimit is the page size used when a tool needs the full
	// record set.
	FetchLimit int

	Log zerolog.Logger
}

// token resolves the bearer token for a request's user_id argument.
func (d Deps) token(ctx context.Context, req mcp.CallToolRequest) string {
	return d.Tokens.Resolve(ctx, req.GetString("user_id", defaultUser))
}

// reporter adapts the deps logger to the analytics Reporter
// capability.
func (d Deps) reporter() logReporter {
	return logReporter{log: d.Log}
}

type logReporter struct {
	log zerolog.Logger
}

func (r logReporter) Log(level, message string) {
	switch level {
	case "debug":
		r.log.Debug().Msg(message)
	case "warn":
		r.log.Warn().Msg(message)
	case "error":
		r.log.Error().Msg(message)
	default:
		r.log.Info().Msg(message)
	}
}

func (r logReporter) ReportProgress(step, total int) {
	r.log.Debug().Int("step", step).Int("total", total).Msg("progress")
}

// intArg extracts an integer argument, returning defaultVal if the key
// is missing or not a number (JSON numbers arrive as float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// jsonResult marshals v as the tool's JSON text result.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}
