package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/TechWithTy/lightspeed-mcp/internal/backend"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
)

// fakeBackend is an in-memory Backend with scripted responses and
// per-operation error injection.
type fakeBackend struct {
	notes      []map[string]any
	tasks      []map[string]any
	categories []map[string]any

	notesErr      error
	tasksErr      error
	categoriesErr error
	writeErr      error

	// lastPayload and lastID capture the most recent write call.
	lastPayload map[string]any
	lastID      string
	lastQuery   backend.ListQuery
}

func (f *fakeBackend) ListNotes(ctx context.Context, token string, q backend.ListQuery) ([]map[string]any, error) {
	f.lastQuery = q
	if f.notesErr != nil {
		return nil, f.notesErr
	}
	return f.notes, nil
}

func (f *fakeBackend) ListTasks(ctx context.Context, token string, q backend.ListQuery) ([]map[string]any, error) {
	f.lastQuery = q
	if f.tasksErr != nil {
		return nil, f.tasksErr
	}
	return f.tasks, nil
}

func (f *fakeBackend) ListCategories(ctx context.Context, token string) ([]map[string]any, error) {
	if f.categoriesErr != nil {
		return nil, f.categoriesErr
	}
	return f.categories, nil
}

func (f *fakeBackend) CreateNote(ctx context.Context, token string, payload map[string]any) (map[string]any, error) {
	f.lastPayload = payload
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	return map[string]any{"id": "new-note"}, nil
}

func (f *fakeBackend) UpdateNote(ctx context.Context, token, noteID string, payload map[string]any) (map[string]any, error) {
	f.lastID, f.lastPayload = noteID, payload
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	return map[string]any{"id": noteID}, nil
}

func (f *fakeBackend) DeleteNote(ctx context.Context, token, noteID string) error {
	f.lastID = noteID
	return f.writeErr
}

func (f *fakeBackend) CreateTask(ctx context.Context, token string, payload map[string]any) (map[string]any, error) {
	f.lastPayload = payload
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	return map[string]any{"id": "new-task"}, nil
}

func (f *fakeBackend) UpdateTask(ctx context.Context, token, taskID string, payload map[string]any) (map[string]any, error) {
	f.lastID, f.lastPayload = taskID, payload
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	return map[string]any{"id": taskID}, nil
}

func (f *fakeBackend) DeleteTask(ctx context.Context, token, taskID string) error {
	f.lastID = taskID
	return f.writeErr
}

func (f *fakeBackend) CreateCategory(ctx context.Context, token string, payload map[string]any) (map[string]any, error) {
	f.lastPayload = payload
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	return map[string]any{"id": "new-category"}, nil
}

// staticTokens resolves every identifier to itself.
type staticTokens struct{}

func (staticTokens) Resolve(ctx context.Context, user string) string { return user }

// testDeps builds tool deps around a fake backend.
func testDeps(fb *fakeBackend) Deps {
	return Deps{
		Backend:    fb,
		Tokens:     staticTokens{},
		FetchLimit: 1000,
		Log:        zerolog.Nop(),
	}
}

// makeReq builds a mcp.CallToolRequest with the given arguments.
func makeReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// resultText extracts the text content from a tool result.
func resultText(t *testing.T, r *mcp.CallToolResult) string {
	t.Helper()
	if r == nil || len(r.Content) == 0 {
		t.Fatal("tool result has no content")
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	t.Fatal("tool result has no text content")
	return ""
}

// resultJSON unmarshals a successful tool result's JSON payload.
func resultJSON(t *testing.T, r *mcp.CallToolResult) map[string]any {
	t.Helper()
	if r.IsError {
		t.Fatalf("tool returned error result: %s", resultText(t, r))
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(resultText(t, r)), &out); err != nil {
		t.Fatalf("tool result is not JSON: %v", err)
	}
	return out
}

// mustError asserts that the tool returned an error result containing
// want.
func mustError(t *testing.T, r *mcp.CallToolResult, err error, want string) {
	t.Helper()
	if err != nil {
		t.Fatalf("handler returned transport error: %v", err)
	}
	if !r.IsError {
		t.Fatalf("expected error result, got: %s", resultText(t, r))
	}
	if want != "" {
		if got := resultText(t, r); !strings.Contains(got, want) {
			t.Errorf("error = %q, want it to contain %q", got, want)
		}
	}
}
