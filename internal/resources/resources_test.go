package resources

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func testHandler() *Handler {
	h := NewHandler("https://backend.example.com", "1.2.3")
	h.ToolCount = 18
	h.PromptCount = 5
	h.ResourceCount = 5
	h.now = func() time.Time {
		return time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	}
	return h
}

// readJSON invokes a resource handler and unmarshals its JSON body.
func readJSON(t *testing.T, uri string, handle func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)) map[string]any {
	t.Helper()
	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri

	contents, err := handle(context.Background(), req)
	if err != nil {
		t.Fatalf("resource handler: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(contents))
	}
	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("contents type = %T, want TextResourceContents", contents[0])
	}
	if text.URI != uri {
		t.Errorf("uri = %q, want %q", text.URI, uri)
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(text.Text), &out); err != nil {
		t.Fatalf("resource body is not JSON: %v", err)
	}
	return out
}

func TestConfigResource(t *testing.T) {
	h := testHandler()
	if got := h.ConfigResource().URI; got != "config://notes-app" {
		t.Errorf("uri = %q", got)
	}

	out := readJSON(t, "config://notes-app", h.HandleConfig)
	if out["api_base_url"] != "https://backend.example.com" {
		t.Errorf("api_base_url = %v", out["api_base_url"])
	}
	models := out["data_models"].(map[string]any)
	task := models["Task"].(map[string]any)
	statuses := task["statuses"].([]any)
	if len(statuses) != 3 {
		t.Errorf("task statuses = %v, want 3", statuses)
	}
}

func TestSchemaResource(t *testing.T) {
	h := testHandler()
	out := readJSON(t, "schema://api-reference", h.HandleSchema)

	if out["base_url"] != "https://backend.example.com/api/v1" {
		t.Errorf("base_url = %v", out["base_url"])
	}
	endpoints := out["endpoints"].(map[string]any)
	for _, group := range []string{"notes", "tasks", "categories"} {
		if _, ok := endpoints[group]; !ok {
			t.Errorf("endpoints missing %q group", group)
		}
	}
}

func TestStatusResource(t *testing.T) {
	h := testHandler()
	out := readJSON(t, "status://health", h.HandleStatus)

	if out["tools_registered"] != float64(18) {
		t.Errorf("tools_registered = %v, want 18", out["tools_registered"])
	}
	if out["prompts_available"] != float64(5) || out["resources_available"] != float64(5) {
		t.Errorf("counts = %v / %v, want 5 / 5", out["prompts_available"], out["resources_available"])
	}
	if out["last_updated"] != "2026-08-24T12:00:00Z" {
		t.Errorf("last_updated = %v", out["last_updated"])
	}
	if out["mcp_server"] != "operational" {
		t.Errorf("mcp_server = %v", out["mcp_server"])
	}
}

func TestGuideAndWorkflowResources(t *testing.T) {
	h := testHandler()

	for _, tc := range []struct {
		uri    string
		handle func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)
		want   string
	}{
		{"guide://tool-usage", h.HandleGuide, "find_duplicate_notes"},
		{"examples://workflows", h.HandleWorkflows, "Daily Productivity Review"},
	} {
		req := mcp.ReadResourceRequest{}
		req.Params.URI = tc.uri

		contents, err := tc.handle(context.Background(), req)
		if err != nil {
			t.Fatalf("%s: %v", tc.uri, err)
		}
		text := contents[0].(mcp.TextResourceContents)
		if text.MIMEType != "text/markdown" {
			t.Errorf("%s mime = %q, want text/markdown", tc.uri, text.MIMEType)
		}
		if !strings.Contains(text.Text, tc.want) {
			t.Errorf("%s body missing %q", tc.uri, tc.want)
		}
	}
}
