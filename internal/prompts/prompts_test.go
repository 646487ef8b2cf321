package prompts

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

type promptHandler interface {
	Definition() mcp.Prompt
	Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error)
}

func TestPromptDefinitionsAndContent(t *testing.T) {
	cases := []struct {
		name     string
		handler  promptHandler
		wantText string
	}{
		{"note-assistant", NewNoteAssistantPrompt(), "note management"},
		{"productivity-coach", NewProductivityCoachPrompt(), "productivity coach"},
		{"content-organizer", NewContentOrganizerPrompt(), "content organization"},
		{"task-manager", NewTaskManagerPrompt(), "task management"},
		{"research-assistant", NewResearchAssistantPrompt(), "research assistant"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def := tc.handler.Definition()
			if def.Name != tc.name {
				t.Errorf("prompt name = %q, want %q", def.Name, tc.name)
			}
			if def.Description == "" {
				t.Error("prompt has no description")
			}

			result, err := tc.handler.Handle(context.Background(), mcp.GetPromptRequest{})
			if err != nil {
				t.Fatalf("Handle: %v", err)
			}
			if len(result.Messages) != 1 {
				t.Fatalf("messages = %d, want 1", len(result.Messages))
			}
			if result.Messages[0].Role != mcp.RoleUser {
				t.Errorf("role = %v, want user", result.Messages[0].Role)
			}

			text, ok := result.Messages[0].Content.(mcp.TextContent)
			if !ok {
				t.Fatalf("content type = %T, want TextContent", result.Messages[0].Content)
			}
			if !strings.Contains(strings.ToLower(text.Text), tc.wantText) {
				t.Errorf("prompt text does not mention %q", tc.wantText)
			}
		})
	}
}

func TestPromptsReferenceRegisteredTools(t *testing.T) {
	// The coach prompt steers the model toward the analytics tools; its
	// tool names must match what the server registers.
	result, err := NewProductivityCoachPrompt().Handle(context.Background(), mcp.GetPromptRequest{})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	text := result.Messages[0].Content.(mcp.TextContent).Text
	for _, tool := range []string{
		"get_productivity_dashboard",
		"find_duplicate_notes",
		"get_overdue_tasks_report",
		"get_content_insights",
	} {
		if !strings.Contains(text, tool) {
			t.Errorf("productivity-coach prompt missing tool reference %q", tool)
		}
	}
}
