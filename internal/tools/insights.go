package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/TechWithTy/lightspeed-mcp/internal/analytics"
	"github.com/TechWithTy/lightspeed-mcp/internal/backend"
	"github.com/mark3labs/mcp-go/mcp"
)

// InsightsTool handles the get_content_insights MCP tool.
type InsightsTool struct {
	deps Deps
	now  func() time.Time
}

// NewInsightsTool creates an InsightsTool.
func NewInsightsTool(deps Deps) *InsightsTool {
	return &InsightsTool{deps: deps, now: time.Now}
}

// Definition returns the MCP tool definition for get_content_insights.
func (t *InsightsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_content_insights",
		mcp.WithDescription(
			"Analyze note content: word and character statistics, note length distribution, "+
				"top topics, category distribution, and writing patterns.",
		),
		mcp.WithString("user_id",
			mcp.Description("User ID or JWT token (default: demo-user)"),
		),
	)
}

// Handle processes the get_content_insights tool call. With no notes
// to analyze the result is a message, not an error, and no statistics
// are computed.
func (t *InsightsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	token := t.deps.token(ctx, req)
	raw, err := t.deps.Backend.ListNotes(ctx, token, backend.ListQuery{Limit: t.deps.FetchLimit})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to generate content insights: %v", err)), nil
	}

	insights, ok := analytics.BuildInsights(
		analytics.NormalizeNotes(raw),
		t.now().UTC(),
		t.deps.reporter(),
	)
	if !ok {
		return jsonResult(map[string]any{
			"insights": map[string]any{},
			"message":  "No notes found to analyze",
		}), nil
	}

	return jsonResult(insights), nil
}
