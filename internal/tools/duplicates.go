package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/TechWithTy/lightspeed-mcp/internal/analytics"
	"github.com/TechWithTy/lightspeed-mcp/internal/backend"
	"github.com/mark3labs/mcp-go/mcp"
)

// DuplicatesTool handles the find_duplicate_notes MCP tool.
type DuplicatesTool struct {
	deps Deps
	now  func() time.Time
}

// NewDuplicatesTool creates a DuplicatesTool.
func NewDuplicatesTool(deps Deps) *DuplicatesTool {
	return &DuplicatesTool{deps: deps, now: time.Now}
}

// Definition returns the MCP tool definition for find_duplicate_notes.
func (t *DuplicatesTool) Definition() mcp.Tool {
	return mcp.NewTool("find_duplicate_notes",
		mcp.WithDescription(
			"Find potential duplicate notes by title and content similarity. "+
				"Returns the top pairs above the threshold, highest score first.",
		),
		mcp.WithString("user_id",
			mcp.Description("User ID or JWT token (default: demo-user)"),
		),
		mcp.WithNumber("similarity_threshold",
			mcp.Description("Similarity threshold between 0 and 1 (default: 0.8)"),
		),
	)
}

// Handle processes the find_duplicate_notes tool call.
func (t *DuplicatesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	threshold := req.GetFloat("similarity_threshold", analytics.DefaultSimilarityThreshold)
	if threshold < 0 || threshold > 1 {
		return mcp.NewToolResultError("'similarity_threshold' must be between 0 and 1"), nil
	}

	token := t.deps.token(ctx, req)
	raw, err := t.deps.Backend.ListNotes(ctx, token, backend.ListQuery{Limit: t.deps.FetchLimit})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to find duplicate notes: %v", err)), nil
	}

	report := analytics.FindDuplicates(
		analytics.NormalizeNotes(raw),
		threshold,
		t.now().UTC(),
		t.deps.reporter(),
	)
	return jsonResult(report), nil
}
