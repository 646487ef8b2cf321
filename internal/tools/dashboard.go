package tools

import (
	"context"
	"time"

	"github.com/TechWithTy/lightspeed-mcp/internal/analytics"
	"github.com/TechWithTy/lightspeed-mcp/internal/backend"
	"github.com/mark3labs/mcp-go/mcp"
)

// DashboardTool handles the get_productivity_dashboard MCP tool.
type DashboardTool struct {
	deps Deps

	// now is swapped out in tests.
	now func() time.Time
}

// NewDashboardTool creates a DashboardTool.
func NewDashboardTool(deps Deps) *DashboardTool {
	return &DashboardTool{deps: deps, now: time.Now}
}

// Definition returns the MCP tool definition for
// get_productivity_dashboard.
func (t *DashboardTool) Definition() mcp.Tool {
	return mcp.NewTool("get_productivity_dashboard",
		mcp.WithDescription(
			"Generate a productivity dashboard over the trailing window: note/task counts, "+
				"completion rates, status and category distributions, and daily activity.",
		),
		mcp.WithString("user_id",
			mcp.Description("User ID or JWT token (default: demo-user)"),
		),
		mcp.WithNumber("days_back",
			mcp.Description("Number of days to analyze (default: 7)"),
		),
	)
}

// Handle processes the get_productivity_dashboard tool call. A failed
// note or task fetch degrades that side to an empty set; only both
// fetches failing produces an error result.
func (t *DashboardTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days := intArg(req, "days_back", analytics.DefaultWindowDays)
	if days < 1 {
		return mcp.NewToolResultError("'days_back' must be at least 1"), nil
	}

	token := t.deps.token(ctx, req)
	q := backend.ListQuery{Limit: t.deps.FetchLimit}

	rawNotes, notesErr := t.deps.Backend.ListNotes(ctx, token, q)
	if notesErr != nil {
		t.deps.Log.Warn().Err(notesErr).Msg("dashboard: notes fetch failed, continuing with empty set")
		rawNotes = nil
	}
	rawTasks, tasksErr := t.deps.Backend.ListTasks(ctx, token, q)
	if tasksErr != nil {
		t.deps.Log.Warn().Err(tasksErr).Msg("dashboard: tasks fetch failed, continuing with empty set")
		rawTasks = nil
	}
	if notesErr != nil && tasksErr != nil {
		return mcp.NewToolResultError("failed to generate productivity dashboard: both note and task fetches failed"), nil
	}

	dashboard := analytics.BuildDashboard(
		analytics.NormalizeNotes(rawNotes),
		analytics.NormalizeTasks(rawTasks),
		days,
		t.now().UTC(),
		t.deps.reporter(),
	)
	return jsonResult(dashboard), nil
}
