package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/TechWithTy/lightspeed-mcp/internal/analytics"
	"github.com/TechWithTy/lightspeed-mcp/internal/backend"
	"github.com/mark3labs/mcp-go/mcp"
)

// DeadlineReportTool handles the get_overdue_tasks_report MCP tool.
type DeadlineReportTool struct {
	deps Deps
	now  func() time.Time
}

// NewDeadlineReportTool creates a DeadlineReportTool.
func NewDeadlineReportTool(deps Deps) *DeadlineReportTool {
	return &DeadlineReportTool{deps: deps, now: time.Now}
}

// Definition returns the MCP tool definition for
// get_overdue_tasks_report.
func (t *DeadlineReportTool) Definition() mcp.Tool {
	return mcp.NewTool("get_overdue_tasks_report",
		mcp.WithDescription(
			"Report overdue and upcoming tasks: overdue sorted most-overdue first, "+
				"upcoming (due within 7 days) sorted soonest first, with recommendations.",
		),
		mcp.WithString("user_id",
			mcp.Description("User ID or JWT token (default: demo-user)"),
		),
	)
}

// Handle processes the get_overdue_tasks_report tool call.
func (t *DeadlineReportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	token := t.deps.token(ctx, req)
	raw, err := t.deps.Backend.ListTasks(ctx, token, backend.ListQuery{Limit: t.deps.FetchLimit})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to generate overdue tasks report: %v", err)), nil
	}

	report := analytics.BuildDeadlineReport(
		analytics.NormalizeTasks(raw),
		t.now().UTC(),
		t.deps.reporter(),
	)
	return jsonResult(report), nil
}
