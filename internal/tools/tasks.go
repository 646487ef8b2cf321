package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/TechWithTy/lightspeed-mcp/internal/analytics"
	"github.com/TechWithTy/lightspeed-mcp/internal/backend"
	"github.com/mark3labs/mcp-go/mcp"
)

// invalidStatusMessage lists the accepted statuses for error results.
func invalidStatusMessage() string {
	names := make([]string, 0, 3)
	for _, s := range analytics.Statuses() {
		names = append(names, string(s))
	}
	return "invalid status: must be one of " + strings.Join(names, ", ")
}

// CreateTaskTool handles the create_task MCP tool.
type CreateTaskTool struct {
	deps Deps
}

// NewCreateTaskTool creates a CreateTaskTool.
func NewCreateTaskTool(deps Deps) *CreateTaskTool {
	return &CreateTaskTool{deps: deps}
}

// Definition returns the MCP tool definition for create_task.
func (t *CreateTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("create_task",
		mcp.WithDescription("Create a new task with the given title and description."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The title of the task"),
		),
		mcp.WithString("description",
			mcp.Description("The description of the task"),
		),
		mcp.WithString("status",
			mcp.Description("Task status: todo, in_progress, or done (default: todo)"),
		),
		mcp.WithString("priority",
			mcp.Description("Task priority: low, medium, or high (default: medium)"),
		),
		mcp.WithString("due_date",
			mcp.Description("Due date as an ISO-8601 timestamp"),
		),
		mcp.WithString("user_id",
			mcp.Description("User ID or JWT token (default: demo-user)"),
		),
	)
}

// Handle processes the create_task tool call. Status and priority are
// validated before anything reaches the backend.
func (t *CreateTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title := req.GetString("title", "")
	if title == "" {
		return mcp.NewToolResultError("'title' is required"), nil
	}

	status := req.GetString("status", string(analytics.StatusTodo))
	if _, ok := analytics.ParseStatus(status); !ok {
		return mcp.NewToolResultError(invalidStatusMessage()), nil
	}

	payload := map[string]any{
		"title":       title,
		"description": req.GetString("description", ""),
		"status":      status,
	}
	if priority := req.GetString("priority", ""); priority != "" {
		if _, ok := analytics.ParsePriority(priority); !ok {
			return mcp.NewToolResultError("invalid priority: must be one of low, medium, high"), nil
		}
		payload["priority"] = priority
	}
	if due := req.GetString("due_date", ""); due != "" {
		payload["due_date"] = due
	}

	token := t.deps.token(ctx, req)
	record, err := t.deps.Backend.CreateTask(ctx, token, payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create task: %v", err)), nil
	}

	t.deps.Log.Info().Str("title", title).Msg("task created")
	return jsonResult(record), nil
}

// GetTasksTool handles the get_tasks MCP tool.
type GetTasksTool struct {
	deps Deps
}

// NewGetTasksTool creates a GetTasksTool.
func NewGetTasksTool(deps Deps) *GetTasksTool {
	return &GetTasksTool{deps: deps}
}

// Definition returns the MCP tool definition for get_tasks.
func (t *GetTasksTool) Definition() mcp.Tool {
	return mcp.NewTool("get_tasks",
		mcp.WithDescription("Retrieve tasks for the user, optionally filtered by status."),
		mcp.WithString("user_id",
			mcp.Description("User ID or JWT token (default: demo-user)"),
		),
		mcp.WithString("status",
			mcp.Description("Filter by status: todo, in_progress, or done"),
		),
		mcp.WithNumber("skip",
			mcp.Description("Number of tasks to skip for pagination (default: 0)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of tasks to return (default: 20)"),
		),
	)
}

// Handle processes the get_tasks tool call.
func (t *GetTasksTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status := req.GetString("status", "")
	if status != "" {
		if _, ok := analytics.ParseStatus(status); !ok {
			return mcp.NewToolResultError(invalidStatusMessage()), nil
		}
	}

	token := t.deps.token(ctx, req)
	tasks, err := t.deps.Backend.ListTasks(ctx, token, backend.ListQuery{
		Skip:   intArg(req, "skip", 0),
		Limit:  intArg(req, "limit", 20),
		Status: status,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to retrieve tasks: %v", err)), nil
	}

	return jsonResult(map[string]any{
		"data":  tasks,
		"count": len(tasks),
	}), nil
}

// UpdateTaskTool handles the update_task MCP tool.
type UpdateTaskTool struct {
	deps Deps
}

// NewUpdateTaskTool creates an UpdateTaskTool.
func NewUpdateTaskTool(deps Deps) *UpdateTaskTool {
	return &UpdateTaskTool{deps: deps}
}

// Definition returns the MCP tool definition for update_task.
func (t *UpdateTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("update_task",
		mcp.WithDescription("Update an existing task's title, description, status, priority, or due date."),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("UUID of the task to update"),
		),
		mcp.WithString("title",
			mcp.Description("New title for the task"),
		),
		mcp.WithString("description",
			mcp.Description("New description for the task"),
		),
		mcp.WithString("status",
			mcp.Description("New status: todo, in_progress, or done"),
		),
		mcp.WithString("priority",
			mcp.Description("New priority: low, medium, or high"),
		),
		mcp.WithString("due_date",
			mcp.Description("New due date as an ISO-8601 timestamp"),
		),
		mcp.WithString("user_id",
			mcp.Description("User ID or JWT token (default: demo-user)"),
		),
	)
}

// Handle processes the update_task tool call.
func (t *UpdateTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID := req.GetString("task_id", "")
	if taskID == "" {
		return mcp.NewToolResultError("'task_id' is required"), nil
	}

	args := req.GetArguments()
	payload := map[string]any{}
	for _, field := range []string{"title", "description", "status", "priority", "due_date"} {
		if v, ok := args[field].(string); ok {
			payload[field] = v
		}
	}
	if status, ok := payload["status"].(string); ok {
		if _, valid := analytics.ParseStatus(status); !valid {
			return mcp.NewToolResultError(invalidStatusMessage()), nil
		}
	}
	if priority, ok := payload["priority"].(string); ok {
		if _, valid := analytics.ParsePriority(priority); !valid {
			return mcp.NewToolResultError("invalid priority: must be one of low, medium, high"), nil
		}
	}
	if len(payload) == 0 {
		return mcp.NewToolResultError("nothing to update: provide at least one field"), nil
	}

	token := t.deps.token(ctx, req)
	record, err := t.deps.Backend.UpdateTask(ctx, token, taskID, payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to update task: %v", err)), nil
	}

	return jsonResult(record), nil
}

// CompleteTaskTool handles the complete_task MCP tool.
type CompleteTaskTool struct {
	deps Deps
}

// NewCompleteTaskTool creates a CompleteTaskTool.
func NewCompleteTaskTool(deps Deps) *CompleteTaskTool {
	return &CompleteTaskTool{deps: deps}
}

// Definition returns the MCP tool definition for complete_task.
func (t *CompleteTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("complete_task",
		mcp.WithDescription("Mark a task as completed (status = done)."),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("UUID of the task to complete"),
		),
		mcp.WithString("user_id",
			mcp.Description("User ID or JWT token (default: demo-user)"),
		),
	)
}

// Handle processes the complete_task tool call.
func (t *CompleteTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID := req.GetString("task_id", "")
	if taskID == "" {
		return mcp.NewToolResultError("'task_id' is required"), nil
	}

	token := t.deps.token(ctx, req)
	record, err := t.deps.Backend.UpdateTask(ctx, token, taskID, map[string]any{
		"status": string(analytics.StatusDone),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to complete task: %v", err)), nil
	}

	t.deps.Log.Info().Str("task_id", taskID).Msg("task completed")
	return jsonResult(record), nil
}

// DeleteTaskTool handles the delete_task MCP tool.
type DeleteTaskTool struct {
	deps Deps
}

// NewDeleteTaskTool creates a DeleteTaskTool.
func NewDeleteTaskTool(deps Deps) *DeleteTaskTool {
	return &DeleteTaskTool{deps: deps}
}

// Definition returns the MCP tool definition for delete_task.
func (t *DeleteTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("delete_task",
		mcp.WithDescription("Delete a task by ID."),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("UUID of the task to delete"),
		),
		mcp.WithString("user_id",
			mcp.Description("User ID or JWT token (default: demo-user)"),
		),
	)
}

// Handle processes the delete_task tool call.
func (t *DeleteTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID := req.GetString("task_id", "")
	if taskID == "" {
		return mcp.NewToolResultError("'task_id' is required"), nil
	}

	token := t.deps.token(ctx, req)
	if err := t.deps.Backend.DeleteTask(ctx, token, taskID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete task: %v", err)), nil
	}

	return jsonResult(map[string]any{
		"message": fmt.Sprintf("Task %s deleted successfully", taskID),
	}), nil
}

// TaskStatisticsTool handles the get_task_statistics MCP tool.
type TaskStatisticsTool struct {
	deps Deps
}

// NewTaskStatisticsTool creates a TaskStatisticsTool.
func NewTaskStatisticsTool(deps Deps) *TaskStatisticsTool {
	return &TaskStatisticsTool{deps: deps}
}

// Definition returns the MCP tool definition for get_task_statistics.
func (t *TaskStatisticsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_task_statistics",
		mcp.WithDescription("Get task counts by status and the completion percentage."),
		mcp.WithString("user_id",
			mcp.Description("User ID or JWT token (default: demo-user)"),
		),
	)
}

// Handle processes the get_task_statistics tool call.
func (t *TaskStatisticsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	token := t.deps.token(ctx, req)
	raw, err := t.deps.Backend.ListTasks(ctx, token, backend.ListQuery{Limit: t.deps.FetchLimit})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get task statistics: %v", err)), nil
	}

	stats := analytics.BuildTaskStatistics(analytics.NormalizeTasks(raw))
	return jsonResult(stats), nil
}
