package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/TechWithTy/lightspeed-mcp/internal/backend"
	"github.com/mark3labs/mcp-go/mcp"
)

// CreateNoteTool handles the create_note MCP tool.
type CreateNoteTool struct {
	deps Deps
}

// NewCreateNoteTool creates a CreateNoteTool.
func NewCreateNoteTool(deps Deps) *CreateNoteTool {
	return &CreateNoteTool{deps: deps}
}

// Definition returns the MCP tool definition for create_note.
func (t *CreateNoteTool) Definition() mcp.Tool {
	return mcp.NewTool("create_note",
		mcp.WithDescription("Create a new note with the given title and content."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The title of the note"),
		),
		mcp.WithString("content",
			mcp.Description("The content/body of the note"),
		),
		mcp.WithString("category_id",
			mcp.Description("UUID of the category to assign the note to"),
		),
		mcp.WithString("user_id",
			mcp.Description("User ID or JWT token for authentication (default: demo-user)"),
		),
	)
}

// Handle processes the create_note tool call.
func (t *CreateNoteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title := req.GetString("title", "")
	if title == "" {
		return mcp.NewToolResultError("'title' is required"), nil
	}

	payload := map[string]any{
		"title":   title,
		"content": req.GetString("content", ""),
	}
	if categoryID := req.GetString("category_id", ""); categoryID != "" {
		payload["category_id"] = categoryID
	}

	token := t.deps.token(ctx, req)
	record, err := t.deps.Backend.CreateNote(ctx, token, payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create note: %v", err)), nil
	}

	t.deps.Log.Info().Str("title", title).Msg("note created")
	return jsonResult(record), nil
}

// GetNotesTool handles the get_notes MCP tool.
type GetNotesTool struct {
	deps Deps
}

// NewGetNotesTool creates a GetNotesTool.
func NewGetNotesTool(deps Deps) *GetNotesTool {
	return &GetNotesTool{deps: deps}
}

// Definition returns the MCP tool definition for get_notes.
func (t *GetNotesTool) Definition() mcp.Tool {
	return mcp.NewTool("get_notes",
		mcp.WithDescription("Retrieve notes for the user with pagination."),
		mcp.WithString("user_id",
			mcp.Description("User ID or JWT token (default: demo-user)"),
		),
		mcp.WithNumber("skip",
			mcp.Description("Number of notes to skip for pagination (default: 0)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of notes to return (default: 20)"),
		),
	)
}

// Handle processes the get_notes tool call.
func (t *GetNotesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	token := t.deps.token(ctx, req)
	notes, err := t.deps.Backend.ListNotes(ctx, token, backend.ListQuery{
		Skip:  intArg(req, "skip", 0),
		Limit: intArg(req, "limit", 20),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to retrieve notes: %v", err)), nil
	}

	return jsonResult(map[string]any{
		"data":  notes,
		"count": len(notes),
	}), nil
}

// UpdateNoteTool handles the update_note MCP tool.
type UpdateNoteTool struct {
	deps Deps
}

// NewUpdateNoteTool creates an UpdateNoteTool.
func NewUpdateNoteTool(deps Deps) *UpdateNoteTool {
	return &UpdateNoteTool{deps: deps}
}

// Definition returns the MCP tool definition for update_note.
func (t *UpdateNoteTool) Definition() mcp.Tool {
	return mcp.NewTool("update_note",
		mcp.WithDescription("Update an existing note's title, content, or category."),
		mcp.WithString("note_id",
			mcp.Required(),
			mcp.Description("UUID of the note to update"),
		),
		mcp.WithString("title",
			mcp.Description("New title for the note"),
		),
		mcp.WithString("content",
			mcp.Description("New content for the note"),
		),
		mcp.WithString("category_id",
			mcp.Description("New category ID for the note"),
		),
		mcp.WithString("user_id",
			mcp.Description("User ID or JWT token (default: demo-user)"),
		),
	)
}

// Handle processes the update_note tool call. Only the provided fields
// are sent to the backend.
func (t *UpdateNoteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	noteID := req.GetString("note_id", "")
	if noteID == "" {
		return mcp.NewToolResultError("'note_id' is required"), nil
	}

	payload := map[string]any{}
	args := req.GetArguments()
	for _, field := range []string{"title", "content", "category_id"} {
		if v, ok := args[field].(string); ok {
			payload[field] = v
		}
	}
	if len(payload) == 0 {
		return mcp.NewToolResultError("nothing to update: provide title, content, or category_id"), nil
	}

	token := t.deps.token(ctx, req)
	record, err := t.deps.Backend.UpdateNote(ctx, token, noteID, payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to update note: %v", err)), nil
	}

	return jsonResult(record), nil
}

// DeleteNoteTool handles the delete_note MCP tool.
type DeleteNoteTool struct {
	deps Deps
}

// NewDeleteNoteTool creates a DeleteNoteTool.
func NewDeleteNoteTool(deps Deps) *DeleteNoteTool {
	return &DeleteNoteTool{deps: deps}
}

// Definition returns the MCP tool definition for delete_note.
func (t *DeleteNoteTool) Definition() mcp.Tool {
	return mcp.NewTool("delete_note",
		mcp.WithDescription("Delete a note by ID."),
		mcp.WithString("note_id",
			mcp.Required(),
			mcp.Description("UUID of the note to delete"),
		),
		mcp.WithString("user_id",
			mcp.Description("User ID or JWT token (default: demo-user)"),
		),
	)
}

// Handle processes the delete_note tool call.
func (t *DeleteNoteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	noteID := req.GetString("note_id", "")
	if noteID == "" {
		return mcp.NewToolResultError("'note_id' is required"), nil
	}

	token := t.deps.token(ctx, req)
	if err := t.deps.Backend.DeleteNote(ctx, token, noteID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete note: %v", err)), nil
	}

	return jsonResult(map[string]any{
		"message": fmt.Sprintf("Note %s deleted successfully", noteID),
	}), nil
}

// SearchNotesTool handles the search_notes MCP tool.
type SearchNotesTool struct {
	deps Deps
}

// NewSearchNotesTool creates a SearchNotesTool.
func NewSearchNotesTool(deps Deps) *SearchNotesTool {
	return &SearchNotesTool{deps: deps}
}

// Definition returns the MCP tool definition for search_notes.
func (t *SearchNotesTool) Definition() mcp.Tool {
	return mcp.NewTool("search_notes",
		mcp.WithDescription("Search notes by title or content, case-insensitive."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query string"),
		),
		mcp.WithString("user_id",
			mcp.Description("User ID or JWT token (default: demo-user)"),
		),
	)
}

// Handle processes the search_notes tool call. The query is forwarded
// to the backend and the results are filtered locally again, since the
// backend's search semantics are broader than title/content matching.
func (t *SearchNotesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}

	token := t.deps.token(ctx, req)
	notes, err := t.deps.Backend.ListNotes(ctx, token, backend.ListQuery{Search: query})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to search notes: %v", err)), nil
	}

	needle := strings.ToLower(query)
	matches := make([]map[string]any, 0, len(notes))
	for _, n := range notes {
		title, _ := n["title"].(string)
		content, _ := n["content"].(string)
		if strings.Contains(strings.ToLower(title), needle) ||
			strings.Contains(strings.ToLower(content), needle) {
			matches = append(matches, n)
		}
	}

	return jsonResult(map[string]any{
		"query":   query,
		"matches": matches,
		"count":   len(matches),
	}), nil
}
