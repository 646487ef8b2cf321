package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// CreateCategoryTool handles the create_category MCP tool.
type CreateCategoryTool struct {
	deps Deps
}

// NewCreateCategoryTool creates a CreateCategoryTool.
func NewCreateCategoryTool(deps Deps) *CreateCategoryTool {
	return &CreateCategoryTool{deps: deps}
}

// Definition returns the MCP tool definition for create_category.
func (t *CreateCategoryTool) Definition() mcp.Tool {
	return mcp.NewTool("create_category",
		mcp.WithDescription("Create a new category for organizing notes."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("The name of the category"),
		),
		mcp.WithString("description",
			mcp.Description("Optional description of the category"),
		),
		mcp.WithString("user_id",
			mcp.Description("User ID or JWT token (default: demo-user)"),
		),
	)
}

// Handle processes the create_category tool call.
func (t *CreateCategoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("'name' is required"), nil
	}

	payload := map[string]any{"name": name}
	if desc := req.GetString("description", ""); desc != "" {
		payload["description"] = desc
	}

	token := t.deps.token(ctx, req)
	record, err := t.deps.Backend.CreateCategory(ctx, token, payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create category: %v", err)), nil
	}

	return jsonResult(record), nil
}

// GetCategoriesTool handles the get_categories MCP tool.
type GetCategoriesTool struct {
	deps Deps
}

// NewGetCategoriesTool creates a GetCategoriesTool.
func NewGetCategoriesTool(deps Deps) *GetCategoriesTool {
	return &GetCategoriesTool{deps: deps}
}

// Definition returns the MCP tool definition for get_categories.
func (t *GetCategoriesTool) Definition() mcp.Tool {
	return mcp.NewTool("get_categories",
		mcp.WithDescription("List all categories for the user."),
		mcp.WithString("user_id",
			mcp.Description("User ID or JWT token (default: demo-user)"),
		),
	)
}

// Handle processes the get_categories tool call.
func (t *GetCategoriesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	token := t.deps.token(ctx, req)
	categories, err := t.deps.Backend.ListCategories(ctx, token)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to retrieve categories: %v", err)), nil
	}

	return jsonResult(map[string]any{
		"data":  categories,
		"count": len(categories),
	}), nil
}

// OrganizeNoteTool handles the organize_note_into_category MCP tool.
type OrganizeNoteTool struct {
	deps Deps
}

// NewOrganizeNoteTool creates an OrganizeNoteTool.
func NewOrganizeNoteTool(deps Deps) *OrganizeNoteTool {
	return &OrganizeNoteTool{deps: deps}
}

// Definition returns the MCP tool definition for
// organize_note_into_category.
func (t *OrganizeNoteTool) Definition() mcp.Tool {
	return mcp.NewTool("organize_note_into_category",
		mcp.WithDescription("Assign an existing note to a category."),
		mcp.WithString("note_id",
			mcp.Required(),
			mcp.Description("UUID of the note to organize"),
		),
		mcp.WithString("category_id",
			mcp.Required(),
			mcp.Description("UUID of the category to assign"),
		),
		mcp.WithString("user_id",
			mcp.Description("User ID or JWT token (default: demo-user)"),
		),
	)
}

// Handle processes the organize_note_into_category tool call.
func (t *OrganizeNoteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	noteID := req.GetString("note_id", "")
	categoryID := req.GetString("category_id", "")
	if noteID == "" || categoryID == "" {
		return mcp.NewToolResultError("'note_id' and 'category_id' are required"), nil
	}

	token := t.deps.token(ctx, req)
	record, err := t.deps.Backend.UpdateNote(ctx, token, noteID, map[string]any{
		"category_id": categoryID,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to organize note: %v", err)), nil
	}

	return jsonResult(record), nil
}
