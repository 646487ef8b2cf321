// Package resources implements the MCP resource handlers.
//
// Resources are read-only context the host can pull in: app
// configuration, a tool usage guide, example workflows, the backend
// API reference, and a live health status.
package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// Handler manages the notes app resource endpoints.
type Handler struct {
	backendURL string
	version    string

	// Registration counts reported by status://health. Set by the
	// composition root after wiring.
	ToolCount     int
	PromptCount   int
	ResourceCount int

	now func() time.Time
}

// NewHandler creates a resource Handler.
func NewHandler(backendURL, version string) *Handler {
	return &Handler{
		backendURL: backendURL,
		version:    version,
		now:        time.Now,
	}
}

// ConfigResource returns the MCP resource definition for app
// configuration.
func (h *Handler) ConfigResource() mcp.Resource {
	return mcp.NewResource(
		"config://notes-app",
		"Notes App Configuration",
		mcp.WithResourceDescription("Configuration and API information for the notes app"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleConfig returns the app configuration as JSON.
func (h *Handler) HandleConfig(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	config := map[string]any{
		"app_name":     "FastAPI Notes App",
		"version":      h.version,
		"description":  "A comprehensive note-taking and task management application",
		"api_base_url": h.backendURL,
		"supported_features": []string{
			"Note creation and management",
			"Task tracking and completion",
			"Category organization",
			"Content search",
			"Productivity analytics",
		},
		"authentication": map[string]any{
			"type": "Bearer token",
			"note": "Tokens are resolved per call; pass a JWT as user_id to use your own",
		},
		"data_models": map[string]any{
			"Note": map[string]any{
				"fields":   []string{"id", "title", "content", "category", "created_at", "updated_at"},
				"required": []string{"title"},
				"optional": []string{"content", "category"},
			},
			"Task": map[string]any{
				"fields":     []string{"id", "title", "description", "status", "priority", "due_date", "category", "created_at", "updated_at"},
				"required":   []string{"title"},
				"statuses":   []string{"todo", "in_progress", "done"},
				"priorities": []string{"low", "medium", "high"},
			},
			"Category": map[string]any{
				"fields":   []string{"id", "name", "description", "created_at", "updated_at"},
				"required": []string{"name"},
			},
		},
	}
	return jsonResource(req.Params.URI, config)
}

// GuideResource returns the MCP resource definition for the tool usage
// guide.
func (h *Handler) GuideResource() mcp.Resource {
	return mcp.NewResource(
		"guide://tool-usage",
		"Tool Usage Guide",
		mcp.WithResourceDescription("Comprehensive guide for using the MCP tools effectively"),
		mcp.WithMIMEType("text/markdown"),
	)
}

// HandleGuide returns the tool usage guide as markdown.
func (h *Handler) HandleGuide(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return textResource(req.Params.URI, "text/markdown", toolUsageGuide), nil
}

// WorkflowsResource returns the MCP resource definition for example
// workflows.
func (h *Handler) WorkflowsResource() mcp.Resource {
	return mcp.NewResource(
		"examples://workflows",
		"Example Workflows",
		mcp.WithResourceDescription("Example workflows for common use cases"),
		mcp.WithMIMEType("text/markdown"),
	)
}

// HandleWorkflows returns the example workflows as markdown.
func (h *Handler) HandleWorkflows(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return textResource(req.Params.URI, "text/markdown", exampleWorkflows), nil
}

// SchemaResource returns the MCP resource definition for the backend
// API reference.
func (h *Handler) SchemaResource() mcp.Resource {
	return mcp.NewResource(
		"schema://api-reference",
		"API Reference",
		mcp.WithResourceDescription("API reference and data schemas for the notes app backend"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleSchema returns the backend API reference as JSON.
func (h *Handler) HandleSchema(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	reference := map[string]any{
		"api_version": "v1",
		"base_url":    h.backendURL + "/api/v1",
		"endpoints": map[string]any{
			"notes": map[string]string{
				"GET /notes/":        "List all notes",
				"POST /notes/":       "Create a new note",
				"PUT /notes/{id}":    "Update a note",
				"DELETE /notes/{id}": "Delete a note",
			},
			"tasks": map[string]string{
				"GET /tasks/":        "List all tasks",
				"POST /tasks/":       "Create a new task",
				"PUT /tasks/{id}":    "Update a task",
				"DELETE /tasks/{id}": "Delete a task",
			},
			"categories": map[string]string{
				"GET /categories/":  "List all categories",
				"POST /categories/": "Create a new category",
			},
		},
		"schemas": map[string]any{
			"Note": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":         map[string]string{"type": "string", "format": "uuid"},
					"title":      map[string]string{"type": "string"},
					"content":    map[string]string{"type": "string"},
					"category":   map[string]string{"$ref": "#/schemas/Category"},
					"created_at": map[string]string{"type": "string", "format": "datetime"},
					"updated_at": map[string]string{"type": "string", "format": "datetime"},
				},
				"required": []string{"title"},
			},
			"Task": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          map[string]string{"type": "string", "format": "uuid"},
					"title":       map[string]string{"type": "string"},
					"description": map[string]string{"type": "string"},
					"status":      map[string]any{"type": "string", "enum": []string{"todo", "in_progress", "done"}},
					"priority":    map[string]any{"type": "string", "enum": []string{"low", "medium", "high"}},
					"due_date":    map[string]string{"type": "string", "format": "datetime"},
					"category":    map[string]string{"type": "string"},
					"created_at":  map[string]string{"type": "string", "format": "datetime"},
					"updated_at":  map[string]string{"type": "string", "format": "datetime"},
				},
				"required": []string{"title"},
			},
			"Category": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          map[string]string{"type": "string", "format": "uuid"},
					"name":        map[string]string{"type": "string"},
					"description": map[string]string{"type": "string"},
					"created_at":  map[string]string{"type": "string", "format": "datetime"},
					"updated_at":  map[string]string{"type": "string", "format": "datetime"},
				},
				"required": []string{"name"},
			},
		},
		"authentication": map[string]string{
			"type":        "bearer",
			"description": "Include JWT token in Authorization header",
			"example":     "Authorization: Bearer <token>",
		},
		"error_responses": map[string]string{
			"400": "Bad Request - Invalid input data",
			"401": "Unauthorized - Authentication required",
			"403": "Forbidden - Insufficient permissions",
			"404": "Not Found - Resource not found",
			"429": "Too Many Requests - Rate limit exceeded",
			"500": "Internal Server Error - Server error",
		},
	}
	return jsonResource(req.Params.URI, reference)
}

// StatusResource returns the MCP resource definition for server health.
func (h *Handler) StatusResource() mcp.Resource {
	return mcp.NewResource(
		"status://health",
		"Server Health",
		mcp.WithResourceDescription("Current health and status information"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleStatus returns the current health status as JSON.
func (h *Handler) HandleStatus(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	status := map[string]any{
		"mcp_server":          "operational",
		"version":             h.version,
		"tools_registered":    h.ToolCount,
		"prompts_available":   h.PromptCount,
		"resources_available": h.ResourceCount,
		"api_backend":         h.backendURL,
		"last_updated":        h.now().UTC().Format(time.RFC3339),
		"capabilities": []string{
			"Notes CRUD operations",
			"Task management",
			"Category organization",
			"Productivity analytics",
			"Content insights",
			"Duplicate detection",
			"Task deadline tracking",
		},
	}
	return jsonResource(req.Params.URI, status)
}

// jsonResource marshals v as a single JSON resource content.
func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource %s: %w", uri, err)
	}
	return textResource(uri, "application/json", string(data)), nil
}

// textResource wraps text as a single resource content.
func textResource(uri, mimeType, text string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: mimeType,
			Text:     text,
		},
	}
}
