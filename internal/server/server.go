// Package server wires all MCP components and creates the server
// instance.
//
// This is the composition root: it builds the concrete backend client,
// token resolver, and logger, and injects them into the tools, prompts,
// and resources that depend on abstractions. No business logic lives
// here, only wiring. Every registration is explicit — nothing registers
// itself at import time.
package server

import (
	"context"
	"os"

	"github.com/TechWithTy/lightspeed-mcp/internal/auth"
	"github.com/TechWithTy/lightspeed-mcp/internal/backend"
	"github.com/TechWithTy/lightspeed-mcp/internal/config"
	"github.com/TechWithTy/lightspeed-mcp/internal/logging"
	"github.com/TechWithTy/lightspeed-mcp/internal/prompts"
	"github.com/TechWithTy/lightspeed-mcp/internal/resources"
	"github.com/TechWithTy/lightspeed-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved.
func New() (*server.MCPServer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	// Logs go to stderr: stdout carries the MCP protocol frames on the
	// stdio transport.
	log := logging.New("lightspeed-mcp", cfg.LogLevel, os.Stderr)

	client := backend.New(backend.Options{
		BaseURL:     cfg.BackendURL,
		Timeout:     cfg.RequestTimeout,
		MaxAttempts: cfg.MaxAttempts,
		Policy:      backend.DefaultPolicy(),
		Logger:      log.With().Str("component", "backend").Logger(),
	})

	resolver := auth.NewResolver(client, cfg.LoginEmail, cfg.LoginPassword,
		log.With().Str("component", "auth").Logger())

	deps := tools.Deps{
		Backend:    client,
		Tokens:     resolver,
		FetchLimit: cfg.FetchLimit,
		Log:        log.With().Str("component", "tools").Logger(),
	}

	s := server.NewMCPServer(
		"lightspeed-mcp",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	toolCount := registerTools(s, deps)
	promptCount := registerPrompts(s)
	resourceCount := registerResources(s, cfg, toolCount, promptCount)

	log.Info().
		Int("tools", toolCount).
		Int("prompts", promptCount).
		Int("resources", resourceCount).
		Str("backend", cfg.BackendURL).
		Msg("server configured")

	return s, nil
}

// toolHandler is the shape every tool in internal/tools exposes.
type toolHandler interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// registerTools registers every MCP tool and returns how many.
func registerTools(s *server.MCPServer, deps tools.Deps) int {
	handlers := []toolHandler{
		// Notes
		tools.NewCreateNoteTool(deps),
		tools.NewGetNotesTool(deps),
		tools.NewUpdateNoteTool(deps),
		tools.NewDeleteNoteTool(deps),
		tools.NewSearchNotesTool(deps),

		// Tasks
		tools.NewCreateTaskTool(deps),
		tools.NewGetTasksTool(deps),
		tools.NewUpdateTaskTool(deps),
		tools.NewCompleteTaskTool(deps),
		tools.NewDeleteTaskTool(deps),
		tools.NewTaskStatisticsTool(deps),

		// Categories
		tools.NewCreateCategoryTool(deps),
		tools.NewGetCategoriesTool(deps),
		tools.NewOrganizeNoteTool(deps),

		// Analytics
		tools.NewDashboardTool(deps),
		tools.NewDuplicatesTool(deps),
		tools.NewDeadlineReportTool(deps),
		tools.NewInsightsTool(deps),
	}

	for _, h := range handlers {
		s.AddTool(h.Definition(), h.Handle)
	}
	return len(handlers)
}

// registerPrompts registers every MCP prompt and returns how many.
func registerPrompts(s *server.MCPServer) int {
	noteAssistant := prompts.NewNoteAssistantPrompt()
	s.AddPrompt(noteAssistant.Definition(), noteAssistant.Handle)

	coach := prompts.NewProductivityCoachPrompt()
	s.AddPrompt(coach.Definition(), coach.Handle)

	organizer := prompts.NewContentOrganizerPrompt()
	s.AddPrompt(organizer.Definition(), organizer.Handle)

	taskManager := prompts.NewTaskManagerPrompt()
	s.AddPrompt(taskManager.Definition(), taskManager.Handle)

	research := prompts.NewResearchAssistantPrompt()
	s.AddPrompt(research.Definition(), research.Handle)

	return 5
}

// registerResources registers every MCP resource and returns how many.
func registerResources(s *server.MCPServer, cfg config.Config, toolCount, promptCount int) int {
	h := resources.NewHandler(cfg.BackendURL, Version)

	s.AddResource(h.ConfigResource(), h.HandleConfig)
	s.AddResource(h.GuideResource(), h.HandleGuide)
	s.AddResource(h.WorkflowsResource(), h.HandleWorkflows)
	s.AddResource(h.SchemaResource(), h.HandleSchema)
	s.AddResource(h.StatusResource(), h.HandleStatus)

	const resourceCount = 5
	h.ToolCount = toolCount
	h.PromptCount = promptCount
	h.ResourceCount = resourceCount
	return resourceCount
}

// serverInstructions returns the system instructions that tell the AI
// how to use the notes app tools effectively.
func serverInstructions() string {
	return `You have access to a notes and tasks productivity backend through MCP tools.

## Capabilities

- Notes: create_note, get_notes, update_note, delete_note, search_notes
- Tasks: create_task, get_tasks, update_task, complete_task, delete_task, get_task_statistics
- Categories: create_category, get_categories, organize_note_into_category
- Analytics: get_productivity_dashboard, find_duplicate_notes, get_overdue_tasks_report, get_content_insights

## How to work with the tools

1. Start with get_productivity_dashboard to understand the user's current state.
2. Use search_notes before creating new notes to avoid duplicates.
3. Use find_duplicate_notes and get_content_insights for periodic cleanup.
4. Prefer organize_note_into_category over leaving notes uncategorized.
5. When the user mentions deadlines, check get_overdue_tasks_report first.

## Authentication

Every tool accepts an optional user_id parameter. Pass a JWT to act as that
user; omit it to use the configured demo account. Tokens are resolved and
cached server-side.

## Resources and prompts

Read config://notes-app and schema://api-reference for data model details,
guide://tool-usage and examples://workflows for usage patterns, and
status://health for server state. Five prompts (note-assistant,
productivity-coach, content-organizer, task-manager, research-assistant)
prime specialized behaviors.`
}
