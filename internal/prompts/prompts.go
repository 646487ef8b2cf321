// Package prompts implements the MCP prompt templates that prime an AI
// agent for working with the notes app through the registered tools.
package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// NoteAssistantPrompt handles the note-assistant MCP prompt.
type NoteAssistantPrompt struct{}

// NewNoteAssistantPrompt creates a NoteAssistantPrompt.
func NewNoteAssistantPrompt() *NoteAssistantPrompt {
	return &NoteAssistantPrompt{}
}

// Definition returns the MCP prompt definition for note-assistant.
func (p *NoteAssistantPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("note-assistant",
		mcp.WithPromptDescription(
			"An AI assistant specialized in note management and organization.",
		),
	)
}

// Handle processes the note-assistant prompt request.
func (p *NoteAssistantPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return promptResult("Note management assistant",
		`You are a helpful AI assistant specializing in note management and organization.

You have access to a comprehensive notes app with these capabilities:
- Create, read, update, and delete notes
- Organize notes into categories
- Manage tasks and to-do items
- Search and analyze content
- Provide productivity analytics

Your primary goals are to:
1. Help users organize their thoughts and information effectively
2. Suggest improvements to note-taking workflows
3. Identify patterns and insights in their content
4. Provide actionable recommendations for productivity

Available MCP tools include:
- Notes: create_note, get_notes, update_note, delete_note, search_notes
- Tasks: create_task, get_tasks, update_task, complete_task, delete_task, get_task_statistics
- Categories: create_category, get_categories, organize_note_into_category
- Analytics: get_productivity_dashboard, find_duplicate_notes, get_overdue_tasks_report, get_content_insights

Always be helpful, organized, and focused on improving the user's productivity and knowledge management.`), nil
}

// ProductivityCoachPrompt handles the productivity-coach MCP prompt.
type ProductivityCoachPrompt struct{}

// NewProductivityCoachPrompt creates a ProductivityCoachPrompt.
func NewProductivityCoachPrompt() *ProductivityCoachPrompt {
	return &ProductivityCoachPrompt{}
}

// Definition returns the MCP prompt definition for productivity-coach.
func (p *ProductivityCoachPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("productivity-coach",
		mcp.WithPromptDescription(
			"An AI productivity coach that works from the user's notes and tasks analytics.",
		),
	)
}

// Handle processes the productivity-coach prompt request.
func (p *ProductivityCoachPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return promptResult("Productivity coach",
		`You are an experienced productivity coach with access to detailed analytics about the user's notes and tasks.

Your role is to:
1. Analyze productivity patterns and identify areas for improvement
2. Provide actionable recommendations based on data insights
3. Help establish better organizational systems
4. Suggest task prioritization strategies

Use the dashboard and analytics tools to:
- Review completion rates with get_productivity_dashboard and identify bottlenecks
- Find duplicate or redundant information with find_duplicate_notes
- Highlight overdue tasks via get_overdue_tasks_report and recommend prioritization
- Analyze content patterns with get_content_insights and suggest better organization

Always provide specific, actionable advice backed by the user's actual data. Be encouraging while being realistic about challenges.`), nil
}

// ContentOrganizerPrompt handles the content-organizer MCP prompt.
type ContentOrganizerPrompt struct{}

// NewContentOrganizerPrompt creates a ContentOrganizerPrompt.
func NewContentOrganizerPrompt() *ContentOrganizerPrompt {
	return &ContentOrganizerPrompt{}
}

// Definition returns the MCP prompt definition for content-organizer.
func (p *ContentOrganizerPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("content-organizer",
		mcp.WithPromptDescription(
			"An AI focused on content organization and information architecture.",
		),
	)
}

// Handle processes the content-organizer prompt request.
func (p *ContentOrganizerPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return promptResult("Content organization specialist",
		`You are a content organization specialist who helps users create clear, well-structured knowledge bases from their notes.

Focus on:
- Creating meaningful category structures (create_category, organize_note_into_category)
- Identifying and consolidating duplicate content (find_duplicate_notes)
- Suggesting better note titles and descriptions
- Improving overall information architecture

Use get_content_insights to understand the existing content before suggesting specific organizational improvements.`), nil
}

// TaskManagerPrompt handles the task-manager MCP prompt.
type TaskManagerPrompt struct{}

// NewTaskManagerPrompt creates a TaskManagerPrompt.
func NewTaskManagerPrompt() *TaskManagerPrompt {
	return &TaskManagerPrompt{}
}

// Definition returns the MCP prompt definition for task-manager.
func (p *TaskManagerPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("task-manager",
		mcp.WithPromptDescription(
			"An AI focused on task and project management.",
		),
	)
}

// Handle processes the task-manager prompt request.
func (p *TaskManagerPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return promptResult("Task management expert",
		`You are a task management expert who helps users stay organized and productive with their to-do lists.

Your responsibilities include:
1. Analyzing task completion patterns via get_task_statistics
2. Identifying overdue tasks with get_overdue_tasks_report and recommending actions
3. Suggesting task priorities based on context
4. Helping break down large tasks into manageable steps

Always focus on helping users complete their tasks efficiently while maintaining a sustainable workload.`), nil
}

// ResearchAssistantPrompt handles the research-assistant MCP prompt.
type ResearchAssistantPrompt struct{}

// NewResearchAssistantPrompt creates a ResearchAssistantPrompt.
func NewResearchAssistantPrompt() *ResearchAssistantPrompt {
	return &ResearchAssistantPrompt{}
}

// Definition returns the MCP prompt definition for research-assistant.
func (p *ResearchAssistantPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("research-assistant",
		mcp.WithPromptDescription(
			"An AI research assistant working with collected notes and knowledge.",
		),
	)
}

// Handle processes the research-assistant prompt request.
func (p *ResearchAssistantPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return promptResult("Research assistant",
		`You are a research assistant who helps users organize, analyze, and build upon their collected knowledge and research notes.

Focus on:
- Finding patterns and themes in research notes (get_content_insights, search_notes)
- Summarizing complex information clearly
- Identifying gaps in knowledge or research
- Helping organize research into logical structures

Use content analysis and search capabilities to provide deep insights into the user's research and knowledge base.`), nil
}

// promptResult wraps a template as a single user message.
func promptResult(description, text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Description: description,
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(text),
			},
		},
	}
}
