package resources

const toolUsageGuide = `# MCP Tools Usage Guide

## Notes Management Tools

### create_note
Creates a new note with title, content, and optional category.
**Best practices:**
- Use descriptive, searchable titles
- Include relevant content for context
- Assign appropriate categories for organization

### get_notes
Retrieves notes with optional filtering and pagination.
**Parameters:**
- limit: Number of notes to retrieve (default: 50)
- skip: Skip number of notes for pagination

### update_note
Updates an existing note's title, content, or category.
**Note:** Requires exact note ID for identification

### search_notes
Searches notes by title and content matching.
**Tips:**
- Use specific keywords for better results
- Search is case-insensitive
- Searches both title and content fields

## Task Management Tools

### create_task
Creates a new task with status tracking.
**Required:** title
**Optional:** description, status, priority, due_date, category

### complete_task
Marks a task as completed (status = "done").
**Usage:** Provide task ID to mark complete

### get_task_statistics
Provides comprehensive task analytics including completion rates and status distribution.

## Category Management Tools

### create_category
Creates organizational categories for notes.
**Best practices:**
- Use clear, descriptive names
- Avoid duplicate categories
- Add descriptions for clarity

### organize_note_into_category
Associates existing notes with categories.
**Requirements:** Valid note ID and category ID

## Analytics and Productivity Tools

### get_productivity_dashboard
Comprehensive productivity metrics and insights.
**Includes:**
- Activity trends
- Completion rates
- Category distributions
- Daily activity patterns

### find_duplicate_notes
Identifies potentially duplicate content.
**Parameters:**
- similarity_threshold: 0.0 to 1.0 (default: 0.8)

### get_overdue_tasks_report
Analyzes task deadlines and provides overdue/upcoming task reports.

### get_content_insights
Detailed content analysis including word counts, topics, and writing patterns.

## General Best Practices

1. **Start with get_productivity_dashboard** to understand current state
2. **Use search_notes** before creating new notes to avoid duplicates
3. **Organize with categories** for better information architecture
4. **Regular cleanup** using duplicate detection and content insights
`

const exampleWorkflows = `# Example MCP Workflows

## Workflow 1: New User Onboarding

1. **Get Overview**: get_productivity_dashboard
2. **Analyze Content**: get_content_insights
3. **Create Organization**: create_category for main topics
4. **Organize Existing**: organize_note_into_category for key notes

## Workflow 2: Daily Productivity Review

1. **Check Tasks**: get_overdue_tasks_report
2. **Review Activity**: get_productivity_dashboard (1-7 days)
3. **Complete Tasks**: complete_task for finished items
4. **Create New Tasks**: Based on new priorities

## Workflow 3: Content Cleanup and Organization

1. **Find Duplicates**: find_duplicate_notes
2. **Analyze Content**: get_content_insights
3. **Create Categories**: Based on content themes
4. **Organize Notes**: organize_note_into_category

## Workflow 4: Research Project Management

1. **Create Category**: For the research project
2. **Create Research Notes**: create_note for each source
3. **Create Tasks**: For follow-up work on each source
4. **Track Progress**: Regular get_task_statistics

## Workflow 5: Weekly Planning Session

1. **Review Metrics**: get_productivity_dashboard (7-30 days)
2. **Check Overdue**: get_overdue_tasks_report
3. **Analyze Content**: get_content_insights
4. **Plan Tasks**: Create tasks for upcoming priorities
5. **Organize Notes**: Update categories and refresh content
`
