// Package analytics derives productivity insights from note and task
// records fetched from the backend.
//
// Every function in this package is a pure computation over
// already-materialized collections plus an explicit reference time.
// Nothing here performs I/O, retains state between calls, or mutates
// its inputs, so concurrent invocations are safe by construction.
package analytics

import (
	"strings"
	"time"
)

// Status is a task lifecycle state. The backend only ever stores the
// three values below; anything else is rejected at the tool boundary
// before it reaches this package.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// ParseStatus validates a status string. The empty string is not a
// valid status — callers that allow "no filter" check for it first.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusTodo, StatusInProgress, StatusDone:
		return Status(s), true
	}
	return "", false
}

// Statuses lists the valid task statuses in display order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// Priority is a task priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority validates a priority string.
func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), true
	}
	return "", false
}

// Category is a note's category reference as returned by the backend.
type Category struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Note is a normalized note record. Title and Content are always
// present as strings (possibly empty, never "missing"). CreatedAt and
// UpdatedAt are nil when the source field was absent or unparseable —
// such notes are excluded from time-windowed views but still count in
// totals and category aggregations.
type Note struct {
	ID        string
	Title     string
	Content   string
	Category  *Category
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

// DisplayTitle returns the title, or "Untitled" when the note has
// none. The empty title is preserved on the record itself so that
// similarity scoring sees the real text.
func (n Note) DisplayTitle() string {
	if n.Title == "" {
		return defaultTitle
	}
	return n.Title
}

// CategoryName returns the note's category name, or fallback when the
// note is uncategorized.
func (n Note) CategoryName(fallback string) string {
	if n.Category != nil && n.Category.Name != "" {
		return n.Category.Name
	}
	return fallback
}

// Task is a normalized task record. Unlike notes, a task's category is
// a plain name string on the backend, not a reference object.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	Priority    Priority
	Category    string
	DueDate     *time.Time
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

// DisplayTitle returns the title, or "Untitled" when the task has none.
func (t Task) DisplayTitle() string {
	if t.Title == "" {
		return defaultTitle
	}
	return t.Title
}

// defaultTitle is used for display when a record has no title.
const defaultTitle = "Untitled"

// NormalizeNotes converts raw backend records into Notes. Records keep
// their order. Malformed fields degrade (missing title, wrong-typed
// content, bad timestamps) instead of failing the batch.
func NormalizeNotes(raw []map[string]any) []Note {
	notes := make([]Note, 0, len(raw))
	for _, r := range raw {
		notes = append(notes, normalizeNote(r))
	}
	return notes
}

func normalizeNote(r map[string]any) Note {
	n := Note{
		ID:        stringField(r, "id"),
		Title:     stringField(r, "title"),
		Content:   stringField(r, "content"),
		CreatedAt: timeField(r, "created_at"),
		UpdatedAt: timeField(r, "updated_at"),
	}
	if cat, ok := r["category"].(map[string]any); ok {
		c := Category{
			ID:   stringField(cat, "id"),
			Name: stringField(cat, "name"),
		}
		if c.ID != "" || c.Name != "" {
			n.Category = &c
		}
	}
	return n
}

// NormalizeTasks converts raw backend records into Tasks. Unknown
// status values degrade to "todo" here — list responses from the
// backend should never contain them, and the strict validation path
// for caller-supplied statuses lives at the tool boundary.
func NormalizeTasks(raw []map[string]any) []Task {
	tasks := make([]Task, 0, len(raw))
	for _, r := range raw {
		tasks = append(tasks, normalizeTask(r))
	}
	return tasks
}

func normalizeTask(r map[string]any) Task {
	t := Task{
		ID:          stringField(r, "id"),
		Title:       stringField(r, "title"),
		Description: stringField(r, "description"),
		Category:    stringField(r, "category"),
		DueDate:     timeField(r, "due_date"),
		CreatedAt:   timeField(r, "created_at"),
		UpdatedAt:   timeField(r, "updated_at"),
	}
	if st, ok := ParseStatus(stringField(r, "status")); ok {
		t.Status = st
	} else {
		t.Status = StatusTodo
	}
	if p, ok := ParsePriority(stringField(r, "priority")); ok {
		t.Priority = p
	} else {
		t.Priority = PriorityMedium
	}
	return t
}

// stringField extracts a string value, treating missing or wrong-typed
// fields as empty.
func stringField(r map[string]any, key string) string {
	s, _ := r[key].(string)
	return s
}

// timeField parses an ISO-8601 timestamp field. A trailing "Z" is the
// UTC offset. Missing, wrong-typed, or unparseable values yield nil —
// parse failures never propagate out of normalization.
func timeField(r map[string]any, key string) *time.Time {
	s, ok := r[key].(string)
	if !ok || s == "" {
		return nil
	}
	return parseTimestamp(s)
}

// timestampLayouts covers the backend's timestamp renderings: RFC 3339
// with or without fractional seconds, and the offset-less form some
// serializers emit.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) *time.Time {
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
