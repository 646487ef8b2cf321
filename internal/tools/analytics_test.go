package tools

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fixedNow pins the analytics tools' clock for deterministic windows.
func fixedNow(t *testing.T) func() time.Time {
	t.Helper()
	now, err := time.Parse(time.RFC3339, "2026-08-24T12:00:00Z")
	if err != nil {
		t.Fatalf("bad fixture time: %v", err)
	}
	return func() time.Time { return now }
}

func TestDashboardValidatesDaysBack(t *testing.T) {
	tool := NewDashboardTool(testDeps(&fakeBackend{}))

	r, err := tool.Handle(context.Background(), makeReq(map[string]any{
		"days_back": float64(0),
	}))
	mustError(t, r, err, "'days_back' must be at least 1")
}

func TestDashboardDegradesOnOneFailedFetch(t *testing.T) {
	fb := &fakeBackend{
		notesErr: errors.New("notes endpoint down"),
		tasks: []map[string]any{
			{"id": "t1", "status": "done", "created_at": "2026-08-23T10:00:00Z"},
		},
	}
	tool := NewDashboardTool(testDeps(fb))
	tool.now = fixedNow(t)

	r, err := tool.Handle(context.Background(), makeReq(map[string]any{}))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	out := resultJSON(t, r)
	summary := out["summary"].(map[string]any)
	if summary["total_notes"] != float64(0) {
		t.Errorf("total_notes = %v, want 0 (degraded to empty set)", summary["total_notes"])
	}
	if summary["total_tasks"] != float64(1) {
		t.Errorf("total_tasks = %v, want 1", summary["total_tasks"])
	}
}

func TestDashboardErrorsWhenBothFetchesFail(t *testing.T) {
	fb := &fakeBackend{
		notesErr: errors.New("down"),
		tasksErr: errors.New("down"),
	}
	tool := NewDashboardTool(testDeps(fb))
	tool.now = fixedNow(t)

	r, err := tool.Handle(context.Background(), makeReq(map[string]any{}))
	mustError(t, r, err, "both note and task fetches failed")
}

func TestDashboardComposesAnalytics(t *testing.T) {
	fb := &fakeBackend{
		notes: []map[string]any{
			{"id": "n1", "title": "a", "created_at": "2026-08-23T08:00:00Z"},
		},
		tasks: []map[string]any{
			{"id": "t1", "status": "done", "created_at": "2026-08-23T09:00:00Z"},
			{"id": "t2", "status": "todo", "created_at": "2026-08-23T10:00:00Z"},
		},
	}
	tool := NewDashboardTool(testDeps(fb))
	tool.now = fixedNow(t)

	r, err := tool.Handle(context.Background(), makeReq(map[string]any{
		"days_back": float64(7),
	}))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	out := resultJSON(t, r)
	completion := out["task_completion"].(map[string]any)
	if completion["overall_completion_rate"] != float64(50) {
		t.Errorf("overall_completion_rate = %v, want 50", completion["overall_completion_rate"])
	}
	period := out["period"].(map[string]any)
	if period["days_analyzed"] != float64(7) {
		t.Errorf("days_analyzed = %v, want 7", period["days_analyzed"])
	}
	activity := out["daily_activity"].(map[string]any)
	if _, ok := activity["2026-08-23"]; !ok {
		t.Errorf("daily_activity = %v, want a 2026-08-23 bucket", activity)
	}
}

func TestDuplicatesValidatesThreshold(t *testing.T) {
	tool := NewDuplicatesTool(testDeps(&fakeBackend{}))

	for _, bad := range []float64{-0.1, 1.5} {
		r, err := tool.Handle(context.Background(), makeReq(map[string]any{
			"similarity_threshold": bad,
		}))
		mustError(t, r, err, "'similarity_threshold' must be between 0 and 1")
	}
}

func TestDuplicatesReport(t *testing.T) {
	fb := &fakeBackend{notes: []map[string]any{
		{"id": "1", "title": "Shopping", "content": "milk eggs bread"},
		{"id": "2", "title": "Shopping", "content": "milk eggs bread"},
	}}
	tool := NewDuplicatesTool(testDeps(fb))
	tool.now = fixedNow(t)

	r, err := tool.Handle(context.Background(), makeReq(map[string]any{}))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	out := resultJSON(t, r)
	if out["duplicate_groups_found"] != float64(1) {
		t.Errorf("duplicate_groups_found = %v, want 1", out["duplicate_groups_found"])
	}
	if out["similarity_threshold"] != float64(0.8) {
		t.Errorf("similarity_threshold = %v, want default 0.8", out["similarity_threshold"])
	}
}

func TestDeadlineReportTool(t *testing.T) {
	fb := &fakeBackend{tasks: []map[string]any{
		{"id": "t1", "title": "late", "status": "todo", "due_date": "2026-08-23T12:00:00Z"},
	}}
	tool := NewDeadlineReportTool(testDeps(fb))
	tool.now = fixedNow(t)

	r, err := tool.Handle(context.Background(), makeReq(map[string]any{}))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	out := resultJSON(t, r)
	summary := out["summary"].(map[string]any)
	if summary["overdue_count"] != float64(1) {
		t.Errorf("overdue_count = %v, want 1", summary["overdue_count"])
	}
}

func TestInsightsEmptyBackend(t *testing.T) {
	tool := NewInsightsTool(testDeps(&fakeBackend{}))
	tool.now = fixedNow(t)

	r, err := tool.Handle(context.Background(), makeReq(map[string]any{}))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	out := resultJSON(t, r)
	if out["message"] != "No notes found to analyze" {
		t.Errorf("message = %v, want the no-notes message", out["message"])
	}
	if insights, ok := out["insights"].(map[string]any); !ok || len(insights) != 0 {
		t.Errorf("insights = %v, want empty object", out["insights"])
	}
}

func TestInsightsWithNotes(t *testing.T) {
	fb := &fakeBackend{notes: []map[string]any{
		{"id": "1", "title": "kubernetes deployment", "content": "kubernetes rollout strategy"},
	}}
	tool := NewInsightsTool(testDeps(fb))
	tool.now = fixedNow(t)

	r, err := tool.Handle(context.Background(), makeReq(map[string]any{}))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	out := resultJSON(t, r)
	stats := out["content_statistics"].(map[string]any)
	if stats["total_notes"] != float64(1) {
		t.Errorf("total_notes = %v, want 1", stats["total_notes"])
	}
	topics := out["top_topics"].(map[string]any)
	if topics["kubernetes"] != float64(2) {
		t.Errorf("top_topics = %v, want kubernetes counted twice", topics)
	}
}
