package analytics

import (
	"testing"
)

func TestAggregateWindowBoundaryInclusive(t *testing.T) {
	now := refTime(t)

	notes := []Note{
		{ID: "edge", CreatedAt: ts(t, "2026-08-17T12:00:00Z")}, // exactly 7 days back
		{ID: "inside", CreatedAt: ts(t, "2026-08-20T00:00:00Z")},
		{ID: "outside", CreatedAt: ts(t, "2026-08-17T11:59:59Z")}, // one second too old
	}

	w := AggregateWindow(notes, nil, 7, now)
	if len(w.RecentNotes) != 2 {
		t.Fatalf("recent notes = %d, want 2 (boundary is inclusive)", len(w.RecentNotes))
	}
	for _, n := range w.RecentNotes {
		if n.ID == "outside" {
			t.Error("note outside the window was included")
		}
	}
}

func TestAggregateWindowSkipsNilTimestamps(t *testing.T) {
	now := refTime(t)

	notes := []Note{
		{ID: "1", CreatedAt: nil, Category: &Category{Name: "Work"}},
		{ID: "2", CreatedAt: ts(t, "2026-08-23T10:00:00Z")},
	}

	w := AggregateWindow(notes, nil, 7, now)
	if len(w.RecentNotes) != 1 {
		t.Errorf("recent notes = %d, want 1 (nil created_at excluded)", len(w.RecentNotes))
	}
	// But the category histogram covers the full set.
	if w.NoteCategories["Work"] != 1 {
		t.Errorf("note categories = %v, want Work counted from unwindowed note", w.NoteCategories)
	}
	if w.NoteCategories["Uncategorized"] != 1 {
		t.Errorf("note categories = %v, want 1 Uncategorized", w.NoteCategories)
	}
}

func TestAggregateWindowDailyBuckets(t *testing.T) {
	now := refTime(t)

	notes := []Note{
		{ID: "1", CreatedAt: ts(t, "2026-08-23T08:00:00Z")},
		{ID: "2", CreatedAt: ts(t, "2026-08-23T21:00:00Z")},
	}
	tasks := []Task{
		{ID: "t1", Status: StatusTodo, CreatedAt: ts(t, "2026-08-23T09:30:00Z")},
		{ID: "t2", Status: StatusTodo, CreatedAt: ts(t, "2026-08-22T09:30:00Z")},
	}

	w := AggregateWindow(notes, tasks, 7, now)

	day := w.DailyActivity["2026-08-23"]
	if day.Notes != 2 || day.Tasks != 1 {
		t.Errorf("2026-08-23 activity = %+v, want 2 notes 1 task", day)
	}
	prev := w.DailyActivity["2026-08-22"]
	if prev.Notes != 0 || prev.Tasks != 1 {
		t.Errorf("2026-08-22 activity = %+v, want 0 notes 1 task", prev)
	}
}

func TestAggregateWindowPerDayRates(t *testing.T) {
	now := refTime(t)

	notes := []Note{
		{ID: "1", CreatedAt: ts(t, "2026-08-23T08:00:00Z")},
		{ID: "2", CreatedAt: ts(t, "2026-08-22T08:00:00Z")},
		{ID: "3", CreatedAt: ts(t, "2026-08-21T08:00:00Z")},
	}

	w := AggregateWindow(notes, nil, 7, now)
	if w.NotesPerDay != 0.43 {
		t.Errorf("notes_per_day = %v, want 0.43 (3/7 rounded to 2 decimals)", w.NotesPerDay)
	}
	if w.TasksPerDay != 0 {
		t.Errorf("tasks_per_day = %v, want 0", w.TasksPerDay)
	}
}

func TestTopNCapsAndBreaksTiesByKey(t *testing.T) {
	counts := map[string]int{
		"a": 5, "b": 4, "c": 3, "d": 2, "e": 2, "f": 1,
	}
	top := topN(counts, 4)
	if len(top) != 4 {
		t.Fatalf("topN size = %d, want 4", len(top))
	}
	for _, k := range []string{"a", "b", "c", "d"} {
		if _, ok := top[k]; !ok {
			t.Errorf("topN missing %q (tie at count 2 should prefer lower key)", k)
		}
	}
	if _, ok := top["e"]; ok {
		t.Error("topN kept 'e' over 'd' on tie")
	}
}

func TestTopNSmallMapUntouched(t *testing.T) {
	counts := map[string]int{"only": 1}
	top := topN(counts, 10)
	if len(top) != 1 || top["only"] != 1 {
		t.Errorf("topN(small) = %v, want unchanged", top)
	}
}
