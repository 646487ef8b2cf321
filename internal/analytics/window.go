package analytics

import (
	"math"
	"sort"
	"time"
)

// DefaultWindowDays is the default trailing-window size for the
// dashboard.
const DefaultWindowDays = 7

// topCategories caps category histograms at the most frequent entries.
const topCategories = 10

// uncategorized is the histogram bucket for records with no category.
const uncategorized = "Uncategorized"

// DayActivity counts notes and tasks created on one calendar day.
type DayActivity struct {
	Notes int `json:"notes"`
	Tasks int `json:"tasks"`
}

// WindowStats is the output of the time-window aggregation: the subset
// of records created inside the trailing window, per-day activity
// buckets, and category histograms over the full sets.
type WindowStats struct {
	WindowDays  int
	Start       time.Time
	End         time.Time
	RecentNotes []Note
	RecentTasks []Task

	// DailyActivity is keyed by UTC calendar date (YYYY-MM-DD) and only
	// covers windowed records.
	DailyActivity map[string]DayActivity

	// Category histograms cover the full record sets, not just the
	// window, capped at the top 10 by frequency.
	NoteCategories map[string]int
	TaskCategories map[string]int

	NotesPerDay float64
	TasksPerDay float64
}

// AggregateWindow buckets records into the trailing window
// [now - days, now]. The lower bound is inclusive: a record created
// exactly `days` days before now is still inside the window. Records
// without a parseable created_at never enter windowed views but do
// count in the category histograms.
func AggregateWindow(notes []Note, tasks []Task, days int, now time.Time) WindowStats {
	if days <= 0 {
		days = DefaultWindowDays
	}
	start := now.AddDate(0, 0, -days)

	w := WindowStats{
		WindowDays:    days,
		Start:         start,
		End:           now,
		RecentNotes:   []Note{},
		RecentTasks:   []Task{},
		DailyActivity: map[string]DayActivity{},
	}

	for _, n := range notes {
		if !inWindow(n.CreatedAt, start) {
			continue
		}
		w.RecentNotes = append(w.RecentNotes, n)
		day := n.CreatedAt.UTC().Format("2006-01-02")
		a := w.DailyActivity[day]
		a.Notes++
		w.DailyActivity[day] = a
	}
	for _, t := range tasks {
		if !inWindow(t.CreatedAt, start) {
			continue
		}
		w.RecentTasks = append(w.RecentTasks, t)
		day := t.CreatedAt.UTC().Format("2006-01-02")
		a := w.DailyActivity[day]
		a.Tasks++
		w.DailyActivity[day] = a
	}

	noteCats := map[string]int{}
	for _, n := range notes {
		noteCats[n.CategoryName(uncategorized)]++
	}
	taskCats := map[string]int{}
	for _, t := range tasks {
		cat := t.Category
		if cat == "" {
			cat = uncategorized
		}
		taskCats[cat]++
	}
	w.NoteCategories = topN(noteCats, topCategories)
	w.TaskCategories = topN(taskCats, topCategories)

	w.NotesPerDay = round2(float64(len(w.RecentNotes)) / float64(days))
	w.TasksPerDay = round2(float64(len(w.RecentTasks)) / float64(days))

	return w
}

// inWindow reports whether ts is within [start, +inf). Records created
// "in the future" relative to now are a backend clock concern, not
// ours — they stay in the window.
func inWindow(ts *time.Time, start time.Time) bool {
	return ts != nil && !ts.Before(start)
}

// topN keeps the n highest counts from a histogram. Ties are broken by
// key so the result is deterministic.
func topN(counts map[string]int, n int) map[string]int {
	if len(counts) <= n {
		return counts
	}
	type entry struct {
		key   string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for k, c := range counts {
		entries = append(entries, entry{k, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})
	top := make(map[string]int, n)
	for _, e := range entries[:n] {
		top[e.key] = e.count
	}
	return top
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
