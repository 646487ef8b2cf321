package analytics

import (
	"fmt"
	"math"
	"time"
)

// Period describes the window a dashboard covers.
type Period struct {
	DaysAnalyzed int       `json:"days_analyzed"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}

// Summary holds the dashboard's headline counts and rates.
type Summary struct {
	TotalNotes  int     `json:"total_notes"`
	TotalTasks  int     `json:"total_tasks"`
	RecentNotes int     `json:"recent_notes"`
	RecentTasks int     `json:"recent_tasks"`
	NotesPerDay float64 `json:"notes_per_day"`
	TasksPerDay float64 `json:"tasks_per_day"`
}

// TaskCompletion holds completion counts and rates, overall and inside
// the window.
type TaskCompletion struct {
	TotalCompleted        int            `json:"total_completed"`
	RecentCompleted       int            `json:"recent_completed"`
	OverallCompletionRate float64        `json:"overall_completion_rate"`
	RecentCompletionRate  float64        `json:"recent_completion_rate"`
	StatusDistribution    map[string]int `json:"status_distribution"`
}

// CategoryBreakdown holds the top-10 category histograms.
type CategoryBreakdown struct {
	NoteCategories map[string]int `json:"note_categories"`
	TaskCategories map[string]int `json:"task_categories"`
}

// Dashboard is the full productivity snapshot. It is built fresh on
// every request and every key is always present: empty inputs produce
// zero counts and empty maps, never missing fields.
type Dashboard struct {
	Period         Period                 `json:"period"`
	Summary        Summary                `json:"summary"`
	TaskCompletion TaskCompletion         `json:"task_completion"`
	Categories     CategoryBreakdown      `json:"categories"`
	DailyActivity  map[string]DayActivity `json:"daily_activity"`
	GeneratedAt    time.Time              `json:"generated_at"`
}

// BuildDashboard composes the window aggregation, completion
// arithmetic, and category distributions into one snapshot.
func BuildDashboard(notes []Note, tasks []Task, days int, now time.Time, rep Reporter) Dashboard {
	w := AggregateWindow(notes, tasks, days, now)

	completed := 0
	statusDist := map[string]int{}
	for _, t := range tasks {
		statusDist[string(t.Status)]++
		if t.Status == StatusDone {
			completed++
		}
	}
	recentCompleted := 0
	for _, t := range w.RecentTasks {
		if t.Status == StatusDone {
			recentCompleted++
		}
	}

	d := Dashboard{
		Period: Period{
			DaysAnalyzed: w.WindowDays,
			StartDate:    w.Start,
			EndDate:      w.End,
		},
		Summary: Summary{
			TotalNotes:  len(notes),
			TotalTasks:  len(tasks),
			RecentNotes: len(w.RecentNotes),
			RecentTasks: len(w.RecentTasks),
			NotesPerDay: w.NotesPerDay,
			TasksPerDay: w.TasksPerDay,
		},
		TaskCompletion: TaskCompletion{
			TotalCompleted:        completed,
			RecentCompleted:       recentCompleted,
			OverallCompletionRate: completionRate(completed, len(tasks)),
			RecentCompletionRate:  completionRate(recentCompleted, len(w.RecentTasks)),
			StatusDistribution:    statusDist,
		},
		Categories: CategoryBreakdown{
			NoteCategories: w.NoteCategories,
			TaskCategories: w.TaskCategories,
		},
		DailyActivity: w.DailyActivity,
		GeneratedAt:   now,
	}

	report(rep, "info", fmt.Sprintf("dashboard built over %d notes and %d tasks (%d-day window)", len(notes), len(tasks), w.WindowDays))
	return d
}

// completionRate is done/total as a percentage rounded to 2 decimals,
// and 0 when total is 0.
func completionRate(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(done) / float64(total) * 100)
}

// TaskStatistics is the per-status task count summary.
type TaskStatistics struct {
	Total                int     `json:"total"`
	Todo                 int     `json:"todo"`
	InProgress           int     `json:"in_progress"`
	Done                 int     `json:"done"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

// BuildTaskStatistics counts tasks by status. The completion
// percentage is rounded to one decimal, and 0 for an empty set.
func BuildTaskStatistics(tasks []Task) TaskStatistics {
	s := TaskStatistics{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case StatusTodo:
			s.Todo++
		case StatusInProgress:
			s.InProgress++
		case StatusDone:
			s.Done++
		}
	}
	if s.Total > 0 {
		s.CompletionPercentage = round1(float64(s.Done) / float64(s.Total) * 100)
	}
	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
