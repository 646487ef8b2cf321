package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// upcomingHorizon is how far ahead a task may be due and still count
// as "upcoming".
const upcomingHorizon = 7 * 24 * time.Hour

// DeadlineTask is a task entry in the deadline report.
type DeadlineTask struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
	Category    string   `json:"category,omitempty"`
	DueDate     string   `json:"due_date"`

	// DaysDifference is due minus now in whole days (floor of the
	// duration), negative for overdue tasks.
	DaysDifference int `json:"days_difference"`

	// DaysOverdue is set on overdue entries only, including those less
	// than a whole day past due.
	DaysOverdue *int    `json:"days_overdue,omitempty"`
	CreatedAt   *string `json:"created_at"`
}

// DeadlineSummary holds the report's headline counts.
type DeadlineSummary struct {
	TotalActiveTasks  int     `json:"total_active_tasks"`
	OverdueCount      int     `json:"overdue_count"`
	UpcomingCount     int     `json:"upcoming_count"`
	OverduePercentage float64 `json:"overdue_percentage"`
}

// DeadlineReport partitions open tasks into overdue and upcoming lists
// with recommendations. Built fresh per request.
type DeadlineReport struct {
	Summary         DeadlineSummary `json:"summary"`
	OverdueTasks    []DeadlineTask  `json:"overdue_tasks"`
	UpcomingTasks   []DeadlineTask  `json:"upcoming_tasks"`
	Recommendations []string        `json:"recommendations"`
	Message         string          `json:"message,omitempty"`
	GeneratedAt     time.Time       `json:"generated_at"`
}

// BuildDeadlineReport classifies tasks relative to now. Done tasks and
// tasks without a (parseable) due date are skipped entirely. A task is
// overdue when its due date is strictly before now, and upcoming when
// it is due within the next 7 days, bounds inclusive. Tasks due
// further out appear in neither list.
//
// Overdue tasks are sorted most-overdue first, upcoming tasks
// soonest-due first.
func BuildDeadlineReport(tasks []Task, now time.Time, rep Reporter) DeadlineReport {
	r := DeadlineReport{
		OverdueTasks:  []DeadlineTask{},
		UpcomingTasks: []DeadlineTask{},
		GeneratedAt:   now,
	}

	if len(tasks) == 0 {
		r.Message = "No tasks found"
		r.Recommendations = []string{}
		return r
	}

	active := 0
	for _, t := range tasks {
		if t.Status != StatusDone {
			active++
		}
	}

	for _, t := range tasks {
		if t.Status == StatusDone || t.DueDate == nil {
			continue
		}
		due := *t.DueDate

		info := DeadlineTask{
			ID:             t.ID,
			Title:          t.DisplayTitle(),
			Description:    t.Description,
			Status:         t.Status,
			Priority:       t.Priority,
			Category:       t.Category,
			DueDate:        due.Format(time.RFC3339),
			DaysDifference: wholeDays(due.Sub(now)),
		}
		if t.CreatedAt != nil {
			s := t.CreatedAt.Format(time.RFC3339)
			info.CreatedAt = &s
		}

		switch {
		case due.Before(now):
			overdue := wholeDays(now.Sub(due))
			info.DaysOverdue = &overdue
			r.OverdueTasks = append(r.OverdueTasks, info)
		case !due.After(now.Add(upcomingHorizon)):
			r.UpcomingTasks = append(r.UpcomingTasks, info)
		}
	}

	sort.SliceStable(r.OverdueTasks, func(i, j int) bool {
		return *r.OverdueTasks[i].DaysOverdue > *r.OverdueTasks[j].DaysOverdue
	})
	sort.SliceStable(r.UpcomingTasks, func(i, j int) bool {
		return r.UpcomingTasks[i].DaysDifference < r.UpcomingTasks[j].DaysDifference
	})

	r.Summary = DeadlineSummary{
		TotalActiveTasks: active,
		OverdueCount:     len(r.OverdueTasks),
		UpcomingCount:    len(r.UpcomingTasks),
	}
	if active > 0 {
		r.Summary.OverduePercentage = round2(float64(len(r.OverdueTasks)) / float64(active) * 100)
	}
	r.Recommendations = recommendations(r.OverdueTasks, r.UpcomingTasks)

	report(rep, "info", fmt.Sprintf("deadline report: %d overdue, %d upcoming of %d active tasks", len(r.OverdueTasks), len(r.UpcomingTasks), active))
	return r
}

// recommendations applies the fixed rule set in order; several rules
// can fire on the same report.
func recommendations(overdue, upcoming []DeadlineTask) []string {
	var recs []string

	if len(overdue) > 5 {
		recs = append(recs, "You have many overdue tasks. Consider reviewing and prioritizing them.")
	}

	highPriority := 0
	for _, t := range overdue {
		if t.Priority == PriorityHigh {
			highPriority++
		}
	}
	if highPriority > 0 {
		recs = append(recs, fmt.Sprintf("You have %d high-priority overdue tasks that need immediate attention.", highPriority))
	}

	urgent := 0
	for _, t := range upcoming {
		if t.DaysDifference <= 2 {
			urgent++
		}
	}
	if urgent > 0 {
		recs = append(recs, fmt.Sprintf("You have %d tasks due within 2 days.", urgent))
	}

	if len(overdue) == 0 && len(upcoming) == 0 {
		recs = append(recs, "Great job! No overdue or urgent tasks found.")
	}

	if recs == nil {
		recs = []string{}
	}
	return recs
}

// wholeDays converts a duration to whole days, flooring toward
// negative infinity so that -1.5 days is -2, matching calendar-day
// difference semantics.
func wholeDays(d time.Duration) int {
	return int(math.Floor(d.Hours() / 24))
}
