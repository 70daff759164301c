package analytics

import (
	"math"
	"sort"

	types "github.com/yungbote/routinely-backend/internal/domain"
	"github.com/yungbote/routinely-backend/internal/domain/calendar"
)

// DefaultTargetPercentage applies when a user has no goal for the period.
const DefaultTargetPercentage = 80

const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"

	WeeklyWindowDays  = 7
	MonthlyWindowDays = 30
)

type DateRange struct {
	Start calendar.Date `json:"start"`
	End   calendar.Date `json:"end"`
}

// WindowEnding covers [today-days, today], both ends inclusive.
func WindowEnding(today calendar.Date, days int) DateRange {
	return DateRange{Start: today.AddDays(-days), End: today}
}

func (r DateRange) Contains(d calendar.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

type TimeAnalysis struct {
	TotalPlannedMinutes int      `json:"total_planned_minutes"`
	TotalActualMinutes  int      `json:"total_actual_minutes"`
	TotalPlannedHours   *float64 `json:"total_planned_hours,omitempty"`
	TotalActualHours    *float64 `json:"total_actual_hours,omitempty"`
	Efficiency          float64  `json:"efficiency"`
}

type CategoryStats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
}

// Summary holds the figures shared by weekly and monthly reports.
type Summary struct {
	Period            string                   `json:"period"`
	DateRange         DateRange                `json:"date_range"`
	TotalTasks        int                      `json:"total_tasks"`
	CompletedTasks    int                      `json:"completed_tasks"`
	PartialTasks      int                      `json:"partial_tasks"`
	MissedTasks       int                      `json:"missed_tasks"`
	SkippedTasks      int                      `json:"skipped_tasks"`
	PendingTasks      int                      `json:"pending_tasks"`
	CompletionRate    float64                  `json:"completion_rate"`
	TargetPercentage  int                      `json:"target_percentage"`
	GapToGoal         float64                  `json:"gap_to_goal"`
	TimeAnalysis      TimeAnalysis             `json:"time_analysis"`
	CategoryBreakdown map[string]CategoryStats `json:"category_breakdown"`
}

type WeeklyReport struct {
	Summary
}

type DayTrend struct {
	Date           calendar.Date `json:"date"`
	Total          int           `json:"total"`
	Completed      int           `json:"completed"`
	CompletionRate float64       `json:"completion_rate"`
}

type MonthlyReport struct {
	Summary
	DailyTrend []DayTrend `json:"daily_trend"`
}

// TargetFor resolves the goal percentage, falling back to DefaultTargetPercentage.
func TargetFor(goal *types.UserGoal) int {
	if goal == nil {
		return DefaultTargetPercentage
	}
	return goal.TargetPercentage
}

// Weekly expects logs already restricted to WindowEnding(today, WeeklyWindowDays).
func Weekly(today calendar.Date, logs []*types.DailyLog, goal *types.UserGoal) WeeklyReport {
	window := WindowEnding(today, WeeklyWindowDays)
	return WeeklyReport{Summary: Summarize(PeriodWeekly, window, logs, TargetFor(goal))}
}

// Monthly expects logs already restricted to WindowEnding(today, MonthlyWindowDays).
func Monthly(today calendar.Date, logs []*types.DailyLog, goal *types.UserGoal) MonthlyReport {
	window := WindowEnding(today, MonthlyWindowDays)
	s := Summarize(PeriodMonthly, window, logs, TargetFor(goal))

	planned := round2(float64(s.TimeAnalysis.TotalPlannedMinutes) / 60)
	actual := round2(float64(s.TimeAnalysis.TotalActualMinutes) / 60)
	s.TimeAnalysis.TotalPlannedHours = &planned
	s.TimeAnalysis.TotalActualHours = &actual

	return MonthlyReport{Summary: s, DailyTrend: Trend(logs)}
}

// Summarize computes status counts, time totals, category rollups and the
// gap to target for logs. A log without its routine task still counts
// toward status totals and actual minutes.
func Summarize(period string, window DateRange, logs []*types.DailyLog, target int) Summary {
	s := Summary{
		Period:            period,
		DateRange:         window,
		TargetPercentage:  target,
		CategoryBreakdown: map[string]CategoryStats{},
	}

	for _, l := range logs {
		if l == nil {
			continue
		}
		s.TotalTasks++
		switch l.Status {
		case types.StatusDone:
			s.CompletedTasks++
		case types.StatusPartial:
			s.PartialTasks++
		case types.StatusMissed:
			s.MissedTasks++
		case types.StatusSkipped:
			s.SkippedTasks++
		case types.StatusPending:
			s.PendingTasks++
		}

		s.TimeAnalysis.TotalActualMinutes += l.ActualMinutes
		if l.RoutineTask == nil {
			continue
		}
		s.TimeAnalysis.TotalPlannedMinutes += l.RoutineTask.PlannedMinutes

		cat := string(l.RoutineTask.Category)
		stats := s.CategoryBreakdown[cat]
		stats.Total++
		if l.Status == types.StatusDone {
			stats.Completed++
		}
		s.CategoryBreakdown[cat] = stats
	}

	for cat, stats := range s.CategoryBreakdown {
		stats.CompletionRate = round2(Percent(stats.Completed, stats.Total))
		s.CategoryBreakdown[cat] = stats
	}

	rate := Percent(s.CompletedTasks, s.TotalTasks)
	s.CompletionRate = round2(rate)
	s.GapToGoal = round1(GapToGoal(target, rate, s.TotalTasks))
	s.TimeAnalysis.Efficiency = round2(Percent(s.TimeAnalysis.TotalActualMinutes, s.TimeAnalysis.TotalPlannedMinutes))
	return s
}

// Trend groups logs by date, oldest first.
func Trend(logs []*types.DailyLog) []DayTrend {
	byDate := map[string]*DayTrend{}
	for _, l := range logs {
		if l == nil {
			continue
		}
		key := l.Date.String()
		d, ok := byDate[key]
		if !ok {
			d = &DayTrend{Date: l.Date}
			byDate[key] = d
		}
		d.Total++
		if l.Status == types.StatusDone {
			d.Completed++
		}
	}

	keys := make([]string, 0, len(byDate))
	for k := range byDate {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]DayTrend, 0, len(keys))
	for _, k := range keys {
		d := byDate[k]
		d.CompletionRate = round2(Percent(d.Completed, d.Total))
		out = append(out, *d)
	}
	return out
}

// Percent returns part/whole*100, or 0 when whole is not positive.
func Percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// GapToGoal estimates how many more completions would reach target over total tasks.
func GapToGoal(target int, completionRate float64, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Max(0, (float64(target)-completionRate)/100*float64(total))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }
