package analytics

import (
	"encoding/json"
	"strings"
	"testing"

	types "github.com/yungbote/routinely-backend/internal/domain"
	"github.com/yungbote/routinely-backend/internal/domain/calendar"
	"github.com/yungbote/routinely-backend/internal/domain/routine"
)

func logOf(task *types.RoutineTask, day calendar.Date, status types.LogStatus, actual int) *types.DailyLog {
	l := &types.DailyLog{Date: day, Status: status, ActualMinutes: actual, RoutineTask: task}
	if task != nil {
		l.RoutineTaskID = task.ID
	}
	return l
}

func TestWeeklyCompletionAndGap(t *testing.T) {
	today := calendar.New(2024, 5, 20)
	task := &types.RoutineTask{Category: routine.CategoryOther, PlannedMinutes: 10}

	var logs []*types.DailyLog
	add := func(status types.LogStatus, n int) {
		for i := 0; i < n; i++ {
			logs = append(logs, logOf(task, today.AddDays(-i), status, 5))
		}
	}
	add(types.StatusDone, 6)
	add(types.StatusPartial, 2)
	add(types.StatusMissed, 1)
	add(types.StatusSkipped, 1)

	r := Weekly(today, logs, &types.UserGoal{GoalType: types.GoalWeekly, TargetPercentage: 80})
	if r.TotalTasks != 10 || r.CompletedTasks != 6 || r.PartialTasks != 2 || r.MissedTasks != 1 || r.SkippedTasks != 1 || r.PendingTasks != 0 {
		t.Fatalf("unexpected counts: %+v", r.Summary)
	}
	if r.CompletionRate != 60 {
		t.Fatalf("completion_rate: got %v want 60", r.CompletionRate)
	}
	if r.GapToGoal != 2.0 {
		t.Fatalf("gap_to_goal: got %v want 2.0", r.GapToGoal)
	}
	if r.TimeAnalysis.TotalPlannedMinutes != 100 || r.TimeAnalysis.TotalActualMinutes != 50 || r.TimeAnalysis.Efficiency != 50 {
		t.Fatalf("unexpected time analysis: %+v", r.TimeAnalysis)
	}
	if r.TimeAnalysis.TotalPlannedHours != nil {
		t.Fatalf("weekly report should not carry hour totals")
	}
	if !r.DateRange.Start.Equal(calendar.New(2024, 5, 13)) || !r.DateRange.End.Equal(today) {
		t.Fatalf("unexpected window: %s..%s", r.DateRange.Start, r.DateRange.End)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	today := calendar.New(2024, 5, 20)
	fitness := &types.RoutineTask{Category: routine.CategoryFitness, PlannedMinutes: 30}
	learning := &types.RoutineTask{Category: routine.CategoryLearning, PlannedMinutes: 60}

	logs := []*types.DailyLog{
		logOf(fitness, today, types.StatusDone, 30),
		logOf(fitness, today.AddDays(-1), types.StatusDone, 30),
		logOf(fitness, today.AddDays(-2), types.StatusMissed, 0),
		logOf(learning, today, types.StatusPartial, 20),
		logOf(learning, today.AddDays(-1), types.StatusSkipped, 0),
	}

	r := Weekly(today, logs, nil)
	if got := r.CategoryBreakdown["Fitness"]; got.Total != 3 || got.Completed != 2 || got.CompletionRate != 66.67 {
		t.Fatalf("Fitness: unexpected stats %+v", got)
	}
	if got := r.CategoryBreakdown["Learning"]; got.Total != 2 || got.Completed != 0 || got.CompletionRate != 0 {
		t.Fatalf("Learning: unexpected stats %+v", got)
	}
	if _, ok := r.CategoryBreakdown["Rest"]; ok {
		t.Fatalf("categories without logs should be absent")
	}
	if r.TargetPercentage != DefaultTargetPercentage {
		t.Fatalf("missing goal should default target to %d, got %d", DefaultTargetPercentage, r.TargetPercentage)
	}
}

func TestEmptyInputsYieldZeros(t *testing.T) {
	today := calendar.New(2024, 5, 20)
	for _, s := range []Summary{Weekly(today, nil, nil).Summary, Monthly(today, nil, nil).Summary} {
		if s.TotalTasks != 0 || s.CompletionRate != 0 || s.GapToGoal != 0 || s.TimeAnalysis.Efficiency != 0 {
			t.Fatalf("%s: expected zeros, got %+v", s.Period, s)
		}
		if s.CategoryBreakdown == nil {
			t.Fatalf("%s: category breakdown should be an empty object", s.Period)
		}
	}
	m := Monthly(today, nil, nil)
	if m.DailyTrend == nil || len(m.DailyTrend) != 0 {
		t.Fatalf("monthly trend should be an empty list, got %v", m.DailyTrend)
	}
	if m.TimeAnalysis.TotalPlannedHours == nil || *m.TimeAnalysis.TotalPlannedHours != 0 {
		t.Fatalf("monthly hour totals should be present and zero")
	}
}

func TestGapNeverNegative(t *testing.T) {
	today := calendar.New(2024, 5, 20)
	logs := []*types.DailyLog{logOf(nil, today, types.StatusDone, 10)}
	r := Weekly(today, logs, &types.UserGoal{TargetPercentage: 50})
	if r.GapToGoal != 0 {
		t.Fatalf("gap above target should clamp to 0, got %v", r.GapToGoal)
	}
	if r.TimeAnalysis.TotalPlannedMinutes != 0 || r.TimeAnalysis.TotalActualMinutes != 10 {
		t.Fatalf("log without task should only add actual minutes: %+v", r.TimeAnalysis)
	}
	if len(r.CategoryBreakdown) != 0 {
		t.Fatalf("log without task should not appear in categories")
	}
}

func TestMonthlyTrendAndHours(t *testing.T) {
	today := calendar.New(2024, 5, 20)
	task := &types.RoutineTask{Category: routine.CategoryRest, PlannedMinutes: 45}
	logs := []*types.DailyLog{
		logOf(task, today, types.StatusDone, 40),
		logOf(task, today.AddDays(-10), types.StatusMissed, 0),
		logOf(task, today.AddDays(-10), types.StatusDone, 50),
		logOf(task, today.AddDays(-3), types.StatusPending, 0),
	}

	m := Monthly(today, logs, &types.UserGoal{GoalType: types.GoalMonthly, TargetPercentage: 90})
	if len(m.DailyTrend) != 3 {
		t.Fatalf("expected 3 trend days, got %d", len(m.DailyTrend))
	}
	want := []string{"2024-05-10", "2024-05-17", "2024-05-20"}
	for i, d := range m.DailyTrend {
		if d.Date.String() != want[i] {
			t.Fatalf("trend[%d]: got %s want %s", i, d.Date, want[i])
		}
	}
	if d := m.DailyTrend[0]; d.Total != 2 || d.Completed != 1 || d.CompletionRate != 50 {
		t.Fatalf("trend[0]: unexpected %+v", d)
	}
	if *m.TimeAnalysis.TotalPlannedHours != 3 || *m.TimeAnalysis.TotalActualHours != 1.5 {
		t.Fatalf("unexpected hours: planned=%v actual=%v", *m.TimeAnalysis.TotalPlannedHours, *m.TimeAnalysis.TotalActualHours)
	}
	if m.CompletionRate != 50 || m.GapToGoal != 1.6 {
		t.Fatalf("unexpected rate/gap: %v / %v", m.CompletionRate, m.GapToGoal)
	}
	if !m.DateRange.Start.Equal(calendar.New(2024, 4, 20)) {
		t.Fatalf("monthly window should start 30 days back, got %s", m.DateRange.Start)
	}
}

func TestMonthlyReportJSONShape(t *testing.T) {
	today := calendar.New(2024, 5, 20)
	b, err := json.Marshal(Monthly(today, nil, nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, key := range []string{
		`"period":"monthly"`,
		`"date_range":{"start":"2024-04-20","end":"2024-05-20"}`,
		`"total_planned_hours":0`,
		`"category_breakdown":{}`,
		`"daily_trend":[]`,
	} {
		if !strings.Contains(s, key) {
			t.Fatalf("expected %s in %s", key, s)
		}
	}
}

func TestComputeStreak(t *testing.T) {
	today := calendar.New(2024, 5, 20)
	tests := []struct {
		name string
		done []calendar.Date
		want int
	}{
		{"none", nil, 0},
		{"today and yesterday", []calendar.Date{today, today.AddDays(-1)}, 2},
		{"gap before today", []calendar.Date{today.AddDays(-1), today.AddDays(-2)}, 0},
		{"duplicates and order", []calendar.Date{today.AddDays(-2), today, today.AddDays(-1), today}, 3},
		{"stops at first gap", []calendar.Date{today, today.AddDays(-2)}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeStreak(today, tc.done)
			if got.CurrentStreak != tc.want {
				t.Fatalf("streak: got %d want %d", got.CurrentStreak, tc.want)
			}
			if tc.want == 0 && got.LastCompletedDate != nil {
				t.Fatalf("last_completed_date should be null for zero streak")
			}
			if tc.want > 0 && (got.LastCompletedDate == nil || !got.LastCompletedDate.Equal(today)) {
				t.Fatalf("last_completed_date should be today")
			}
		})
	}
}

func TestComputeStreakIsCapped(t *testing.T) {
	today := calendar.New(2024, 5, 20)
	done := make([]calendar.Date, 0, StreakLookbackDays+10)
	for i := 0; i < StreakLookbackDays+10; i++ {
		done = append(done, today.AddDays(-i))
	}
	if got := ComputeStreak(today, done); got.CurrentStreak != StreakLookbackDays {
		t.Fatalf("streak should cap at %d, got %d", StreakLookbackDays, got.CurrentStreak)
	}
}
