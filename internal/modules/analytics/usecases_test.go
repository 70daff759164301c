package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/yungbote/routinely-backend/internal/data/repos"
	"github.com/yungbote/routinely-backend/internal/data/repos/testutil"
	types "github.com/yungbote/routinely-backend/internal/domain"
	"github.com/yungbote/routinely-backend/internal/domain/routine"
)

func newTestUsecases(t *testing.T, now time.Time) (Usecases, *testutil.Env) {
	t.Helper()
	env := testutil.NewEnv(t)
	u := New(UsecasesDeps{
		Log:   env.Log,
		Logs:  repos.NewDailyLogRepo(env.DB, env.Log),
		Goals: repos.NewUserGoalRepo(env.DB, env.Log),
		Now:   func() time.Time { return now },
	})
	return u, env
}

func TestUsecasesStreakFromStore(t *testing.T) {
	now := time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC)
	u, env := newTestUsecases(t, now)
	ctx := context.Background()
	today := u.Today()

	usr := testutil.SeedUser(t, ctx, env.DB, "streak@example.com")
	a := testutil.SeedTask(t, ctx, env.DB, usr.ID, "A", routine.CategoryFitness, 30, routine.Weekdays...)
	b := testutil.SeedTask(t, ctx, env.DB, usr.ID, "B", routine.CategoryLearning, 30, routine.Weekdays...)
	testutil.SeedLog(t, ctx, env.DB, a, today, types.StatusDone, 30)
	testutil.SeedLog(t, ctx, env.DB, b, today, types.StatusDone, 30)
	testutil.SeedLog(t, ctx, env.DB, a, today.AddDays(-1), types.StatusDone, 30)
	testutil.SeedLog(t, ctx, env.DB, a, today.AddDays(-2), types.StatusMissed, 0)
	testutil.SeedLog(t, ctx, env.DB, a, today.AddDays(-3), types.StatusDone, 30)

	got, err := u.CurrentStreak(ctx, usr.ID)
	if err != nil {
		t.Fatalf("CurrentStreak: %v", err)
	}
	if got.CurrentStreak != 2 {
		t.Fatalf("streak: got %d want 2", got.CurrentStreak)
	}
	if got.LastCompletedDate == nil || !got.LastCompletedDate.Equal(today) {
		t.Fatalf("last_completed_date: got %v want %s", got.LastCompletedDate, today)
	}
}

func TestUsecasesWeeklyUsesGoalAndWindow(t *testing.T) {
	now := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	u, env := newTestUsecases(t, now)
	ctx := context.Background()
	today := u.Today()

	usr := testutil.SeedUser(t, ctx, env.DB, "weekly@example.com")
	task := testutil.SeedTask(t, ctx, env.DB, usr.ID, "Gym", routine.CategoryFitness, 60, routine.Weekdays...)
	testutil.SeedGoal(t, ctx, env.DB, usr.ID, types.GoalWeekly, 100)
	testutil.SeedGoal(t, ctx, env.DB, usr.ID, types.GoalMonthly, 10)

	testutil.SeedLog(t, ctx, env.DB, task, today, types.StatusDone, 60)
	testutil.SeedLog(t, ctx, env.DB, task, today.AddDays(-7), types.StatusMissed, 0)
	testutil.SeedLog(t, ctx, env.DB, task, today.AddDays(-8), types.StatusDone, 60)

	r, err := u.WeeklyReport(ctx, usr.ID)
	if err != nil {
		t.Fatalf("WeeklyReport: %v", err)
	}
	if r.TotalTasks != 2 || r.CompletedTasks != 1 {
		t.Fatalf("window should include today-7 and exclude today-8: %+v", r.Summary)
	}
	if r.TargetPercentage != 100 || r.GapToGoal != 1 {
		t.Fatalf("unexpected goal figures: target=%d gap=%v", r.TargetPercentage, r.GapToGoal)
	}
	if r.CategoryBreakdown["Fitness"].Total != 2 {
		t.Fatalf("tasks should be attached for category rollup: %+v", r.CategoryBreakdown)
	}

	m, err := u.MonthlyReport(ctx, usr.ID)
	if err != nil {
		t.Fatalf("MonthlyReport: %v", err)
	}
	if m.TotalTasks != 3 || m.TargetPercentage != 10 || len(m.DailyTrend) != 3 {
		t.Fatalf("unexpected monthly report: %+v", m)
	}
}

func TestUsecasesTodayHonoursLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	u := New(UsecasesDeps{
		Now:      func() time.Time { return time.Date(2024, 5, 20, 20, 0, 0, 0, time.UTC) },
		Location: loc,
	})
	if got := u.Today().String(); got != "2024-05-21" {
		t.Fatalf("Today: got %s want 2024-05-21", got)
	}
}
