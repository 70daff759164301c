package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/routinely-backend/internal/data/repos"
	types "github.com/yungbote/routinely-backend/internal/domain"
	"github.com/yungbote/routinely-backend/internal/domain/calendar"
	"github.com/yungbote/routinely-backend/internal/observability"
	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

type UsecasesDeps struct {
	Log *logger.Logger

	Logs  repos.DailyLogRepo
	Goals repos.UserGoalRepo
	// Metrics is optional.
	Metrics *observability.Metrics

	// Now and Location define "today"; nil means time.Now and UTC.
	Now      func() time.Time
	Location *time.Location
}

type Usecases struct {
	deps UsecasesDeps
}

func New(deps UsecasesDeps) Usecases {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	deps.Log = deps.Log.With("module", "analytics")
	return Usecases{deps: deps}
}

func (u Usecases) Today() calendar.Date {
	now := time.Now
	if u.deps.Now != nil {
		now = u.deps.Now
	}
	return calendar.Today(now(), u.deps.Location)
}

func (u Usecases) WeeklyReport(ctx context.Context, userID uuid.UUID) (WeeklyReport, error) {
	u.deps.Metrics.IncAnalytics(PeriodWeekly)
	today := u.Today()
	logs, goal, err := u.load(ctx, userID, WindowEnding(today, WeeklyWindowDays), types.GoalWeekly)
	if err != nil {
		return WeeklyReport{}, err
	}
	return Weekly(today, logs, goal), nil
}

func (u Usecases) MonthlyReport(ctx context.Context, userID uuid.UUID) (MonthlyReport, error) {
	u.deps.Metrics.IncAnalytics(PeriodMonthly)
	today := u.Today()
	logs, goal, err := u.load(ctx, userID, WindowEnding(today, MonthlyWindowDays), types.GoalMonthly)
	if err != nil {
		return MonthlyReport{}, err
	}
	return Monthly(today, logs, goal), nil
}

func (u Usecases) CurrentStreak(ctx context.Context, userID uuid.UUID) (Streak, error) {
	u.deps.Metrics.IncAnalytics("streak")
	today := u.Today()
	dates, err := u.deps.Logs.DoneDatesBetween(dbctx.Context{Ctx: ctx}, userID, LookbackStart(today), today)
	if err != nil {
		u.deps.Log.Error("load done dates failed", "user_id", userID, "error", err)
		return Streak{}, err
	}
	return ComputeStreak(today, dates), nil
}

// load fetches the window's logs and the period goal concurrently.
func (u Usecases) load(ctx context.Context, userID uuid.UUID, window DateRange, goalType types.GoalType) ([]*types.DailyLog, *types.UserGoal, error) {
	var (
		logs []*types.DailyLog
		goal *types.UserGoal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		logs, err = u.deps.Logs.ListByUserBetween(dbctx.Context{Ctx: gctx}, userID, window.Start, window.End)
		return err
	})
	g.Go(func() error {
		var err error
		goal, err = u.deps.Goals.FirstByUserAndType(dbctx.Context{Ctx: gctx}, userID, goalType)
		return err
	})
	if err := g.Wait(); err != nil {
		u.deps.Log.Error("load analytics inputs failed", "user_id", userID, "goal_type", goalType, "error", err)
		return nil, nil, err
	}
	return logs, goal, nil
}
