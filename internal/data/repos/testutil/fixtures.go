package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/yungbote/routinely-backend/internal/domain"
	"github.com/yungbote/routinely-backend/internal/domain/calendar"
	"github.com/yungbote/routinely-backend/internal/domain/routine"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{ID: uuid.New(), Email: email}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedTask(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, name string, category types.Category, planned int, days ...string) *types.RoutineTask {
	tb.Helper()
	task := &types.RoutineTask{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Category:       category,
		PlannedMinutes: planned,
		ActiveDays:     datatypes.JSONSlice[string](days),
	}
	if err := tx.WithContext(ctx).Create(task).Error; err != nil {
		tb.Fatalf("seed routine task: %v", err)
	}
	return task
}

func SeedLog(tb testing.TB, ctx context.Context, tx *gorm.DB, task *types.RoutineTask, day calendar.Date, status types.LogStatus, actual int) *types.DailyLog {
	tb.Helper()
	l := routine.NewPendingLog(task.UserID, task.ID, day)
	l.ID = uuid.New()
	l.Status = status
	l.ActualMinutes = actual
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed daily log: %v", err)
	}
	return l
}

func SeedGoal(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, goalType types.GoalType, target int) *types.UserGoal {
	tb.Helper()
	g := &types.UserGoal{ID: uuid.New(), UserID: userID, GoalType: goalType, TargetPercentage: target}
	if err := tx.WithContext(ctx).Create(g).Error; err != nil {
		tb.Fatalf("seed goal: %v", err)
	}
	return g
}

func PtrUUID(v uuid.UUID) *uuid.UUID { return &v }
