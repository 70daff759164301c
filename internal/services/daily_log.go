package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/routinely-backend/internal/clients/redis"
	"github.com/yungbote/routinely-backend/internal/data/repos"
	"github.com/yungbote/routinely-backend/internal/data/repos/crud"
	types "github.com/yungbote/routinely-backend/internal/domain"
	"github.com/yungbote/routinely-backend/internal/domain/calendar"
	"github.com/yungbote/routinely-backend/internal/domain/routine"
	"github.com/yungbote/routinely-backend/internal/observability"
	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/routinely-backend/internal/pkg/errors"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

// MaterializeLockTTL bounds how long one GenerateToday call may hold the per-user lock.
const MaterializeLockTTL = 30 * time.Second

type CreateDailyLogInput struct {
	UserID        uuid.UUID       `json:"user_id" binding:"required"`
	RoutineTaskID uuid.UUID       `json:"routine_task_id" binding:"required"`
	Date          calendar.Date   `json:"date"`
	Status        types.LogStatus `json:"status" binding:"omitempty,oneof=pending done partial missed skipped"`
	ActualMinutes int             `json:"actual_minutes" binding:"min=0"`
	Notes         *string         `json:"notes"`
}

type DailyLogService interface {
	Create(dbc dbctx.Context, in CreateDailyLogInput) (*types.DailyLog, error)
	Get(dbc dbctx.Context, id uuid.UUID) (*types.DailyLog, error)
	List(dbc dbctx.Context, page crud.Page) ([]*types.DailyLog, error)
	ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.DailyLog, error)
	ListByRoutineTask(dbc dbctx.Context, taskID uuid.UUID) ([]*types.DailyLog, error)
	ListByUserAndDate(dbc dbctx.Context, userID uuid.UUID, day calendar.Date) ([]*types.DailyLog, error)
	Update(dbc dbctx.Context, id uuid.UUID, patch types.DailyLogPatch) (*types.DailyLog, error)
	Delete(dbc dbctx.Context, id uuid.UUID) error
	// GenerateToday creates a pending log for every task scheduled today that
	// has none yet, and returns only the rows it created.
	GenerateToday(dbc dbctx.Context, userID uuid.UUID) ([]*types.DailyLog, error)
	Today() calendar.Date
}

type DailyLogServiceDeps struct {
	DB     *gorm.DB
	Log    *logger.Logger
	Users  repos.UserRepo
	Tasks  repos.RoutineTaskRepo
	Logs   repos.DailyLogRepo
	Locker redis.Locker
	// Metrics is optional.
	Metrics *observability.Metrics

	Clock    Clock
	Location *time.Location
}

type dailyLogService struct {
	db     *gorm.DB
	log    *logger.Logger
	users  repos.UserRepo
	tasks  repos.RoutineTaskRepo
	logs   repos.DailyLogRepo
	locker redis.Locker
	mx     *observability.Metrics
	clock  Clock
	loc    *time.Location
}

func NewDailyLogService(deps DailyLogServiceDeps) DailyLogService {
	locker := deps.Locker
	if locker == nil {
		locker = redis.NopLocker{}
	}
	loc := deps.Location
	if loc == nil {
		loc = time.UTC
	}
	return &dailyLogService{
		db:     deps.DB,
		log:    deps.Log.With("service", "DailyLogService"),
		users:  deps.Users,
		tasks:  deps.Tasks,
		logs:   deps.Logs,
		locker: locker,
		mx:     deps.Metrics,
		clock:  deps.Clock,
		loc:    loc,
	}
}

func (s *dailyLogService) Today() calendar.Date {
	return calendar.Today(s.clock.now(), s.loc)
}

func validateStatus(st types.LogStatus) error {
	switch st {
	case types.StatusPending, types.StatusDone, types.StatusPartial, types.StatusMissed, types.StatusSkipped:
		return nil
	}
	return pkgerrors.Invalid("status", "must be one of: pending, done, partial, missed, skipped")
}

func (s *dailyLogService) Create(dbc dbctx.Context, in CreateDailyLogInput) (*types.DailyLog, error) {
	if in.Date.IsZero() {
		return nil, pkgerrors.Invalid("date", "is required")
	}
	if in.Status == "" {
		in.Status = types.StatusPending
	}
	if err := validateStatus(in.Status); err != nil {
		return nil, err
	}
	if in.ActualMinutes < 0 {
		return nil, pkgerrors.Invalid("actual_minutes", "must be greater than or equal to 0")
	}

	var created *types.DailyLog
	err := inTx(s.db, dbc, func(inner dbctx.Context) error {
		if _, err := s.users.GetByID(inner, in.UserID); err != nil {
			return err
		}
		task, err := s.tasks.GetByID(inner, in.RoutineTaskID)
		if err != nil {
			return err
		}
		if task.UserID != in.UserID {
			return pkgerrors.Invalid("routine_task_id", "routine task belongs to a different user")
		}
		rows, err := s.logs.Create(inner, []*types.DailyLog{{
			UserID:        in.UserID,
			RoutineTaskID: in.RoutineTaskID,
			Date:          in.Date,
			Status:        in.Status,
			ActualMinutes: in.ActualMinutes,
			Notes:         in.Notes,
		}})
		if err != nil {
			return err
		}
		created = rows[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *dailyLogService) Get(dbc dbctx.Context, id uuid.UUID) (*types.DailyLog, error) {
	return s.logs.GetByID(dbc, id)
}

func (s *dailyLogService) List(dbc dbctx.Context, page crud.Page) ([]*types.DailyLog, error) {
	return s.logs.List(dbc, page)
}

func (s *dailyLogService) ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.DailyLog, error) {
	return s.logs.ListByUser(dbc, userID)
}

func (s *dailyLogService) ListByRoutineTask(dbc dbctx.Context, taskID uuid.UUID) ([]*types.DailyLog, error) {
	return s.logs.ListByRoutineTask(dbc, taskID)
}

func (s *dailyLogService) ListByUserAndDate(dbc dbctx.Context, userID uuid.UUID, day calendar.Date) ([]*types.DailyLog, error) {
	return s.logs.ListByUserAndDate(dbc, userID, day)
}

func (s *dailyLogService) Update(dbc dbctx.Context, id uuid.UUID, patch types.DailyLogPatch) (*types.DailyLog, error) {
	if patch.Status != nil {
		if err := validateStatus(*patch.Status); err != nil {
			return nil, err
		}
	}
	if patch.ActualMinutes != nil && *patch.ActualMinutes < 0 {
		return nil, pkgerrors.Invalid("actual_minutes", "must be greater than or equal to 0")
	}
	var updated *types.DailyLog
	err := inTx(s.db, dbc, func(inner dbctx.Context) error {
		l, err := s.logs.Update(inner, id, patch)
		updated = l
		return err
	})
	return updated, err
}

func (s *dailyLogService) Delete(dbc dbctx.Context, id uuid.UUID) error {
	return inTx(s.db, dbc, func(inner dbctx.Context) error {
		return s.logs.Delete(inner, id)
	})
}

func materializeLockKey(userID uuid.UUID, day calendar.Date) string {
	return fmt.Sprintf("routinely:materialize:%s:%s", userID, day)
}

func (s *dailyLogService) GenerateToday(dbc dbctx.Context, userID uuid.UUID) ([]*types.DailyLog, error) {
	ctx := dbc.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	today := s.Today()
	weekday := routine.WeekdayName(today.Weekday())

	release, ok, err := s.locker.TryLock(ctx, materializeLockKey(userID, today), MaterializeLockTTL)
	if err != nil {
		s.mx.ObserveMaterialize(observability.MaterializeFailed, 0)
		return nil, err
	}
	if !ok {
		s.log.Info("materialization already running", "user_id", userID, "date", today)
		s.mx.ObserveMaterialize(observability.MaterializeLockBusy, 0)
		return []*types.DailyLog{}, nil
	}
	defer func() { _ = release(context.WithoutCancel(ctx)) }()

	created := []*types.DailyLog{}
	err = inTx(s.db, dbctx.Context{Ctx: ctx, Tx: dbc.Tx}, func(inner dbctx.Context) error {
		scheduled, err := s.tasks.ListByUserAndDay(inner, userID, weekday)
		if err != nil {
			return err
		}
		if len(scheduled) == 0 {
			return nil
		}

		existing, err := s.logs.ListByUserAndDate(inner, userID, today)
		if err != nil {
			return err
		}
		seen := make(map[uuid.UUID]struct{}, len(existing))
		for _, l := range existing {
			seen[l.RoutineTaskID] = struct{}{}
		}

		var pending []*types.DailyLog
		ids := make([]uuid.UUID, 0, len(scheduled))
		for _, task := range scheduled {
			if _, ok := seen[task.ID]; ok {
				continue
			}
			l := routine.NewPendingLog(userID, task.ID, today)
			l.ID = uuid.New()
			pending = append(pending, l)
			ids = append(ids, l.ID)
		}
		if len(pending) == 0 {
			return nil
		}

		// Rows another writer inserted meanwhile are skipped by the unique
		// index, so re-reading by our own ids yields exactly what we created.
		if err := s.logs.CreateIgnoringDuplicates(inner, pending); err != nil {
			return err
		}
		rows, err := s.logs.GetByIDs(inner, ids)
		if err != nil {
			return err
		}
		created = rows
		return nil
	})
	if err != nil {
		s.log.Error("generate today failed", "user_id", userID, "date", today, "error", err)
		s.mx.ObserveMaterialize(observability.MaterializeFailed, 0)
		return nil, err
	}
	if len(created) == 0 {
		s.mx.ObserveMaterialize(observability.MaterializeNoop, 0)
	} else {
		s.mx.ObserveMaterialize(observability.MaterializeCreated, len(created))
	}
	s.log.Info("generated today's logs", "user_id", userID, "date", today, "weekday", weekday, "created", len(created))
	return created, nil
}
