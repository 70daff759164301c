package routine

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/routinely-backend/internal/data/repos/crud"
	types "github.com/yungbote/routinely-backend/internal/domain"
	"github.com/yungbote/routinely-backend/internal/domain/calendar"
	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

type DailyLogRepo interface {
	Create(dbc dbctx.Context, logs []*types.DailyLog) ([]*types.DailyLog, error)
	// CreateIgnoringDuplicates inserts rows, silently skipping any that collide
	// with an existing (user, task, date) entry.
	CreateIgnoringDuplicates(dbc dbctx.Context, logs []*types.DailyLog) error
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.DailyLog, error)
	GetByIDWithTask(dbc dbctx.Context, id uuid.UUID) (*types.DailyLog, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.DailyLog, error)
	List(dbc dbctx.Context, page crud.Page) ([]*types.DailyLog, error)
	ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.DailyLog, error)
	ListByRoutineTask(dbc dbctx.Context, taskID uuid.UUID) ([]*types.DailyLog, error)
	ListByUserAndDate(dbc dbctx.Context, userID uuid.UUID, day calendar.Date) ([]*types.DailyLog, error)
	// ListByUserBetween returns logs dated within [start, end] with their task attached.
	ListByUserBetween(dbc dbctx.Context, userID uuid.UUID, start, end calendar.Date) ([]*types.DailyLog, error)
	// DoneDatesBetween returns each date in [start, end] holding at least one done log, newest first.
	DoneDatesBetween(dbc dbctx.Context, userID uuid.UUID, start, end calendar.Date) ([]calendar.Date, error)
	Update(dbc dbctx.Context, id uuid.UUID, patch crud.Patch) (*types.DailyLog, error)
	Delete(dbc dbctx.Context, id uuid.UUID) error
}

type dailyLogRepo struct {
	*crud.Base[types.DailyLog]
	log *logger.Logger
}

func NewDailyLogRepo(db *gorm.DB, baseLog *logger.Logger) DailyLogRepo {
	repoLog := baseLog.With("repo", "DailyLogRepo")
	return &dailyLogRepo{Base: crud.NewBase[types.DailyLog](db, repoLog, "Daily log"), log: repoLog}
}

func (r *dailyLogRepo) CreateIgnoringDuplicates(dbc dbctx.Context, logs []*types.DailyLog) error {
	if len(logs) == 0 {
		return nil
	}
	if err := r.Tx(dbc).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&logs).Error; err != nil {
		return r.Translate(err)
	}
	return nil
}

func (r *dailyLogRepo) GetByIDWithTask(dbc dbctx.Context, id uuid.UUID) (*types.DailyLog, error) {
	var row types.DailyLog
	if err := r.Tx(dbc).
		Preload("RoutineTask").
		Where("id = ?", id).
		First(&row).Error; err != nil {
		return nil, r.Translate(err)
	}
	return &row, nil
}

func (r *dailyLogRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.DailyLog, error) {
	rows := []*types.DailyLog{}
	if len(ids) == 0 {
		return rows, nil
	}
	if err := r.Tx(dbc).
		Preload("RoutineTask").
		Where("id IN ?", ids).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *dailyLogRepo) ListByRoutineTask(dbc dbctx.Context, taskID uuid.UUID) ([]*types.DailyLog, error) {
	var rows []*types.DailyLog
	if err := r.Tx(dbc).
		Where("routine_task_id = ?", taskID).
		Order("date DESC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *dailyLogRepo) ListByUserAndDate(dbc dbctx.Context, userID uuid.UUID, day calendar.Date) ([]*types.DailyLog, error) {
	var rows []*types.DailyLog
	if err := r.Tx(dbc).
		Preload("RoutineTask").
		Where("user_id = ? AND date = ?", userID, day).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *dailyLogRepo) ListByUserBetween(dbc dbctx.Context, userID uuid.UUID, start, end calendar.Date) ([]*types.DailyLog, error) {
	var rows []*types.DailyLog
	if err := r.Tx(dbc).
		Preload("RoutineTask").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *dailyLogRepo) DoneDatesBetween(dbc dbctx.Context, userID uuid.UUID, start, end calendar.Date) ([]calendar.Date, error) {
	var dates []calendar.Date
	if err := r.Tx(dbc).
		Model(&types.DailyLog{}).
		Distinct("date").
		Where("user_id = ? AND status = ? AND date >= ? AND date <= ?", userID, types.StatusDone, start, end).
		Order("date DESC").
		Pluck("date", &dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

// Update applies the patch and returns the log with its task attached.
func (r *dailyLogRepo) Update(dbc dbctx.Context, id uuid.UUID, patch crud.Patch) (*types.DailyLog, error) {
	if _, err := r.Base.Update(dbc, id, patch); err != nil {
		return nil, err
	}
	return r.GetByIDWithTask(dbc, id)
}
