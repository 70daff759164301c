package services

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/routinely-backend/internal/data/repos"
	"github.com/yungbote/routinely-backend/internal/data/repos/crud"
	types "github.com/yungbote/routinely-backend/internal/domain"
	"github.com/yungbote/routinely-backend/internal/domain/routine"
	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/routinely-backend/internal/pkg/errors"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

type CreateRoutineTaskInput struct {
	UserID         uuid.UUID      `json:"user_id" binding:"required"`
	Name           string         `json:"name" binding:"required"`
	Category       types.Category `json:"category" binding:"required,oneof=Learning Fitness Rest Other"`
	PlannedMinutes int            `json:"planned_minutes" binding:"min=0"`
	ActiveDays     []string       `json:"active_days" binding:"required,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
}

type RoutineTaskService interface {
	Create(dbc dbctx.Context, in CreateRoutineTaskInput) (*types.RoutineTask, error)
	Get(dbc dbctx.Context, id uuid.UUID) (*types.RoutineTask, error)
	List(dbc dbctx.Context, page crud.Page) ([]*types.RoutineTask, error)
	ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.RoutineTask, error)
	ListByUserAndDay(dbc dbctx.Context, userID uuid.UUID, day string) ([]*types.RoutineTask, error)
	Update(dbc dbctx.Context, id uuid.UUID, patch types.RoutineTaskPatch) (*types.RoutineTask, error)
	// Delete removes the task and its logs.
	Delete(dbc dbctx.Context, id uuid.UUID) error
}

type routineTaskService struct {
	db    *gorm.DB
	log   *logger.Logger
	users repos.UserRepo
	tasks repos.RoutineTaskRepo
}

func NewRoutineTaskService(db *gorm.DB, log *logger.Logger, users repos.UserRepo, tasks repos.RoutineTaskRepo) RoutineTaskService {
	return &routineTaskService{db: db, log: log.With("service", "RoutineTaskService"), users: users, tasks: tasks}
}

var validCategories = map[types.Category]struct{}{
	routine.CategoryLearning: {},
	routine.CategoryFitness:  {},
	routine.CategoryRest:     {},
	routine.CategoryOther:    {},
}

func validateCategory(c types.Category) error {
	if _, ok := validCategories[c]; !ok {
		return pkgerrors.Invalid("category", "must be one of: Learning, Fitness, Rest, Other")
	}
	return nil
}

func validateDays(days []string) error {
	for _, d := range days {
		if err := routine.ValidateWeekday("active_days", d); err != nil {
			return err
		}
	}
	return nil
}

func (s *routineTaskService) Create(dbc dbctx.Context, in CreateRoutineTaskInput) (*types.RoutineTask, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, pkgerrors.Invalid("name", "must not be empty")
	}
	if err := validateCategory(in.Category); err != nil {
		return nil, err
	}
	if in.PlannedMinutes < 0 {
		return nil, pkgerrors.Invalid("planned_minutes", "must be greater than or equal to 0")
	}
	if err := validateDays(in.ActiveDays); err != nil {
		return nil, err
	}

	var created *types.RoutineTask
	err := inTx(s.db, dbc, func(inner dbctx.Context) error {
		if _, err := s.users.GetByID(inner, in.UserID); err != nil {
			return err
		}
		rows, err := s.tasks.Create(inner, []*types.RoutineTask{{
			UserID:         in.UserID,
			Name:           in.Name,
			Category:       in.Category,
			PlannedMinutes: in.PlannedMinutes,
			ActiveDays:     datatypes.JSONSlice[string](in.ActiveDays),
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
	s.log.Info("routine task created", "task_id", created.ID, "user_id", created.UserID)
	return created, nil
}

func (s *routineTaskService) Get(dbc dbctx.Context, id uuid.UUID) (*types.RoutineTask, error) {
	return s.tasks.GetByID(dbc, id)
}

func (s *routineTaskService) List(dbc dbctx.Context, page crud.Page) ([]*types.RoutineTask, error) {
	return s.tasks.List(dbc, page)
}

func (s *routineTaskService) ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.RoutineTask, error) {
	return s.tasks.ListByUser(dbc, userID)
}

func (s *routineTaskService) ListByUserAndDay(dbc dbctx.Context, userID uuid.UUID, day string) ([]*types.RoutineTask, error) {
	if err := routine.ValidateWeekday("day_name", day); err != nil {
		return nil, err
	}
	return s.tasks.ListByUserAndDay(dbc, userID, day)
}

func (s *routineTaskService) Update(dbc dbctx.Context, id uuid.UUID, patch types.RoutineTaskPatch) (*types.RoutineTask, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, pkgerrors.Invalid("name", "must not be empty")
	}
	if patch.Category != nil {
		if err := validateCategory(*patch.Category); err != nil {
			return nil, err
		}
	}
	if patch.PlannedMinutes != nil && *patch.PlannedMinutes < 0 {
		return nil, pkgerrors.Invalid("planned_minutes", "must be greater than or equal to 0")
	}
	if patch.ActiveDays != nil {
		if err := validateDays(*patch.ActiveDays); err != nil {
			return nil, err
		}
	}

	var updated *types.RoutineTask
	err := inTx(s.db, dbc, func(inner dbctx.Context) error {
		t, err := s.tasks.Update(inner, id, patch)
		updated = t
		return err
	})
	return updated, err
}

func (s *routineTaskService) Delete(dbc dbctx.Context, id uuid.UUID) error {
	return inTx(s.db, dbc, func(inner dbctx.Context) error {
		return s.tasks.Delete(inner, id)
	})
}
