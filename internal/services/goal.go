package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/routinely-backend/internal/data/repos"
	"github.com/yungbote/routinely-backend/internal/data/repos/crud"
	types "github.com/yungbote/routinely-backend/internal/domain"
	"github.com/yungbote/routinely-backend/internal/modules/analytics"
	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/routinely-backend/internal/pkg/errors"
	"github.com/yungbote/routinely-backend/internal/pkg/pointers"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

type CreateGoalInput struct {
	UserID   uuid.UUID      `json:"user_id" binding:"required"`
	GoalType types.GoalType `json:"goal_type" binding:"required,oneof=weekly monthly"`
	// TargetPercentage defaults to analytics.DefaultTargetPercentage when omitted.
	TargetPercentage *int `json:"target_percentage" binding:"omitempty,min=0,max=100"`
}

type GoalService interface {
	Create(dbc dbctx.Context, in CreateGoalInput) (*types.UserGoal, error)
	Get(dbc dbctx.Context, id uuid.UUID) (*types.UserGoal, error)
	List(dbc dbctx.Context, page crud.Page) ([]*types.UserGoal, error)
	ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.UserGoal, error)
	Update(dbc dbctx.Context, id uuid.UUID, patch types.UserGoalPatch) (*types.UserGoal, error)
	Delete(dbc dbctx.Context, id uuid.UUID) error
}

type goalService struct {
	db       *gorm.DB
	log      *logger.Logger
	users    repos.UserRepo
	goalRepo repos.UserGoalRepo
}

func NewGoalService(db *gorm.DB, log *logger.Logger, users repos.UserRepo, goalRepo repos.UserGoalRepo) GoalService {
	return &goalService{db: db, log: log.With("service", "GoalService"), users: users, goalRepo: goalRepo}
}

func (gs *goalService) Create(dbc dbctx.Context, in CreateGoalInput) (*types.UserGoal, error) {
	if !in.GoalType.Valid() {
		return nil, pkgerrors.Invalid("goal_type", "must be one of: weekly, monthly")
	}
	target := pointers.ValueOr(in.TargetPercentage, analytics.DefaultTargetPercentage)
	if target < 0 || target > 100 {
		return nil, pkgerrors.Invalid("target_percentage", "must be between 0 and 100")
	}

	var created *types.UserGoal
	err := inTx(gs.db, dbc, func(inner dbctx.Context) error {
		if _, err := gs.users.GetByID(inner, in.UserID); err != nil {
			return err
		}
		rows, err := gs.goalRepo.Create(inner, []*types.UserGoal{{
			UserID:           in.UserID,
			GoalType:         in.GoalType,
			TargetPercentage: target,
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

func (gs *goalService) Get(dbc dbctx.Context, id uuid.UUID) (*types.UserGoal, error) {
	return gs.goalRepo.GetByID(dbc, id)
}

func (gs *goalService) List(dbc dbctx.Context, page crud.Page) ([]*types.UserGoal, error) {
	return gs.goalRepo.List(dbc, page)
}

func (gs *goalService) ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.UserGoal, error) {
	return gs.goalRepo.ListByUser(dbc, userID)
}

func (gs *goalService) Update(dbc dbctx.Context, id uuid.UUID, patch types.UserGoalPatch) (*types.UserGoal, error) {
	if patch.GoalType != nil && !patch.GoalType.Valid() {
		return nil, pkgerrors.Invalid("goal_type", "must be one of: weekly, monthly")
	}
	if p := patch.TargetPercentage; p != nil && (*p < 0 || *p > 100) {
		return nil, pkgerrors.Invalid("target_percentage", "must be between 0 and 100")
	}
	var updated *types.UserGoal
	err := inTx(gs.db, dbc, func(inner dbctx.Context) error {
		g, err := gs.goalRepo.Update(inner, id, patch)
		updated = g
		return err
	})
	return updated, err
}

func (gs *goalService) Delete(dbc dbctx.Context, id uuid.UUID) error {
	return inTx(gs.db, dbc, func(inner dbctx.Context) error {
		return gs.goalRepo.Delete(inner, id)
	})
}
