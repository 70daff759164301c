package user

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/routinely-backend/internal/data/repos/crud"
	types "github.com/yungbote/routinely-backend/internal/domain"
	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

type UserGoalRepo interface {
	Create(dbc dbctx.Context, goals []*types.UserGoal) ([]*types.UserGoal, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.UserGoal, error)
	List(dbc dbctx.Context, page crud.Page) ([]*types.UserGoal, error)
	ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.UserGoal, error)
	// FirstByUserAndType returns the oldest goal of goalType, or nil when the user has none.
	FirstByUserAndType(dbc dbctx.Context, userID uuid.UUID, goalType types.GoalType) (*types.UserGoal, error)
	Update(dbc dbctx.Context, id uuid.UUID, patch crud.Patch) (*types.UserGoal, error)
	Delete(dbc dbctx.Context, id uuid.UUID) error
}

type userGoalRepo struct {
	*crud.Base[types.UserGoal]
	log *logger.Logger
}

func NewUserGoalRepo(db *gorm.DB, baseLog *logger.Logger) UserGoalRepo {
	repoLog := baseLog.With("repo", "UserGoalRepo")
	return &userGoalRepo{Base: crud.NewBase[types.UserGoal](db, repoLog, "Goal"), log: repoLog}
}

func (r *userGoalRepo) FirstByUserAndType(dbc dbctx.Context, userID uuid.UUID, goalType types.GoalType) (*types.UserGoal, error) {
	var g types.UserGoal
	err := r.Tx(dbc).
		Where("user_id = ? AND goal_type = ?", userID, goalType).
		Order("created_at ASC, id ASC").
		First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}
