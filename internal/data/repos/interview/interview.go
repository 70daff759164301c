package interview

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/routinely-backend/internal/data/repos/crud"
	types "github.com/yungbote/routinely-backend/internal/domain"
	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

type InterviewRepo interface {
	Create(dbc dbctx.Context, interviews []*types.Interview) ([]*types.Interview, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Interview, error)
	List(dbc dbctx.Context, page crud.Page) ([]*types.Interview, error)
	ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.Interview, error)
	ListByUserFiltered(dbc dbctx.Context, userID uuid.UUID, filter types.InterviewFilter) ([]*types.Interview, error)
	Update(dbc dbctx.Context, id uuid.UUID, patch crud.Patch) (*types.Interview, error)
	Delete(dbc dbctx.Context, id uuid.UUID) error
}

type interviewRepo struct {
	*crud.Base[types.Interview]
	log *logger.Logger
}

func NewInterviewRepo(db *gorm.DB, baseLog *logger.Logger) InterviewRepo {
	repoLog := baseLog.With("repo", "InterviewRepo")
	return &interviewRepo{Base: crud.NewBase[types.Interview](db, repoLog, "Interview"), log: repoLog}
}

func (r *interviewRepo) ListByUserFiltered(dbc dbctx.Context, userID uuid.UUID, filter types.InterviewFilter) ([]*types.Interview, error) {
	q := r.Tx(dbc).Where("user_id = ?", userID)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}
	var rows []*types.Interview
	if err := q.Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
