package services

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/routinely-backend/internal/data/repos"
	"github.com/yungbote/routinely-backend/internal/data/repos/crud"
	types "github.com/yungbote/routinely-backend/internal/domain"
	"github.com/yungbote/routinely-backend/internal/domain/calendar"
	"github.com/yungbote/routinely-backend/internal/domain/interview"
	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/routinely-backend/internal/pkg/errors"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

type CreateInterviewInput struct {
	UserID          uuid.UUID          `json:"user_id" binding:"required"`
	CompanyName     string             `json:"company_name" binding:"required"`
	Role            string             `json:"role" binding:"required"`
	ApplicationDate *calendar.Date     `json:"application_date"`
	Status          interview.Status   `json:"status" binding:"omitempty,oneof=applied replied interview_scheduled interview_done offer rejected"`
	Round           *string            `json:"round"`
	Priority        interview.Priority `json:"priority" binding:"omitempty,oneof=high medium low"`
	Notes           *string            `json:"notes"`
	FollowUpDate    *calendar.Date     `json:"follow_up_date"`
}

type InterviewService interface {
	Create(dbc dbctx.Context, in CreateInterviewInput) (*types.Interview, error)
	Get(dbc dbctx.Context, id uuid.UUID) (*types.Interview, error)
	List(dbc dbctx.Context, page crud.Page) ([]*types.Interview, error)
	// ListByUser applies the optional filters; set fields are ANDed.
	ListByUser(dbc dbctx.Context, userID uuid.UUID, filter types.InterviewFilter) ([]*types.Interview, error)
	Update(dbc dbctx.Context, id uuid.UUID, patch types.InterviewPatch) (*types.Interview, error)
	Delete(dbc dbctx.Context, id uuid.UUID) error
}

type interviewService struct {
	db         *gorm.DB
	log        *logger.Logger
	users      repos.UserRepo
	interviews repos.InterviewRepo
}

func NewInterviewService(db *gorm.DB, log *logger.Logger, users repos.UserRepo, interviews repos.InterviewRepo) InterviewService {
	return &interviewService{db: db, log: log.With("service", "InterviewService"), users: users, interviews: interviews}
}

func validateInterviewEnums(status interview.Status, priority interview.Priority) error {
	if status != "" && !status.Valid() {
		return pkgerrors.Invalid("status", "must be one of: applied, replied, interview_scheduled, interview_done, offer, rejected")
	}
	if priority != "" && !priority.Valid() {
		return pkgerrors.Invalid("priority", "must be one of: high, medium, low")
	}
	return nil
}

func (s *interviewService) Create(dbc dbctx.Context, in CreateInterviewInput) (*types.Interview, error) {
	if strings.TrimSpace(in.CompanyName) == "" {
		return nil, pkgerrors.Invalid("company_name", "must not be empty")
	}
	if strings.TrimSpace(in.Role) == "" {
		return nil, pkgerrors.Invalid("role", "must not be empty")
	}
	if err := validateInterviewEnums(in.Status, in.Priority); err != nil {
		return nil, err
	}

	var created *types.Interview
	err := inTx(s.db, dbc, func(inner dbctx.Context) error {
		if _, err := s.users.GetByID(inner, in.UserID); err != nil {
			return err
		}
		rows, err := s.interviews.Create(inner, []*types.Interview{{
			UserID:          in.UserID,
			CompanyName:     in.CompanyName,
			Role:            in.Role,
			ApplicationDate: in.ApplicationDate,
			Status:          in.Status,
			Round:           in.Round,
			Priority:        in.Priority,
			Notes:           in.Notes,
			FollowUpDate:    in.FollowUpDate,
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

func (s *interviewService) Get(dbc dbctx.Context, id uuid.UUID) (*types.Interview, error) {
	return s.interviews.GetByID(dbc, id)
}

func (s *interviewService) List(dbc dbctx.Context, page crud.Page) ([]*types.Interview, error) {
	return s.interviews.List(dbc, page)
}

func (s *interviewService) ListByUser(dbc dbctx.Context, userID uuid.UUID, filter types.InterviewFilter) ([]*types.Interview, error) {
	if err := validateInterviewEnums(filter.Status, filter.Priority); err != nil {
		return nil, err
	}
	return s.interviews.ListByUserFiltered(dbc, userID, filter)
}

func (s *interviewService) Update(dbc dbctx.Context, id uuid.UUID, patch types.InterviewPatch) (*types.Interview, error) {
	var status interview.Status
	var priority interview.Priority
	if patch.Status != nil {
		status = *patch.Status
		if status == "" {
			return nil, pkgerrors.Invalid("status", "must not be empty")
		}
	}
	if patch.Priority != nil {
		priority = *patch.Priority
		if priority == "" {
			return nil, pkgerrors.Invalid("priority", "must not be empty")
		}
	}
	if err := validateInterviewEnums(status, priority); err != nil {
		return nil, err
	}

	var updated *types.Interview
	err := inTx(s.db, dbc, func(inner dbctx.Context) error {
		i, err := s.interviews.Update(inner, id, patch)
		updated = i
		return err
	})
	return updated, err
}

func (s *interviewService) Delete(dbc dbctx.Context, id uuid.UUID) error {
	return inTx(s.db, dbc, func(inner dbctx.Context) error {
		return s.interviews.Delete(inner, id)
	})
}
