package interview

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/routinely-backend/internal/domain/calendar"
	"github.com/yungbote/routinely-backend/internal/domain/user"
)

type Status string

const (
	StatusApplied            Status = "applied"
	StatusReplied            Status = "replied"
	StatusInterviewScheduled Status = "interview_scheduled"
	StatusInterviewDone      Status = "interview_done"
	StatusOffer              Status = "offer"
	StatusRejected           Status = "rejected"
)

var Statuses = []Status{
	StatusApplied, StatusReplied, StatusInterviewScheduled,
	StatusInterviewDone, StatusOffer, StatusRejected,
}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Interview tracks one job application through its hiring pipeline.
type Interview struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User            *user.User     `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	CompanyName     string         `gorm:"not null" json:"company_name"`
	Role            string         `gorm:"not null" json:"role"`
	ApplicationDate *calendar.Date `json:"application_date"`
	Status          Status         `gorm:"not null;default:'applied'" json:"status"`
	Round           *string        `json:"round"`
	Priority        Priority       `gorm:"not null;default:'medium'" json:"priority"`
	Notes           *string        `json:"notes"`
	FollowUpDate    *calendar.Date `json:"follow_up_date"`
	CreatedAt       time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null" json:"updated_at"`
}

func (Interview) TableName() string { return "interviews" }

func (i *Interview) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Status == "" {
		i.Status = StatusApplied
	}
	if i.Priority == "" {
		i.Priority = PriorityMedium
	}
	return nil
}

type InterviewPatch struct {
	CompanyName     *string        `json:"company_name" binding:"omitempty,min=1"`
	Role            *string        `json:"role" binding:"omitempty,min=1"`
	ApplicationDate *calendar.Date `json:"application_date"`
	Status          *Status        `json:"status" binding:"omitempty,oneof=applied replied interview_scheduled interview_done offer rejected"`
	Round           *string        `json:"round"`
	Priority        *Priority      `json:"priority" binding:"omitempty,oneof=high medium low"`
	Notes           *string        `json:"notes"`
	FollowUpDate    *calendar.Date `json:"follow_up_date"`
}

func (p InterviewPatch) Fields() map[string]any {
	out := map[string]any{}
	if p.CompanyName != nil {
		out["company_name"] = *p.CompanyName
	}
	if p.Role != nil {
		out["role"] = *p.Role
	}
	if p.ApplicationDate != nil {
		out["application_date"] = *p.ApplicationDate
	}
	if p.Status != nil {
		out["status"] = *p.Status
	}
	if p.Round != nil {
		out["round"] = *p.Round
	}
	if p.Priority != nil {
		out["priority"] = *p.Priority
	}
	if p.Notes != nil {
		out["notes"] = *p.Notes
	}
	if p.FollowUpDate != nil {
		out["follow_up_date"] = *p.FollowUpDate
	}
	return out
}

// Filter narrows a user's interviews; empty fields match everything and
// set fields are ANDed.
type Filter struct {
	Status   Status
	Priority Priority
}
