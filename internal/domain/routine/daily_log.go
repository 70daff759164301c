package routine

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/routinely-backend/internal/domain/calendar"
	"github.com/yungbote/routinely-backend/internal/domain/user"
)

type LogStatus string

const (
	StatusPending LogStatus = "pending"
	StatusDone    LogStatus = "done"
	StatusPartial LogStatus = "partial"
	StatusMissed  LogStatus = "missed"
	StatusSkipped LogStatus = "skipped"
)

// DailyLog records one day's outcome for a routine task. At most one row
// exists per (user, task, date); the composite unique index enforces it.
type DailyLog struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_daily_log_user_task_date,priority:1;index:idx_daily_log_user_status_date,priority:1" json:"user_id"`
	User          *user.User    `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	RoutineTaskID uuid.UUID     `gorm:"type:uuid;not null;index;uniqueIndex:idx_daily_log_user_task_date,priority:2" json:"routine_task_id"`
	RoutineTask   *RoutineTask  `gorm:"constraint:OnDelete:CASCADE;" json:"routine_task,omitempty"`
	Date          calendar.Date `gorm:"not null;uniqueIndex:idx_daily_log_user_task_date,priority:3;index:idx_daily_log_user_status_date,priority:3" json:"date"`
	Status        LogStatus     `gorm:"not null;default:'pending';index:idx_daily_log_user_status_date,priority:2" json:"status"`
	ActualMinutes int           `gorm:"not null;default:0" json:"actual_minutes"`
	Notes         *string       `json:"notes"`
	CreatedAt     time.Time     `gorm:"not null" json:"created_at"`
}

func (DailyLog) TableName() string { return "daily_logs" }

func (l *DailyLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Status == "" {
		l.Status = StatusPending
	}
	return nil
}

// NewPendingLog is the row materialized for a task scheduled on day.
func NewPendingLog(userID, taskID uuid.UUID, day calendar.Date) *DailyLog {
	return &DailyLog{
		UserID:        userID,
		RoutineTaskID: taskID,
		Date:          day,
		Status:        StatusPending,
		ActualMinutes: 0,
	}
}

type DailyLogPatch struct {
	Status        *LogStatus `json:"status" binding:"omitempty,oneof=pending done partial missed skipped"`
	ActualMinutes *int       `json:"actual_minutes" binding:"omitempty,min=0"`
	Notes         *string    `json:"notes"`
}

func (p DailyLogPatch) Fields() map[string]any {
	out := map[string]any{}
	if p.Status != nil {
		out["status"] = *p.Status
	}
	if p.ActualMinutes != nil {
		out["actual_minutes"] = *p.ActualMinutes
	}
	if p.Notes != nil {
		out["notes"] = *p.Notes
	}
	return out
}
