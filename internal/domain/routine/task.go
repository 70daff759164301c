package routine

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/routinely-backend/internal/domain/user"
)

type Category string

const (
	CategoryLearning Category = "Learning"
	CategoryFitness  Category = "Fitness"
	CategoryRest     Category = "Rest"
	CategoryOther    Category = "Other"
)

// RoutineTask is a recurring activity scheduled on a set of weekdays.
type RoutineTask struct {
	ID             uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID                   `gorm:"type:uuid;not null;index" json:"user_id"`
	User           *user.User                  `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Name           string                      `gorm:"not null" json:"name"`
	Category       Category                    `gorm:"not null;index" json:"category"`
	PlannedMinutes int                         `gorm:"not null;default:0" json:"planned_minutes"`
	ActiveDays     datatypes.JSONSlice[string] `gorm:"not null" json:"active_days"`
	CreatedAt      time.Time                   `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time                   `gorm:"not null" json:"updated_at"`
}

func (RoutineTask) TableName() string { return "routine_tasks" }

func (t *RoutineTask) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.ActiveDays = NormalizeDays(t.ActiveDays)
	return nil
}

// ActiveOn reports whether day (e.g. "Monday") is in the task's active set.
func (t *RoutineTask) ActiveOn(day string) bool {
	for _, d := range t.ActiveDays {
		if d == day {
			return true
		}
	}
	return false
}

type RoutineTaskPatch struct {
	Name           *string   `json:"name" binding:"omitempty,min=1"`
	Category       *Category `json:"category" binding:"omitempty,oneof=Learning Fitness Rest Other"`
	PlannedMinutes *int      `json:"planned_minutes" binding:"omitempty,min=0"`
	ActiveDays     *[]string `json:"active_days" binding:"omitempty,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
}

func (p RoutineTaskPatch) Fields() map[string]any {
	out := map[string]any{}
	if p.Name != nil {
		out["name"] = *p.Name
	}
	if p.Category != nil {
		out["category"] = *p.Category
	}
	if p.PlannedMinutes != nil {
		out["planned_minutes"] = *p.PlannedMinutes
	}
	if p.ActiveDays != nil {
		out["active_days"] = datatypes.JSONSlice[string](NormalizeDays(*p.ActiveDays))
	}
	return out
}
