package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoalType string

const (
	GoalWeekly  GoalType = "weekly"
	GoalMonthly GoalType = "monthly"
)

func (g GoalType) Valid() bool { return g == GoalWeekly || g == GoalMonthly }

// UserGoal is a target completion percentage for a reporting window.
// Several rows per type may exist; readers take the oldest.
type UserGoal struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index:idx_user_goal_user_type,priority:1" json:"user_id"`
	User             *User     `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	GoalType         GoalType  `gorm:"not null;index:idx_user_goal_user_type,priority:2" json:"goal_type"`
	TargetPercentage int       `gorm:"not null" json:"target_percentage"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
}

func (UserGoal) TableName() string { return "user_goals" }

func (g *UserGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

type UserGoalPatch struct {
	GoalType         *GoalType `json:"goal_type" binding:"omitempty,oneof=weekly monthly"`
	TargetPercentage *int      `json:"target_percentage" binding:"omitempty,min=0,max=100"`
}

func (p UserGoalPatch) Fields() map[string]any {
	out := map[string]any{}
	if p.GoalType != nil {
		out["goal_type"] = *p.GoalType
	}
	if p.TargetPercentage != nil {
		out["target_percentage"] = *p.TargetPercentage
	}
	return out
}
