package domain

import (
	"github.com/yungbote/routinely-backend/internal/domain/interview"
	"github.com/yungbote/routinely-backend/internal/domain/routine"
	"github.com/yungbote/routinely-backend/internal/domain/user"
)

type User = user.User
type UserPatch = user.UserPatch
type UserGoal = user.UserGoal
type UserGoalPatch = user.UserGoalPatch
type GoalType = user.GoalType

type RoutineTask = routine.RoutineTask
type RoutineTaskPatch = routine.RoutineTaskPatch
type Category = routine.Category

type DailyLog = routine.DailyLog
type DailyLogPatch = routine.DailyLogPatch
type LogStatus = routine.LogStatus

type Interview = interview.Interview
type InterviewPatch = interview.InterviewPatch
type InterviewFilter = interview.Filter

const (
	GoalWeekly  = user.GoalWeekly
	GoalMonthly = user.GoalMonthly

	StatusPending = routine.StatusPending
	StatusDone    = routine.StatusDone
	StatusPartial = routine.StatusPartial
	StatusMissed  = routine.StatusMissed
	StatusSkipped = routine.StatusSkipped
)

// Models lists every persisted type in dependency order.
func Models() []any {
	return []any{
		&User{},
		&RoutineTask{},
		&DailyLog{},
		&Interview{},
		&UserGoal{},
	}
}
