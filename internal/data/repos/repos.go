package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/routinely-backend/internal/data/repos/interview"
	"github.com/yungbote/routinely-backend/internal/data/repos/routine"
	"github.com/yungbote/routinely-backend/internal/data/repos/user"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

type UserRepo = user.UserRepo
type UserGoalRepo = user.UserGoalRepo

type RoutineTaskRepo = routine.RoutineTaskRepo
type DailyLogRepo = routine.DailyLogRepo

type InterviewRepo = interview.InterviewRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return user.NewUserRepo(db, baseLog)
}

func NewUserGoalRepo(db *gorm.DB, baseLog *logger.Logger) UserGoalRepo {
	return user.NewUserGoalRepo(db, baseLog)
}

func NewRoutineTaskRepo(db *gorm.DB, baseLog *logger.Logger) RoutineTaskRepo {
	return routine.NewRoutineTaskRepo(db, baseLog)
}

func NewDailyLogRepo(db *gorm.DB, baseLog *logger.Logger) DailyLogRepo {
	return routine.NewDailyLogRepo(db, baseLog)
}

func NewInterviewRepo(db *gorm.DB, baseLog *logger.Logger) InterviewRepo {
	return interview.NewInterviewRepo(db, baseLog)
}
