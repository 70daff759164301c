package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/routinely-backend/internal/data/repos"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

type Repos struct {
	User        repos.UserRepo
	UserGoal    repos.UserGoalRepo
	RoutineTask repos.RoutineTaskRepo
	DailyLog    repos.DailyLogRepo
	Interview   repos.InterviewRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:        repos.NewUserRepo(db, log),
		UserGoal:    repos.NewUserGoalRepo(db, log),
		RoutineTask: repos.NewRoutineTaskRepo(db, log),
		DailyLog:    repos.NewDailyLogRepo(db, log),
		Interview:   repos.NewInterviewRepo(db, log),
	}
}
