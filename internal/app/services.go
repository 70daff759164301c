package app

import (
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/routinely-backend/internal/modules/analytics"
	"github.com/yungbote/routinely-backend/internal/observability"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
	"github.com/yungbote/routinely-backend/internal/services"
)

type Services struct {
	User        services.UserService
	Goal        services.GoalService
	RoutineTask services.RoutineTaskService
	DailyLog    services.DailyLogService
	Interview   services.InterviewService
	Analytics   analytics.Usecases
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos, c Clients, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")
	return Services{
		User:        services.NewUserService(db, log, r.User),
		Goal:        services.NewGoalService(db, log, r.User, r.UserGoal),
		RoutineTask: services.NewRoutineTaskService(db, log, r.User, r.RoutineTask),
		DailyLog: services.NewDailyLogService(services.DailyLogServiceDeps{
			DB:       db,
			Log:      log,
			Users:    r.User,
			Tasks:    r.RoutineTask,
			Logs:     r.DailyLog,
			Locker:   c.Locker,
			Metrics:  metrics,
			Clock:    time.Now,
			Location: cfg.Location,
		}),
		Interview: services.NewInterviewService(db, log, r.User, r.Interview),
		Analytics: analytics.New(analytics.UsecasesDeps{
			Log:      log,
			Logs:     r.DailyLog,
			Goals:    r.UserGoal,
			Metrics:  metrics,
			Now:      time.Now,
			Location: cfg.Location,
		}),
	}
}
