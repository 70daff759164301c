package app

import (
	"github.com/yungbote/routinely-backend/internal/http"
	httpH "github.com/yungbote/routinely-backend/internal/http/handlers"
	"github.com/yungbote/routinely-backend/internal/observability"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

// Modules lists the resource groups served by the API.
var Modules = []string{"users", "routine-tasks", "logs", "interviews", "goals", "analytics"}

type Handlers struct {
	Health      *httpH.HealthHandler
	User        *httpH.UserHandler
	RoutineTask *httpH.RoutineTaskHandler
	DailyLog    *httpH.DailyLogHandler
	Interview   *httpH.InterviewHandler
	Goal        *httpH.GoalHandler
	Analytics   *httpH.AnalyticsHandler
}

func wireHandlers(log *logger.Logger, cfg Config, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: httpH.NewHealthHandler(httpH.ServiceInfo{
			Name:    ServiceName,
			Version: cfg.Version,
			Modules: Modules,
		}),
		User:        httpH.NewUserHandler(s.User),
		RoutineTask: httpH.NewRoutineTaskHandler(s.RoutineTask),
		DailyLog:    httpH.NewDailyLogHandler(s.DailyLog),
		Interview:   httpH.NewInterviewHandler(s.Interview),
		Goal:        httpH.NewGoalHandler(s.Goal),
		Analytics:   httpH.NewAnalyticsHandler(s.Analytics),
	}
}

func wireServer(log *logger.Logger, cfg Config, h Handlers, metrics *observability.Metrics) *http.Server {
	return http.NewServer(http.RouterConfig{
		Log:         log,
		ServiceName: cfg.Otel.ServiceName,
		CORSOrigins: cfg.CORSOrigins,
		Metrics:     metrics,

		HealthHandler:      h.Health,
		UserHandler:        h.User,
		RoutineTaskHandler: h.RoutineTask,
		DailyLogHandler:    h.DailyLog,
		InterviewHandler:   h.Interview,
		GoalHandler:        h.Goal,
		AnalyticsHandler:   h.Analytics,
	})
}
