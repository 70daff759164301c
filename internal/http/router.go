package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/routinely-backend/internal/http/handlers"
	httpMW "github.com/yungbote/routinely-backend/internal/http/middleware"
	"github.com/yungbote/routinely-backend/internal/observability"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string
	// Metrics, when set, is recorded per request and served at /metrics.
	Metrics *observability.Metrics

	HealthHandler      *httpH.HealthHandler
	UserHandler        *httpH.UserHandler
	RoutineTaskHandler *httpH.RoutineTaskHandler
	DailyLogHandler    *httpH.DailyLogHandler
	InterviewHandler   *httpH.InterviewHandler
	GoalHandler        *httpH.GoalHandler
	AnalyticsHandler   *httpH.AnalyticsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	httpH.RegisterValidation()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "routinely"
	}

	r := gin.New()
	r.RedirectTrailingSlash = true
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpMW.RequestIDs())
	r.Use(httpMW.CORS(cfg.CORSOrigins))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.RequestLogger(cfg.Log))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/", cfg.HealthHandler.Root)
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	// Users
	if h := cfg.UserHandler; h != nil {
		g := r.Group("/users")
		g.POST("/", h.Create)
		g.GET("/", h.List)
		g.GET("/email/:email", h.GetByEmail)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}

	// Routine tasks
	if h := cfg.RoutineTaskHandler; h != nil {
		g := r.Group("/routine-tasks")
		g.POST("/", h.Create)
		g.GET("/", h.List)
		g.GET("/user/:user_id", h.ListByUser)
		g.GET("/user/:user_id/day/:day_name", h.ListByUserAndDay)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}

	// Daily logs
	if h := cfg.DailyLogHandler; h != nil {
		g := r.Group("/logs")
		g.POST("/", h.Create)
		g.GET("/", h.List)
		g.GET("/user/:user_id", h.ListByUser)
		g.GET("/user/:user_id/date/:date", h.ListByUserAndDate)
		g.GET("/routine-task/:routine_task_id", h.ListByRoutineTask)
		g.POST("/generate-today/:user_id", h.GenerateToday)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}

	// Interviews
	if h := cfg.InterviewHandler; h != nil {
		g := r.Group("/interviews")
		g.POST("/", h.Create)
		g.GET("/", h.List)
		g.GET("/user/:user_id", h.ListByUser)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}

	// Goals
	if h := cfg.GoalHandler; h != nil {
		g := r.Group("/goals")
		g.POST("/", h.Create)
		g.GET("/", h.List)
		g.GET("/user/:user_id", h.ListByUser)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}

	// Analytics
	if h := cfg.AnalyticsHandler; h != nil {
		g := r.Group("/analytics")
		g.GET("/weekly/:user_id", h.Weekly)
		g.GET("/monthly/:user_id", h.Monthly)
		g.GET("/streak/:user_id", h.Streak)
	}

	return r
}
