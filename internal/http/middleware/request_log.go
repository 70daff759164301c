package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/routinely-backend/internal/platform/ctxutil"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

// quietRoutes are probed constantly by orchestrators and scrapers; they log at debug.
var quietRoutes = map[string]bool{
	"/healthcheck": true,
	"/metrics":     true,
}

// RequestLogger writes one line per request once the handler chain returns.
// Requests scoped to a user carry user_id so a user's activity can be grepped.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := routeLabel(c)
		status := c.Writer.Status()
		kv := []interface{}{
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"latency", time.Since(start),
		}
		if userID := c.Param("user_id"); userID != "" {
			kv = append(kv, "user_id", userID)
		}
		if info, ok := ctxutil.RequestInfoFrom(c.Request.Context()); ok {
			kv = append(kv, info.LogFields()...)
		}
		if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
			kv = append(kv, "error", errs.String())
		}

		switch {
		case status >= 500:
			log.Error("request failed", kv...)
		case status >= 400:
			log.Warn("request rejected", kv...)
		case quietRoutes[route]:
			log.Debug("request", kv...)
		default:
			log.Info("request", kv...)
		}
	}
}

// routeLabel is the matched route template, so /users/:id stays one series
// in logs and metrics however many ids are requested.
func routeLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}
