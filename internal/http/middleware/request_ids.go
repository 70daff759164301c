package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/routinely-backend/internal/platform/ctxutil"
)

const (
	HeaderRequestID = "X-Request-Id"
	HeaderTraceID   = "X-Trace-Id"
)

// RequestIDs stamps every request with a request id and a trace id and echoes
// both as response headers. It must run after otelgin so the active span's
// trace id wins over a client-supplied X-Trace-Id.
func RequestIDs() gin.HandlerFunc {
	return func(c *gin.Context) {
		info := ctxutil.RequestInfo{
			RequestID: headerOr(c, HeaderRequestID, uuid.NewString),
		}
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
			info.TraceID = sc.TraceID().String()
			info.Sampled = sc.IsSampled()
		} else {
			info.TraceID = headerOr(c, HeaderTraceID, uuid.NewString)
		}

		c.Request = c.Request.WithContext(ctxutil.WithRequestInfo(c.Request.Context(), info))
		h := c.Writer.Header()
		h.Set(HeaderRequestID, info.RequestID)
		h.Set(HeaderTraceID, info.TraceID)
		c.Next()
	}
}

func headerOr(c *gin.Context, name string, gen func() string) string {
	if v := strings.TrimSpace(c.GetHeader(name)); v != "" {
		return v
	}
	return gen()
}
