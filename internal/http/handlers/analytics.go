package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/routinely-backend/internal/http/response"
	"github.com/yungbote/routinely-backend/internal/modules/analytics"
)

// AnalyticsReader is the read side the analytics routes need.
type AnalyticsReader interface {
	WeeklyReport(ctx context.Context, userID uuid.UUID) (analytics.WeeklyReport, error)
	MonthlyReport(ctx context.Context, userID uuid.UUID) (analytics.MonthlyReport, error)
	CurrentStreak(ctx context.Context, userID uuid.UUID) (analytics.Streak, error)
}

type AnalyticsHandler struct {
	reader AnalyticsReader
}

func NewAnalyticsHandler(reader AnalyticsReader) *AnalyticsHandler {
	return &AnalyticsHandler{reader: reader}
}

// GET /analytics/weekly/:user_id
func (h *AnalyticsHandler) Weekly(c *gin.Context) {
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	report, err := h.reader.WeeklyReport(c.Request.Context(), userID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, report)
}

// GET /analytics/monthly/:user_id
func (h *AnalyticsHandler) Monthly(c *gin.Context) {
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	report, err := h.reader.MonthlyReport(c.Request.Context(), userID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, report)
}

// GET /analytics/streak/:user_id
func (h *AnalyticsHandler) Streak(c *gin.Context) {
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	streak, err := h.reader.CurrentStreak(c.Request.Context(), userID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, streak)
}
