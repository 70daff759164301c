package handlers

import (
	"github.com/gin-gonic/gin"

	types "github.com/yungbote/routinely-backend/internal/domain"
	"github.com/yungbote/routinely-backend/internal/http/response"
	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
	"github.com/yungbote/routinely-backend/internal/services"
)

type DailyLogHandler struct {
	logs services.DailyLogService
}

func NewDailyLogHandler(logs services.DailyLogService) *DailyLogHandler {
	return &DailyLogHandler{logs: logs}
}

// POST /logs/
func (h *DailyLogHandler) Create(c *gin.Context) {
	var req services.CreateDailyLogInput
	if !bindJSON(c, &req, false) {
		return
	}
	log, err := h.logs.Create(dbctx.Context{Ctx: c.Request.Context()}, req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, log)
}

// GET /logs/?skip=&limit=
func (h *DailyLogHandler) List(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}
	logs, err := h.logs.List(dbctx.Context{Ctx: c.Request.Context()}, page)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, logs)
}

// GET /logs/user/:user_id
func (h *DailyLogHandler) ListByUser(c *gin.Context) {
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	logs, err := h.logs.ListByUser(dbctx.Context{Ctx: c.Request.Context()}, userID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, logs)
}

// GET /logs/routine-task/:routine_task_id
func (h *DailyLogHandler) ListByRoutineTask(c *gin.Context) {
	taskID, ok := uuidParam(c, "routine_task_id")
	if !ok {
		return
	}
	logs, err := h.logs.ListByRoutineTask(dbctx.Context{Ctx: c.Request.Context()}, taskID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, logs)
}

// GET /logs/user/:user_id/date/:date
func (h *DailyLogHandler) ListByUserAndDate(c *gin.Context) {
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	day, ok := dateParam(c, "date")
	if !ok {
		return
	}
	logs, err := h.logs.ListByUserAndDate(dbctx.Context{Ctx: c.Request.Context()}, userID, day)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, logs)
}

// GET /logs/:id
func (h *DailyLogHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	log, err := h.logs.Get(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, log)
}

// PUT /logs/:id
func (h *DailyLogHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var patch types.DailyLogPatch
	if !bindJSON(c, &patch, true) {
		return
	}
	log, err := h.logs.Update(dbctx.Context{Ctx: c.Request.Context()}, id, patch)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, log)
}

// POST /logs/generate-today/:user_id
func (h *DailyLogHandler) GenerateToday(c *gin.Context) {
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	created, err := h.logs.GenerateToday(dbctx.Context{Ctx: c.Request.Context()}, userID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, created)
}

// DELETE /logs/:id
func (h *DailyLogHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.logs.Delete(dbctx.Context{Ctx: c.Request.Context()}, id); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondMessage(c, "Daily log deleted successfully")
}
