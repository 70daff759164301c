package handlers

import (
	"github.com/gin-gonic/gin"

	types "github.com/yungbote/routinely-backend/internal/domain"
	"github.com/yungbote/routinely-backend/internal/http/response"
	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
	"github.com/yungbote/routinely-backend/internal/services"
)

type RoutineTaskHandler struct {
	tasks services.RoutineTaskService
}

func NewRoutineTaskHandler(tasks services.RoutineTaskService) *RoutineTaskHandler {
	return &RoutineTaskHandler{tasks: tasks}
}

// POST /routine-tasks/
func (h *RoutineTaskHandler) Create(c *gin.Context) {
	var req services.CreateRoutineTaskInput
	if !bindJSON(c, &req, false) {
		return
	}
	task, err := h.tasks.Create(dbctx.Context{Ctx: c.Request.Context()}, req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, task)
}

// GET /routine-tasks/?skip=&limit=
func (h *RoutineTaskHandler) List(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}
	tasks, err := h.tasks.List(dbctx.Context{Ctx: c.Request.Context()}, page)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, tasks)
}

// GET /routine-tasks/user/:user_id
func (h *RoutineTaskHandler) ListByUser(c *gin.Context) {
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	tasks, err := h.tasks.ListByUser(dbctx.Context{Ctx: c.Request.Context()}, userID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, tasks)
}

// GET /routine-tasks/user/:user_id/day/:day_name
func (h *RoutineTaskHandler) ListByUserAndDay(c *gin.Context) {
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	tasks, err := h.tasks.ListByUserAndDay(dbctx.Context{Ctx: c.Request.Context()}, userID, c.Param("day_name"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, tasks)
}

// GET /routine-tasks/:id
func (h *RoutineTaskHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	task, err := h.tasks.Get(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, task)
}

// PUT /routine-tasks/:id
func (h *RoutineTaskHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var patch types.RoutineTaskPatch
	if !bindJSON(c, &patch, true) {
		return
	}
	task, err := h.tasks.Update(dbctx.Context{Ctx: c.Request.Context()}, id, patch)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, task)
}

// DELETE /routine-tasks/:id
func (h *RoutineTaskHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.tasks.Delete(dbctx.Context{Ctx: c.Request.Context()}, id); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondMessage(c, "Routine task deleted successfully")
}
