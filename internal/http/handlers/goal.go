package handlers

import (
	"github.com/gin-gonic/gin"

	types "github.com/yungbote/routinely-backend/internal/domain"
	"github.com/yungbote/routinely-backend/internal/http/response"
	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
	"github.com/yungbote/routinely-backend/internal/services"
)

type GoalHandler struct {
	goals services.GoalService
}

func NewGoalHandler(goals services.GoalService) *GoalHandler {
	return &GoalHandler{goals: goals}
}

// POST /goals/
func (h *GoalHandler) Create(c *gin.Context) {
	var req services.CreateGoalInput
	if !bindJSON(c, &req, false) {
		return
	}
	goal, err := h.goals.Create(dbctx.Context{Ctx: c.Request.Context()}, req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, goal)
}

// GET /goals/?skip=&limit=
func (h *GoalHandler) List(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}
	goals, err := h.goals.List(dbctx.Context{Ctx: c.Request.Context()}, page)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, goals)
}

// GET /goals/user/:user_id
func (h *GoalHandler) ListByUser(c *gin.Context) {
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	goals, err := h.goals.ListByUser(dbctx.Context{Ctx: c.Request.Context()}, userID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, goals)
}

// GET /goals/:id
func (h *GoalHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	goal, err := h.goals.Get(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, goal)
}

// PUT /goals/:id
func (h *GoalHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var patch types.UserGoalPatch
	if !bindJSON(c, &patch, true) {
		return
	}
	goal, err := h.goals.Update(dbctx.Context{Ctx: c.Request.Context()}, id, patch)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, goal)
}

// DELETE /goals/:id
func (h *GoalHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.goals.Delete(dbctx.Context{Ctx: c.Request.Context()}, id); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondMessage(c, "Goal deleted successfully")
}
