package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/routinely-backend/internal/domain"
	"github.com/yungbote/routinely-backend/internal/domain/interview"
	"github.com/yungbote/routinely-backend/internal/http/response"
	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
	"github.com/yungbote/routinely-backend/internal/services"
)

type InterviewHandler struct {
	interviews services.InterviewService
}

func NewInterviewHandler(interviews services.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviews: interviews}
}

// POST /interviews/
func (h *InterviewHandler) Create(c *gin.Context) {
	var req services.CreateInterviewInput
	if !bindJSON(c, &req, false) {
		return
	}
	iv, err := h.interviews.Create(dbctx.Context{Ctx: c.Request.Context()}, req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, iv)
}

// GET /interviews/?skip=&limit=
func (h *InterviewHandler) List(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}
	ivs, err := h.interviews.List(dbctx.Context{Ctx: c.Request.Context()}, page)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, ivs)
}

// GET /interviews/user/:user_id?status=&priority=
func (h *InterviewHandler) ListByUser(c *gin.Context) {
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	filter := types.InterviewFilter{
		Status:   interview.Status(strings.TrimSpace(c.Query("status"))),
		Priority: interview.Priority(strings.TrimSpace(c.Query("priority"))),
	}
	ivs, err := h.interviews.ListByUser(dbctx.Context{Ctx: c.Request.Context()}, userID, filter)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, ivs)
}

// GET /interviews/:id
func (h *InterviewHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	iv, err := h.interviews.Get(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, iv)
}

// PUT /interviews/:id
func (h *InterviewHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var patch types.InterviewPatch
	if !bindJSON(c, &patch, true) {
		return
	}
	iv, err := h.interviews.Update(dbctx.Context{Ctx: c.Request.Context()}, id, patch)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, iv)
}

// DELETE /interviews/:id
func (h *InterviewHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.interviews.Delete(dbctx.Context{Ctx: c.Request.Context()}, id); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondMessage(c, "Interview deleted successfully")
}
