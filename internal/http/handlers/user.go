package handlers

import (
	"github.com/gin-gonic/gin"

	types "github.com/yungbote/routinely-backend/internal/domain"
	"github.com/yungbote/routinely-backend/internal/http/response"
	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
	"github.com/yungbote/routinely-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// POST /users/
func (h *UserHandler) Create(c *gin.Context) {
	var req services.CreateUserInput
	if !bindJSON(c, &req, false) {
		return
	}
	u, err := h.userService.Create(dbctx.Context{Ctx: c.Request.Context()}, req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, u)
}

// GET /users/?skip=&limit=
func (h *UserHandler) List(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}
	users, err := h.userService.List(dbctx.Context{Ctx: c.Request.Context()}, page)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, users)
}

// GET /users/email/:email
func (h *UserHandler) GetByEmail(c *gin.Context) {
	u, err := h.userService.GetByEmail(dbctx.Context{Ctx: c.Request.Context()}, c.Param("email"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, u)
}

// GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	u, err := h.userService.Get(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, u)
}

// PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var patch types.UserPatch
	if !bindJSON(c, &patch, true) {
		return
	}
	u, err := h.userService.Update(dbctx.Context{Ctx: c.Request.Context()}, id, patch)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, u)
}

// DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.userService.Delete(dbctx.Context{Ctx: c.Request.Context()}, id); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondMessage(c, "User deleted successfully")
}
