package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ServiceInfo struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Modules []string `json:"modules"`
}

type HealthHandler struct {
	info ServiceInfo
}

func NewHealthHandler(info ServiceInfo) *HealthHandler { return &HealthHandler{info: info} }

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, h.info)
}
