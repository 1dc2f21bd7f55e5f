package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/homepage-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen/homepage-gateway/internal/app"
)

// HomeHandler serves everything the homepage shows on first paint.
type HomeHandler struct {
	service *app.HomeService
}

// NewHomeHandler creates a new home handler.
func NewHomeHandler(service *app.HomeService) *HomeHandler {
	return &HomeHandler{service: service}
}

// GetHome handles GET /api/v1/home. It always answers 200; a failed section
// is null and described under errors.
//
// @Summary Get the homepage snapshot
// @Tags home
// @Produce json
// @Success 200 {object} dto.HomeResponse
// @Router /api/v1/home [get]
func (h *HomeHandler) GetHome(c *gin.Context) {
	snap := h.service.Snapshot(c.Request.Context())

	c.JSON(http.StatusOK, dto.NewHomeResponse(snap))
}

// RegisterHomeRoutes registers the homepage route on the given router group.
func (h *HomeHandler) RegisterHomeRoutes(rg *gin.RouterGroup) {
	rg.GET("/home", h.GetHome)
}
