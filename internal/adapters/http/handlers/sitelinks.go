package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/homepage-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen/homepage-gateway/internal/ports"
)

// SiteLinksHandler serves the homepage link grid.
type SiteLinksHandler struct {
	source ports.SiteLinkSource
}

// NewSiteLinksHandler creates a new site links handler.
func NewSiteLinksHandler(source ports.SiteLinkSource) *SiteLinksHandler {
	return &SiteLinksHandler{source: source}
}

// GetSiteLinks handles GET /api/v1/site-links. The asset is read on every
// request. A missing or invalid asset is an internal error.
//
// @Summary Get the homepage links
// @Tags site-links
// @Produce json
// @Success 200 {array} domain.SiteLink
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/site-links [get]
func (h *SiteLinksHandler) GetSiteLinks(c *gin.Context) {
	links, err := h.source.Links(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, links)
}

// RegisterSiteLinksRoutes registers the site links route on the given router group.
func (h *SiteLinksHandler) RegisterSiteLinksRoutes(rg *gin.RouterGroup) {
	rg.GET("/site-links", h.GetSiteLinks)
}
