package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/homepage-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen/homepage-gateway/internal/app"
)

// PlaylistHandler serves the music player's playlist.
type PlaylistHandler struct {
	service *app.PlaylistService
}

// NewPlaylistHandler creates a new playlist handler.
func NewPlaylistHandler(service *app.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{service: service}
}

// GetPlaylist handles GET /api/v1/playlist?server=&type=&id=.
// It always answers 200; upstream failures yield an empty array.
//
// @Summary Get the player playlist
// @Tags playlist
// @Produce json
// @Param server query string false "provider hint"
// @Param type query string false "list type hint"
// @Param id query string false "list id hint"
// @Success 200 {array} domain.PlaybackTrack
// @Router /api/v1/playlist [get]
func (h *PlaylistHandler) GetPlaylist(c *gin.Context) {
	var query dto.PlaylistQuery

	// String-only fields cannot fail to bind.
	_ = c.ShouldBindQuery(&query)

	tracks := h.service.Playlist(c.Request.Context(), query.Server, query.Type, query.ID)

	c.JSON(http.StatusOK, tracks)
}

// RegisterPlaylistRoutes registers playlist routes on the given router group.
func (h *PlaylistHandler) RegisterPlaylistRoutes(rg *gin.RouterGroup) {
	rg.GET("/playlist", h.GetPlaylist)
}
