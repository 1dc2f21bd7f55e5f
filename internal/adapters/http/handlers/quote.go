package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/homepage-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen/homepage-gateway/internal/app"
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// GetHitokoto handles GET /api/v1/quotes/hitokoto.
// The upstream body is returned unchanged.
//
// @Summary Get a hitokoto sentence
// @Tags quotes
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/quotes/hitokoto [get]
func (h *QuoteHandler) GetHitokoto(c *gin.Context) {
	quote, err := h.service.Hitokoto(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// GetUserQuote handles GET /api/v1/quotes/user.
//
// @Summary Get a quote from the nsmao service
// @Tags quotes
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/quotes/user [get]
func (h *QuoteHandler) GetUserQuote(c *gin.Context) {
	quote, err := h.service.UserQuote(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("/hitokoto", h.GetHitokoto)
	quotes.GET("/user", h.GetUserQuote)
}
