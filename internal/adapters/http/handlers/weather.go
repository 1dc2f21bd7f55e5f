package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/homepage-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen/homepage-gateway/internal/app"
	"github.com/jsamuelsen/homepage-gateway/internal/domain"
)

// WeatherHandler handles geolocation and weather endpoints.
// Every upstream body is returned unchanged.
type WeatherHandler struct {
	service *app.WeatherService
}

// NewWeatherHandler creates a new weather handler.
func NewWeatherHandler(service *app.WeatherService) *WeatherHandler {
	return &WeatherHandler{service: service}
}

// GetGeoLocation handles GET /api/v1/geo?key=.
//
// @Summary Locate the caller by IP
// @Tags weather
// @Produce json
// @Param key query string true "amap key"
// @Success 200 {object} map[string]any
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/geo [get]
func (h *WeatherHandler) GetGeoLocation(c *gin.Context) {
	var query dto.KeyQuery
	if !bindQuery(c, &query) {
		return
	}

	respond(c, func() (domain.Document, error) {
		return h.service.GeoLocation(c.Request.Context(), query.Key)
	})
}

// GetWeather handles GET /api/v1/weather?key=&city=.
//
// @Summary Get the amap weather report for a region code
// @Tags weather
// @Produce json
// @Param key query string true "amap key"
// @Param city query string true "administrative region code"
// @Success 200 {object} map[string]any
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/weather [get]
func (h *WeatherHandler) GetWeather(c *gin.Context) {
	var query dto.WeatherQuery
	if !bindQuery(c, &query) {
		return
	}

	respond(c, func() (domain.Document, error) {
		return h.service.Weather(c.Request.Context(), query.Key, query.City)
	})
}

// GetAlternateWeather handles GET /api/v1/weather/alternate.
func (h *WeatherHandler) GetAlternateWeather(c *gin.Context) {
	respond(c, func() (domain.Document, error) {
		return h.service.AlternateWeather(c.Request.Context())
	})
}

// GetUserWeather handles GET /api/v1/weather/user.
func (h *WeatherHandler) GetUserWeather(c *gin.Context) {
	respond(c, func() (domain.Document, error) {
		return h.service.UserWeather(c.Request.Context())
	})
}

// GetLocalWeather handles GET /api/v1/weather/local?key=. It resolves the
// caller's region and returns the amap weather report for it.
//
// @Summary Get the weather where the caller is
// @Tags weather
// @Produce json
// @Param key query string true "amap key"
// @Success 200 {object} map[string]any
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/weather/local [get]
func (h *WeatherHandler) GetLocalWeather(c *gin.Context) {
	var query dto.KeyQuery
	if !bindQuery(c, &query) {
		return
	}

	respond(c, func() (domain.Document, error) {
		return h.service.LocalWeather(c.Request.Context(), query.Key)
	})
}

// RegisterWeatherRoutes registers geolocation and weather routes on the given router group.
func (h *WeatherHandler) RegisterWeatherRoutes(rg *gin.RouterGroup) {
	rg.GET("/geo", h.GetGeoLocation)

	weather := rg.Group("/weather")
	weather.GET("", h.GetWeather)
	weather.GET("/alternate", h.GetAlternateWeather)
	weather.GET("/user", h.GetUserWeather)
	weather.GET("/local", h.GetLocalWeather)
}

// bindQuery binds and validates query parameters, writing a 400 on failure.
func bindQuery(c *gin.Context, v any) bool {
	err := dto.BindQueryAndValidate(c, v)
	if err != nil {
		dto.HandleBindingError(c, err)
		return false
	}

	return true
}

// respond writes the document returned by fetch, or the mapped error.
func respond(c *gin.Context, fetch func() (domain.Document, error)) {
	doc, err := fetch()
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}
