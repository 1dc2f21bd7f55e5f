package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/homepage-gateway/internal/adapters/http/handlers"
	"github.com/jsamuelsen/homepage-gateway/internal/adapters/http/middleware"
	"github.com/jsamuelsen/homepage-gateway/internal/platform/config"
	"github.com/jsamuelsen/homepage-gateway/internal/platform/telemetry"
)

// RouterConfig contains configuration for setting up the router.
// A nil handler leaves its routes unregistered.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	PlaylistHandler  *handlers.PlaylistHandler
	QuoteHandler     *handlers.QuoteHandler
	WeatherHandler   *handlers.WeatherHandler
	HomeHandler      *handlers.HomeHandler
	SiteLinksHandler *handlers.SiteLinksHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//
// Route groups:
//   - /-/ (internal): health, build info and metrics
//   - /api/v1/ (public API): homepage data
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	serviceName := "homepage-gateway"
	if cfg.AppConfig != nil && cfg.AppConfig.Name != "" {
		serviceName = cfg.AppConfig.Name
	}

	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(serviceName)...)
	engine.Use(middleware.Logging(cfg.Logger))

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(noRoute)
	engine.NoMethod(noMethod)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	setupAPIRoutes(engine.Group("/api/v1"), cfg)
}

// setupAPIRoutes registers business API routes.
func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.PlaylistHandler != nil {
		cfg.PlaylistHandler.RegisterPlaylistRoutes(rg)
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(rg)
	}

	if cfg.WeatherHandler != nil {
		cfg.WeatherHandler.RegisterWeatherRoutes(rg)
	}

	if cfg.HomeHandler != nil {
		cfg.HomeHandler.RegisterHomeRoutes(rg)
	}

	if cfg.SiteLinksHandler != nil {
		cfg.SiteLinksHandler.RegisterSiteLinksRoutes(rg)
	}
}

// SetupMinimalRouter sets up a minimal router with just health endpoints.
// Useful for testing or lightweight deployments.
func SetupMinimalRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *handlers.HealthHandler) {
	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
	)

	if healthHandler != nil {
		healthHandler.RegisterHealthRoutesOnEngine(engine)
	}
}
