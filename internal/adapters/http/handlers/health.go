// Package handlers binds gateway routes to the application services.
package handlers

import (
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/homepage-gateway/internal/platform/logging"
	"github.com/jsamuelsen/homepage-gateway/internal/ports"
)

// BuildInfo describes the running binary. Version, Commit and BuildTime are
// set through ldflags.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// NewBuildInfo fills GoVersion from the runtime.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	return BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// HealthHandler serves the probe and introspection routes under /-/.
type HealthHandler struct {
	registry  ports.HealthRegistry
	buildInfo BuildInfo
	started   time.Time
}

// NewHealthHandler creates a health handler. Uptime is measured from here.
func NewHealthHandler(registry ports.HealthRegistry, buildInfo BuildInfo) *HealthHandler {
	return &HealthHandler{
		registry:  registry,
		buildInfo: buildInfo,
		started:   time.Now(),
	}
}

type livenessResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptimeSeconds"`
}

type readinessResponse struct {
	Status ports.HealthStatus            `json:"status"`
	Checks map[string]*ports.CheckResult `json:"checks,omitempty"`
}

// Liveness answers 200 while the process runs. It checks nothing.
func (h *HealthHandler) Liveness(c *gin.Context) {
	noStore(c)
	c.JSON(http.StatusOK, livenessResponse{
		Status:        "ok",
		UptimeSeconds: time.Since(h.started).Seconds(),
	})
}

// Readiness answers 200 when every registered check passes and 503 otherwise.
// Failed checks are logged at warn.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx := c.Request.Context()
	result := h.registry.CheckAll(ctx)

	status := http.StatusOK
	if result.Status != ports.HealthStatusHealthy {
		status = http.StatusServiceUnavailable

		for name, check := range result.Checks {
			if check.Status != ports.HealthStatusHealthy {
				logging.FromContext(ctx).WarnContext(ctx, "readiness check failed",
					slog.String("check", name),
					slog.String("message", check.Message))
			}
		}
	}

	noStore(c)
	c.JSON(status, readinessResponse{Status: result.Status, Checks: result.Checks})
}

// BuildInfoHandler serves the build description.
func (h *HealthHandler) BuildInfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.buildInfo)
}

// MetricsHandler exposes the Prometheus default registry, which holds the
// upstream call and playlist degradation counters.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// RegisterHealthRoutes registers live, ready, build and metrics on rg. The
// probes also answer HEAD.
func (h *HealthHandler) RegisterHealthRoutes(rg *gin.RouterGroup) {
	for _, probe := range []struct {
		path    string
		handler gin.HandlerFunc
	}{
		{"/live", h.Liveness},
		{"/ready", h.Readiness},
	} {
		rg.GET(probe.path, probe.handler)
		rg.HEAD(probe.path, probe.handler)
	}

	rg.GET("/build", h.BuildInfoHandler)
	rg.GET("/metrics", gin.WrapH(MetricsHandler()))
}

// RegisterHealthRoutesOnEngine registers the health routes under /-.
func (h *HealthHandler) RegisterHealthRoutesOnEngine(engine *gin.Engine) {
	h.RegisterHealthRoutes(engine.Group("/-"))
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
}
