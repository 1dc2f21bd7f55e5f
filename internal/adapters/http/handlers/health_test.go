package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/homepage-gateway/internal/mocks"
	"github.com/jsamuelsen/homepage-gateway/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// failingCheck fails readiness with a fixed error.
type failingCheck struct{}

func (failingCheck) Name() string { return "site-links" }

func (failingCheck) Check(_ context.Context) error {
	return errors.New("reading site links: no such file")
}

func probe(t *testing.T, handler *HealthHandler, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	engine := gin.New()
	handler.RegisterHealthRoutesOnEngine(engine)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, target, http.NoBody))

	return w
}

func TestNewBuildInfo(t *testing.T) {
	bi := NewBuildInfo("1.0.0", "abc123", "2026-01-15T10:00:00Z")

	assert.Equal(t, BuildInfo{
		Version:   "1.0.0",
		Commit:    "abc123",
		BuildTime: "2026-01-15T10:00:00Z",
		GoVersion: runtime.Version(),
	}, bi)
}

func TestHealthHandler_Liveness(t *testing.T) {
	handler := NewHealthHandler(mocks.NewMockHealthRegistry(t), BuildInfo{})

	w := probe(t, handler, http.MethodGet, "/-/live")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	var resp livenessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.GreaterOrEqual(t, resp.UptimeSeconds, 0.0)
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name     string
		result   *ports.HealthResult
		wantCode int
		wantBody string
	}{
		{
			name: "asset readable",
			result: &ports.HealthResult{
				Status: ports.HealthStatusHealthy,
				Checks: map[string]*ports.CheckResult{"site-links": {Status: ports.HealthStatusHealthy}},
			},
			wantCode: http.StatusOK,
			wantBody: `"site-links":{"status":"healthy"`,
		},
		{
			name: "asset missing",
			result: &ports.HealthResult{
				Status: ports.HealthStatusUnhealthy,
				Checks: map[string]*ports.CheckResult{
					"site-links": {Status: ports.HealthStatusUnhealthy, Message: "reading site links: no such file"},
				},
			},
			wantCode: http.StatusServiceUnavailable,
			wantBody: "reading site links: no such file",
		},
		{
			name:     "nothing registered",
			result:   &ports.HealthResult{Status: ports.HealthStatusHealthy},
			wantCode: http.StatusOK,
			wantBody: `{"status":"healthy"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.result).Once()

			w := probe(t, NewHealthHandler(registry, BuildInfo{}), http.MethodGet, "/-/ready")

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
		})
	}
}

func TestHealthHandler_ReadinessWithRegistry(t *testing.T) {
	registry := ports.NewHealthRegistry()
	require.NoError(t, registry.Register(failingCheck{}))

	w := probe(t, NewHealthHandler(registry, BuildInfo{}), http.MethodGet, "/-/ready")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"unhealthy"`)
}

func TestHealthHandler_HeadProbes(t *testing.T) {
	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(&ports.HealthResult{Status: ports.HealthStatusHealthy}).Once()

	handler := NewHealthHandler(registry, BuildInfo{})

	assert.Equal(t, http.StatusOK, probe(t, handler, http.MethodHead, "/-/live").Code)
	assert.Equal(t, http.StatusOK, probe(t, handler, http.MethodHead, "/-/ready").Code)
}

func TestHealthHandler_BuildInfo(t *testing.T) {
	build := BuildInfo{Version: "1.2.3", Commit: "def456", BuildTime: "2026-02-01T12:00:00Z", GoVersion: "go1.25.7"}

	w := probe(t, NewHealthHandler(mocks.NewMockHealthRegistry(t), build), http.MethodGet, "/-/build")

	require.Equal(t, http.StatusOK, w.Code)

	var resp BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, build, resp)
}

func TestHealthHandler_Metrics(t *testing.T) {
	w := probe(t, NewHealthHandler(mocks.NewMockHealthRegistry(t), BuildInfo{}), http.MethodGet, "/-/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestHealthHandler_RegisterHealthRoutes(t *testing.T) {
	engine := gin.New()
	NewHealthHandler(mocks.NewMockHealthRegistry(t), BuildInfo{}).RegisterHealthRoutes(engine.Group("/-"))

	registered := make(map[string]bool)
	for _, r := range engine.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /-/live", "HEAD /-/live",
		"GET /-/ready", "HEAD /-/ready",
		"GET /-/build",
		"GET /-/metrics",
	} {
		assert.True(t, registered[want], "missing route: %s", want)
	}
}
