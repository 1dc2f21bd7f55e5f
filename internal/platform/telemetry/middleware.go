package telemetry

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/jsamuelsen/homepage-gateway/telemetry"

	// HeaderTraceID carries the trace id back to the caller.
	HeaderTraceID = "X-Trace-ID"

	// internalPathPrefix marks probe and metrics routes, which are not traced.
	internalPathPrefix = "/-/"

	// unmatchedRoute is the route label of requests no route matched.
	unmatchedRoute = "unmatched"
)

// serverMetrics are the gateway's HTTP server instruments.
type serverMetrics struct {
	duration metric.Float64Histogram
	requests metric.Int64Counter
	inFlight metric.Int64UpDownCounter
}

func newServerMetrics(meter metric.Meter) (*serverMetrics, error) {
	var (
		m    serverMetrics
		errs = make([]error, 3)
	)

	m.duration, errs[0] = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of gateway requests."),
		metric.WithUnit("s"))
	m.requests, errs[1] = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Gateway requests served."))
	m.inFlight, errs[2] = meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("Gateway requests in flight."))

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &m, nil
}

// Middleware returns, in order, the otelgin server span handler, a handler
// echoing the trace id in X-Trace-ID, and the request metrics handler.
// Internal /-/ routes are not traced. Metrics are skipped if the instruments
// cannot be created.
func Middleware(serviceName string) []gin.HandlerFunc {
	handlers := []gin.HandlerFunc{
		otelgin.Middleware(serviceName, otelgin.WithGinFilter(traced)),
		echoTraceID,
	}

	m, err := newServerMetrics(otel.Meter(instrumentationName))
	if err != nil {
		otel.Handle(err)
		return handlers
	}

	return append(handlers, m.record)
}

func traced(c *gin.Context) bool {
	return !strings.HasPrefix(c.Request.URL.Path, internalPathPrefix)
}

func echoTraceID(c *gin.Context) {
	if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
		c.Header(HeaderTraceID, sc.TraceID().String())
	}

	c.Next()
}

func (m *serverMetrics) record(c *gin.Context) {
	ctx := c.Request.Context()
	route := c.FullPath()

	if route == "" {
		route = unmatchedRoute
	}

	method := attribute.String("http.request.method", c.Request.Method)
	routeAttr := attribute.String("http.route", route)
	start := time.Now()

	m.inFlight.Add(ctx, 1, metric.WithAttributes(method, routeAttr))
	defer m.inFlight.Add(ctx, -1, metric.WithAttributes(method, routeAttr))

	c.Next()

	done := metric.WithAttributes(method, routeAttr, attribute.Int("http.response.status_code", c.Writer.Status()))
	m.duration.Record(ctx, time.Since(start).Seconds(), done)
	m.requests.Add(ctx, 1, done)
}
