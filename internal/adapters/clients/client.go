package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/homepage-gateway/internal/adapters/http/middleware"
	"github.com/jsamuelsen/homepage-gateway/internal/platform/config"
	"github.com/jsamuelsen/homepage-gateway/internal/platform/logging"
)

const (
	// instrumentationName is used for OpenTelemetry tracer and meter.
	instrumentationName = "github.com/jsamuelsen/homepage-gateway/internal/adapters/clients"

	// httpStatusCategoryDivisor divides status code to get category (2xx, 4xx, 5xx).
	httpStatusCategoryDivisor = 100
)

// Config configures an HTTP client instance.
type Config struct {
	// BaseURL is prefixed to relative request paths. Absolute paths bypass it.
	BaseURL string

	// ServiceName identifies the upstream service for logging and tracing.
	ServiceName string

	// Timeout bounds a single request. Zero leaves the caller's context as the only bound.
	Timeout time.Duration

	// Transport configures the connection pool. Zero values use net/http defaults.
	Transport config.TransportConfig

	// Logger is an optional logger. If nil, a default logger is used.
	Logger *slog.Logger
}

// Response is a fully read upstream reply.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess reports whether the upstream answered with a 2xx status.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Client is an instrumented HTTP client for a single upstream service.
// Every call is one attempt: there is no retry and no circuit breaking.
type Client struct {
	rest        *resty.Client
	serviceName string
	logger      *slog.Logger

	tracer trace.Tracer

	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
}

// New creates a new instrumented HTTP client.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if cfg.ServiceName == "" {
		return nil, errors.New("service name is required")
	}

	if cfg.Timeout < 0 {
		return nil, errors.New("timeout must not be negative")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(
		slog.String("component", "clients.Client"),
		slog.String("downstream", cfg.ServiceName),
	)

	meter := otel.Meter(instrumentationName)

	requestDuration, err := meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Duration of HTTP client requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration metric: %w", err)
	}

	requestTotal, err := meter.Int64Counter(
		"http.client.request.total",
		metric.WithDescription("Total number of HTTP client requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request counter: %w", err)
	}

	rest := resty.New().
		SetTransport(newTransport(cfg.Transport)).
		SetLogger(&restyLogger{logger: logger}).
		SetRetryCount(0)

	if cfg.BaseURL != "" {
		rest.SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/"))
	}

	if cfg.Timeout > 0 {
		rest.SetTimeout(cfg.Timeout)
	}

	return &Client{
		rest:            rest,
		serviceName:     cfg.ServiceName,
		logger:          logger,
		tracer:          otel.Tracer(instrumentationName),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
	}, nil
}

// ServiceName returns the upstream service this client talks to.
func (c *Client) ServiceName() string {
	return c.serviceName
}

// Get performs a single HTTP GET and reads the whole body.
// A reply with any status is returned as a Response; err is only set when no
// reply was received (connection failure, cancellation, timeout).
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	startTime := time.Now()
	logger := logging.FromContext(ctx).With(
		slog.String("downstream", c.serviceName),
		slog.String("method", http.MethodGet),
		slog.String("path", redactedPath(path)),
	)

	ctx, span := c.tracer.Start(ctx, "HTTP GET "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", http.MethodGet),
			attribute.String("peer.service", c.serviceName),
		),
	)
	defer span.End()

	req := c.rest.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	injectHeaders(ctx, req.Header)

	// Propagate trace context
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := req.Get(path)
	duration := time.Since(startTime)

	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = redactedPath(urlErr.URL)
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.recordMetrics(ctx, 0, duration, "error")
		logger.Error("request failed",
			slog.Duration("duration", duration),
			slog.Any("error", err),
		)

		return nil, fmt.Errorf("GET %s: %w", c.serviceName, err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))
	if resp.StatusCode() >= http.StatusBadRequest {
		span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", resp.StatusCode()))
	}

	statusCategory := fmt.Sprintf("%dxx", resp.StatusCode()/httpStatusCategoryDivisor)
	c.recordMetrics(ctx, resp.StatusCode(), duration, statusCategory)

	logger.Debug("request completed",
		slog.Int("status", resp.StatusCode()),
		slog.Duration("duration", duration),
		slog.Int("bytes", len(resp.Body())),
	)
	logger.Log(ctx, logging.LevelTrace, "response body", slog.String("body", string(resp.Body())))

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

// injectHeaders adds request ID and correlation ID to the outgoing headers.
func injectHeaders(ctx context.Context, header http.Header) {
	if requestID := middleware.RequestIDFromContext(ctx); requestID != "" {
		header.Set(middleware.HeaderRequestID, requestID)
	}

	if correlationID := middleware.CorrelationIDFromContext(ctx); correlationID != "" {
		header.Set(middleware.HeaderCorrelationID, correlationID)
	}
}

// newTransport builds the pooled transport shared by all requests of a client.
func newTransport(cfg config.TransportConfig) *http.Transport {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.MaxIdleConns > 0 {
		transport.MaxIdleConns = cfg.MaxIdleConns
	}

	if cfg.MaxIdleConnsPerHost > 0 {
		transport.MaxIdleConnsPerHost = cfg.MaxIdleConnsPerHost
	}

	if cfg.IdleConnTimeout > 0 {
		transport.IdleConnTimeout = cfg.IdleConnTimeout
	}

	return transport
}

// redactedPath strips the query string, which may carry access keys.
func redactedPath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}

	return path
}

// recordMetrics records request metrics.
func (c *Client) recordMetrics(ctx context.Context, statusCode int, duration time.Duration, result string) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", http.MethodGet),
		attribute.String("peer.service", c.serviceName),
		attribute.String("result", result),
	}

	if statusCode > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", statusCode))
	}

	c.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
	c.requestTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// restyLogger routes resty's internal messages into slog.
type restyLogger struct {
	logger *slog.Logger
}

func (l *restyLogger) Errorf(format string, v ...any) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
