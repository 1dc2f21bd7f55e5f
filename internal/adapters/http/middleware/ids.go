// Package middleware holds the gin middleware every gateway request passes
// through before reaching a handler.
package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/homepage-gateway/internal/platform/logging"
)

const (
	// HeaderRequestID identifies a single request to the gateway.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID identifies the caller's transaction and is forwarded
	// to every upstream the request reaches.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the gin context key of the request id.
	ContextKeyRequestID = "request_id"

	// ContextKeyCorrelationID is the gin context key of the correlation id.
	ContextKeyCorrelationID = "correlation_id"

	// maxInboundIDLength bounds ids accepted from callers.
	maxInboundIDLength = 128
)

type idKey int

const (
	requestIDKey idKey = iota
	correlationIDKey
)

// trackedID describes one id carried through a request: the header it is
// read from and echoed on, and where handlers and clients find it.
type trackedID struct {
	header string
	name   string
	key    idKey
}

var (
	requestID     = trackedID{header: HeaderRequestID, name: ContextKeyRequestID, key: requestIDKey}
	correlationID = trackedID{header: HeaderCorrelationID, name: ContextKeyCorrelationID, key: correlationIDKey}
)

// RequestID adopts the caller's X-Request-ID or generates one, echoes it on
// the response and adds it to the request logger.
func RequestID() gin.HandlerFunc {
	return requestID.middleware()
}

// CorrelationID does for X-Correlation-ID what RequestID does for
// X-Request-ID. The upstream clients forward it.
func CorrelationID() gin.HandlerFunc {
	return correlationID.middleware()
}

func (t trackedID) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(t.header)
		if !usableID(id) {
			id = uuid.NewString()
		}

		c.Set(t.name, id)
		c.Header(t.header, id)

		ctx := context.WithValue(c.Request.Context(), t.key, id)
		ctx = logging.With(ctx, slog.String(t.name, id))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// usableID reports whether an inbound id is short printable ASCII and can be
// echoed and logged verbatim.
func usableID(id string) bool {
	if id == "" || len(id) > maxInboundIDLength {
		return false
	}

	for i := range len(id) {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}

	return true
}

// GetRequestID returns the request id set by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// GetCorrelationID returns the correlation id set by CorrelationID, or "".
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(ContextKeyCorrelationID)
}

// RequestIDFromContext returns the request id carried by ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	return requestID.from(ctx)
}

// CorrelationIDFromContext returns the correlation id carried by ctx, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	return correlationID.from(ctx)
}

// ContextWithRequestID returns ctx carrying a request id.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// ContextWithCorrelationID returns ctx carrying a correlation id.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

func (t trackedID) from(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(t.key).(string)

	return id
}
