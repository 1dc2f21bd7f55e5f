// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/homepage-gateway/internal/domain"
	"github.com/jsamuelsen/homepage-gateway/internal/platform/logging"
)

// ErrorResponse is the standard error envelope for all error responses.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR").
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details provides additional context about the error.
	// For validation errors, this contains field-level error messages.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes for machine-readable error identification.
const (
	// ErrorCodeNotFound indicates the requested resource was not found.
	ErrorCodeNotFound = "NOT_FOUND"

	// ErrorCodeValidation indicates request validation failed.
	ErrorCodeValidation = "VALIDATION_ERROR"

	// ErrorCodeBadRequest indicates the request was malformed.
	ErrorCodeBadRequest = "BAD_REQUEST"

	// ErrorCodeMethodNotAllowed indicates the route exists for another method.
	ErrorCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"

	// ErrorCodePayloadTooLarge indicates a declared body over the server limit.
	ErrorCodePayloadTooLarge = "PAYLOAD_TOO_LARGE"

	// ErrorCodeUpstreamUnavailable indicates a third-party service failed or
	// returned something unusable.
	ErrorCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"

	// ErrorCodeUnavailable indicates this service is not ready.
	ErrorCodeUnavailable = "SERVICE_UNAVAILABLE"

	// ErrorCodeInternal indicates an internal server error.
	ErrorCodeInternal = "INTERNAL_ERROR"
)

// contextKeyTraceID is the gin context key an explicit trace id is stored under.
const contextKeyTraceID = "trace_id"

// The request id, from the gin context or the inbound header, stands in when
// no trace id is available.
const (
	contextKeyRequestID = "request_id"
	headerRequestID     = "X-Request-ID"
)

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithDetails creates an error response with additional details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case ErrorCodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case ErrorCodeUpstreamUnavailable:
		return http.StatusBadGateway
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// MapError maps a domain error to an error response.
// Unknown errors get a generic message so internals never leak.
func MapError(err error) *ErrorResponse {
	switch {
	case domain.IsNotFound(err):
		return NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

		return resp

	case domain.IsUnavailable(err):
		// The cause may carry upstream URLs and bodies; only the service is exposed.
		message := "upstream service is unavailable"

		var unavailableErr *domain.UnavailableError
		if errors.As(err, &unavailableErr) && unavailableErr.Service != "" {
			message = fmt.Sprintf("upstream service %q is unavailable", unavailableErr.Service)
		}

		return NewErrorResponse(ErrorCodeUpstreamUnavailable, message)

	default:
		return NewErrorResponse(ErrorCodeInternal, "an internal error occurred")
	}
}

// HandleError writes the error envelope for err with the matching status.
// Internal and upstream errors are logged with the request logger.
func HandleError(c *gin.Context, err error) {
	resp := MapError(err).WithTraceID(GetTraceID(c))
	status := HTTPStatusFromCode(resp.Error.Code)

	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "request failed",
			slog.Int("status", status),
			slog.String("code", resp.Error.Code),
			slog.Any("error", err),
		)
	}

	c.JSON(status, resp)
}

// GetTraceID returns the id a caller can quote when reporting an error: an
// explicit trace id set on the gin context, the OpenTelemetry trace id, or the
// request id, in that order. Returns "" when none is available.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get(contextKeyTraceID); ok {
		s, _ := v.(string)
		return s
	}

	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	if id := c.GetString(contextKeyRequestID); id != "" {
		return id
	}

	return c.GetHeader(headerRequestID)
}
