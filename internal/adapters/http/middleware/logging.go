package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/homepage-gateway/internal/platform/logging"
)

// ProbePrefix is the route prefix of health, info and metrics endpoints.
const ProbePrefix = "/-/"

// maskedQueryValue replaces credentials in logged query strings.
const maskedQueryValue = "REDACTED"

// credentialParams are query parameters that carry upstream API keys.
var credentialParams = []string{"key", "apiKey"}

// LoggingOptions tunes request logging.
type LoggingOptions struct {
	// SkipPrefixes lists path prefixes whose requests are not logged.
	SkipPrefixes []string
}

// Logging logs the completion of every request outside the probe routes.
// logger is used when the request context carries no logger of its own.
func Logging(logger *slog.Logger) gin.HandlerFunc {
	return LoggingWithOptions(logger, LoggingOptions{SkipPrefixes: []string{ProbePrefix}})
}

// LoggingWithOptions is Logging with explicit options. The completion record
// is logged at warn for 4xx and error for 5xx responses.
func LoggingWithOptions(logger *slog.Logger, opts LoggingOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipped(c.Request.URL.Path, opts.SkipPrefixes) {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		reqLogger := requestLogger(ctx, logger)
		start := time.Now()
		query := maskCredentials(c.Request.URL)

		reqLogger.DebugContext(ctx, "request started",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("query", query),
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
		)

		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("route", c.FullPath()),
			slog.String("query", query),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int64("latency_ms", latency.Milliseconds()),
			slog.Int("bytes", c.Writer.Size()),
		}

		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		reqLogger.LogAttrs(ctx, levelForStatus(status), "request completed", attrs...)
	}
}

// requestLogger prefers the logger carried by ctx, then fallback, then the
// process default.
func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := logging.Lookup(ctx); ok {
		return logger
	}

	if fallback != nil {
		return fallback
	}

	return logging.FromContext(ctx)
}

func skipped(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// maskCredentials returns the encoded query of u with API keys replaced.
func maskCredentials(u *url.URL) string {
	if u.RawQuery == "" {
		return ""
	}

	q := u.Query()
	for _, name := range credentialParams {
		if q.Has(name) {
			q.Set(name, maskedQueryValue)
		}
	}

	return q.Encode()
}
