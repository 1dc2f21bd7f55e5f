package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/homepage-gateway/internal/adapters/http/dto"
)

// Recovery turns a handler panic into a 500 INTERNAL_ERROR envelope and logs
// it with the stack. It must run first so that it wraps every other
// middleware. http.ErrAbortHandler is re-raised for net/http to handle.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			if err, ok := r.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(r)
			}

			ctx := c.Request.Context()
			requestLogger(ctx, logger).ErrorContext(ctx, "panic recovered",
				slog.Any("panic", r),
				slog.String("method", c.Request.Method),
				slog.String("route", c.FullPath()),
				slog.String("stack", string(debug.Stack())),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}

			resp := dto.NewErrorResponse(dto.ErrorCodeInternal, "an internal error occurred").
				WithTraceID(dto.GetTraceID(c))
			c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
		}()

		c.Next()
	}
}
