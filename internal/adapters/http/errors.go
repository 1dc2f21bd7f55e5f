package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/homepage-gateway/internal/adapters/http/dto"
)

// RespondWithErrorCode writes an error response with a specific error code.
// Use this for adapter-level errors that don't originate from domain errors.
func RespondWithErrorCode(c *gin.Context, code, message string) {
	errResp := dto.NewErrorResponse(code, message).WithTraceID(dto.GetTraceID(c))
	c.JSON(dto.HTTPStatusFromCode(code), errResp)
}

// noRoute answers requests that match no registered route.
func noRoute(c *gin.Context) {
	RespondWithErrorCode(c, dto.ErrorCodeNotFound, "route not found")
}

// noMethod answers requests whose path exists for another method.
func noMethod(c *gin.Context) {
	RespondWithErrorCode(c, dto.ErrorCodeMethodNotAllowed, "method not allowed")
}
