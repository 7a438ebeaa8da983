package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookly-backend/internal/shared"
)

// ErrorBody is the body of every non-2xx response.
type ErrorBody struct {
	Error   string      `json:"error"`
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

// Success responses carry the resource itself, without an envelope.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, ErrorBody{
		Error: message,
		Code:  code,
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, ErrorBody{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", message)
}

func TooManyRequests(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", message)
}

// InternalServerError never echoes the underlying error to the client.
func InternalServerError(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ValidationFailed writes a 400 with per-field details when available.
func ValidationFailed(c *gin.Context, err *shared.ValidationError) {
	if fields := err.Fields(); fields != nil {
		ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", fields)
		return
	}
	ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
}
