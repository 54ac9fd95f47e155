package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody là error shape duy nhất của API: {"error": "<message>"}
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON trả success payload as-is
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// NoContent cho successful delete
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error trả error body với message
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
