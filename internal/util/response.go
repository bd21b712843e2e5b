package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The API keeps the original flat wire shapes: errors are {"error": msg},
// entities are returned as-is, and only login has its own envelope.

// Error writes {"error": msg} with the given HTTP status.
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{"error": msg})
}

// NotFound writes a 404 {"error": msg}.
func NotFound(c *gin.Context, msg string) {
	Error(c, http.StatusNotFound, msg)
}

// ServerError writes a 500 {"error": msg}. Per-handler catch blocks surface
// the raw error text, as the original did.
func ServerError(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, err.Error())
}
