// Package api holds the gin helpers shared by HTTP handlers.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success sends a JSON success response
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends a JSON error response and aborts the handler chain.
func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// NotFound reports a missing named resource.
func NotFound(c *gin.Context, what, name string) {
	Error(c, http.StatusNotFound, what+" not found: "+name)
}
