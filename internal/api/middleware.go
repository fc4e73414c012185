package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AgentShepherd/codeintel/internal/logger"
)

var log = logger.New("api")

// SecurityHeadersMiddleware adds headers that apply to every response.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Next()
	}
}

// DefaultCacheMaxAge is how long clients may cache catalog responses.
const DefaultCacheMaxAge = 5 * time.Minute

// CacheControlMiddleware marks responses as publicly cacheable for maxAge.
// The catalog only changes on config reload, so a short max-age is enough.
func CacheControlMiddleware(maxAge time.Duration) gin.HandlerFunc {
	value := "public, max-age=" + strconv.Itoa(int(maxAge.Seconds()))
	return func(c *gin.Context) {
		c.Header("Cache-Control", value)
		c.Next()
	}
}

// MaxBodySize is the default maximum request body size (1MB)
const MaxBodySize = 1 << 20 // 1MB

// BodySizeLimitMiddleware limits the request body size
func BodySizeLimitMiddleware(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			Error(c, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Request body too large. Maximum size is %d bytes.", maxSize))
			return
		}

		// Also limit the reader to prevent clients from lying about Content-Length
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

// RequestLogMiddleware logs each request at debug level once it completes.
func RequestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start).Round(time.Microsecond))
	}
}
