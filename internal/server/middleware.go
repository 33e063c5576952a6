package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Houeta/hrms-api/internal/metrics"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per handled request.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		log.InfoContext(c.Request.Context(), "request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(startTime).String(),
		)
	}
}

// RequestMetrics records duration and outcome of every request.
func RequestMetrics(mtr *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		mtr.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(startTime).Seconds())
		mtr.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// CORS allows any origin, matching the open policy of the frontend setup.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
