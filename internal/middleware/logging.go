package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// LoggingMiddleware provides request logging
type LoggingMiddleware struct {
	logger *slog.Logger
}

// NewLoggingMiddleware creates a new logging middleware
func NewLoggingMiddleware(logger *slog.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logger: logger,
	}
}

// LogRequests logs all HTTP requests
func (m *LoggingMiddleware) LogRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		if raw != "" {
			path = path + "?" + raw
		}

		m.logger.Info("HTTP request processed",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", latency,
			"ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
			"request_size", c.Request.ContentLength,
			"response_size", c.Writer.Size(),
		)

		// Log errors separately for better visibility
		if c.Writer.Status() >= 400 {
			m.logger.Error("HTTP request error",
				"method", c.Request.Method,
				"path", path,
				"status", c.Writer.Status(),
				"latency", latency,
				"error_details", c.Errors.String(),
			)
		}
	}
}
