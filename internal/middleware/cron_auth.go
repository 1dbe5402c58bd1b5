package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CronAuthMiddleware guards internal trigger endpoints with a shared
// bearer secret.
type CronAuthMiddleware struct {
	secret string
	logger *slog.Logger
}

// NewCronAuthMiddleware creates a new cron authentication middleware
func NewCronAuthMiddleware(secret string, logger *slog.Logger) *CronAuthMiddleware {
	return &CronAuthMiddleware{
		secret: secret,
		logger: logger,
	}
}

// Authenticate validates the Authorization header against the shared
// secret. When no secret is configured the endpoint is disabled.
func (m *CronAuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.secret == "" {
			m.logger.Warn("cron endpoint called but no secret is configured")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "cron_disabled",
				"message": "Cron endpoint is not configured",
			})
			c.Abort()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			m.logger.Error("Missing or malformed Authorization header for cron endpoint")
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "missing_cron_token",
				"message": "Missing Bearer token for cron endpoint",
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(m.secret)) != 1 {
			m.logger.Error("Invalid cron token", "ip", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "invalid_cron_token",
				"message": "Invalid cron token",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
