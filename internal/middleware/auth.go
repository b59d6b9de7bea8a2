package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/pkg/jwt"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
)

// MetricsTokenHeader carries the token guarding /api/metrics
const MetricsTokenHeader = "x-metrics-auth-token"

// TokenAuthMiddleware accepts a request when header, or a bearer Authorization
// header, matches one of validTokens. Empty configured tokens never match.
func TokenAuthMiddleware(header string, validTokens ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(header)
		if token == "" {
			token = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		}

		if token == "" {
			logger.Warn("Missing authentication token",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing authentication token"})
			return
		}

		valid := false
		for _, validToken := range validTokens {
			if validToken != "" && jwt.TimingSafeCompare(token, validToken) {
				valid = true
				break
			}
		}

		if !valid {
			logger.Warn("Invalid authentication token",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication token"})
			return
		}

		c.Next()
	}
}
