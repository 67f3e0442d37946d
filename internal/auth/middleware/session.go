package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bokyaa/portfolio-backend/internal/auth"
	"github.com/bokyaa/portfolio-backend/internal/projects/domain"
)

// SessionRequired rejects requests that do not carry a valid admin session
// token. The token travels as a bearer token in the Authorization header.
func SessionRequired(sessions *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if !sessions.Valid(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"ok":    false,
				"error": domain.ErrNotAuthenticated.Error(),
			})
			return
		}
		c.Set("session_token", token)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
