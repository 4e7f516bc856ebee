package auth

import (
	"net/http"

	"github.com/Titoluwa/kofc-5264/internal/config"

	"github.com/gin-gonic/gin"
)

// RequireAuth gates mutating endpoints: a missing or invalid session cookie
// aborts with 401 before any handler or data-layer work runs.
func RequireAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentUser(c, cfg.Server.JWTSecret)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("userId", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
