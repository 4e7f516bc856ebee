package auth

import (
	"net/http"

	"github.com/Titoluwa/kofc-5264/internal/config"

	"github.com/gin-gonic/gin"
)

const CookieName = "auth-token"

// SetAuthCookie stores the session credential on the response. HTTP-only,
// SameSite=Lax, secure in production, scoped to the whole site.
func SetAuthCookie(c *gin.Context, cfg *config.Config, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(TokenValidity.Seconds()), "/", "", cfg.IsProduction(), true)
}

// ClearAuthCookie removes the session credential (logout).
func ClearAuthCookie(c *gin.Context, cfg *config.Config) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", cfg.IsProduction(), true)
}

// CurrentUser reads the session credential from the request cookie, verifies
// it, and returns the caller's identity or nil. This is the single
// authorization primitive every mutating endpoint goes through.
func CurrentUser(c *gin.Context, secret string) *Claims {
	tokenStr, err := c.Cookie(CookieName)
	if err != nil || tokenStr == "" {
		return nil
	}
	claims, err := ParseJWT(secret, tokenStr)
	if err != nil {
		return nil
	}
	return claims
}
