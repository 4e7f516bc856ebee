package api

import (
	"net/http"

	"github.com/Titoluwa/kofc-5264/internal/auth"
	"github.com/Titoluwa/kofc-5264/internal/config"
	"github.com/Titoluwa/kofc-5264/internal/db"
	"github.com/Titoluwa/kofc-5264/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /auth/login
func LoginHandler(cfg *config.Config, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}
		var u user.User
		if err := db.DB.Where("email = ?", req.Email).First(&u).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		if err := user.CheckPassword(u.PasswordHash, req.Password); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		token, err := auth.GenerateJWT(cfg.Server.JWTSecret, u.ID, u.Email, auth.TokenValidity)
		if err != nil {
			log.Error().Err(err).Msg("failed to generate token")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		auth.SetAuthCookie(c, cfg, token)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"user": gin.H{
				"id":    u.ID,
				"email": u.Email,
				"name":  u.Name,
				"role":  u.Role,
			},
		})
	}
}

// POST /auth/logout
//
// Logout is cookie deletion; the token itself stays valid until expiry since
// there is no revocation list.
func LogoutHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.ClearAuthCookie(c, cfg)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// GET /auth/me
func MeHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := auth.CurrentUser(c, cfg.Server.JWTSecret)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var u user.User
		if err := db.DB.First(&u, claims.UserID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":    u.ID,
			"email": u.Email,
			"name":  u.Name,
			"role":  u.Role,
		})
	}
}
