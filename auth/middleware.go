package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"securecam-backend/config"
)

// ContextUsername is the gin context key holding the verified admin username.
const ContextUsername = "admin_username"

// RequireAdmin gates mutating endpoints. The token is read from the
// admin_token cookie, with an Authorization bearer header as fallback. Every
// failure mode answers with the same 401 body so callers cannot probe which
// check rejected them.
func RequireAdmin(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(CookieName)
		if token == "" {
			header := c.GetHeader("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				token = strings.TrimPrefix(header, "Bearer ")
			}
		}
		if token == "" {
			abortUnauthorized(c)
			return
		}

		username, err := VerifyToken(cfg.PasetoSecretKey, token)
		if err != nil || !cfg.IsAdminPrincipal(username) {
			abortUnauthorized(c)
			return
		}

		c.Set(ContextUsername, username)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
}
