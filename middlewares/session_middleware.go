// middlewares/session_middleware.go
package middlewares

import (
	"errors"
	"net/http"

	"github.com/diogofgomespinheiro/daily-diet-api/services"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "sessionId"

// SessionMiddleware resolves the session cookie to a user before any meal
// handler runs. Requests without a resolvable session are rejected with 401
// regardless of their body.
func SessionMiddleware(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		user, err := users.FindBySessionToken(c.Request.Context(), token)
		if errors.Is(err, services.ErrUserNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if err != nil {
			// Store failure, not a credential problem.
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		// Both set for convenience
		c.Set("user", user)
		c.Set("userID", user.ID)

		c.Next()
	}
}
