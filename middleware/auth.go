package middleware

import (
	"net/http"
	"strings"

	"techstock-backend/config"
	"techstock-backend/utilities"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the JWT token and resolves the caller principal once.
// Handlers read the identity from the context; nothing downstream re-parses tokens.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utilities.ErrorResponse(c, http.StatusUnauthorized, "Authorization header is required", "missing authorization header")
			c.Abort()
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
			utilities.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization header format", "invalid bearer token format")
			c.Abort()
			return
		}

		claims, err := utilities.ValidateToken(bearerToken[1], cfg.JWTSecret)
		if err != nil {
			utilities.ErrorResponse(c, http.StatusUnauthorized, "Invalid token", err.Error())
			c.Abort()
			return
		}

		// Set user claims in context
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.UserName)
		c.Set("email", claims.Email)
		c.Set("roles", claims.Roles)
		c.Next()
	}
}
