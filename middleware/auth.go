package middleware

import (
	"strings"

	"carediary/services"
	"carediary/utils"

	"github.com/gin-gonic/gin"
)

// AccessTokenValidator is satisfied by services.TokenService
type AccessTokenValidator interface {
	ValidateAccessToken(token string) error
}

// AuthMiddleware requires a Bearer access token. With enabled false (no
// access PIN configured) every request passes.
func AuthMiddleware(tokens AccessTokenValidator, enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}

		// Get the token from the header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			TrackAuthAttempt("failure", "token")
			utils.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if err := tokens.ValidateAccessToken(tokenString); err != nil {
			TrackAuthAttempt("failure", "token")
			utils.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set("authenticated", true)
		c.Next()
	}
}

var _ AccessTokenValidator = (*services.TokenService)(nil)
