package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ArowuTest/raffle-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"
)

// Context keys set for authenticated requests
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

// TokenParser verifies operator tokens
type TokenParser interface {
	Parse(token string) (*jwt.Claims, error)
}

// JWTAuthMiddleware creates a gin middleware for JWT authentication. With
// allowQueryToken the token may also come from the access_token query
// parameter, for clients such as EventSource that cannot set headers.
func JWTAuthMiddleware(tokens TokenParser, allowQueryToken bool) gin.HandlerFunc {
	const bearerSchema = "Bearer "

	return func(c *gin.Context) {
		var tokenString string
		authHeader := c.GetHeader("Authorization")
		switch {
		case authHeader != "":
			if !strings.HasPrefix(authHeader, bearerSchema) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with Bearer "})
				return
			}
			tokenString = strings.TrimSpace(authHeader[len(bearerSchema):])
		case allowQueryToken && c.Query("access_token") != "":
			tokenString = c.Query("access_token")
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			slog.Warn("token rejected", "path", c.FullPath(), "error", err)
			if errors.Is(err, jwt.ErrExpiredToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}
