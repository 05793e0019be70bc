package middleware

import (
	"errors"
	"net/http"
	"strings"

	"cohort-tools-be/internal/apperrors"
	"cohort-tools-be/internal/jwt"

	"github.com/gin-gonic/gin"
)

// ContextClaimsKey is the gin context key holding the verified token claims.
const ContextClaimsKey = "payload"

// AuthMiddleware gates protected routes: it extracts the bearer token,
// verifies it, and attaches the claims to the request context. Any failure
// terminates the request with 401 before it reaches the handler.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := jwtService.VerifyToken(parts[1])
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				message = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": message})
			return
		}

		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the claims attached by AuthMiddleware.
func ClaimsFromContext(c *gin.Context) (*jwt.Claims, bool) {
	value, exists := c.Get(ContextClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*jwt.Claims)
	return claims, ok
}
