package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/maison-lumiere/atelier/internal/pkg/jwt"
	"github.com/maison-lumiere/atelier/internal/pkg/response"
)

const ContextKeyUserID = "user_id"

// Auth returns a middleware that enforces JWT authentication.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := validateToken(extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// OptionalAuth sets the user ID if a valid token is present, but never blocks.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := validateToken(extractToken(c)); err == nil && claims.UserID != "" {
			c.Set(ContextKeyUserID, claims.UserID)
		}
		c.Next()
	}
}

// IsAuthenticated reports whether the current request carries a valid token.
func IsAuthenticated(c *gin.Context) bool {
	_, ok := c.Get(ContextKeyUserID)
	return ok
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *gin.Context) string {
	if v, ok := c.Get(ContextKeyUserID); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func validateToken(raw string) (*jwt.Claims, error) {
	if raw == "" {
		return nil, errors.New("token is required")
	}
	return jwt.Parse(raw)
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return strings.TrimSpace(c.Query("token"))
}
