package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"smartbox-gateway/internal/domain/principal"
	"smartbox-gateway/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	ctxPrincipalIDKey   = "principal_id"
	ctxPrincipalRoleKey = "principal_role"
)

type AuthMiddleware struct {
	tokens *jwt.Service
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		role, err := principal.NewRole(claims.Role)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxPrincipalIDKey, claims.PrincipalID)
		c.Set(ctxPrincipalRoleKey, role)
		c.Next()
	}
}

// GetPrincipal extracts the authenticated principal set by RequireAuth.
func GetPrincipal(c *gin.Context) (principal.Principal, bool) {
	idVal, ok := c.Get(ctxPrincipalIDKey)
	if !ok {
		return principal.Principal{}, false
	}
	id, ok := idVal.(int64)
	if !ok {
		return principal.Principal{}, false
	}

	roleVal, ok := c.Get(ctxPrincipalRoleKey)
	if !ok {
		return principal.Principal{}, false
	}
	role, ok := roleVal.(principal.Role)
	if !ok {
		return principal.Principal{}, false
	}

	return principal.Principal{ID: id, Role: role}, true
}
