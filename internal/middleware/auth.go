package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
)

// Context keys populated by the authentication middleware.
const (
	ContextKeyClientName = "client_name"
	ContextKeyUserID     = "user_id"
	ContextKeyUserRoles  = "user_roles"
)

// apiKeyHeader carries the client application's API key on every request.
const apiKeyHeader = "x-api-key"

// AuthenticateClient verifies the x-api-key header against the configured
// client applications. Key comparison is constant-time. The matched client's
// name is stored in the context for downstream handlers.
func AuthenticateClient(clients map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := strings.TrimSpace(c.GetHeader(apiKeyHeader))
		if apiKey == "" {
			abortUnauthorized(c, "missing api key")
			return
		}

		for name, key := range clients {
			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) == 1 {
				c.Set(ContextKeyClientName, name)
				c.Next()
				return
			}
		}

		slog.WarnContext(c.Request.Context(), "rejected request with invalid api key",
			slog.String("path", c.Request.URL.Path),
		)
		abortUnauthorized(c, "invalid api key")
	}
}

// AuthenticateUser validates the Bearer token on protected routes and stores
// the authenticated user's id and roles in the context. Paths listed in
// publicPaths skip token validation.
func AuthenticateUser(jwtSvc jwt.Service, publicPaths []string) gin.HandlerFunc {
	public := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := public[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
			abortUnauthorized(c, "invalid authorization header")
			return
		}

		token, err := jwtSvc.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ContextKeyUserID, token.UserID)
		c.Set(ContextKeyUserRoles, token.Roles)
		c.Next()
	}
}

// UserID returns the authenticated user's id from the context, if present.
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextKeyUserID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"Message":  message,
		"HttpCode": http.StatusUnauthorized,
		"Data":     gin.H{},
	})
}
