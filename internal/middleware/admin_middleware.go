package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jmlee/storefront-backend/internal/errors"
	"github.com/jmlee/storefront-backend/pkg/util"
)

type AdminMiddleware struct {
	jwtSecret string
}

func NewAdminMiddleware(jwtSecret string) *AdminMiddleware {
	return &AdminMiddleware{
		jwtSecret: jwtSecret,
	}
}

// RequireAdmin validates the admin session token issued by the login
// endpoint. Every /admin route sits behind this.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Warn("Missing authorization header", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.Unauthorized(c, "Admin login required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Warn("Invalid authorization header format", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "Invalid authorization format")
			c.Abort()
			return
		}

		claims, err := util.ValidateAdminToken(parts[1], m.jwtSecret)
		if err != nil {
			log.Warn("Admin token validation failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})

			if err == util.ErrExpiredToken {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenExpired, "Session expired, please log in again")
			} else {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "Invalid session token")
			}
			c.Abort()
			return
		}

		c.Set("admin", true)

		log.Debug("Admin authenticated", map[string]interface{}{
			"expires_at": claims.ExpiresAt,
		})

		c.Next()
	}
}
