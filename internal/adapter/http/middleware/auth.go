package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mechfinder/internal/infrastructure/auth"
	"mechfinder/pkg"
)

// Context keys set by RequireAuth.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

var (
	errMissingAuthHeader = pkg.NewDomainErrorSimple("AUTH_HEADER_MISSING", "Authorization header is required", http.StatusUnauthorized)
	errInvalidAuthFormat = pkg.NewDomainErrorSimple("INVALID_AUTH_FORMAT", "Authorization header must be a Bearer token", http.StatusUnauthorized)
	errInvalidToken      = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
	errForbiddenRole     = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient permissions", http.StatusForbidden)
)

// RequireAuth validates the Bearer token and stores user_id and role on the
// request context.
func RequireAuth(tokens *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(errMissingAuthHeader.HTTPStatus, errMissingAuthHeader.ToHTTPError())
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(errInvalidAuthFormat.HTTPStatus, errInvalidAuthFormat.ToHTTPError())
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole gates a route group to one role. It must run after RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != role {
			c.AbortWithStatusJSON(errForbiddenRole.HTTPStatus, errForbiddenRole.ToHTTPError())
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated account id stored by RequireAuth.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
