package middleware

import (
	"net/http"
	"strings"

	"github.com/flexo/backend/internal/domain/identity"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIPrefix is stripped before a path is matched against allowed routes
const APIPrefix = "/api/v1"

// RequireRouteAccess checks the request path against the allowed routes
// carried by the access token. Admins pass. The path is reduced to its
// resource part, so "/api/v1/customer/42" is checked as "/customer/42".
func RequireRouteAccess(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			abortWithError(c, http.StatusUnauthorized, "ERR_UNAUTHORIZED", "Authentication required")
			return
		}
		if identity.Role(claims.Role) == identity.RoleAdmin {
			c.Next()
			return
		}

		path := ResourcePath(c.Request.URL.Path)
		if !identity.CanAccess(claims.AllowedRoutes, path) {
			log.Warn("Route access denied",
				zap.String("user_id", claims.UserID),
				zap.String("path", path),
				zap.Strings("allowed_routes", claims.AllowedRoutes),
			)
			abortWithError(c, http.StatusForbidden, "ERR_FORBIDDEN", "You do not have access to "+path)
			return
		}
		c.Next()
	}
}

// RequireRole lets only the listed roles through
func RequireRole(roles ...identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := identity.Role(GetJWTRole(c))
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		abortWithError(c, http.StatusForbidden, "ERR_FORBIDDEN", "This action requires a different role")
	}
}

// ResourcePath strips the API prefix from p
func ResourcePath(p string) string {
	p = identity.NormalizePath(p)
	if p == APIPrefix {
		return "/"
	}
	if rest, ok := strings.CutPrefix(p, APIPrefix+"/"); ok {
		return "/" + rest
	}
	return p
}
