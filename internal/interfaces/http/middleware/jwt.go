package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/infrastructure/auth"
	"github.com/flexo/backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	JWTUserIDKey  = "jwt_user_id"
	JWTRoleKey    = "jwt_role"
	JWTRoutesKey  = "jwt_routes"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// TokenValidator checks an access token's signature, expiry and revocation
type TokenValidator interface {
	ValidateAccess(ctx context.Context, token string) (*auth.Claims, error)
}

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	Validator        TokenValidator
	SkipPaths        []string
	SkipPathPrefixes []string
	Logger           *zap.Logger
}

// DefaultJWTConfig skips health, metrics, docs and the login endpoints
func DefaultJWTConfig(validator TokenValidator, log *zap.Logger) JWTMiddlewareConfig {
	return JWTMiddlewareConfig{
		Validator: validator,
		SkipPaths: []string{
			"/health",
			"/metrics",
			"/api/v1/health",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
		SkipPathPrefixes: []string{"/swagger"},
		Logger:           log,
	}
}

// JWTAuth requires a valid bearer access token and stores its claims in
// the gin and request contexts
func JWTAuth(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range cfg.SkipPaths {
			if path == p {
				c.Next()
				return
			}
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "ERR_UNAUTHORIZED", "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortWithError(c, http.StatusUnauthorized, "ERR_UNAUTHORIZED", "Invalid authorization header format")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerPrefix))
		if token == "" {
			abortWithError(c, http.StatusUnauthorized, "ERR_UNAUTHORIZED", "Missing token")
			return
		}

		claims, err := cfg.Validator.ValidateAccess(c.Request.Context(), token)
		if err != nil {
			code, message := "ERR_TOKEN_INVALID", "Invalid token"
			var domainErr *shared.DomainError
			if errors.As(err, &domainErr) {
				code, message = "ERR_"+domainErr.Code, domainErr.Message
			} else {
				log.Error("Token validation failed", zap.Error(err))
			}
			log.Debug("JWT authentication failed", zap.String("path", path), zap.String("code", code))
			abortWithError(c, http.StatusUnauthorized, code, message)
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUserIDKey, claims.UserID)
		c.Set(JWTRoleKey, claims.Role)
		c.Set(JWTRoutesKey, claims.AllowedRoutes)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))

		c.Next()
	}
}

// GetJWTClaims retrieves JWT claims from gin.Context
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if claims, ok := c.Get(JWTClaimsKey); ok {
		if jwtClaims, ok := claims.(*auth.Claims); ok {
			return jwtClaims
		}
	}
	return nil
}

// GetJWTUserID retrieves the user ID from JWT claims in context
func GetJWTUserID(c *gin.Context) string {
	return c.GetString(JWTUserIDKey)
}

// GetJWTRole retrieves the role from JWT claims in context
func GetJWTRole(c *gin.Context) string {
	return c.GetString(JWTRoleKey)
}

// GetJWTRoutes retrieves the allowed routes from JWT claims in context
func GetJWTRoutes(c *gin.Context) []string {
	return c.GetStringSlice(JWTRoutesKey)
}
