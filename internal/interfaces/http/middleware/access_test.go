package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flexo/backend/internal/domain/identity"
	"github.com/flexo/backend/internal/infrastructure/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func withClaims(claims *auth.Claims) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims != nil {
			c.Set(JWTClaimsKey, claims)
			c.Set(JWTUserIDKey, claims.UserID)
			c.Set(JWTRoleKey, claims.Role)
			c.Set(JWTRoutesKey, claims.AllowedRoutes)
		}
		c.Next()
	}
}

func TestResourcePath(t *testing.T) {
	assert.Equal(t, "/customer/42", ResourcePath("/api/v1/customer/42"))
	assert.Equal(t, "/customer", ResourcePath("/api/v1/Customer/"))
	assert.Equal(t, "/", ResourcePath("/api/v1"))
	assert.Equal(t, "/health", ResourcePath("/health"))
	assert.Equal(t, "/api/v10/x", ResourcePath("/api/v10/x"))
}

func TestRequireRouteAccess(t *testing.T) {
	admin := &auth.Claims{UserID: "a", Role: string(identity.RoleAdmin)}
	operator := operatorClaims()

	tests := []struct {
		name   string
		claims *auth.Claims
		path   string
		want   int
	}{
		{name: "no claims", claims: nil, path: "/api/v1/customer", want: http.StatusUnauthorized},
		{name: "admin without routes", claims: admin, path: "/api/v1/invoice/1", want: http.StatusOK},
		{name: "granted prefix", claims: operator, path: "/api/v1/customer/1", want: http.StatusOK},
		{name: "granted exact", claims: operator, path: "/api/v1/service-order", want: http.StatusOK},
		{name: "sibling name denied", claims: operator, path: "/api/v1/customers", want: http.StatusForbidden},
		{name: "other resource denied", claims: operator, path: "/api/v1/invoice/1", want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(withClaims(tt.claims), RequireRouteAccess(nil))
			router.NoRoute(func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	router := gin.New()
	router.Use(withClaims(operatorClaims()))
	router.GET("/admin", RequireRole(identity.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/ops", RequireRole(identity.RoleAdmin, identity.RoleOperator), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "ERR_FORBIDDEN", errorCode(t, w))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ops", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
