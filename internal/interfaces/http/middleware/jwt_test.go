package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/infrastructure/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockValidator struct {
	mock.Mock
}

func (m *mockValidator) ValidateAccess(ctx context.Context, token string) (*auth.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}

func operatorClaims() *auth.Claims {
	return &auth.Claims{
		UserID:        "7b0f6c55-3f44-4a55-9a0c-0d1f5b1f3a10",
		Name:          "Ana",
		Email:         "ana@example.com",
		Role:          "operator",
		AllowedRoutes: []string{"/customer", "/service-order"},
		TokenType:     auth.TokenTypeAccess,
	}
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.Error.Code
}

func newJWTRouter(v TokenValidator, handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), JWTAuth(DefaultJWTConfig(v, nil)))
	router.GET("/api/v1/customer", handler)
	router.POST("/api/v1/auth/login", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/swagger/*any", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestJWTAuth_ValidToken(t *testing.T) {
	v := new(mockValidator)
	claims := operatorClaims()
	v.On("ValidateAccess", mock.Anything, "good").Return(claims, nil)

	router := newJWTRouter(v, func(c *gin.Context) {
		assert.Same(t, claims, GetJWTClaims(c))
		assert.Equal(t, claims.UserID, GetJWTUserID(c))
		assert.Equal(t, "operator", GetJWTRole(c))
		assert.Equal(t, claims.AllowedRoutes, GetJWTRoutes(c))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customer", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	v.AssertExpectations(t)
}

func TestJWTAuth_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
		err    error
		code   string
	}{
		{name: "missing header", header: "", code: "ERR_UNAUTHORIZED"},
		{name: "wrong scheme", header: "Basic abc", code: "ERR_UNAUTHORIZED"},
		{name: "empty token", header: "Bearer  ", code: "ERR_UNAUTHORIZED"},
		{name: "expired", header: "Bearer old", err: shared.NewDomainError("TOKEN_EXPIRED", "Token has expired"), code: "ERR_TOKEN_EXPIRED"},
		{name: "revoked", header: "Bearer old", err: shared.NewDomainError("TOKEN_REVOKED", "Token has been revoked"), code: "ERR_TOKEN_REVOKED"},
		{name: "plain error", header: "Bearer old", err: assert.AnError, code: "ERR_TOKEN_INVALID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := new(mockValidator)
			if tt.err != nil {
				v.On("ValidateAccess", mock.Anything, "old").Return(nil, tt.err)
			}
			router := newJWTRouter(v, func(c *gin.Context) {
				t.Fatal("handler must not run")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/customer", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, tt.code, errorCode(t, w))
			v.AssertExpectations(t)
		})
	}
}

func TestJWTAuth_SkipPaths(t *testing.T) {
	v := new(mockValidator)
	router := newJWTRouter(v, func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, target := range []string{"/api/v1/auth/login", "/swagger/index.html"} {
		method := http.MethodGet
		if target == "/api/v1/auth/login" {
			method = http.MethodPost
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(method, target, nil))
		assert.Equal(t, http.StatusOK, w.Code, target)
	}
	v.AssertNotCalled(t, "ValidateAccess", mock.Anything, mock.Anything)
}
