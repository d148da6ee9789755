package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)

	r = NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	g := NewDomainGroup("printer", "/printer")
	g.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	NewRouter(engine).Register(g).Setup()

	w := serve(engine, http.MethodGet, "/api/v1/printer/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestRouterUse(t *testing.T) {
	engine := gin.New()
	engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	g := NewDomainGroup("curve", "/curve")
	g.GET("", func(c *gin.Context) { c.Status(http.StatusOK) })

	NewRouter(engine).
		Use(func(c *gin.Context) {
			c.Header("X-Api", "1")
			c.Next()
		}).
		Register(g).
		Setup()

	assert.Equal(t, "1", serve(engine, http.MethodGet, "/api/v1/curve").Header().Get("X-Api"))
	assert.Empty(t, serve(engine, http.MethodGet, "/health").Header().Get("X-Api"))
}

func TestDomainGroupMethods(t *testing.T) {
	ok := func(c *gin.Context) { c.String(http.StatusOK, c.Request.Method) }

	engine := gin.New()
	g := NewDomainGroup("transport", "/transport")
	g.GET("/:id", ok).
		POST("", ok).
		PUT("/:id", ok).
		PATCH("/:id", ok).
		DELETE("/:id", ok)
	g.RegisterRoutes(engine.Group("/api/v1"))

	assert.Equal(t, "transport", g.Name())
	assert.Equal(t, "/transport", g.Prefix())

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/transport/1"},
		{http.MethodPost, "/api/v1/transport"},
		{http.MethodPut, "/api/v1/transport/1"},
		{http.MethodPatch, "/api/v1/transport/1"},
		{http.MethodDelete, "/api/v1/transport/1"},
	}
	for _, tt := range tests {
		w := serve(engine, tt.method, tt.path)
		assert.Equal(t, http.StatusOK, w.Code, "%s %s", tt.method, tt.path)
		assert.Equal(t, tt.method, w.Body.String())
	}
}

func TestDomainGroupSubgroupMiddleware(t *testing.T) {
	engine := gin.New()
	g := NewDomainGroup("user", "/user")
	g.GET("/me", func(c *gin.Context) { c.Status(http.StatusOK) })
	g.Group("user-admin", "").
		Use(func(c *gin.Context) { c.AbortWithStatus(http.StatusForbidden) }).
		GET("", func(c *gin.Context) { c.Status(http.StatusOK) })
	g.RegisterRoutes(engine.Group("/api/v1"))

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/api/v1/user/me").Code)
	assert.Equal(t, http.StatusForbidden, serve(engine, http.MethodGet, "/api/v1/user").Code)
}

func TestDomainGroupPaths(t *testing.T) {
	noop := func(c *gin.Context) {}
	g := NewDomainGroup("serviceorder", "/serviceorder")
	g.GET("", noop).PUT("/:id/status", noop)
	g.Group("replacement", "/:id/replacement").POST("", noop)

	assert.Equal(t, []string{
		"GET /serviceorder",
		"PUT /serviceorder/:id/status",
		"POST /serviceorder/:id/replacement",
	}, g.Paths())
}

func TestRouterBasePath(t *testing.T) {
	assert.Equal(t, "/api/v1", NewRouter(gin.New()).BasePath())
	assert.Equal(t, "/api/v2", NewRouter(gin.New(), WithAPIVersion("v2")).BasePath())
}
