package router

import (
	"net/http"
	"testing"

	"github.com/flexo/backend/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// testHandlers builds every handler without services. Only endpoints that
// answer before reaching a service may be exercised.
func testHandlers() Handlers {
	return Handlers{
		Auth:         handler.NewAuthHandler(nil),
		User:         handler.NewUserHandler(nil),
		Customer:     handler.NewCustomerHandler(nil),
		Transport:    handler.NewTransportHandler(nil),
		Printer:      handler.NewPrinterHandler(nil),
		Curve:        handler.NewCurveHandler(nil),
		Profile:      handler.NewProfileHandler(nil),
		DieCutBlock:  handler.NewDieCutBlockHandler(nil),
		ServiceOrder: handler.NewServiceOrderHandler(nil),
		Replacement:  handler.NewReplacementHandler(nil),
		Invoice:      handler.NewInvoiceHandler(nil),
		Channel:      handler.NewChannelHandler(nil),
		Notification: handler.NewNotificationHandler(nil),
		Pricing:      handler.NewPricingHandler(nil),
		Report:       handler.NewReportHandler(nil, nil),
		System:       handler.NewSystemHandler("flexo-backend", "test"),
	}
}

func deny(status int) gin.HandlerFunc {
	return func(c *gin.Context) { c.AbortWithStatus(status) }
}

func newAPI(guards Guards) *gin.Engine {
	engine := gin.New()
	r := NewRouter(engine)
	for _, g := range APIGroups(testHandlers(), guards) {
		r.Register(g)
	}
	r.Setup()
	return engine
}

func TestAPIGroupsRegistersResources(t *testing.T) {
	engine := newAPI(Guards{RouteAccess: deny(http.StatusForbidden), AdminOnly: deny(http.StatusForbidden)})

	registered := make(map[string]bool)
	for _, route := range engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/refresh",
		"POST /api/v1/auth/logout",
		"GET /api/v1/user/me",
		"PUT /api/v1/user/me/password",
		"PUT /api/v1/user/:id/password",
		"POST /api/v1/customer/import",
		"POST /api/v1/customer/:id/deactivate",
		"DELETE /api/v1/transport/:id",
		"GET /api/v1/printer",
		"PUT /api/v1/curve/:id",
		"POST /api/v1/profile",
		"GET /api/v1/diecutblock/:id/quote",
		"GET /api/v1/serviceorder/summary",
		"GET /api/v1/serviceorder/number/:number",
		"PUT /api/v1/serviceorder/:id/status",
		"POST /api/v1/serviceorder/:id/replacement",
		"GET /api/v1/replacement/losses",
		"POST /api/v1/invoice/:id/issue",
		"POST /api/v1/invoice/:id/pay",
		"POST /api/v1/invoice/:id/cancel",
		"GET /api/v1/channel/:id",
		"POST /api/v1/notification",
		"POST /api/v1/notification/read-all",
		"POST /api/v1/notification/:id/read",
		"GET /api/v1/pricing/table",
		"POST /api/v1/pricing/quote",
		"GET /api/v1/report/serviceorder/:id",
		"POST /api/v1/report/invoice/:id/archive",
		"GET /api/v1/report/orders.xlsx",
		"GET /api/v1/report/replacements",
		"GET /api/v1/health",
		"GET /api/v1/system/info",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
}

func TestAPIGroupsGuards(t *testing.T) {
	engine := newAPI(Guards{RouteAccess: deny(http.StatusForbidden), AdminOnly: deny(http.StatusTeapot)})

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"resources check allowed routes", http.MethodGet, "/api/v1/customer", http.StatusForbidden},
		{"orders check allowed routes", http.MethodGet, "/api/v1/serviceorder/summary", http.StatusForbidden},
		{"reports check allowed routes", http.MethodGet, "/api/v1/report/orders", http.StatusForbidden},
		{"publishing checks allowed routes", http.MethodPost, "/api/v1/notification", http.StatusForbidden},
		{"user management is admin only", http.MethodGet, "/api/v1/user", http.StatusTeapot},
		{"password reset is admin only", http.MethodPut, "/api/v1/user/42/password", http.StatusTeapot},
		{"session needs only a token", http.MethodGet, "/api/v1/user/me", http.StatusUnauthorized},
		{"own feed needs only a token", http.MethodGet, "/api/v1/notification", http.StatusUnauthorized},
		{"health is open", http.MethodGet, "/api/v1/health", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, serve(engine, tt.method, tt.path).Code)
		})
	}
}
