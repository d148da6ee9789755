package router

import (
	"github.com/flexo/backend/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
)

// Handlers are the handlers served under the versioned API
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Customer     *handler.CustomerHandler
	Transport    *handler.TransportHandler
	Printer      *handler.PrinterHandler
	Curve        *handler.CurveHandler
	Profile      *handler.ProfileHandler
	DieCutBlock  *handler.DieCutBlockHandler
	ServiceOrder *handler.ServiceOrderHandler
	Replacement  *handler.ReplacementHandler
	Invoice      *handler.InvoiceHandler
	Channel      *handler.ChannelHandler
	Notification *handler.NotificationHandler
	Pricing      *handler.PricingHandler
	Report       *handler.ReportHandler
	System       *handler.SystemHandler
}

// Guards are applied per group. RouteAccess checks the caller's allowed
// routes, AdminOnly protects user management.
type Guards struct {
	RouteAccess gin.HandlerFunc
	AdminOnly   gin.HandlerFunc
}

// APIGroups builds the resource groups. A group prefix is also the
// allowed-route entry that grants it, so "/serviceorder" opens every
// order endpoint. Session endpoints (auth, /user/me, system) only need a
// valid token.
func APIGroups(h Handlers, g Guards) []*DomainGroup {
	system := NewDomainGroup("system", "")
	system.GET("/health", h.System.Health)
	system.GET("/system/info", h.System.Info)

	authRoutes := NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", h.Auth.Login)
	authRoutes.POST("/refresh", h.Auth.Refresh)
	authRoutes.POST("/logout", h.Auth.Logout)

	userRoutes := NewDomainGroup("user", "/user")
	userRoutes.GET("/me", h.Auth.Me)
	userRoutes.PUT("/me/password", h.Auth.ChangePassword)
	userAdmin := userRoutes.Group("user-admin", "").Use(g.AdminOnly)
	userAdmin.POST("", h.User.Create)
	userAdmin.GET("", h.User.List)
	userAdmin.GET("/:id", h.User.GetByID)
	userAdmin.PUT("/:id", h.User.Update)
	userAdmin.DELETE("/:id", h.User.Delete)
	userAdmin.POST("/:id/activate", h.User.Activate)
	userAdmin.POST("/:id/deactivate", h.User.Deactivate)
	userAdmin.PUT("/:id/password", h.User.ResetPassword)

	customerRoutes := NewDomainGroup("customer", "/customer").Use(g.RouteAccess)
	customerRoutes.POST("", h.Customer.Create)
	customerRoutes.GET("", h.Customer.List)
	customerRoutes.POST("/import", h.Customer.Import)
	customerRoutes.GET("/:id", h.Customer.GetByID)
	customerRoutes.PUT("/:id", h.Customer.Update)
	customerRoutes.DELETE("/:id", h.Customer.Delete)
	customerRoutes.POST("/:id/activate", h.Customer.Activate)
	customerRoutes.POST("/:id/deactivate", h.Customer.Deactivate)

	transportRoutes := crud("transport", g.RouteAccess, h.Transport.Create, h.Transport.List,
		h.Transport.GetByID, h.Transport.Update, h.Transport.Delete)
	printerRoutes := crud("printer", g.RouteAccess, h.Printer.Create, h.Printer.List,
		h.Printer.GetByID, h.Printer.Update, h.Printer.Delete)
	curveRoutes := crud("curve", g.RouteAccess, h.Curve.Create, h.Curve.List,
		h.Curve.GetByID, h.Curve.Update, h.Curve.Delete)
	profileRoutes := crud("profile", g.RouteAccess, h.Profile.Create, h.Profile.List,
		h.Profile.GetByID, h.Profile.Update, h.Profile.Delete)

	blockRoutes := crud("diecutblock", g.RouteAccess, h.DieCutBlock.Create, h.DieCutBlock.List,
		h.DieCutBlock.GetByID, h.DieCutBlock.Update, h.DieCutBlock.Delete)
	blockRoutes.GET("/:id/quote", h.DieCutBlock.Quote)

	orderRoutes := crud("serviceorder", g.RouteAccess, h.ServiceOrder.Create, h.ServiceOrder.List,
		h.ServiceOrder.GetByID, h.ServiceOrder.Update, h.ServiceOrder.Delete)
	orderRoutes.GET("/summary", h.ServiceOrder.Summary)
	orderRoutes.GET("/number/:number", h.ServiceOrder.GetByNumber)
	orderRoutes.PUT("/:id/status", h.ServiceOrder.ChangeStatus)
	orderRoutes.POST("/:id/replacement", h.ServiceOrder.CreateReplacement)

	replacementRoutes := NewDomainGroup("replacement", "/replacement").Use(g.RouteAccess)
	replacementRoutes.GET("", h.Replacement.List)
	replacementRoutes.GET("/losses", h.Replacement.Losses)

	invoiceRoutes := NewDomainGroup("invoice", "/invoice").Use(g.RouteAccess)
	invoiceRoutes.POST("", h.Invoice.Create)
	invoiceRoutes.GET("", h.Invoice.List)
	invoiceRoutes.GET("/:id", h.Invoice.GetByID)
	invoiceRoutes.PUT("/:id", h.Invoice.Update)
	invoiceRoutes.POST("/:id/issue", h.Invoice.Issue)
	invoiceRoutes.POST("/:id/pay", h.Invoice.Pay)
	invoiceRoutes.POST("/:id/cancel", h.Invoice.Cancel)

	channelRoutes := crud("channel", g.RouteAccess, h.Channel.Create, h.Channel.List,
		h.Channel.GetByID, h.Channel.Update, h.Channel.Delete)

	// The feed is per user, so every authenticated caller may read it
	notificationRoutes := NewDomainGroup("notification", "/notification")
	notificationRoutes.GET("", h.Notification.List)
	notificationRoutes.POST("/read-all", h.Notification.MarkAllRead)
	notificationRoutes.GET("/:id", h.Notification.GetByID)
	notificationRoutes.POST("/:id/read", h.Notification.MarkRead)
	notificationRoutes.DELETE("/:id", h.Notification.Delete)
	notificationRoutes.Group("notification-publish", "").Use(g.RouteAccess).
		POST("", h.Notification.Create)

	pricingRoutes := NewDomainGroup("pricing", "/pricing").Use(g.RouteAccess)
	pricingRoutes.GET("/table", h.Pricing.PriceTable)
	pricingRoutes.POST("/quote", h.Pricing.Quote)

	reportRoutes := NewDomainGroup("report", "/report").Use(g.RouteAccess)
	reportRoutes.GET("/serviceorder/:id", h.Report.ServiceOrderSheet)
	reportRoutes.GET("/invoice/:id", h.Report.InvoiceSheet)
	reportRoutes.POST("/invoice/:id/archive", h.Report.ArchiveInvoice)
	reportRoutes.GET("/orders", h.Report.Orders)
	reportRoutes.GET("/orders.xlsx", h.Report.OrdersXLSX)
	reportRoutes.GET("/replacements", h.Report.Replacements)

	return []*DomainGroup{
		system, authRoutes, userRoutes,
		customerRoutes, transportRoutes, printerRoutes, curveRoutes, profileRoutes, blockRoutes,
		orderRoutes, replacementRoutes, invoiceRoutes,
		channelRoutes, notificationRoutes, pricingRoutes, reportRoutes,
	}
}

// crud registers the five standard endpoints of a resource
func crud(name string, access gin.HandlerFunc, create, list, get, update, remove gin.HandlerFunc) *DomainGroup {
	g := NewDomainGroup(name, "/"+name).Use(access)
	g.POST("", create)
	g.GET("", list)
	g.GET("/:id", get)
	g.PUT("/:id", update)
	g.DELETE("/:id", remove)
	return g
}
