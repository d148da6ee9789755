package main

import (
	"context"
	"fmt"
	"time"

	billingapp "github.com/flexo/backend/internal/application/billing"
	identityapp "github.com/flexo/backend/internal/application/identity"
	notificationapp "github.com/flexo/backend/internal/application/notification"
	partnerapp "github.com/flexo/backend/internal/application/partner"
	prepressapp "github.com/flexo/backend/internal/application/prepress"
	pricingapp "github.com/flexo/backend/internal/application/pricing"
	productionapp "github.com/flexo/backend/internal/application/production"
	reportapp "github.com/flexo/backend/internal/application/report"
	toolingapp "github.com/flexo/backend/internal/application/tooling"
	"github.com/flexo/backend/internal/domain/identity"
	"github.com/flexo/backend/internal/infrastructure/auth"
	"github.com/flexo/backend/internal/infrastructure/cache"
	"github.com/flexo/backend/internal/infrastructure/config"
	"github.com/flexo/backend/internal/infrastructure/event"
	"github.com/flexo/backend/internal/infrastructure/logger"
	"github.com/flexo/backend/internal/infrastructure/persistence"
	"github.com/flexo/backend/internal/infrastructure/printing"
	"github.com/flexo/backend/internal/infrastructure/readmodel"
	"github.com/flexo/backend/internal/infrastructure/storage"
	"github.com/flexo/backend/internal/infrastructure/telemetry"
	"github.com/flexo/backend/internal/interfaces/http/handler"
	"github.com/flexo/backend/internal/interfaces/http/middleware"
	"github.com/flexo/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/flexo/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	documentCacheBytes = 64 << 20
	readModelConns     = 4
)

// application owns the engine and everything that must be released on exit
type application struct {
	engine  *gin.Engine
	log     *zap.Logger
	closers []closer
}

type closer struct {
	name string
	fn   func(ctx context.Context) error
}

func (a *application) onClose(name string, fn func(ctx context.Context) error) {
	a.closers = append(a.closers, closer{name: name, fn: fn})
}

// close releases resources in reverse order of acquisition
func (a *application) close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.fn(ctx); err != nil {
			a.log.Error("Error closing "+c.name, zap.Error(err))
		}
	}
}

func newApplication(ctx context.Context, cfg *config.Config, log *zap.Logger) (_ *application, err error) {
	app := &application{log: log}
	defer func() {
		if err != nil {
			app.close(context.Background())
		}
	}()

	// Telemetry
	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		return nil, err
	}
	app.onClose("tracer provider", tracerProvider.Shutdown)

	meterProvider, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		return nil, err
	}
	app.onClose("meter provider", meterProvider.Shutdown)

	profiler, err := telemetry.NewProfiler(cfg.Profiler, log)
	if err != nil {
		return nil, err
	}
	app.onClose("profiler", func(context.Context) error { return profiler.Stop() })
	if profiler.IsEnabled() && cfg.Profiler.SpanProfiles {
		tracerProvider.EnableSpanProfiles()
	}

	metrics := telemetry.NewMetrics()

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.Open(&cfg.Database, gormLog)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	app.onClose("database", func(context.Context) error { return db.Close() })
	log.Info("Database connected successfully", zap.String("driver", cfg.Database.Driver))

	if err := telemetry.RegisterGormTracing(db.DB, cfg.Telemetry, log); err != nil {
		return nil, err
	}
	if meterProvider.IsEnabled() {
		if err := telemetry.RegisterDBPoolMetrics(meterProvider.Meter(cfg.Telemetry.ServiceName), db.SQL()); err != nil {
			return nil, err
		}
	}

	// Redis backs token revocation and the document cache. Without it
	// both fall back to process memory.
	healthChecks := []handler.HealthCheck{{Name: "database", Check: db.Ping}}
	var (
		revocations auth.Revocations
		docCache    cache.DocumentCache
	)
	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		app.onClose("redis", func(context.Context) error { return client.Close() })
		revocations = auth.NewRedisRevocations(client)
		docCache = cache.NewRedisDocumentCache(client)
		healthChecks = append(healthChecks, handler.HealthCheck{Name: "redis", Check: redisCheck(client)})
		log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
	} else {
		memCache := cache.NewInMemoryDocumentCache(documentCacheBytes, time.Minute)
		app.onClose("document cache", func(context.Context) error { return memCache.Close() })
		revocations = auth.NewMemoryRevocations()
		docCache = memCache
		log.Warn("Redis disabled, token revocation and document cache are process local")
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	transportRepo := persistence.NewGormTransportRepository(db.DB)
	printerRepo := persistence.NewGormPrinterRepository(db.DB)
	curveRepo := persistence.NewGormCurveRepository(db.DB)
	profileRepo := persistence.NewGormProfileRepository(db.DB)
	blockRepo := persistence.NewGormDieCutBlockRepository(db.DB)
	orderRepo := persistence.NewGormServiceOrderRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	channelRepo := persistence.NewGormChannelRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)

	prices, err := cfg.Pricing.PriceTable()
	if err != nil {
		return nil, err
	}
	presets, err := identity.LoadRolePresets(cfg.App.RolesFile)
	if err != nil {
		return nil, err
	}

	// Events
	bus := event.NewInMemoryEventBus(log)
	notifier := notificationapp.NewEventNotifier(channelRepo, notificationRepo, cfg.Reports.NotificationChannel, log)
	bus.Subscribe(notifier)
	bus.Subscribe(telemetry.NewEventMetrics(metrics))
	if cfg.RabbitMQ.Enabled {
		forwarder, err := event.DialRabbitMQ(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.RoutingKey,
			log.Named("rabbitmq"), notifier.EventTypes()...)
		if err != nil {
			return nil, err
		}
		app.onClose("rabbitmq", func(context.Context) error { return forwarder.Close() })
		bus.Subscribe(forwarder)
	}
	if err := bus.Start(ctx); err != nil {
		return nil, err
	}
	app.onClose("event bus", bus.Stop)

	// Services
	jwtService := auth.NewJWTService(cfg.JWT)
	authConfig := identityapp.AuthServiceConfig{
		MaxLoginAttempts: cfg.JWT.MaxLoginAttempts,
		LockDuration:     cfg.JWT.LockDuration,
		RefreshTTL:       cfg.JWT.RefreshTokenExpiration,
	}
	authService := identityapp.NewAuthService(userRepo, jwtService, revocations, authConfig, log)
	userService := identityapp.NewUserService(userRepo, presets, revocations, bus, authConfig, log)

	customerService := partnerapp.NewCustomerService(customerRepo, transportRepo, orderRepo, printerRepo, blockRepo, bus)
	transportService := partnerapp.NewTransportService(transportRepo, customerRepo, orderRepo)
	printerService := prepressapp.NewPrinterService(printerRepo, customerRepo, profileRepo, orderRepo)
	curveService := prepressapp.NewCurveService(curveRepo, profileRepo)
	profileService := prepressapp.NewProfileService(profileRepo, printerRepo, curveRepo, orderRepo)
	blockService := toolingapp.NewDieCutBlockService(blockRepo, customerRepo, orderRepo, prices)

	orderService := productionapp.NewServiceOrderService(orderRepo, productionapp.References{
		Customers:  customerRepo,
		Printers:   printerRepo,
		Profiles:   profileRepo,
		Transports: transportRepo,
		Blocks:     blockRepo,
	}, prices, bus)
	replacementService := productionapp.NewReplacementService(orderRepo)
	invoiceService := billingapp.NewInvoiceService(invoiceRepo, orderRepo, customerRepo, db.TxManager(), bus, log)

	channelService := notificationapp.NewChannelService(channelRepo, notificationRepo)
	notificationService := notificationapp.NewNotificationService(notificationRepo, channelRepo)
	quoteService := pricingapp.NewQuoteService(prices)

	reportService, err := newReportService(ctx, app, cfg, log, reportapp.Dependencies{
		Orders:     orderRepo,
		Invoices:   invoiceRepo,
		Customers:  customerRepo,
		Transports: transportRepo,
		Printers:   printerRepo,
		Profiles:   profileRepo,
		ReadModel:  persistence.NewGormReportReadModel(db.DB),
		Cache:      docCache,
	})
	if err != nil {
		return nil, err
	}

	handlers := router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		User:         handler.NewUserHandler(userService),
		Customer:     handler.NewCustomerHandler(customerService),
		Transport:    handler.NewTransportHandler(transportService),
		Printer:      handler.NewPrinterHandler(printerService),
		Curve:        handler.NewCurveHandler(curveService),
		Profile:      handler.NewProfileHandler(profileService),
		DieCutBlock:  handler.NewDieCutBlockHandler(blockService),
		ServiceOrder: handler.NewServiceOrderHandler(orderService),
		Replacement:  handler.NewReplacementHandler(replacementService),
		Invoice:      handler.NewInvoiceHandler(invoiceService),
		Channel:      handler.NewChannelHandler(channelService),
		Notification: handler.NewNotificationHandler(notificationService),
		Pricing:      handler.NewPricingHandler(quoteService),
		Report:       handler.NewReportHandler(reportService, metrics),
		System:       handler.NewSystemHandler(cfg.App.Name, version, healthChecks...),
	}

	// HTTP
	if err := middleware.SetupValidator(); err != nil {
		return nil, err
	}
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(corsConfig(cfg.HTTP)))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     tracerProvider.IsEnabled(),
	}))
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(middleware.HTTPMetrics(metrics))

	engine.GET("/health", handlers.System.Health)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Docs authenticate on their own; the API middleware skips /swagger
	docsAuth := middleware.JWTAuth(middleware.JWTMiddlewareConfig{Validator: authService, Logger: log})
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:     cfg.Swagger.Enabled,
			RequireAuth: cfg.Swagger.RequireAuth,
			AllowedIPs:  cfg.Swagger.AllowedIPs,
		}, docsAuth),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuth(middleware.DefaultJWTConfig(authService, log)))
	r.Use(middleware.TracingAttributeInjector())
	profiling := middleware.DefaultProfilingConfig()
	profiling.Enabled = profiler.IsEnabled()
	r.Use(middleware.Profiling(profiling))
	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow, cfg.HTTP.RateLimitBurst)
		app.onClose("rate limiter", func(context.Context) error {
			limiter.Stop()
			return nil
		})
		r.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	groups := router.APIGroups(handlers, router.Guards{
		RouteAccess: middleware.RequireRouteAccess(log),
		AdminOnly:   middleware.RequireRole(identity.RoleAdmin),
	})
	for _, g := range groups {
		r.Register(g)
	}
	r.Setup()

	app.engine = engine
	return app, nil
}

// newReportService completes deps with the renderer, the optional pgx read
// model and the optional archive bucket
func newReportService(ctx context.Context, app *application, cfg *config.Config, log *zap.Logger, deps reportapp.Dependencies) (*reportapp.ReportService, error) {
	var pdf printing.PDFRenderer = printing.DisabledRenderer{}
	if cfg.Chrome.Enabled {
		pdf = printing.NewChromedpRenderer(cfg.Chrome, log)
	} else {
		log.Warn("Chrome disabled, service order and invoice sheets are unavailable")
	}
	app.onClose("pdf renderer", func(context.Context) error { return pdf.Close() })

	engine, err := printing.NewTemplateEngine()
	if err != nil {
		return nil, err
	}
	deps.Sheets = printing.NewSheetRenderer(engine, pdf)

	if cfg.Reports.ReadModelEnabled && cfg.Database.Driver == config.DriverPostgres {
		rm, err := readmodel.Connect(ctx, cfg.Database.DSN(), readModelConns, log)
		if err != nil {
			return nil, err
		}
		app.onClose("read model", func(context.Context) error {
			rm.Close()
			return nil
		})
		deps.ReadModel = rm
	}

	if cfg.Storage.Enabled {
		archive, err := storage.NewArchive(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			return nil, err
		}
		if err := archive.EnsureBucket(ctx); err != nil {
			log.Warn("Archive bucket unavailable", zap.String("bucket", archive.Bucket()), zap.Error(err))
		}
		deps.Storage = archive
	}

	company := printing.Company{
		Name:     cfg.Reports.CompanyName,
		Document: cfg.Reports.CompanyDocument,
		Address:  cfg.Reports.CompanyAddress,
	}
	return reportapp.NewReportService(deps, company, cfg.Reports.CacheTTL, log), nil
}

func corsConfig(h config.HTTPConfig) middleware.CORSConfig {
	c := middleware.DefaultCORSConfig()
	c.AllowOrigins = h.CORSAllowOrigins
	if len(h.CORSAllowMethods) > 0 {
		c.AllowMethods = h.CORSAllowMethods
	}
	if len(h.CORSAllowHeaders) > 0 {
		c.AllowHeaders = h.CORSAllowHeaders
	}
	return c
}

func redisCheck(client *redis.Client) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
