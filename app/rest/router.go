package rest

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"garage-hub/app/port"
	"garage-hub/app/rest/handlers"
	custommw "garage-hub/app/rest/middleware"
	"garage-hub/app/usecase"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger      *slog.Logger
	AuthGateway port.AuthGateway
	Directory   port.TenantDirectory
	Selector    port.Selector
	Reconciler  port.Reconciler
	Roles       port.RoleVerifier
	Sessions    *usecase.SessionContextRegistry
	Health      handlers.HealthChecker

	// StoreTimeout bounds every store and Kratos call made on behalf of a
	// single request.
	StoreTimeout time.Duration
	EnableDebug  bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	tenantHandler := handlers.NewTenantHandler(
		config.Directory,
		config.Selector,
		config.Reconciler,
		config.Roles,
		config.Sessions,
		config.StoreTimeout,
		config.Logger,
	)
	healthHandler := handlers.NewHealthHandler(config.Health, config.Logger)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(config.AuthGateway, config.StoreTimeout, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Tenant resolution: anonymous access allowed, the hostname alone is
	// enough to resolve a garage on its subdomain.
	tenants := v1.Group("/tenants")
	tenants.GET("/resolve", tenantHandler.Resolve, authMiddleware.OptionalAuth())

	// Tenant settings (administrators only, read included)
	tenants.GET("/:slug/settings", tenantHandler.GetSettings, authMiddleware.RequireAuth())
	tenants.PUT("/:slug/settings", tenantHandler.UpdateSettings, authMiddleware.RequireAuth())

	// Session-scoped tenant context (require authentication)
	session := v1.Group("/session")
	session.Use(authMiddleware.RequireAuth())
	session.GET("/context", tenantHandler.Context)
	session.POST("/context/refresh", tenantHandler.RefreshContext)
	session.POST("/select", tenantHandler.Select)
	session.POST("/reconcile", tenantHandler.Reconcile)
	session.POST("/teardown", tenantHandler.TeardownSession)

	return e
}
