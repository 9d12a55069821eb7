package api

import (
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/waresmart/warehouse-console/internal/api/handler"
	"github.com/waresmart/warehouse-console/internal/api/middleware"
	"github.com/waresmart/warehouse-console/internal/core/domain"
	"github.com/waresmart/warehouse-console/internal/core/ports"
)

// Dependencies are the services the console routes are wired to.
type Dependencies struct {
	Sessions  ports.SessionContext
	Users     ports.UserService
	Dashboard ports.DashboardService
	Health    []handler.Dependency
	Log       zerolog.Logger

	// Registerer and Gatherer default to the prometheus globals.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// placeholders are sidebar destinations without a page yet.
var placeholders = map[string]string{
	"/products":  "Sản phẩm",
	"/import":    "Nhập kho",
	"/export":    "Xuất kho",
	"/inventory": "Tồn kho",
	"/suppliers": "Nhà cung cấp",
	"/reports":   "Báo cáo",
	"/settings":  "Cài đặt",
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) (*echo.Echo, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "waresmart",
		Subsystem:  "console",
		Registerer: d.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))
	e.Use(middleware.RejectCrossSite())
	e.Use(middleware.CSRF("/api/"))

	entries := domain.DefaultEntryPoints
	anonymous := middleware.RequireAnonymous(d.Sessions, entries)
	protected := middleware.RequireAuthenticated(d.Sessions, entries)

	// --- Probes and metrics (no guard) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Health...)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))

	// --- Session API ---
	sessionHandler := handler.NewSessionHandler(d.Sessions)
	apiGroup := e.Group("/api")
	apiGroup.GET("/session", sessionHandler.Get)
	apiGroup.POST("/session", sessionHandler.Create)
	apiGroup.DELETE("/session", sessionHandler.Delete)

	// --- Anonymous-only pages ---
	authHandler := handler.NewAuthHandler(d.Sessions, entries)
	e.GET("/login", authHandler.LoginPage, anonymous)
	e.POST("/login", authHandler.Login, anonymous)
	e.POST("/logout", authHandler.Logout)

	// --- Protected pages ---
	dashboardHandler := handler.NewDashboardHandler(d.Dashboard)
	userHandler := handler.NewUserHandler(d.Users)
	e.GET("/", dashboardHandler.Show, protected)
	e.GET("/users", userHandler.List, protected)
	e.POST("/users/:id/toggle-status", userHandler.ToggleStatus, protected, middleware.RBAC(domain.RoleAdmin))
	for path, title := range placeholders {
		e.GET(path, handler.Placeholder(title), protected)
	}
	e.GET("/*", handler.RedirectHome, protected)

	return e, nil
}
