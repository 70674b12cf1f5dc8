package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/clinichub/clinic-registry/internal/api/handler"
	"github.com/clinichub/clinic-registry/internal/api/middleware"
	"github.com/clinichub/clinic-registry/internal/core/ports"
)

// Deps carries everything the router needs; services are constructed by the
// caller so tests can swap in stubs.
type Deps struct {
	DB            *sql.DB
	Redis         *redis.Client
	JWTSecret     string
	ClinicService ports.ClinicService
	UserService   ports.UserService
	AuditService  ports.AuditService
	Log           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("clinic"))

	// --- Handlers ---
	clinicHandler := handler.NewClinicHandler(deps.ClinicService)
	userHandler := handler.NewUserHandler(deps.UserService)
	authHandler := handler.NewAuthHandler(deps.UserService)
	auditHandler := handler.NewAuditHandler(deps.AuditService)
	authRequired := middleware.Auth(deps.JWTSecret)

	// --- Public routes: login and registration ---
	e.POST("/api/authenticate", authHandler.Authenticate)
	e.POST("/api/users", userHandler.Create)

	// --- Authenticated routes ---
	clinics := e.Group("/api/clinics", authRequired)
	clinics.POST("", clinicHandler.Create)
	clinics.PUT("", clinicHandler.Update)
	clinics.GET("", clinicHandler.List)
	clinics.GET("/:id", clinicHandler.Get)
	clinics.DELETE("/:id", clinicHandler.Delete)

	users := e.Group("/api/users", authRequired)
	users.PUT("", userHandler.Update)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.DELETE("/:id", userHandler.Delete)

	e.GET("/api/audits", auditHandler.List, authRequired)

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
