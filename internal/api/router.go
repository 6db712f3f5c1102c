package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/gestaoclientes/gestor/docs"
	"github.com/gestaoclientes/gestor/internal/api/handler"
	"github.com/gestaoclientes/gestor/internal/api/middleware"
	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/internal/core/ports"
	"github.com/gestaoclientes/gestor/internal/infrastructure/http/handlers"
)

// Deps carries everything the router needs to build its handlers.
type Deps struct {
	Auth    ports.AuthService
	Clients ports.ClientService
	Users   ports.UserService
	Checks  map[string]handlers.Check
	Log     zerolog.Logger

	// CORSOrigins applies to the native API; legacy routes always allow "*".
	CORSOrigins []string
	// Registerer receives the HTTP metrics. Defaults to the global registry.
	Registerer prometheus.Registerer
}

var legacyPaths = map[string]bool{
	"/login-username":    true,
	"/usuarios":          true,
	"/criar-usuario":     true,
	"/atualizar-usuario": true,
	"/excluir-usuario":   true,
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	reg := d.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	origins := d.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		Skipper:       func(c echo.Context) bool { return legacyPaths[c.Request().URL.Path] },
		AllowOrigins:  origins,
		AllowHeaders:  []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders: []string{echo.HeaderContentDisposition},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "gestor",
		Registerer: reg,
	}))

	// --- Operational ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Checks)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authHandler := handler.NewAuthHandler(d.Auth)
	clientHandler := handler.NewClientHandler(d.Clients)
	userHandler := handler.NewUserHandler(d.Users)
	legacyHandler := handler.NewLegacyHandler(d.Auth, d.Users)
	requireAuth := middleware.Auth(d.Auth)

	// --- Native API ---
	v1 := e.Group("/api/v1")
	v1.POST("/auth/login", authHandler.Login)

	secured := v1.Group("", requireAuth)
	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/auth/me", authHandler.Me)
	secured.GET("/options/:kind", handler.Options)

	view := middleware.RequireCapability(domain.CapView)
	create := middleware.RequireCapability(domain.CapCreate)
	edit := middleware.RequireCapability(domain.CapEdit)
	del := middleware.RequireCapability(domain.CapDelete)

	clients := secured.Group("/clients")
	clients.GET("", clientHandler.List, view)
	clients.GET("/export", clientHandler.Export, view)
	clients.POST("/import", clientHandler.Import, create)
	clients.GET("/:id", clientHandler.Get, view)
	clients.POST("", clientHandler.Create, create)
	clients.PATCH("/:id", clientHandler.Update, edit)
	clients.POST("/:id/deactivate", clientHandler.Deactivate, edit)
	clients.POST("/:id/reactivate", clientHandler.Reactivate, edit)
	clients.DELETE("/:id", clientHandler.Delete, del)

	users := secured.Group("/users", middleware.RequireAdmin())
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create)
	users.PATCH("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Legacy surface ---
	legacy := func(method, path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
		e.Add(method, path, h, append([]echo.MiddlewareFunc{middleware.LegacyCORS()}, m...)...)
		e.OPTIONS(path, middleware.PreflightOK, middleware.LegacyCORS())
	}
	admin := []echo.MiddlewareFunc{requireAuth, middleware.RequireAdmin()}

	legacy("POST", "/login-username", legacyHandler.LoginUsername)
	legacy("GET", "/usuarios", legacyHandler.ListUsers, admin...)
	legacy("POST", "/criar-usuario", legacyHandler.CreateUser, admin...)
	legacy("PUT", "/atualizar-usuario", legacyHandler.UpdateUser, admin...)
	legacy("DELETE", "/excluir-usuario", legacyHandler.DeleteUser, admin...)

	return e
}
