package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/techstore/storefront-api/internal/api/handler"
	"github.com/techstore/storefront-api/internal/api/middleware"
	"github.com/techstore/storefront-api/internal/core/service"
	"github.com/techstore/storefront-api/internal/infrastructure/config"
	mongodb "github.com/techstore/storefront-api/internal/infrastructure/db/mongo"
	redisdb "github.com/techstore/storefront-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("techstore"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	settingsRepo := mongodb.NewSettingsRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	statsCache := redisdb.NewStatsCache(rdb, log)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, log)
	settingsService := service.NewSettingsService(settingsRepo, log)
	statsService := service.NewStatsService(userRepo, productRepo, orderRepo, statsCache, log)

	authHandler := handler.NewAuthHandler(authService, handler.CookieOptions{
		Name:   cfg.CookieName,
		TTL:    cfg.TokenTTL,
		Secure: cfg.Env == "production",
	})
	userHandler := handler.NewUserHandler(userService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	statsHandler := handler.NewStatsHandler(statsService)

	guard := middleware.Auth(cfg.JWTSecret, cfg.CookieName)
	adminOnly := middleware.RBAC("admin")

	// --- Auth routes ---
	// Login and logout are exempt from credential possession; /me validates
	// credential content and re-reads the account.
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, guard)

	// --- Admin routes (guard + admin role) ---
	admin := e.Group("/api/admin", guard, adminOnly)
	admin.GET("/users", userHandler.List)
	admin.GET("/users/:id", userHandler.Get)
	admin.POST("/users", userHandler.Create)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.Delete)
	admin.GET("/settings", settingsHandler.Get)
	admin.PUT("/settings", settingsHandler.Update)
	admin.GET("/stats", statsHandler.Dashboard)
	admin.GET("/chart-data", statsHandler.ChartData)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
