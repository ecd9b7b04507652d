package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crm-assessment/internal/config"
	"crm-assessment/internal/database"
	"crm-assessment/internal/handlers"
	"crm-assessment/internal/middleware"
	"crm-assessment/internal/repositories"
	"crm-assessment/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)
	blacklistRepo := repositories.NewBlacklistedTokenRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	auditService := services.NewAuditService(auditRepo, logger)
	passwordService := services.NewPasswordServiceWithCost(cfg.Security.BCryptCost)
	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(userRepo, blacklistRepo, passwordService, tokenService, auditService, metrics, logger)
	customerService := services.NewCustomerService(customerRepo, leadRepo, auditService, metrics, logger)
	leadService := services.NewLeadService(leadRepo, customerRepo, auditService, metrics, logger)
	dashboardService := services.NewDashboardService(leadRepo, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	leadHandler := handlers.NewLeadHandler(leadService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	protected := api.Group("", middleware.RequireAuth(tokenService, blacklistRepo))
	protected.GET("/auth/me", authHandler.Me)

	protected.GET("/customers", customerHandler.List)
	protected.POST("/customers", customerHandler.Create)
	protected.GET("/customers/:id", customerHandler.Get)
	protected.PUT("/customers/:id", customerHandler.Update)
	protected.DELETE("/customers/:id", customerHandler.Delete)

	protected.GET("/leads", leadHandler.List)
	protected.POST("/leads", leadHandler.Create)
	protected.GET("/leads/:id", leadHandler.Get)
	protected.PUT("/leads/:id", leadHandler.Update)
	protected.DELETE("/leads/:id", leadHandler.Delete)

	protected.GET("/dashboard/stats", dashboardHandler.Stats)

	// Expired blacklist entries are dead weight once their tokens lapse
	go cleanupExpiredTokens(blacklistRepo, logger)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server",
			"addr", server.Addr,
			"environment", cfg.Server.Environment,
			"driver", cfg.Database.Driver,
		)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}

func cleanupExpiredTokens(repo repositories.BlacklistedTokenRepositoryInterface, logger *slog.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		deleted, err := repo.DeleteExpired()
		if err != nil {
			logger.Error("Failed to clean up expired blacklisted tokens", "error", err)
			continue
		}
		if deleted > 0 {
			logger.Info("Cleaned up expired blacklisted tokens", "count", deleted)
		}
	}
}
