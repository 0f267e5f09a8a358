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

	"finledger/internal/config"
	"finledger/internal/database"
	"finledger/internal/handlers"
	"finledger/internal/middleware"
	"finledger/internal/repositories"
	"finledger/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := runMigrations(cfg); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	metrics := services.NewPrometheusMetrics()
	formatter := services.NewCurrencyFormatter(cfg.Ledger.ReportLocale, cfg.Ledger.BaseCurrency)

	ledgerRepo := repositories.NewLedgerRepository(db.DB)
	userRepo := repositories.NewUserRepository(db.DB)

	ledgerService := services.NewLedgerService(ledgerRepo, metrics, cfg.Ledger.BaseCurrency)
	reportService := services.NewReportService(ledgerRepo, formatter, metrics)
	authService := services.NewAuthService(userRepo, &cfg.JWT, cfg.Security.BCryptCost, metrics)

	e := buildServer(cfg, db, ledgerRepo, ledgerService, reportService, authService)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("starting server", "addr", addr, "env", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	slog.Info("server stopped")
}

func runMigrations(cfg *config.Config) error {
	conn, err := database.OpenMigrationConnection(cfg.Database.DSN())
	if err != nil {
		return err
	}
	defer conn.Close()

	runner := database.NewMigrationRunner(conn)
	if err := runner.WaitForDatabase(); err != nil {
		return err
	}
	return runner.RunMigrations()
}

func buildServer(
	cfg *config.Config,
	db *database.DB,
	ledgerRepo repositories.LedgerRepositoryInterface,
	ledgerService services.LedgerServiceInterface,
	reportService services.ReportServiceInterface,
	authService services.AuthServiceInterface,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()

	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst).Middleware())

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService, ledgerRepo)
	reportHandler := handlers.NewReportHandler(reportService)

	e.GET("/health", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	admin := api.Group("/admin", middleware.RequireAuth(authService))
	admin.POST("/users/:id/approve", authHandler.Approve)

	ledger := api.Group("/ledger", middleware.RequireAuth(authService))
	ledger.GET("", ledgerHandler.GetLedger)
	ledger.GET("/categories", ledgerHandler.GetCategories)
	ledger.GET("/transactions", ledgerHandler.ListTransactions)
	ledger.POST("/transactions", ledgerHandler.CreateTransaction)
	ledger.PUT("/transactions/:id", ledgerHandler.UpdateTransaction)
	ledger.DELETE("/transactions/:id", ledgerHandler.DeleteTransaction)
	ledger.GET("/reports", reportHandler.GetReport)
	ledger.GET("/reports/export", reportHandler.ExportReportCSV)

	return e
}
