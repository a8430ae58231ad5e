package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/lumina-mfg/lumina/internal/alerts"
	"github.com/lumina-mfg/lumina/internal/app"
	"github.com/lumina-mfg/lumina/internal/auth"
	"github.com/lumina-mfg/lumina/internal/dashboard"
	"github.com/lumina-mfg/lumina/internal/inventory"
	"github.com/lumina-mfg/lumina/internal/observability"
	"github.com/lumina-mfg/lumina/internal/production"
	"github.com/lumina-mfg/lumina/internal/rbac"
	"github.com/lumina-mfg/lumina/internal/sales"
	"github.com/lumina-mfg/lumina/internal/shared"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, "lumina_session", cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())
	csrfManager := shared.NewCSRFManager(cfg.CSRFSecret)
	metrics := observability.NewMetrics()
	gate := rbac.NewGate()

	authRepo, err := auth.NewStaticRepository()
	if err != nil {
		logger.Error("build credential table", slog.Any("error", err))
		os.Exit(1)
	}
	authService := auth.NewService(authRepo)
	authHandler := auth.NewHandler(logger, authService, sessionManager, csrfManager, metrics)

	inventoryRepo := inventory.NewMemoryRepository()
	productionRepo := production.NewMemoryRepository()
	salesRepo := sales.NewMemoryRepository()
	alertsRepo := alerts.NewMemoryRepository()
	if cfg.SeedDemoData {
		inventoryRepo.Seed(inventory.DemoItems())
		productionRepo.Seed(production.DemoLines())
		salesRepo.Seed(sales.DemoOrders())
		alertsRepo.Seed(alerts.DemoAlerts(time.Now()))
		logger.Info("demo data seeded")
	}

	inventoryService := inventory.NewService(inventoryRepo, gate)
	productionService := production.NewService(productionRepo, gate)
	salesService := sales.NewService(salesRepo, gate)
	alertsService := alerts.NewService(alertsRepo, gate)
	dashboardService := dashboard.NewService(inventoryRepo, productionRepo, salesRepo, gate)

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		SessionManager:    sessionManager,
		CSRFManager:       csrfManager,
		AuthHandler:       authHandler,
		InventoryHandler:  inventory.NewHandler(logger, inventoryService),
		ProductionHandler: production.NewHandler(logger, productionService),
		SalesHandler:      sales.NewHandler(logger, salesService),
		AlertsHandler:     alerts.NewHandler(logger, alertsService),
		DashboardHandler:  dashboard.NewHandler(logger, dashboardService),
		Metrics:           metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
