package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orna-jewels/pipeline-api/docs"
	"github.com/orna-jewels/pipeline-api/internal/config"
	"github.com/orna-jewels/pipeline-api/internal/database"
	"github.com/orna-jewels/pipeline-api/internal/domain"
	"github.com/orna-jewels/pipeline-api/internal/http/handler"
	"github.com/orna-jewels/pipeline-api/internal/http/middleware"
	"github.com/orna-jewels/pipeline-api/internal/http/router"
	"github.com/orna-jewels/pipeline-api/internal/jobs"
	"github.com/orna-jewels/pipeline-api/internal/logger"
	"github.com/orna-jewels/pipeline-api/internal/repository"
	"github.com/orna-jewels/pipeline-api/internal/service"
	"go.uber.org/zap"
)

// @title Orna Pipeline API
// @version 1.0
// @description Order pipeline and activity tracking API for custom jewellery production

// @contact.name API Support
// @contact.email support@orna-jewels.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)

	// Configure Swagger host based on environment
	switch cfg.App.Environment {
	case "production":
		docs.SwaggerInfo.Host = "api.orna-jewels.com"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.App.Port)
	}

	// Connect to database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Risk engine policy from config overrides
	policy := domain.DwellPolicyWithOverrides(cfg.Pipeline.StageDays)
	staleDays := cfg.Pipeline.StaleThresholdDays
	dueSoonDays := cfg.Pipeline.DueSoonWindowDays
	if staleDays <= 0 {
		staleDays = domain.StaleThresholdDays
	}

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	numberSequenceRepo := repository.NewNumberSequenceRepository(db)

	// Initialize services
	numberSequenceService := service.NewNumberSequenceService(numberSequenceRepo, log)
	if seq, err := numberSequenceService.GetCurrentSequence(context.Background(), time.Now().Year()); err != nil {
		log.Warn("Failed to read order number sequence", zap.Error(err))
	} else {
		log.Info("Order number sequence loaded",
			zap.Int("year", time.Now().Year()),
			zap.Int("last_issued", seq))
	}
	orderService := service.NewOrderService(orderRepo, activityRepo, numberSequenceService, policy, staleDays, dueSoonDays, log)
	activityService := service.NewActivityService(orderRepo, activityRepo, log)
	dashboardService := service.NewDashboardService(orderRepo, policy, staleDays, dueSoonDays, log)

	// Initialize middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	orderHandler := handler.NewOrderHandler(orderService, log)
	activityHandler := handler.NewActivityHandler(activityService, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		rateLimiter,
		orderHandler,
		activityHandler,
		dashboardHandler,
	)

	// Initialize and start scheduler for background jobs
	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		scheduler = jobs.NewScheduler(log)

		riskScan := jobs.NewRiskScanJob(orderRepo, policy, staleDays, dueSoonDays, log)
		if err := scheduler.AddJob(riskScan.Name(), cfg.Jobs.RiskScanSchedule, riskScan.Run); err != nil {
			log.Error("Failed to register risk scan job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started",
				zap.String("risk_scan_schedule", cfg.Jobs.RiskScanSchedule))
		}
	} else {
		log.Info("Background jobs disabled")
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		// Stop scheduler if running
		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
