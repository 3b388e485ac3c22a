package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/orna-jewels/pipeline-api/internal/config"
	"github.com/orna-jewels/pipeline-api/internal/database"
	"github.com/orna-jewels/pipeline-api/internal/http/handler"
	"github.com/orna-jewels/pipeline-api/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/orna-jewels/pipeline-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg              *config.Config
	logger           *zap.Logger
	db               *gorm.DB
	rateLimiter      *middleware.RateLimiter
	orderHandler     *handler.OrderHandler
	activityHandler  *handler.ActivityHandler
	dashboardHandler *handler.DashboardHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	rateLimiter *middleware.RateLimiter,
	orderHandler *handler.OrderHandler,
	activityHandler *handler.ActivityHandler,
	dashboardHandler *handler.DashboardHandler,
) *Router {
	return &Router{
		cfg:              cfg,
		logger:           logger,
		db:               db,
		rateLimiter:      rateLimiter,
		orderHandler:     orderHandler,
		activityHandler:  activityHandler,
		dashboardHandler: dashboardHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.Limit)

	// Health check (basic liveness endpoint)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness endpoint with pool stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
			},
		})
	})

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Enquiries
		r.Post("/enquiries", rt.orderHandler.CreateEnquiry)

		// Orders
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", rt.orderHandler.List)
			r.Post("/", rt.orderHandler.Create)
			r.Get("/token/{token}", rt.orderHandler.GetByToken)
			r.Get("/{id}", rt.orderHandler.GetByID)
			r.Post("/{id}/confirm", rt.orderHandler.Confirm)

			// Activity ledger
			r.Post("/{id}/updates", rt.activityHandler.PostUpdate)
			r.Post("/{id}/stage", rt.activityHandler.ChangeStage)
			r.Get("/{id}/activity", rt.activityHandler.Timeline)
		})

		// Dashboard
		r.Get("/dashboard/summary", rt.dashboardHandler.GetSummary)
	})

	return r
}
