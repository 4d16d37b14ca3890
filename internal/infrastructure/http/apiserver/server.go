// Package apiserver provides the pure JSON API HTTP server implementation
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/infrastructure/config"
	"github.com/pantrysage/v2/internal/infrastructure/http/handlers"
	"github.com/pantrysage/v2/internal/infrastructure/http/middleware"
	"github.com/pantrysage/v2/internal/infrastructure/monitoring"
	"github.com/pantrysage/v2/internal/ports/inbound"
)

// APIServer represents the pure JSON API HTTP server
type APIServer struct {
	config           *config.Config
	logger           *zap.Logger
	server           *http.Server
	router           *chi.Mux
	metrics          *monitoring.Metrics
	inventoryService inbound.InventoryService
	shoppingService  inbound.ShoppingService
	pricingService   inbound.PricingService
	readyProbe       func() error
}

// NewAPIServer creates a new API server instance. readyProbe checks
// downstream dependencies for the readiness endpoint; nil means always ready.
func NewAPIServer(
	cfg *config.Config,
	log *zap.Logger,
	inventoryService inbound.InventoryService,
	shoppingService inbound.ShoppingService,
	pricingService inbound.PricingService,
	readyProbe func() error,
) *APIServer {
	server := &APIServer{
		config:           cfg,
		logger:           log,
		metrics:          monitoring.NewMetrics(),
		inventoryService: inventoryService,
		shoppingService:  shoppingService,
		pricingService:   pricingService,
		readyProbe:       readyProbe,
	}

	server.router = server.setupRoutes()
	server.server = &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:        server.router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return server
}

// setupRoutes configures the JSON API routes
func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(middleware.CORS(s.config))
	r.Use(middleware.RateLimit(s.config))
	if s.config.Monitoring.EnableMetrics {
		r.Use(s.metrics.Middleware())
	}

	// API-specific middleware
	r.Use(chimiddleware.Timeout(30 * time.Second))
	if s.config.Server.EnableCompression {
		r.Use(chimiddleware.Compress(5))
	}

	// Operational endpoints stay outside the JSON-only group
	health := handlers.NewHealthHandlers(s.config.App.Version, s.logger, s.readyProbe)
	r.Get(s.config.Monitoring.HealthCheckPath, health.HealthCheck)
	r.Get(s.config.Monitoring.ReadinessPath, health.ReadinessCheck)
	if s.config.Monitoring.EnableMetrics {
		r.Method(http.MethodGet, s.config.Monitoring.MetricsPath, s.metrics.Handler())
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.JSONOnly())
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints
func (s *APIServer) setupAPIV1Routes(r chi.Router) {
	inventoryH := handlers.NewInventoryAPIHandlers(s.inventoryService, s.logger)
	shoppingH := handlers.NewShoppingAPIHandlers(s.shoppingService, s.logger)
	pricingH := handlers.NewPricingAPIHandlers(s.pricingService, s.logger)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity())

		// Pantry inventory routes
		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", inventoryH.ListItems)
			r.Post("/", inventoryH.AddItem)
			r.Put("/{id}/quantity", inventoryH.UpdateQuantity)
			r.Delete("/{id}", inventoryH.RemoveItem)
			r.Post("/match", inventoryH.MatchIngredients)
		})

		// Shopping list routes
		r.Route("/shopping", func(r chi.Router) {
			r.Post("/totals", shoppingH.CalculateTotals)
			r.Post("/totals/export", shoppingH.ExportTotals)
			r.Route("/lists", func(r chi.Router) {
				r.Get("/", shoppingH.ListLists)
				r.Post("/", shoppingH.SaveList)
				r.Get("/{id}", shoppingH.GetList)
				r.Delete("/{id}", shoppingH.DeleteList)
			})
		})

		// Price tracking routes
		r.Route("/prices", func(r chi.Router) {
			r.Post("/", pricingH.RecordPrice)
			r.Get("/lookup", pricingH.Lookup)
		})
	})
}

// Start starts the API HTTP server
func (s *APIServer) Start() error {
	s.logger.Info("Starting JSON API server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	return s.server.ListenAndServe()
}

// Server returns the underlying HTTP server instance
func (s *APIServer) Server() *http.Server {
	return s.server
}

// Shutdown gracefully shuts down the API server
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")
	return s.server.Shutdown(ctx)
}
