// Package main is the entry point of the dimension catalog and calculator
// HTTP service.
//
// 12-Factor App compliance:
//   - III. Config: Configuration via environment variables
//   - VI. Processes: Stateless processes, the catalog is rebuilt at startup
//   - VII. Port Binding: Self-contained HTTP server
//   - IX. Disposability: Graceful shutdown
//   - XI. Logs: Structured logging to stdout
//
// Usage:
//
//	go run ./cmd/dimensiond
//
// Environment Variables:
//
//	DIM_ENVIRONMENT     - Deployment environment (development, staging, production)
//	DIM_SERVER_PORT     - HTTP server port (default: 8080), PORT is also honoured
//	DIM_LOG_LEVEL       - debug, info, warn or error
//	DIM_CATALOG_LOAD_SI - register the SI space at startup (default: true)
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/hapkiduki/dimension-go/internal/application/port"
	"github.com/hapkiduki/dimension-go/internal/application/service"
	"github.com/hapkiduki/dimension-go/internal/infrastructure/config"
	"github.com/hapkiduki/dimension-go/internal/infrastructure/logging"
	"github.com/hapkiduki/dimension-go/internal/infrastructure/metrics"
	"github.com/hapkiduki/dimension-go/internal/infrastructure/persistance/memory"
	"github.com/hapkiduki/dimension-go/internal/interfaces/http/handler"
	"github.com/hapkiduki/dimension-go/internal/interfaces/http/middleware"
	"github.com/hapkiduki/dimension-go/pkg/logger"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	cfg := config.MustLoad()

	log := logger.MustNew(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.App.Environment == "development",
	})
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("Starting dimension service",
		"version", version,
		"environment", cfg.App.Environment,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logAdapter := logging.New(log)

	var (
		recorder port.Metrics = port.NopMetrics{}
		prom     *metrics.Prometheus
	)
	if cfg.Metrics.Enabled {
		prom = metrics.NewPrometheus(cfg.Metrics.Namespace)
		recorder = prom
	}

	// ============================================================================
	// Catalog
	// ============================================================================

	catalog := service.NewCatalogService(memory.NewSpaceRepository(), memory.NewUnitRepository(), logAdapter, recorder)
	calculator := service.NewCalculatorService(catalog, logAdapter, recorder)

	specs := make([]service.SpaceSpec, 0, len(cfg.Catalog.Spaces))
	for _, s := range cfg.Catalog.Spaces {
		specs = append(specs, service.SpaceSpec{Name: s.Name, Dimensions: s.Dimensions})
	}
	if err := catalog.Bootstrap(ctx, cfg.Catalog.LoadSI, specs); err != nil {
		log.Fatal("Catalog bootstrap failed", "error", err)
	}

	// ============================================================================
	// Router
	// ============================================================================

	r := newRouter(cfg, logAdapter, recorder)
	if prom != nil {
		r.Method(http.MethodGet, cfg.Metrics.Path, prom.Handler())
	}
	handler.New(catalog, calculator, logAdapter, version).Routes(r)

	// ============================================================================
	// HTTP server
	// ============================================================================

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
	log.Info("Server shutdown complete")
}

// newRouter builds the router and its middleware stack.
// Order matters! Middleware is executed in the order added.
func newRouter(cfg *config.Config, log port.Logger, recorder port.Metrics) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(middleware.Metrics(recorder))
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-API-Version", "Location"},
		MaxAge:         300,
	}))
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			KeyFunc:           middleware.ClientIP,
		}))
	}
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.APIVersion(version))
	r.Use(middleware.MaxBodySize(cfg.Server.MaxRequestSize))
	r.Use(middleware.ContentTypeJSON)

	return r
}
