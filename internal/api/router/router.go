package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/blefnk/relivator-docker-frontend/internal/api/handlers"
	gw_middleware "github.com/blefnk/relivator-docker-frontend/internal/api/middleware"
)

// RouterConfig defines the strict dependencies required to build the API routing tree.
type RouterConfig struct {
	AllowedOrigins []string
	HealthHandler  *handlers.HealthHandler
	ProbeHandler   *handlers.ProbeHandler
	RateLimiter    *gw_middleware.RateLimiter
	Logger         *slog.Logger
}

// NewRouter constructs the Chi multiplexer, attaches global middleware, and wires all endpoints.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// =========================================================================
	// 1. Global Gateway Middleware Pipeline
	// =========================================================================

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Limit all incoming JSON requests to 1 Megabyte max (OOM protection)
	r.Use(gw_middleware.MaxBytes(1_048_576))

	// In-memory token bucket rate limiting
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Handler)
	}

	// Strict CORS Configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// =========================================================================
	// 2. API Routing Tree
	// =========================================================================

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Wrap(cfg.Logger, cfg.HealthHandler.Check))
		r.Get("/health/frontend", handlers.Wrap(cfg.Logger, cfg.HealthHandler.Frontend))
		r.Post("/probe", handlers.Wrap(cfg.Logger, cfg.ProbeHandler.Probe))
	})

	// Bare liveness probe for the container HEALTHCHECK; no JSON envelope,
	// no logging, so it stays cheap under aggressive polling.
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	return r
}
