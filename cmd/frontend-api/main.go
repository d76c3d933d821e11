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

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/blefnk/relivator-docker-frontend/internal/api/handlers"
	gw_middleware "github.com/blefnk/relivator-docker-frontend/internal/api/middleware"
	"github.com/blefnk/relivator-docker-frontend/internal/api/router"
	"github.com/blefnk/relivator-docker-frontend/internal/config"
	"github.com/blefnk/relivator-docker-frontend/internal/logging"
	"github.com/blefnk/relivator-docker-frontend/internal/probe"
)

func main() {
	// --- 1. Configuration & Telemetry ---
	_ = godotenv.Load() // .env is optional; real deployments inject env vars

	cfg := config.Load()

	logger := logging.New(cfg.Environment).With(
		slog.String("instance", uuid.NewString()),
	)
	slog.SetDefault(logger)
	logger.Info("booting frontend gateway",
		slog.String("environment", cfg.Environment),
		slog.String("commit", cfg.ShortCommit()),
	)

	// --- 2. Dependency Injection ---
	prober := probe.New(cfg.BackendBaseURL, cfg.ProbeTimeout, logger)

	healthHandler := handlers.NewHealthHandler(prober, cfg.ShortCommit())
	probeHandler := handlers.NewProbeHandler(prober)

	rateLimiter := gw_middleware.NewRateLimiter(10, 30)

	// --- 3. HTTP Gateway ---
	mux := router.NewRouter(router.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		HealthHandler:  healthHandler,
		ProbeHandler:   probeHandler,
		RateLimiter:    rateLimiter,
		Logger:         logger,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	// --- 4. Graceful Exit ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("frontend gateway active", slog.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server crashed", logging.Err(err))
			os.Exit(1)
		}
	}()

	<-stop
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", logging.Err(err))
	}
	logger.Info("frontend gateway stopped")
}
