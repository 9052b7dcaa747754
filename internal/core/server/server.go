package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ecomarine/ecaroute/internal/core/config"
	"github.com/ecomarine/ecaroute/internal/core/health"
	middleware "github.com/ecomarine/ecaroute/internal/core/middleware"
	"github.com/ecomarine/ecaroute/internal/core/router"
)

// Version is stamped via -ldflags at release build time.
var Version = "dev"

// Routes assembles the full HTTP surface. Split out from Run so tests can
// drive the mux with httptest without binding a port.
func Routes(logger *slog.Logger, h *router.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recover())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS())

	r.Get("/", health.Root("ecaroute", Version))
	r.Get("/ping", health.Liveness())
	r.Get("/healthz", health.Liveness())
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Post("/calculate_route", h.CalculateRoute)
	r.Get("/check-point", h.CheckPoint)
	r.Get("/supported-zones", h.SupportedZones)
	return r
}

// sets up http and starts serving
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger, h *router.Handlers) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           Routes(logger, h),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http listen", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		return err
	}
}
