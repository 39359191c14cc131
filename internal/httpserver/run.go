package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/ayushgupta5924/quickbucks/internal/model"
)

const shutdownTimeout = 10 * time.Second

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then shuts
// down gracefully.
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.port),
		Handler: srv.corsHandler(),
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on :%d (mode=%s)", srv.port, srv.mode)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		srv.l.Infof(ctx, "Received %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	srv.l.Infof(ctx, "HTTP server stopped")
	return nil
}

// corsHandler wraps the router with the CORS policy: permissive outside
// production, same-origin plus configured headers in production.
func (srv *HTTPServer) corsHandler() http.Handler {
	if srv.environment == string(model.EnvironmentProduction) {
		return cors.New(cors.Options{
			AllowedMethods: []string{
				http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete,
			},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
		}).Handler(srv.gin)
	}
	return cors.AllowAll().Handler(srv.gin)
}
