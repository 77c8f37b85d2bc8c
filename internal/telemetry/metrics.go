package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// NewMetricsServer returns an HTTP server exposing handler at /metrics.
func NewMetricsServer(addr string, handler http.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// StartMetricsServer serves Prometheus metrics on addr until ctx is cancelled.
func StartMetricsServer(ctx context.Context, addr string, handler http.Handler) error {
	srv := NewMetricsServer(addr, handler)

	errCh := make(chan error, 1)
	go func() {
		LogInfo("Starting metrics server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
