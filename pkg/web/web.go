// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

// Package web serves the proxy's auxiliary, unauthenticated endpoints —
// health checks and Prometheus exposition — on a listener separate from
// the forward-proxy listener.
package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Server is the auxiliary HTTP server: /ht, /healthz, /metrics, and a 404
// fallback for everything else.
type Server struct {
	registry *prometheus.Registry
	logger   zerolog.Logger
	server   *http.Server
}

// New builds a Server backed by registry for /metrics exposition.
func New(registry *prometheus.Registry, logger zerolog.Logger) *Server {
	return &Server{registry: registry, logger: logger}
}

func (s *Server) mux() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ht", ok)
	mux.HandleFunc("/healthz", ok)
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/", notFound)
	return mux
}

func ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "OK")
}

// notFound returns a 404 status with a plain "Not found" body for any
// unmatched route.
func notFound(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Not found", http.StatusNotFound)
}

// Run binds addr and serves until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.mux(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("listen_addr", addr).Msg("starting web server")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("web server: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutting down web server")
		if err := s.server.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("shutdown web server: %w", err)
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}
