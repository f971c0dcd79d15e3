// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return New(prometheus.NewRegistry(), zerolog.Nop())
}

func TestHealthEndpointsReturnOK(t *testing.T) {
	s := newTestServer()

	for _, path := range []string{"/ht", "/healthz"} {
		rec := httptest.NewRecorder()
		s.mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
		require.Equal(t, "OK", rec.Body.String(), path)
	}
}

func TestMetricsEndpointExposesPrometheusFormat(t *testing.T) {
	s := newTestServer()

	rec := httptest.NewRecorder()
	s.mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestUnmatchedRouteReturns404(t *testing.T) {
	s := newTestServer()

	rec := httptest.NewRecorder()
	s.mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Not found\n", rec.Body.String())
}
