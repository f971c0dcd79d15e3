// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

// Package metrics defines the observability collaborator the proxy engine
// reports into: a request counter and a request-duration histogram, backed
// by prometheus/client_golang.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector is the narrow contract the engine depends on. Keeping it this
// small (rather than exposing the prometheus.Registry directly) lets tests
// substitute Noop without pulling in a registry.
type Collector interface {
	// IncrementCounter increments the named counter by one.
	IncrementCounter(name string)
	// ObserveHistogram records one observation of seconds into the named
	// histogram.
	ObserveHistogram(name string, seconds float64)
}

// Names of the two metrics the engine reports.
const (
	RequestsTotalName          = "http_requests_total"
	RequestDurationSecondsName = "http_request_duration_seconds"
)

// PrometheusCollector registers and updates the two metrics above against
// a caller-supplied registry.
type PrometheusCollector struct {
	requestsTotal   prometheus.Counter
	requestDuration prometheus.Histogram
}

// NewPrometheus registers http_requests_total and
// http_request_duration_seconds against reg and returns a Collector backed
// by them.
func NewPrometheus(reg *prometheus.Registry) *PrometheusCollector {
	c := &PrometheusCollector{
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: RequestsTotalName,
			Help: "Number of HTTP requests made.",
		}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    RequestDurationSecondsName,
			Help:    "The HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(c.requestsTotal, c.requestDuration)

	return c
}

// IncrementCounter implements Collector. name is currently always
// RequestsTotalName; the parameter exists so Collector can grow additional
// counters without an interface break.
func (c *PrometheusCollector) IncrementCounter(name string) {
	if name == RequestsTotalName {
		c.requestsTotal.Inc()
	}
}

// ObserveHistogram implements Collector.
func (c *PrometheusCollector) ObserveHistogram(name string, seconds float64) {
	if name == RequestDurationSecondsName {
		c.requestDuration.Observe(seconds)
	}
}

// Noop is a Collector that discards everything; useful in tests that don't
// assert on metrics.
type Noop struct{}

// IncrementCounter implements Collector.
func (Noop) IncrementCounter(string) {}

// ObserveHistogram implements Collector.
func (Noop) ObserveHistogram(string, float64) {}
