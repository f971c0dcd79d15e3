// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package proxy

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/go-core-stack/forward-proxy/pkg/auth"
	"github.com/go-core-stack/forward-proxy/pkg/metrics"
)

// ProxyBuilder assembles a Proxy. The zero value is ready to use; any
// field left unset falls back to the default noted on its setter.
type ProxyBuilder struct {
	id       string
	client   *http.Client
	auths    []auth.Authenticator
	handlers []Handler
	metrics  metrics.Collector
	logger   *zerolog.Logger
}

// NewBuilder returns an empty ProxyBuilder.
func NewBuilder() *ProxyBuilder {
	return &ProxyBuilder{}
}

// ID sets the stable string label used in telemetry fields. Defaults to
// "proxy".
func (b *ProxyBuilder) ID(id string) *ProxyBuilder {
	b.id = id
	return b
}

// Client sets the outbound HTTP client used to reach origins. Defaults to
// a client with sane pooling/timeouts if unset.
func (b *ProxyBuilder) Client(client *http.Client) *ProxyBuilder {
	b.client = client
	return b
}

// Auths sets the ordered authenticator chain. Empty (the default) disables
// authentication entirely.
func (b *ProxyBuilder) Auths(auths ...auth.Authenticator) *ProxyBuilder {
	b.auths = auths
	return b
}

// Handlers sets the ordered interceptor chain.
func (b *ProxyBuilder) Handlers(handlers ...Handler) *ProxyBuilder {
	b.handlers = handlers
	return b
}

// Metrics sets the observability collaborator. Defaults to metrics.Noop.
func (b *ProxyBuilder) Metrics(c metrics.Collector) *ProxyBuilder {
	b.metrics = c
	return b
}

// Logger sets the base zerolog.Logger flows derive their per-request
// loggers from. Defaults to the global github.com/rs/zerolog/log logger.
func (b *ProxyBuilder) Logger(logger zerolog.Logger) *ProxyBuilder {
	b.logger = &logger
	return b
}

// Build finalizes the Proxy. auths and handlers become immutable slices
// after this call: there is no runtime registration once a Proxy exists.
func (b *ProxyBuilder) Build() (*Proxy, error) {
	id := b.id
	if id == "" {
		id = "proxy"
	}

	client := b.client
	if client == nil {
		client = defaultOutboundClient(false, 0)
	}

	collector := b.metrics
	if collector == nil {
		collector = metrics.Noop{}
	}

	logger := log.Logger
	if b.logger != nil {
		logger = *b.logger
	}

	return &Proxy{
		id:       id,
		client:   client,
		auths:    append([]auth.Authenticator(nil), b.auths...),
		handlers: append([]Handler(nil), b.handlers...),
		metrics:  collector,
		logger:   logger,
	}, nil
}
