// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package proxy

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-core-stack/forward-proxy/pkg/auth"
	"github.com/go-core-stack/forward-proxy/pkg/message"
	"github.com/go-core-stack/forward-proxy/pkg/metrics"
)

// Proxy is the shared, long-lived application object: a stable id, an
// atomic flow-id counter, the outbound client used to reach origins, and
// the immutable ordered authenticator/handler chains.
type Proxy struct {
	id       string
	counter  atomic.Uint64
	client   *http.Client
	auths    []auth.Authenticator
	handlers []Handler
	metrics  metrics.Collector
	logger   zerolog.Logger

	server *http.Server
}

// ID returns the proxy's stable telemetry label.
func (p *Proxy) ID() string { return p.id }

// NewClient builds the outbound *http.Client the engine uses to reach
// origins, exported so main.go can apply configured TLS/timeout settings
// without reaching into package internals.
func NewClient(insecureSkipVerify bool, timeout time.Duration) *http.Client {
	return defaultOutboundClient(insecureSkipVerify, timeout)
}

// defaultOutboundClient builds an *http.Client with pooling and timeout
// defaults suitable for dialing arbitrary origins per request.
func defaultOutboundClient(insecureSkipVerify bool, timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy:                 nil, // the proxy forwards directly; it does not chain through an env proxy.
		DialContext:           (&net.Dialer{Timeout: 30 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		ForceAttemptHTTP2:     false, // HTTP/2 origin connections are a non-goal.
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: insecureSkipVerify, // nolint:gosec -- opt-in for development scenarios
		},
	}

	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// Run binds an HTTP/1.1 listener at addr and serves until ctx is
// cancelled, then shuts down gracefully. It blocks until shutdown
// completes or the server fails.
func (p *Proxy) Run(ctx context.Context, addr string) error {
	p.server = &http.Server{
		Addr:              addr,
		Handler:           p,
		ReadHeaderTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		p.logger.Info().Str("listen_addr", addr).Str("id", p.id).Msg("starting forward proxy")
		if err := p.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("proxy server: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		p.logger.Info().Msg("shutting down forward proxy")
		if err := p.server.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("shutdown forward proxy: %w", err)
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}

// ServeHTTP implements http.Handler. It dispatches CONNECT to the tunnel
// path and everything else to the proxy path.
func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	flow := newFlow(p, remoteAddr(r))
	p.metrics.IncrementCounter(metrics.RequestsTotalName)

	flow.logger.Info().
		Str("client", flow.client.String()).
		Str("version", r.Proto).
		Str("method", r.Method).
		Str("uri", r.RequestURI).
		Msg("request received")

	if r.Method == http.MethodConnect {
		p.serveConnect(w, r, flow)
	} else {
		p.serveProxy(w, r, flow)
	}

	p.metrics.ObserveHistogram(metrics.RequestDurationSecondsName, time.Since(start).Seconds())
}

// remoteAddr wraps r.RemoteAddr as a net.Addr for Flow.Client(), falling
// back to a plain string-backed address if it doesn't parse as host:port.
func remoteAddr(r *http.Request) net.Addr {
	host, port, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return stringAddr(r.RemoteAddr)
	}
	return &net.TCPAddr{IP: net.ParseIP(host), Port: atoiOrZero(port)}
}

type stringAddr string

func (s stringAddr) Network() string { return "unknown" }
func (s stringAddr) String() string  { return string(s) }

func atoiOrZero(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// serveProxy implements the non-CONNECT proxy path.
func (p *Proxy) serveProxy(w http.ResponseWriter, r *http.Request, flow *Flow) {
	if r.URL.Host == "" {
		http.Error(w, "proxy request URI has no host", http.StatusBadRequest)
		return
	}

	req, err := message.FromHTTPRequest(r)
	if err != nil {
		flow.logger.Error().Err(err).Msg("failed to buffer request body")
		http.Error(w, "internal proxy error", http.StatusInternalServerError)
		return
	}
	req.URI = r.URL

	if len(p.auths) > 0 {
		if !p.authenticate(flow, req, w) {
			return
		}
	}

	req, shortCircuit := p.runForwardChain(flow, req)
	if shortCircuit != nil {
		p.deliver(w, flow, *shortCircuit)
		return
	}

	message.StripHopByHop(req.Header)

	upstreamReq, err := req.ToHTTPRequest(r.Context())
	if err != nil {
		flow.logger.Error().Err(err).Msg("failed to build upstream request")
		http.Error(w, "bad gateway", http.StatusBadGateway)
		return
	}

	httpResp, err := p.client.Do(upstreamReq)
	if err != nil {
		flow.logger.Error().Err(err).Msg("upstream request failed")
		http.Error(w, "bad gateway", http.StatusBadGateway)
		return
	}

	resp, err := message.FromHTTPResponse(httpResp, req)
	if err != nil {
		flow.logger.Error().Err(err).Msg("failed to buffer upstream response body")
		http.Error(w, "bad gateway", http.StatusBadGateway)
		return
	}

	resp = p.runReverseChain(flow, resp)

	p.deliver(w, flow, resp)
}

// authenticate runs the extraction + authenticator pipeline. It writes an
// error response and returns false when authentication should stop the
// request; otherwise it sets flow.auth (at most once) and returns true.
func (p *Proxy) authenticate(flow *Flow, req message.Request, w http.ResponseWriter) bool {
	credentials, err := auth.Extract(req)
	if err != nil {
		http.Error(w, "invalid proxy auth credentials", http.StatusBadRequest)
		return false
	}

	for _, a := range p.auths {
		if err := a.Authenticate(context.Background(), credentials); err != nil {
			flow.logger.Debug().Err(err).Msg("authentication attempt failed")
			continue
		}
		flow.auth = &credentials
		break
	}

	if flow.auth == nil {
		w.Header().Set("Proxy-Authenticate", "Bearer")
		w.WriteHeader(http.StatusProxyAuthRequired)
		return false
	}

	return true
}

// runForwardChain iterates handlers in declared order. It returns the
// (possibly modified) request, or a non-nil response when some handler
// replied — in which case the request return value must not be used.
func (p *Proxy) runForwardChain(flow *Flow, req message.Request) (message.Request, *message.Response) {
	for i, h := range p.handlers {
		action := p.invokeOnRequest(flow, h, i, req)
		switch action.kind {
		case forwardDoNothing:
			// no-op
		case forwardModify:
			req = action.request
		case forwardReply:
			resp := action.response
			return req, &resp
		}
	}
	return req, nil
}

// runReverseChain iterates handlers in the same declared order (not
// reversed) on the reverse path.
func (p *Proxy) runReverseChain(flow *Flow, resp message.Response) message.Response {
	for i, h := range p.handlers {
		action := p.invokeOnResponse(flow, h, i, resp)
		switch action.kind {
		case reverseDoNothing:
			// no-op
		case reverseModify:
			resp = action.response
		case reverseReplace:
			return action.response
		}
	}
	return resp
}

// invokeOnRequest isolates a handler's OnRequest call: a panic is
// recovered, logged at error with handler index + flow id, and treated as
// DoNothing rather than crashing the server.
func (p *Proxy) invokeOnRequest(flow *Flow, h Handler, index int, req message.Request) (result Forward) {
	defer func() {
		if r := recover(); r != nil {
			flow.logger.Error().
				Interface("panic", r).
				Int("handler", index).
				Uint64("flow", flow.id).
				Msg("handler panicked in OnRequest; treating as DoNothing")
			result = ForwardDoNothing()
		}
	}()
	return h.OnRequest(context.Background(), flow, req)
}

// invokeOnResponse is the reverse-path counterpart to invokeOnRequest.
func (p *Proxy) invokeOnResponse(flow *Flow, h Handler, index int, resp message.Response) (result Reverse) {
	defer func() {
		if r := recover(); r != nil {
			flow.logger.Error().
				Interface("panic", r).
				Int("handler", index).
				Uint64("flow", flow.id).
				Msg("handler panicked in OnResponse; treating as DoNothing")
			result = ReverseDoNothing()
		}
	}()
	return h.OnResponse(context.Background(), flow, resp)
}

// deliver writes a message.Response to the client, logging the final
// outcome.
func (p *Proxy) deliver(w http.ResponseWriter, flow *Flow, resp message.Response) {
	if err := resp.WriteTo(w); err != nil {
		flow.logger.Error().Err(err).Msg("failed to write response to client")
		return
	}
	flow.logger.Info().Int("status", resp.Status).Msg("request proxied")
}
