// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package proxy

import (
	"net"

	"github.com/rs/zerolog"

	"github.com/go-core-stack/forward-proxy/pkg/auth"
)

// Flow carries the per-request state threaded through the
// authentication pipeline and the handler chain: a monotonic id, the
// client's address, and the authentication outcome, plus a shared handle
// back to the owning Proxy.
type Flow struct {
	id     uint64
	client net.Addr
	auth   *auth.Credentials
	app    *Proxy
	logger zerolog.Logger
}

// newFlow assigns a new id via atomic fetch-and-increment on the Proxy's
// counter. The first flow created against a fresh Proxy gets id 0.
func newFlow(app *Proxy, client net.Addr) *Flow {
	id := app.counter.Add(1) - 1
	return &Flow{
		id:     id,
		client: client,
		app:    app,
		logger: app.logger.With().Str("app", app.id).Uint64("flow", id).Logger(),
	}
}

// ID returns the flow's unique-within-this-Proxy-instance sequence number.
func (f *Flow) ID() uint64 { return f.id }

// Client returns the remote address the inbound connection was accepted
// from.
func (f *Flow) Client() net.Addr { return f.client }

// Auth returns the credentials that satisfied some authenticator, or nil
// if authentication did not run or did not succeed. Handlers must treat
// the returned value as read-only: the single mutation happens in the
// engine before any handler runs.
func (f *Flow) Auth() *auth.Credentials { return f.auth }

// App returns the shared, read-only handle to the owning Proxy.
func (f *Flow) App() *Proxy { return f.app }

// Logger returns a zerolog.Logger pre-seeded with this flow's app/flow
// fields.
func (f *Flow) Logger() zerolog.Logger { return f.logger }
