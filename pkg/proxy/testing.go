// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package proxy

import "net"

// NewTestFlow builds a Flow against a throwaway Proxy, for use by tests in
// other packages (notably pkg/middleware) that exercise a Handler in
// isolation without running the full engine.
func NewTestFlow() *Flow {
	app := &Proxy{id: "test", client: defaultOutboundClient(false, 0)}
	return newFlow(app, &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 12345})
}
