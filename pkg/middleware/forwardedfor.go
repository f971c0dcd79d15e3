// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package middleware

import (
	"context"
	"net"

	"github.com/go-core-stack/forward-proxy/pkg/message"
	"github.com/go-core-stack/forward-proxy/pkg/proxy"
)

// ForwardedFor is a proxy.Handler that maintains X-Forwarded-For,
// X-Forwarded-Proto, and X-Forwarded-Host on the request it forwards
// upstream.
type ForwardedFor struct {
	proxy.BaseHandler
}

// OnRequest appends the flow's client address to X-Forwarded-For (chaining
// onto any prior value) and sets X-Forwarded-Proto when the client didn't
// supply one.
func (ForwardedFor) OnRequest(ctx context.Context, flow *proxy.Flow, req message.Request) proxy.Forward {
	clone := req.Clone()

	clientIP := flow.Client().String()
	if host, _, err := net.SplitHostPort(clientIP); err == nil {
		clientIP = host
	}

	if prior := clone.Header.Get("X-Forwarded-For"); prior != "" {
		clientIP = prior + ", " + clientIP
	}
	clone.Header.Set("X-Forwarded-For", clientIP)

	if clone.Header.Get("X-Forwarded-Proto") == "" {
		clone.Header.Set("X-Forwarded-Proto", "http")
	}

	if clone.URI != nil && clone.URI.Host != "" {
		clone.Header.Set("X-Forwarded-Host", clone.URI.Host)
	}

	return proxy.ForwardModify(clone)
}
