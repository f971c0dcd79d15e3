// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/go-core-stack/forward-proxy/pkg/message"
	"github.com/go-core-stack/forward-proxy/pkg/proxy"
)

// RequestID is a proxy.Handler that stamps X-Request-Id on the forward pass
// when the client didn't supply one, giving operators a stable id to
// correlate proxy logs with upstream logs.
type RequestID struct {
	proxy.BaseHandler
}

// OnRequest sets X-Request-Id to a fresh UUIDv4 unless the client already
// supplied one.
func (RequestID) OnRequest(ctx context.Context, flow *proxy.Flow, req message.Request) proxy.Forward {
	if req.Header.Get("X-Request-Id") != "" {
		return proxy.ForwardDoNothing()
	}

	clone := req.Clone()
	clone.Header.Set("X-Request-Id", uuid.NewString())
	return proxy.ForwardModify(clone)
}
