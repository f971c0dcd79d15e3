// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package middleware

import (
	"context"

	"github.com/go-core-stack/forward-proxy/pkg/message"
	"github.com/go-core-stack/forward-proxy/pkg/proxy"
)

// AccessLog is a proxy.Handler that logs one structured line per direction.
type AccessLog struct {
	proxy.BaseHandler
}

// OnRequest logs the outgoing method/URI and continues the chain unchanged.
func (AccessLog) OnRequest(ctx context.Context, flow *proxy.Flow, req message.Request) proxy.Forward {
	target := "/"
	if req.URI != nil {
		target = req.URI.String()
	}
	flow.Logger().Info().
		Str("method", req.Method).
		Str("uri", target).
		Int("payload_bytes", len(req.Payload)).
		Msg("forwarding request")
	return proxy.ForwardDoNothing()
}

// OnResponse logs the upstream status and continues the chain unchanged.
func (AccessLog) OnResponse(ctx context.Context, flow *proxy.Flow, resp message.Response) proxy.Reverse {
	flow.Logger().Info().
		Int("status", resp.Status).
		Int("payload_bytes", len(resp.Payload)).
		Msg("received response")
	return proxy.ReverseDoNothing()
}
