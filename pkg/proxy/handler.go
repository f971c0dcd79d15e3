// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package proxy

import (
	"context"

	"github.com/go-core-stack/forward-proxy/pkg/message"
)

// Handler is a user-supplied interceptor that may observe, rewrite, or
// short-circuit the request (OnRequest) and response (OnResponse) of a
// flow. Implementations must be safe for concurrent invocation from
// multiple flows.
type Handler interface {
	// OnRequest is called once per handler, in declared chain order, on
	// the forward path (client -> origin).
	OnRequest(ctx context.Context, flow *Flow, req message.Request) Forward

	// OnResponse is called once per handler, in declared chain order
	// (not reversed), on the reverse path (origin -> client).
	OnResponse(ctx context.Context, flow *Flow, resp message.Response) Reverse
}

// BaseHandler implements Handler as a no-op on both hooks so concrete
// handlers only need to override the direction they care about.
type BaseHandler struct{}

// OnRequest always returns DoNothing.
func (BaseHandler) OnRequest(context.Context, *Flow, message.Request) Forward {
	return ForwardDoNothing()
}

// OnResponse always returns DoNothing.
func (BaseHandler) OnResponse(context.Context, *Flow, message.Response) Reverse {
	return ReverseDoNothing()
}

// forwardKind tags which variant of the forward action algebra a Forward
// value holds. It is unexported: callers construct Forward values only
// through the constructor functions below, so the three-valued algebra
// can't be bypassed by zero-value construction.
type forwardKind int

const (
	forwardDoNothing forwardKind = iota
	forwardModify
	forwardReply
)

// Forward is the forward-direction action a Handler's OnRequest returns:
// DoNothing, Modify(request), or Reply(response).
type Forward struct {
	kind     forwardKind
	request  message.Request
	response message.Response
}

// ForwardDoNothing leaves the request unchanged and continues the chain.
func ForwardDoNothing() Forward {
	return Forward{kind: forwardDoNothing}
}

// ForwardModify replaces the request for the remainder of the chain.
func ForwardModify(req message.Request) Forward {
	return Forward{kind: forwardModify, request: req}
}

// ForwardReply abandons the chain and the upstream call, returning resp to
// the client directly. Remaining handlers are not invoked in either
// direction.
func ForwardReply(resp message.Response) Forward {
	return Forward{kind: forwardReply, response: resp}
}

// Request returns the carried request. It is only meaningful when the
// Forward was built with ForwardModify; for DoNothing/Reply it returns the
// zero value.
func (f Forward) Request() message.Request { return f.request }

// Response returns the carried response. It is only meaningful when the
// Forward was built with ForwardReply.
func (f Forward) Response() message.Response { return f.response }

// reverseKind tags which variant of the reverse action algebra a Reverse
// value holds.
type reverseKind int

const (
	reverseDoNothing reverseKind = iota
	reverseModify
	reverseReplace
)

// Reverse is the reverse-direction action a Handler's OnResponse returns:
// DoNothing, Modify(response), or Replace(response).
type Reverse struct {
	kind     reverseKind
	response message.Response
}

// ReverseDoNothing leaves the response unchanged and continues the chain.
func ReverseDoNothing() Reverse {
	return Reverse{kind: reverseDoNothing}
}

// ReverseModify replaces the response and continues the chain.
func ReverseModify(resp message.Response) Reverse {
	return Reverse{kind: reverseModify, response: resp}
}

// ReverseReplace short-circuits the remaining reverse handlers; the
// replacement is still delivered to the client.
func ReverseReplace(resp message.Response) Reverse {
	return Reverse{kind: reverseReplace, response: resp}
}

// Response returns the carried response for either Modify or Replace; it is
// the zero value for DoNothing.
func (r Reverse) Response() message.Response { return r.response }
