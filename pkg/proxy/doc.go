// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

// Package proxy implements a forward HTTP proxy: a client-facing engine
// that authenticates inbound requests via a pluggable Authenticator chain,
// runs each request and response through an ordered Handler chain capable
// of observing, rewriting, or short-circuiting either direction, strips
// hop-by-hop headers before forwarding, and tunnels CONNECT traffic
// byte-for-byte between client and origin.
//
// A Proxy is assembled once via ProxyBuilder and is safe for concurrent
// use by many in-flight Flows; its authenticator and handler chains are
// immutable after Build.
package proxy
