// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

// Package middleware collects ready-made proxy.Handler implementations
// for concerns that recur across deployments: upstream request signing,
// access logging, and X-Forwarded-* header maintenance.
package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/go-core-stack/forward-proxy/pkg/message"
	"github.com/go-core-stack/forward-proxy/pkg/proxy"
)

const (
	HeaderAPIKey    = "x-api-key-id"
	HeaderSignature = "x-signature"
	HeaderTimestamp = "x-timestamp"
)

// Signing is a proxy.Handler that injects HMAC auth headers on the forward
// path so traffic can be re-authenticated by a signature-checking upstream.
// It runs as an ordinary chain entry rather than a call baked into the
// forwarder itself, so it can be enabled, reordered, or dropped per Proxy.
type Signing struct {
	proxy.BaseHandler

	Key    string
	Secret string
	Now    func() time.Time
}

// NewSigning constructs a Signing handler with the given key/secret and a
// real-clock Now.
func NewSigning(key, secret string) *Signing {
	return &Signing{
		Key:    key,
		Secret: secret,
		Now:    func() time.Time { return time.Now().UTC() },
	}
}

// OnRequest computes an HMAC-SHA256 signature over method, path, and
// timestamp, and attaches it via Modify. A misconfigured signer (empty
// key/secret) is logged and otherwise a no-op: signing failures must never
// take down the proxy path.
func (s *Signing) OnRequest(ctx context.Context, flow *proxy.Flow, req message.Request) proxy.Forward {
	if s.Key == "" || s.Secret == "" {
		flow.Logger().Warn().Msg("signing handler configured without key/secret; skipping")
		return proxy.ForwardDoNothing()
	}

	now := s.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	timestamp := now().Format(time.RFC3339)

	path := "/"
	if req.URI != nil {
		path = req.URI.Path
	}

	payload := strings.Join([]string{req.Method, path, timestamp}, "\n")

	mac := hmac.New(sha256.New, []byte(s.Secret))
	fmt.Fprint(mac, payload)
	signature := hex.EncodeToString(mac.Sum(nil))

	clone := req.Clone()
	clone.Header.Set(HeaderAPIKey, s.Key)
	clone.Header.Set(HeaderSignature, signature)
	clone.Header.Set(HeaderTimestamp, timestamp)

	return proxy.ForwardModify(clone)
}
