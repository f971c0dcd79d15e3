// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package middleware

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-core-stack/forward-proxy/pkg/message"
	"github.com/go-core-stack/forward-proxy/pkg/proxy"
)

func TestForwardedForSetsHeadersFromScratch(t *testing.T) {
	req := message.NewRequest()
	req.URI = &url.URL{Host: "origin.example:443"}

	action := ForwardedFor{}.OnRequest(context.Background(), proxy.NewTestFlow(), req)

	modified := action.Request()
	require.Equal(t, "127.0.0.1", modified.Header.Get("X-Forwarded-For"))
	require.Equal(t, "http", modified.Header.Get("X-Forwarded-Proto"))
	require.Equal(t, "origin.example:443", modified.Header.Get("X-Forwarded-Host"))
}

func TestForwardedForChainsPriorValue(t *testing.T) {
	req := message.NewRequest()
	req.Header.Set("X-Forwarded-For", "10.0.0.1")
	req.Header.Set("X-Forwarded-Proto", "https")

	action := ForwardedFor{}.OnRequest(context.Background(), proxy.NewTestFlow(), req)

	modified := action.Request()
	require.Equal(t, "10.0.0.1, 127.0.0.1", modified.Header.Get("X-Forwarded-For"))
	require.Equal(t, "https", modified.Header.Get("X-Forwarded-Proto")) // caller's value is preserved
}
