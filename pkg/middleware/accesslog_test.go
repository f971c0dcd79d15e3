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

func TestAccessLogRequestIsDoNothing(t *testing.T) {
	req := message.NewRequest()
	req.URI = &url.URL{Path: "/widgets"}
	before := req.Clone()

	action := AccessLog{}.OnRequest(context.Background(), proxy.NewTestFlow(), req)

	require.Equal(t, before, req) // handler must not mutate the caller's copy
	require.Equal(t, proxy.Forward{}, action)    // zero Forward == ForwardDoNothing()
}

func TestAccessLogResponseIsDoNothing(t *testing.T) {
	resp := message.NewResponse(message.NewRequest())
	resp.Status = 204

	action := AccessLog{}.OnResponse(context.Background(), proxy.NewTestFlow(), resp)

	require.Equal(t, proxy.Reverse{}, action)
}
