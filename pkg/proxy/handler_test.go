// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package proxy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-core-stack/forward-proxy/pkg/message"
)

func TestBaseHandlerIsAllDoNothing(t *testing.T) {
	var h BaseHandler

	fwd := h.OnRequest(context.Background(), NewTestFlow(), message.NewRequest())
	require.Equal(t, ForwardDoNothing(), fwd)

	rev := h.OnResponse(context.Background(), NewTestFlow(), message.NewResponse(message.NewRequest()))
	require.Equal(t, ReverseDoNothing(), rev)
}

func TestForwardModifyCarriesRequest(t *testing.T) {
	req := message.NewRequest()
	req.Method = "DELETE"

	fwd := ForwardModify(req)

	require.Equal(t, "DELETE", fwd.Request().Method)
}

func TestForwardReplyCarriesResponse(t *testing.T) {
	resp := message.NewResponse(message.NewRequest())
	resp.Status = 204

	fwd := ForwardReply(resp)

	require.Equal(t, 204, fwd.Response().Status)
}

func TestReverseReplaceCarriesResponse(t *testing.T) {
	resp := message.NewResponse(message.NewRequest())
	resp.Status = 500

	rev := ReverseReplace(resp)

	require.Equal(t, 500, rev.Response().Status)
}
