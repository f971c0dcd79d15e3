// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package middleware

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/go-core-stack/forward-proxy/pkg/message"
	"github.com/go-core-stack/forward-proxy/pkg/proxy"
)

func TestRequestIDStampsWhenMissing(t *testing.T) {
	req := message.NewRequest()

	action := RequestID{}.OnRequest(context.Background(), proxy.NewTestFlow(), req)

	id := action.Request().Header.Get("X-Request-Id")
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
}

func TestRequestIDLeavesExistingValue(t *testing.T) {
	req := message.NewRequest()
	req.Header.Set("X-Request-Id", "caller-supplied")

	action := RequestID{}.OnRequest(context.Background(), proxy.NewTestFlow(), req)

	require.Equal(t, message.Request{}, action.Request()) // DoNothing carries no request
	require.Equal(t, "caller-supplied", req.Header.Get("X-Request-Id"))
}
