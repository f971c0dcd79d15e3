// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package middleware

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-core-stack/forward-proxy/pkg/message"
	"github.com/go-core-stack/forward-proxy/pkg/proxy"
)

func TestSigningAttachesHeaders(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := &Signing{Key: "key-1", Secret: "super-secret", Now: func() time.Time { return fixed }}

	req := message.NewRequest()
	req.Method = "GET"
	req.URI = &url.URL{Path: "/widgets"}

	action := s.OnRequest(context.Background(), proxy.NewTestFlow(), req)

	require.Equal(t, "key-1", action.Request().Header.Get(HeaderAPIKey))
	require.NotEmpty(t, action.Request().Header.Get(HeaderSignature))
	require.Equal(t, fixed.Format(time.RFC3339), action.Request().Header.Get(HeaderTimestamp))
}

func TestSigningIsDeterministic(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := &Signing{Key: "key-1", Secret: "super-secret", Now: func() time.Time { return fixed }}

	req := message.NewRequest()
	req.Method = "POST"
	req.URI = &url.URL{Path: "/widgets/1"}

	a1 := s.OnRequest(context.Background(), proxy.NewTestFlow(), req)
	a2 := s.OnRequest(context.Background(), proxy.NewTestFlow(), req)

	require.Equal(t, a1.Request().Header.Get(HeaderSignature), a2.Request().Header.Get(HeaderSignature))
}

func TestSigningSkippedWithoutCredentials(t *testing.T) {
	s := &Signing{}
	req := message.NewRequest()

	action := s.OnRequest(context.Background(), proxy.NewTestFlow(), req)
	require.Empty(t, action.Request().Header.Get(HeaderSignature))
}
