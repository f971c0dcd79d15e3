// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPBearerAccepts(t *testing.T) {
	b := NewHTTPBearer("token")

	err := b.Authenticate(context.Background(), Credentials{Scheme: "Bearer", Value: "token"})
	require.NoError(t, err)
}

func TestHTTPBearerInvalidScheme(t *testing.T) {
	b := NewHTTPBearer("token")

	err := b.Authenticate(context.Background(), Credentials{Scheme: "Token", Value: "token"})

	var schemeErr *InvalidSchemeError
	require.ErrorAs(t, err, &schemeErr)
}

func TestHTTPBearerUnauthenticated(t *testing.T) {
	b := NewHTTPBearer("token")

	err := b.Authenticate(context.Background(), Credentials{Scheme: "Bearer", Value: "nekot"})
	require.ErrorIs(t, err, ErrNotAuthenticated)
}
