// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPBasicAccepts(t *testing.T) {
	b := NewHTTPBasic("username", "password")

	err := b.Authenticate(context.Background(), Credentials{Scheme: "Basic", Value: "dXNlcm5hbWU6cGFzc3dvcmQ="})
	require.NoError(t, err)
}

func TestHTTPBasicInvalidScheme(t *testing.T) {
	b := NewHTTPBasic("username", "password")

	err := b.Authenticate(context.Background(), Credentials{Scheme: "Base", Value: "dXNlcm5hbWU6cGFzc3dvcmQ="})

	var schemeErr *InvalidSchemeError
	require.ErrorAs(t, err, &schemeErr)
}

func TestHTTPBasicInvalidFormat(t *testing.T) {
	b := NewHTTPBasic("username", "password")

	// base64("one:two:three")
	err := b.Authenticate(context.Background(), Credentials{Scheme: "Basic", Value: "b25lOnR3bzp0aHJlZQ=="})

	var fmtErr *InvalidFormatError
	require.ErrorAs(t, err, &fmtErr)
	require.Equal(t, 3, fmtErr.N)
}

func TestHTTPBasicUnauthenticated(t *testing.T) {
	b := NewHTTPBasic("username", "password")

	// base64("password:username")
	err := b.Authenticate(context.Background(), Credentials{Scheme: "Basic", Value: "cGFzc3dvcmQ6dXNlcm5hbWU="})
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestHTTPBasicDecodeFailureIsInvalidFormat(t *testing.T) {
	b := NewHTTPBasic("username", "password")

	err := b.Authenticate(context.Background(), Credentials{Scheme: "Basic", Value: "not-valid-base64!!"})

	var fmtErr *InvalidFormatError
	require.ErrorAs(t, err, &fmtErr)
}
