// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package auth

import (
	"context"
	"strings"
)

// HTTPBearer authenticates credentials against a single static literal
// token.
type HTTPBearer struct {
	Token string
}

// NewHTTPBearer constructs an HTTPBearer authenticator.
func NewHTTPBearer(token string) *HTTPBearer {
	return &HTTPBearer{Token: token}
}

// Authenticate implements Authenticator.
func (b *HTTPBearer) Authenticate(_ context.Context, c Credentials) error {
	if !strings.EqualFold(c.Scheme, "bearer") {
		return &InvalidSchemeError{Got: c.Scheme, Want: "bearer"}
	}

	if !constantTimeEqual(c.Value, b.Token) {
		return ErrNotAuthenticated
	}

	return nil
}
