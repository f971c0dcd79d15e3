// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

// Package auth implements proxy-authentication credential extraction and
// the pluggable Authenticator contract.
package auth

import "context"

// Authenticator verifies a set of extracted Credentials. Implementations
// must be safe for concurrent use by multiple flows: they are shared,
// stateless from the engine's perspective, even though they may hold their
// own internal state (e.g. a revocation cache).
type Authenticator interface {
	// Authenticate returns nil when c is accepted, or one of
	// *InvalidSchemeError, *InvalidFormatError, ErrNotAuthenticated
	// otherwise.
	Authenticate(ctx context.Context, c Credentials) error
}
