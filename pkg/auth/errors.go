// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package auth

import (
	"errors"
	"fmt"
)

// ErrMissingHeader is returned by Extract when the request carries no
// Proxy-Authorization header at all.
var ErrMissingHeader = errors.New("proxy-authorization header not present")

// ErrNotAuthenticated is returned by an Authenticator when the scheme
// matched but the credentials themselves did not.
var ErrNotAuthenticated = errors.New("authentication failed")

// InvalidFormatError is returned when a credentials value did not parse
// into the expected number of fields — either by Extract (splitting the
// header value) or by an Authenticator (splitting decoded Basic
// credentials on ':').
type InvalidFormatError struct {
	N int // N is the number of fields actually observed.
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("credentials data has %d fields, expected a different count", e.N)
}

// InvalidSchemeError is returned by an Authenticator when the credentials'
// scheme does not match what it expects.
type InvalidSchemeError struct {
	Got  string
	Want string
}

func (e *InvalidSchemeError) Error() string {
	return fmt.Sprintf("unexpected scheme %q, expected %q", e.Got, e.Want)
}
