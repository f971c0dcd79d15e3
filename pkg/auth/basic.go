// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package auth

import (
	"context"
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

// HTTPBasic authenticates credentials against a single static
// username/password pair, matching HTTP Basic's base64("user:pass")
// encoding.
type HTTPBasic struct {
	Username string
	Password string
}

// NewHTTPBasic constructs an HTTPBasic authenticator.
func NewHTTPBasic(username, password string) *HTTPBasic {
	return &HTTPBasic{Username: username, Password: password}
}

// Authenticate implements Authenticator.
func (b *HTTPBasic) Authenticate(_ context.Context, c Credentials) error {
	if !strings.EqualFold(c.Scheme, "basic") {
		return &InvalidSchemeError{Got: c.Scheme, Want: "basic"}
	}

	decoded, err := base64.StdEncoding.DecodeString(c.Value)
	if err != nil {
		// A decode failure is a malformed-credentials condition, not a
		// panic: callers get an error back instead of a crashed handler.
		return &InvalidFormatError{N: 0}
	}

	text := toValidUTF8(decoded)
	fields := strings.Split(text, ":")
	if len(fields) != 2 {
		return &InvalidFormatError{N: len(fields)}
	}

	username, password := fields[0], fields[1]
	if !constantTimeEqual(username, b.Username) || !constantTimeEqual(password, b.Password) {
		return ErrNotAuthenticated
	}

	return nil
}

// toValidUTF8 replaces invalid UTF-8 sequences with the Unicode replacement
// character instead of rejecting the whole value outright.
func toValidUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}

// constantTimeEqual compares two strings without early-exiting on the first
// mismatched byte. It is not a cryptographic-grade constant-time compare
// (lengths still leak via control flow elsewhere), but it avoids the
// obvious early-return timing signal on the byte comparison itself.
func constantTimeEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := 0; i < len(a); i++ {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
