// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package auth

import (
	"fmt"
	"strings"

	"github.com/go-core-stack/forward-proxy/pkg/message"
)

// Credentials is the {scheme, value} pair extracted from a
// Proxy-Authorization header. It is a plain value object: equality is
// component-wise string equality.
//
// Credentials deliberately does not expose a field named "Credentials" and
// its String/GoString never print Value, so that a stray %v or %+v on a
// Credentials never leaks secret material into a log line or error message.
type Credentials struct {
	Scheme string
	Value  string
}

// String never includes Value; only the scheme and Value's byte length are
// shown.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{Scheme: %q, Value: <%d bytes redacted>}", c.Scheme, len(c.Value))
}

// GoString mirrors String so %#v formatting is equally safe.
func (c Credentials) GoString() string {
	return c.String()
}

// Extract parses the Proxy-Authorization header of req. The header's value
// is split on whitespace runs; exactly two non-empty tokens are expected
// (scheme, then opaque credentials value). Extract never base64-decodes —
// that is an Authenticator's concern.
func Extract(req message.Request) (Credentials, error) {
	raw := req.Header.Get("Proxy-Authorization")
	if raw == "" {
		return Credentials{}, ErrMissingHeader
	}

	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return Credentials{}, &InvalidFormatError{N: len(fields)}
	}

	return Credentials{Scheme: fields[0], Value: fields[1]}, nil
}
