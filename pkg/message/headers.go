// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package message

import "net/http"

// hopByHop lists the header names that are scoped to a single HTTP
// connection and must never be forwarded by an intermediary
// (RFC 2616 §13.5.1), plus the widely-used non-standard pair.
var hopByHop = []string{
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Connection",
	"TE",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
	"Proxy-Connection",
	"Keep-Alive",
}

// StripHopByHop removes, in place, every occurrence of each hop-by-hop
// header name (case-insensitive, all values for the name — not just the
// first). Idempotent: a second call is a no-op.
func StripHopByHop(h http.Header) {
	for _, name := range hopByHop {
		h.Del(name)
	}
}
