// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package message

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripHopByHopRemovesAllOccurrences(t *testing.T) {
	h := make(http.Header)
	h.Add("Content-Type", "application/json")
	h.Add("Proxy-Authenticate", "Basic")
	h.Add("Proxy-Authenticate", "Bearer")
	h.Add("Proxy-Connection", "keep-alive")

	StripHopByHop(h)

	require.ElementsMatch(t, []string{"Content-Type"}, keys(h))
}

func TestStripHopByHopIdempotent(t *testing.T) {
	h := make(http.Header)
	h.Set("Content-Type", "text/plain")
	h.Set("Connection", "keep-alive")

	StripHopByHop(h)
	first := h.Clone()
	StripHopByHop(h)

	require.Equal(t, first, h)
}

func keys(h http.Header) []string {
	out := make([]string, 0, len(h))
	for k := range h {
		out = append(out, k)
	}
	return out
}
