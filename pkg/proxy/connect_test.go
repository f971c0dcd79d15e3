// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package proxy

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServeConnectMissingAuthorityReturnsExactBody(t *testing.T) {
	p := newTestProxy(t)

	req := httptest.NewRequest(http.MethodConnect, "http://origin.example", nil)
	req.Host = ""
	req.URL.Host = ""
	rec := httptest.NewRecorder()

	p.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "CONNECT must be to a socket address.", rec.Body.String())
}
