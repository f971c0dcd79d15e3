// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

// Package message defines the proxy's transport-independent request and
// response value types and their conversions to and from net/http.
package message

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// defaultVersion is set by NewRequest/NewResponse, and used by
// FromHTTPRequest/FromHTTPResponse when the transport reports no protocol.
const defaultVersion = "HTTP/1.1"

// Request is an immutable-ish snapshot of an inbound or outbound HTTP
// request: method, URI, protocol version, headers, and a fully-buffered
// payload. NewRequest returns a usable default request (GET /, HTTP/1.1,
// no headers, no payload); the zero value leaves those fields empty.
type Request struct {
	Method  string
	URI     *url.URL
	Version string
	Header  http.Header
	Payload []byte
}

// NewRequest builds a Request with the package defaults substituted for any
// zero fields.
func NewRequest() Request {
	return Request{
		Method:  http.MethodGet,
		URI:     &url.URL{Path: "/"},
		Version: defaultVersion,
		Header:  make(http.Header),
		Payload: nil,
	}
}

// FromHTTPRequest drains r's body fully into Payload and closes it.
// Streaming bodies are out of scope; callers that need the original
// request afterwards should not reuse r.Body.
func FromHTTPRequest(r *http.Request) (Request, error) {
	var payload []byte
	if r.Body != nil && r.Body != http.NoBody {
		var err error
		payload, err = io.ReadAll(r.Body)
		if err != nil {
			return Request{}, fmt.Errorf("read request body: %w", err)
		}
		if err := r.Body.Close(); err != nil {
			return Request{}, fmt.Errorf("close request body: %w", err)
		}
	}

	version := r.Proto
	if version == "" {
		version = defaultVersion
	}

	return Request{
		Method:  r.Method,
		URI:     r.URL,
		Version: version,
		Header:  r.Header.Clone(),
		Payload: payload,
	}, nil
}

// ToHTTPRequest rebuilds a transport-level *http.Request suitable for
// http.Client.Do, scoped to ctx.
func (r Request) ToHTTPRequest(ctx context.Context) (*http.Request, error) {
	target := "/"
	if r.URI != nil {
		target = r.URI.String()
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, bytes.NewReader(r.Payload))
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}

	for name, values := range r.Header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	if r.URI != nil {
		req.Host = r.URI.Host
	}

	return req, nil
}

// Clone returns a deep copy: the header map and payload slice are copied so
// that mutating the clone never affects the original.
func (r Request) Clone() Request {
	clone := r
	clone.Header = r.Header.Clone()
	if r.Payload != nil {
		clone.Payload = append([]byte(nil), r.Payload...)
	}
	if r.URI != nil {
		u := *r.URI
		clone.URI = &u
	}
	return clone
}

// Response is the transport-independent counterpart to Request. It always
// carries the exact Request that produced it so reverse-direction handlers
// can correlate the two.
type Response struct {
	Status  int
	Version string
	Header  http.Header
	Payload []byte
	Request Request
}

// NewResponse builds a Response with package defaults (status 200, HTTP/1.1,
// empty headers/payload) attached to the given originating request.
func NewResponse(request Request) Response {
	return Response{
		Status:  http.StatusOK,
		Version: defaultVersion,
		Header:  make(http.Header),
		Payload: nil,
		Request: request,
	}
}

// FromHTTPResponse drains resp's body fully into Payload and closes it,
// attaching the originating request.
func FromHTTPResponse(resp *http.Response, request Request) (Response, error) {
	var payload []byte
	if resp.Body != nil {
		var err error
		payload, err = io.ReadAll(resp.Body)
		if err != nil {
			return Response{}, fmt.Errorf("read response body: %w", err)
		}
		if err := resp.Body.Close(); err != nil {
			return Response{}, fmt.Errorf("close response body: %w", err)
		}
	}

	version := resp.Proto
	if version == "" {
		version = defaultVersion
	}

	return Response{
		Status:  resp.StatusCode,
		Version: version,
		Header:  resp.Header.Clone(),
		Payload: payload,
		Request: request,
	}, nil
}

// WriteTo writes the response to w: headers first, then status, then body,
// as required by net/http.ResponseWriter's contract.
func (r Response) WriteTo(w http.ResponseWriter) error {
	dst := w.Header()
	for name, values := range r.Header {
		for _, v := range values {
			dst.Add(name, v)
		}
	}
	w.WriteHeader(r.Status)
	_, err := w.Write(r.Payload)
	return err
}

// Clone returns a deep copy, including a deep copy of the embedded Request.
func (r Response) Clone() Response {
	clone := r
	clone.Header = r.Header.Clone()
	if r.Payload != nil {
		clone.Payload = append([]byte(nil), r.Payload...)
	}
	clone.Request = r.Request.Clone()
	return clone
}
