// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package proxy

import (
	"io"
	"net"
	"net/http"
)

// serveConnect implements the CONNECT tunnel path: it dials the requested
// authority directly, hijacks the client connection, and splices bytes in
// both directions until either side closes.
//
// Tunneling is pass-through by design: no handler or authenticator runs on
// the bytes flowing through it.
func (p *Proxy) serveConnect(w http.ResponseWriter, r *http.Request, flow *Flow) {
	authority := r.URL.Host
	if authority == "" {
		authority = r.Host
	}
	if _, _, err := net.SplitHostPort(authority); err != nil {
		flow.logger.Warn().Str("authority", authority).Msg("CONNECT host must be a socket address")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, "CONNECT must be to a socket address.")
		return
	}

	server, err := net.Dial("tcp", authority)
	if err != nil {
		flow.logger.Error().Err(err).Str("authority", authority).Msg("failed to dial CONNECT target")
		http.Error(w, "unable to reach target", http.StatusBadGateway)
		return
	}

	hijacker, ok := w.(http.Hijacker)
	if !ok {
		server.Close()
		http.Error(w, "connection hijacking not supported", http.StatusInternalServerError)
		return
	}

	client, buffered, err := hijacker.Hijack()
	if err != nil {
		server.Close()
		flow.logger.Error().Err(err).Msg("failed to hijack client connection")
		return
	}

	if _, err := client.Write([]byte("HTTP/1.1 200 Connection Established\r\n\r\n")); err != nil {
		flow.logger.Error().Err(err).Msg("failed to write CONNECT response")
		client.Close()
		server.Close()
		return
	}

	// net/http may have already buffered bytes the client sent right after
	// the CONNECT request; replay them ahead of whatever arrives next.
	var clientReader io.Reader = client
	if buffered != nil && buffered.Reader != nil && buffered.Reader.Buffered() > 0 {
		clientReader = buffered.Reader
	}

	tunnel(flow, clientReader, client, server)
}

// tunnel copies bytes bidirectionally between the hijacked client
// connection and the dialed server connection until one side closes.
func tunnel(flow *Flow, clientReader io.Reader, client io.WriteCloser, server net.Conn) {
	defer client.Close()
	defer server.Close()

	done := make(chan int64, 2)

	go func() {
		n, _ := io.Copy(server, clientReader)
		if tc, ok := server.(interface{ CloseWrite() error }); ok {
			tc.CloseWrite()
		}
		done <- n
	}()

	go func() {
		n, _ := io.Copy(client, server)
		done <- n
	}()

	fromClient := <-done
	fromServer := <-done

	flow.logger.Debug().
		Int64("from_client", fromClient).
		Int64("from_server", fromServer).
		Msg("client wrote bytes and received bytes from server via tunnel")
}
