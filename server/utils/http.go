// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package utils

import (
	"net"
	"net/http"
)

// IsConnectionSecure returns whether a connection is secure.
//
// Target environments are (containerized and bare metal):
//   - Internet -> reverse proxy -> application
//   - LAN -> reverse proxy -> application
//   - localhost -> application
//
// X-Forwarded-Proto is only honoured when the peer is a private or loopback
// address, so this returns false behind a reverse proxy with a public IP.
func IsConnectionSecure(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return false
	}

	parsedIP := net.ParseIP(host)
	if parsedIP == nil {
		return false
	}

	if (parsedIP.IsPrivate() || parsedIP.IsLoopback()) && r.Header.Get("X-Forwarded-Proto") == "https" {
		return true
	}

	return false
}
