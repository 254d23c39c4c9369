// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"codeberg.org/myosh4423/portfolio/config"
)

var (
	errMissingClientIP = errors.New("missing client IP")
	errInvalidIPFormat = errors.New("invalid IP format")
)

// ClientInfo is the address and network of a single request.
type ClientInfo struct {
	ip      net.IP
	network net.IPNet
	limiter *limiterWrapper
}

// newClientInfo resolves the client IP and network of r.
func newClientInfo(r *http.Request) (*ClientInfo, error) {
	realIP := getClientIP(r)
	if realIP == "" {
		return nil, errMissingClientIP
	}

	parsedIP := net.ParseIP(realIP)
	if parsedIP == nil {
		return nil, errInvalidIPFormat
	}

	network := getNetwork(parsedIP, config.Global.Limiter.IPv4Prefix, config.Global.Limiter.IPv6Prefix)

	return &ClientInfo{
		ip:      parsedIP,
		network: *network,
	}, nil
}

// checkIPLists checks if the client's IP is on the pass or block list.
//
// Returns (allowed, blocked); at most one is true.
func (c *ClientInfo) checkIPLists() (bool, bool) {
	if ipMatchesList(c.ip, config.Global.Limiter.PassIPs) {
		return true, false
	}

	if ipMatchesList(c.ip, config.Global.Limiter.BlockIPs) {
		return false, true
	}

	return false, false
}

// isLocalLink returns true if c.ip is a link-local address (169.254.0.0/16 or fe80::/10).
func (c *ClientInfo) isLocalLink() bool {
	return c.ip.IsLinkLocalUnicast()
}

// isExcludedPath returns true if path is never rate limited.
func isExcludedPath(path string) bool {
	for _, p := range excludedPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}

	return false
}
