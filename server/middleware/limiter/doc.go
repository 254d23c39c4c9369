// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package limiter is a middleware that enforces per-network rate limiting for HTTP requests.

Clients are grouped by IP network (configurable IPv4 and IPv6 prefixes) and
every network shares one token bucket. Pass-listed addresses are never
limited, block-listed addresses are always refused with 403, and a network
that empties its bucket gets 429 with Retry-After until tokens refill.
*/
package limiter
