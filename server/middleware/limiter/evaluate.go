// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"codeberg.org/myosh4423/portfolio/config"
	"codeberg.org/myosh4423/portfolio/server/routes"
)

// Rate limiting header names.
//
// ref: https://www.ietf.org/archive/id/draft-polli-ratelimit-headers-02.html
const (
	HeaderRateLimitLimit     string = "RateLimit-Limit"
	HeaderRateLimitRemaining string = "RateLimit-Remaining"
	HeaderRateLimitReset     string = "RateLimit-Reset"
)

// excludedPaths won't have traffic filtered by the limiter middleware.
var excludedPaths = []string{
	"/css/",
	"/icons/",
	"/img/",
	"/robots.txt",
	"/healthz",
}

// Evaluate is the entrypoint to the limiter middleware.
//
// Checks run in order: excluded paths, pass list, block list, link-local
// clients (unless FilterLocal is set), then the network's token bucket.
func Evaluate(w http.ResponseWriter, r *http.Request, next http.Handler) {
	defer DoCleanup()

	if isExcludedPath(r.URL.Path) {
		next.ServeHTTP(w, r)

		return
	}

	client, err := newClientInfo(r)
	if err != nil {
		log.Warn().Str("sys", "limiter").Err(err).Str("remote_addr", r.RemoteAddr).
			Msg("Could not identify client, request not limited")
		next.ServeHTTP(w, r)

		return
	}

	if allowed, blocked := client.checkIPLists(); allowed {
		next.ServeHTTP(w, r)

		return
	} else if blocked {
		log.Warn().Str("sys", "limiter").
			Str("ip", client.ip.String()).
			Str("network", client.network.String()).
			Msg("Request blocked, IP in block-list")

		routes.BlockPage(w, r, http.StatusForbidden)

		return
	}

	if !config.Global.Limiter.FilterLocal && client.isLocalLink() {
		next.ServeHTTP(w, r)

		return
	}

	client.limiter = getOrCreateLimiter(client.network.String())

	if ok, retryAfter := checkRateLimit(client.limiter); !ok {
		log.Warn().Str("sys", "limiter").
			Str("ip", client.ip.String()).
			Str("network", client.network.String()).
			Dur("retry_after", retryAfter).
			Msg("Request blocked, exceeded rate limit")

		addRateLimitHeaders(w, client)
		w.Header().Set("Retry-After", strconv.Itoa(ceilSeconds(retryAfter)))

		routes.BlockPage(w, r, http.StatusTooManyRequests)

		return
	}

	addRateLimitHeaders(w, client)
	next.ServeHTTP(w, r)
}

// addRateLimitHeaders adds rate limiting information to the response headers.
func addRateLimitHeaders(w http.ResponseWriter, client *ClientInfo) {
	client.limiter.mu.Lock()
	defer client.limiter.mu.Unlock()

	limiter := client.limiter.limiter

	currentTokens := limiter.TokensAt(timeNow())
	burst := limiter.Burst()
	limit := float64(limiter.Limit())

	remaining := max(0, int(math.Min(float64(burst), currentTokens)))

	// Seconds until the bucket is full again.
	var resetTime int64
	if currentTokens < float64(burst) && limit > 0 {
		resetTime = int64(math.Ceil((float64(burst) - currentTokens) / limit))
	}

	w.Header().Set(HeaderRateLimitLimit, strconv.Itoa(burst))
	w.Header().Set(HeaderRateLimitRemaining, strconv.Itoa(remaining))
	w.Header().Set(HeaderRateLimitReset, strconv.FormatInt(resetTime, 10))
}

// ceilSeconds rounds d up to whole seconds, at least one.
func ceilSeconds(d time.Duration) int {
	return max(1, int(math.Ceil(d.Seconds())))
}
