// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"

	servertiming "github.com/mitchellh/go-server-timing"
)

// WithServerTiming attaches a Server-Timing header collector to the request
// context. audit.Span records its metrics there.
func WithServerTiming(w http.ResponseWriter, r *http.Request, next http.Handler) {
	servertiming.Middleware(next, nil).ServeHTTP(w, r)
}
