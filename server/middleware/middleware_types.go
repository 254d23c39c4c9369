// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import "net/http"

// Middleware is a handler that may pass the request on to next.
type Middleware func(w http.ResponseWriter, r *http.Request, next http.Handler)

// Wrap binds m to next.
func Wrap(m Middleware, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m(w, r, next)
	}
}
