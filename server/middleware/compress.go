// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog/log"
)

// NewCompress returns a middleware that gzips responses of at least minSize bytes
// for clients that accept it.
func NewCompress(minSize int) Middleware {
	wrapper, err := gzhttp.NewWrapper(gzhttp.MinSize(minSize))
	if err != nil {
		log.Err(err).Int("min_size", minSize).Msg("Invalid compression settings, responses will not be compressed")

		return func(w http.ResponseWriter, r *http.Request, next http.Handler) {
			next.ServeHTTP(w, r)
		}
	}

	return func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		wrapper(next).ServeHTTP(w, r)
	}
}
