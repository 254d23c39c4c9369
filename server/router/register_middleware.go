// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"codeberg.org/myosh4423/portfolio/config"
	"codeberg.org/myosh4423/portfolio/server/middleware"
	"codeberg.org/myosh4423/portfolio/server/middleware/limiter"
	"codeberg.org/myosh4423/portfolio/server/middleware/set_request_context"
)

// RegisterMiddleware installs the middleware chain. The limiter state file is
// loaded here when the limiter is enabled; call limiter.Fini on shutdown.
func (router *Router) RegisterMiddleware() {
	// the first middleware is the most outer / first executed one
	router.Use(middleware.WithServerTiming)
	router.Use(middleware.NormalizeURL)                // trailing slashes and locale spelling
	router.Use(set_request_context.WithRequestContext) // needed for everything else
	router.Use(middleware.SetResponseHeaders)          // all responses need this

	if config.Global.Response.Compression {
		router.Use(middleware.NewCompress(config.Global.Response.CompressionMinSize))
	}

	if config.Global.Limiter.Enabled {
		limiter.Init()

		router.Use(limiter.Evaluate)
	}
}
