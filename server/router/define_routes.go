// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"fmt"
	"io/fs"
	"net/http"
	"net/http/pprof"
	"runtime/trace"
	"time"

	"codeberg.org/myosh4423/portfolio/config"
	"codeberg.org/myosh4423/portfolio/server/assets"
	"codeberg.org/myosh4423/portfolio/server/middleware"
	"codeberg.org/myosh4423/portfolio/server/routes"
)

// DefineRoutes sets up all the routes of the site. Middleware is added
// separately by RegisterMiddleware.
func (router *Router) DefineRoutes() {
	fileServerHandler := fileServer()

	// Serve specific files from the root of the 'assets' subdirectory.
	router.Handle("GET /robots.txt", fileServerHandler)

	// Patterns ending in "/" are prefix matches.
	router.Handle("GET /css/", fileServerHandler)
	router.Handle("GET /icons/", fileServerHandler)
	router.Handle("GET /img/", fileServerHandler)

	router.HandleFunc("GET /healthz", middleware.CatchError(routes.Healthz))

	// JSON API
	router.HandleFunc("GET /api/v1/locales", middleware.CatchError(routes.LocalesAPI))
	router.HandleFunc("GET /api/v1/content", middleware.CatchError(routes.ContentAPI))
	router.HandleFunc("GET /api/v1/content/{locale}", middleware.CatchError(routes.LocaleContentAPI))

	// Settings routes
	router.HandleFunc("POST /settings/lang", middleware.CatchError(routes.SetLanguage))

	if config.Global.Development.InDevelopment {
		registerDebugRoutes(router)
	}

	// Page routes
	// /{$} matches only the root path
	router.HandleFunc("GET /{$}", middleware.CatchError(routes.IndexPage))
	router.HandleFunc("GET /{locale}", middleware.CatchError(routes.LocalePage))

	// Everything else is a themed 404.
	router.HandleFunc("/", middleware.CatchError(routes.NotFound))
}

// fileServer serves static files from the embedded assets.
func fileServer() http.HandlerFunc {
	staticContentFS, err := fs.Sub(assets.FS, "assets")
	if err != nil {
		panic(fmt.Errorf("failed to create sub-filesystem for embedded 'assets' directory: %w", err))
	}

	fileServer := http.FileServer(http.FS(staticContentFS))

	return func(w http.ResponseWriter, r *http.Request) {
		// go:embed content only changes with a rebuild, so the per-instance
		// cache ID is a strong validator.
		// ref: https://www.rfc-editor.org/rfc/rfc9110#weak.and.strong.validators
		w.Header().Set("ETag", `"`+config.Global.Instance.FileServerCacheID+`"`)
		fileServer.ServeHTTP(w, r)
	}
}

var flightRecorder = trace.NewFlightRecorder(trace.FlightRecorderConfig{MinAge: time.Minute})

func registerDebugRoutes(router *Router) {
	if !flightRecorder.Enabled() {
		if err := flightRecorder.Start(); err != nil {
			panic(err)
		}
	}

	router.HandleFunc("GET /debug/pprof/", pprof.Index)
	router.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	router.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	router.HandleFunc("GET /debug/flight", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = flightRecorder.WriteTo(w)
	})
}
