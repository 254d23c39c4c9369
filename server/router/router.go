// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package router assembles the HTTP handler of the site: an http.ServeMux with
the route table from DefineRoutes, wrapped in the middleware chain from
RegisterMiddleware.
*/
package router

import (
	"net/http"

	"codeberg.org/myosh4423/portfolio/server/middleware"
)

// Router wraps http.ServeMux and provides middleware chaining functionality.
type Router struct {
	*http.ServeMux

	middlewares []middleware.Middleware
}

// NewRouter creates a new Router instance.
func NewRouter() *Router {
	return &Router{
		ServeMux: http.NewServeMux(),
	}
}

// Use adds a middleware to the router's chain.
func (router *Router) Use(m middleware.Middleware) {
	router.middlewares = append(router.middlewares, m)
}

// serve runs router.middlewares[i] and every one after it, then the mux.
func (router *Router) serve(i int, w http.ResponseWriter, r *http.Request) {
	if i < len(router.middlewares) {
		router.middlewares[i](w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			router.serve(i+1, w, r)
		}))
	} else {
		router.ServeMux.ServeHTTP(w, r)
	}
}

// ServeHTTP runs all middleware, then the matching route.
func (router *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	router.serve(0, w, r)
}
