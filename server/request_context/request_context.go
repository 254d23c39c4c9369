// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package request_context provides per-request state management for HTTP handlers.

This package is separate because Go disallows a cyclic import graph.
*/
package request_context

import (
	"context"
	"net/http"

	"codeberg.org/myosh4423/portfolio/content"
	"codeberg.org/myosh4423/portfolio/core/idgen"
	"codeberg.org/myosh4423/portfolio/i18n"
	"codeberg.org/myosh4423/portfolio/server/template/commondata"
)

// RequestContext carries request-scoped data through the middleware chain.
//
// It is created once per request and is mutated only by the goroutine
// serving that request.
type RequestContext struct {
	// RequestID is an identifier for tracing requests.
	RequestID string

	// Holds any critical error encountered during request processing.
	//
	// Automatically populated by middleware.CatchError when handlers return errors,
	// which interrupts normal response handling and renders an error page instead.
	RequestError error

	// HTTP status code to be sent in the response. Defaults to 200 OK.
	StatusCode int

	// Locale is the locale the response is rendered in. It starts as the
	// negotiated locale and is replaced by handlers serving an explicit one.
	Locale content.Locale

	CommonData commondata.PageCommonData
}

// requestContextKeyType defines a unique type for a RequestContext key.
type requestContextKeyType struct{}

// requestContextKey is a unique key used to access RequestContext
// values from a context.Context.
var requestContextKey = requestContextKeyType{}

// WithRequestContext initializes a new request context and attaches it to
// the parent context, together with the negotiated locale.
func WithRequestContext(ctx context.Context, r *http.Request) context.Context {
	ctx = i18n.WithRequest(ctx, r)

	rc := RequestContext{
		RequestID:  idgen.Make(),
		StatusCode: http.StatusOK,
		Locale:     i18n.LocaleFrom(ctx),
	}
	commondata.PopulatePageCommonData(r, &rc.CommonData)

	return context.WithValue(ctx, requestContextKey, &rc)
}

// FromContext extracts the RequestContext from a context, always returning
// a valid pointer.
//
// If no context is found, returns a zero-value instance with the default locale.
func FromContext(ctx context.Context) *RequestContext {
	if v := ctx.Value(requestContextKey); v != nil {
		if rc, ok := v.(*RequestContext); ok {
			return rc
		}
	}

	return &RequestContext{StatusCode: http.StatusOK, Locale: content.DefaultLocale}
}

// FromRequest is a convenience wrapper for extracting RequestContext
// directly from HTTP requests.
func FromRequest(r *http.Request) *RequestContext {
	return FromContext(r.Context())
}

// SetLocale records l as the response locale and returns r with a context
// carrying it, so that chrome strings follow the served content.
func SetLocale(r *http.Request, l content.Locale) *http.Request {
	FromRequest(r).Locale = l

	return r.WithContext(i18n.WithLocale(r.Context(), l))
}
