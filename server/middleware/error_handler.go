// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"maps"
	"net/http"
	"net/http/httptest"

	"github.com/rs/zerolog/log"

	"codeberg.org/myosh4423/portfolio/config"
	"codeberg.org/myosh4423/portfolio/core/audit"
	"codeberg.org/myosh4423/portfolio/server/request_context"
	"codeberg.org/myosh4423/portfolio/server/routes"
)

// CatchError wraps HTTP handlers that return an error, providing centralized error handling,
// response buffering, and request logging.
//
// The handler writes into an httptest.ResponseRecorder. Any error it returns
// is stored in the request context, then:
//   - an error returned without an HTTP error status (status < 400) is an
//     unhandled internal error: the buffered response is discarded and the
//     localized error page is rendered with 500;
//   - a 404 written by the handler is replaced by the localized error page;
//   - anything else is copied to the client as is.
//
// Content-Language is set from the locale the handler served, since handlers
// for an explicit locale replace the negotiated one.
func CatchError(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := request_context.FromRequest(r)

		span := audit.Span{
			Destination: audit.ToUser,
			RequestID:   ctx.RequestID,
			Method:      r.Method,
			URL:         r.URL.String(),
		}

		_ = span.Begin(r.Context())
		defer span.End()

		recorder := httptest.NewRecorder()

		ctx.RequestError = handler(recorder, r)

		if (ctx.RequestError != nil && recorder.Code < http.StatusBadRequest) || recorder.Code == http.StatusNotFound {
			if recorder.Code == http.StatusNotFound {
				ctx.StatusCode = http.StatusNotFound
			} else {
				ctx.StatusCode = http.StatusInternalServerError
			}

			// ErrorPage reads ctx.RequestError and ctx.StatusCode.
			recorder = httptest.NewRecorder()
			routes.ErrorPage(recorder, r)
		} else {
			if recorder.Code == 0 {
				recorder.Code = http.StatusOK
			}

			ctx.StatusCode = recorder.Code
		}

		// End before the headers go out so Server-Timing carries the duration.
		span.End()

		maps.Copy(w.Header(), recorder.Header())

		if w.Header().Get("Content-Language") == "" {
			w.Header().Set("Content-Language", ctx.Locale.String())
		}

		w.WriteHeader(ctx.StatusCode)

		span.Size = recorder.Body.Len()
		if _, err := recorder.Body.WriteTo(w); err != nil {
			log.Err(err).Msg("Failed to write response body")
		}

		span.StatusCode = ctx.StatusCode
		span.Error = ctx.RequestError
		span.Locale = ctx.Locale.String()

		if !config.Global.ShouldSkipServerLogging(r.URL.Path) {
			span.Log()
		}
	}
}
