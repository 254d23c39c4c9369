// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"codeberg.org/myosh4423/portfolio/i18n"
	"codeberg.org/myosh4423/portfolio/server/request_context"
	"codeberg.org/myosh4423/portfolio/views"
)

// ErrorPage renders the localized error page for the status code and error
// held in the request context.
func ErrorPage(w http.ResponseWriter, r *http.Request) {
	rc := request_context.FromRequest(r)

	if rc.StatusCode < http.StatusBadRequest {
		rc.StatusCode = http.StatusInternalServerError
	}

	title, message := errorText(r.Context(), rc.StatusCode)

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(rc.StatusCode)

	pageData := views.ErrorData{
		Locale:     rc.Locale,
		StatusCode: rc.StatusCode,
		Title:      title,
		Message:    message,
		RequestID:  rc.RequestID,
		Common:     rc.CommonData,
	}

	if err := views.Error(pageData).Render(r.Context(), w); err != nil {
		log.Err(err).
			AnErr("original_error", rc.RequestError).
			Str("request_id", rc.RequestID).
			Msg("Failed to render the error page")
	}
}

// errorText returns the translated title and message for statusCode.
func errorText(ctx context.Context, statusCode int) (string, string) {
	switch statusCode {
	case http.StatusNotFound:
		return i18n.Tr(ctx, "Page not found"), i18n.Tr(ctx, "The page you requested does not exist.")
	case http.StatusForbidden:
		return i18n.Tr(ctx, "Access denied"), i18n.Tr(ctx, "Requests from your network are not accepted.")
	case http.StatusTooManyRequests:
		return i18n.Tr(ctx, "Too many requests"), i18n.Tr(ctx, "Too many requests. Please try again later.")
	default:
		return i18n.Tr(ctx, "Something went wrong"),
			i18n.Tr(ctx, "An unexpected error occurred while rendering this page.")
	}
}
