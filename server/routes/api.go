// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"encoding/json"
	"fmt"
	"net/http"

	"codeberg.org/myosh4423/portfolio/content"
	"codeberg.org/myosh4423/portfolio/i18n"
	"codeberg.org/myosh4423/portfolio/server/request_context"
	"codeberg.org/myosh4423/portfolio/server/utils"
)

// FallbackHeader is set on API responses that substituted the default locale
// for an unsupported one.
const FallbackHeader = "Portfolio-Locale-Fallback"

// LocalesResponse is the body of GET /api/v1/locales.
type LocalesResponse struct {
	Supported []content.Locale `json:"supported"`
	Default   content.Locale   `json:"default"`
}

// LocalesAPI lists the supported locales and the default one.
func LocalesAPI(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, LocalesResponse{
		Supported: content.SupportedLocales(),
		Default:   content.DefaultLocale,
	})
}

// ContentAPI serves the content record of the negotiated locale.
func ContentAPI(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Vary", negotiatedVary)

	return writeJSON(w, content.Content(request_context.FromRequest(r).Locale))
}

// LocaleContentAPI serves the content record of the locale in the path.
// Region and case variants resolve as on the page routes ("en-US" → en);
// anything else gets the default record and FallbackHeader.
func LocaleContentAPI(w http.ResponseWriter, r *http.Request) error {
	locale, ok := i18n.ParsePathLocale(utils.GetPathVar(r, i18n.LocalePathValue))
	if !ok {
		locale = content.DefaultLocale

		w.Header().Set(FallbackHeader, "true")
	}

	request_context.SetLocale(r, locale)

	return writeJSON(w, content.Content(locale))
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encoding JSON response: %w", err)
	}

	return nil
}
