// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"fmt"
	"net/http"

	"codeberg.org/myosh4423/portfolio/content"
	"codeberg.org/myosh4423/portfolio/i18n"
	"codeberg.org/myosh4423/portfolio/server/request_context"
	"codeberg.org/myosh4423/portfolio/server/utils"
	"codeberg.org/myosh4423/portfolio/views"
)

// negotiatedVary lists the request headers the negotiated locale depends on.
const negotiatedVary = "Accept-Language, Cookie"

// IndexPage is the handler for /, serving the portfolio in the negotiated locale.
func IndexPage(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Vary", negotiatedVary)

	return renderPage(w, r, request_context.FromRequest(r).Locale)
}

// LocalePage is the handler for /{locale}.
//
// An unsupported locale is substituted with the default locale by redirecting
// to its page. Segments that are not shaped like a language tag, such as
// "favicon.ico", are not found.
func LocalePage(w http.ResponseWriter, r *http.Request) error {
	segment := utils.GetPathVar(r, i18n.LocalePathValue)

	locale, ok := i18n.ParsePathLocale(segment)
	if !ok {
		if !i18n.IsLocaleSegment(segment) {
			return NotFound(w, r)
		}

		http.Redirect(w, r, "/"+content.DefaultLocale.String(), http.StatusFound)

		return nil
	}

	return renderPage(w, request_context.SetLocale(r, locale), locale)
}

func renderPage(w http.ResponseWriter, r *http.Request, locale content.Locale) error {
	record, ok := content.Lookup(locale)
	if !ok {
		return fmt.Errorf("rendering page: %w: %s", content.ErrUnsupportedLocale, locale)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	return views.Page(views.PageData{
		Locale:  locale,
		Content: record,
		Common:  request_context.FromRequest(r).CommonData,
	}).Render(r.Context(), w)
}

// NotFound is the catch-all handler for paths no other route matches.
func NotFound(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(http.StatusNotFound)

	return nil
}
