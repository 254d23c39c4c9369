// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"strings"

	"codeberg.org/myosh4423/portfolio/i18n"
)

// NormalizeURL is a middleware that handles URL normalization by:
//  1. Removing trailing slashes from URLs (except root).
//  2. Rewriting a locale path such as /EN or /ja-JP to its canonical form.
//
// Unsupported locale paths are left alone; the page handler substitutes the
// default locale for them.
func NormalizeURL(w http.ResponseWriter, r *http.Request, next http.Handler) {
	if hasTrailingSlash(r) {
		removeTrailingSlash(w, r)

		return
	}

	if canonical, ok := canonicalLocalePath(r.URL.Path); ok {
		target := *r.URL
		target.Path = canonical
		target.RawPath = ""

		http.Redirect(w, r, target.String(), http.StatusMovedPermanently)

		return
	}

	next.ServeHTTP(w, r)
}

// hasTrailingSlash checks if a request path has a trailing slash (except root).
func hasTrailingSlash(r *http.Request) bool {
	return r.URL.Path != "/" && strings.HasSuffix(r.URL.Path, "/")
}

// removeTrailingSlash removes trailing slashes and redirects.
func removeTrailingSlash(w http.ResponseWriter, r *http.Request) {
	target := *r.URL
	target.RawPath = ""

	target.Path = strings.TrimRight(target.Path, "/")
	if target.Path == "" {
		target.Path = "/"
	}

	http.Redirect(w, r, target.String(), http.StatusPermanentRedirect)
}

// canonicalLocalePath reports the canonical path for a single-segment
// locale path that names a supported locale in a non-canonical spelling.
func canonicalLocalePath(path string) (string, bool) {
	segment := strings.TrimPrefix(path, "/")
	if strings.Contains(segment, "/") {
		return "", false
	}

	locale, ok := i18n.ParsePathLocale(segment)
	if !ok || locale.String() == segment {
		return "", false
	}

	return "/" + locale.String(), true
}
