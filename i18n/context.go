// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"
	"net/http"
	"strings"

	"codeberg.org/myosh4423/portfolio/content"
	"codeberg.org/myosh4423/portfolio/core/cookie"
	"codeberg.org/myosh4423/portfolio/core/untrusted"
)

type contextKeyType struct{}

var localeKey = contextKeyType{}

// LangParam is the name of the URL query parameter used by HTTP helpers to read
// a preferred locale. The cookie counterpart is [cookie.LangCookie].
const LangParam = "lang"

// LocalePathValue is the name of the route wildcard holding an explicit locale,
// as in "GET /{locale}".
const LocalePathValue = "locale"

// WithLocale stores l in ctx and returns a derived context that carries it.
//
// The ctx must not be nil.
func WithLocale(ctx context.Context, l content.Locale) context.Context {
	return context.WithValue(ctx, localeKey, l)
}

// LocaleFrom returns the locale stored in ctx, or content.DefaultLocale if
// none is present or ctx is nil. The result is always a supported locale.
func LocaleFrom(ctx context.Context) content.Locale {
	if ctx != nil {
		if l, ok := ctx.Value(localeKey).(content.Locale); ok && content.IsSupported(l) {
			return l
		}
	}

	return content.DefaultLocale
}

// FromRequest returns the best supported locale for r by inspecting user
// preferences in priority order:
// 1) path value [LocalePathValue]
// 2) query parameter [LangParam]
// 3) cookie [cookie.LangCookie]
// 4) Accept-Language header
//
// Special case: if [LangParam] is "auto" (case-insensitive), the cookie is ignored
// and only the Accept-Language header is considered.
//
// If r is nil, FromRequest returns content.DefaultLocale.
func FromRequest(r *http.Request) content.Locale {
	if r == nil {
		return content.DefaultLocale
	}

	preferred := make([]string, 0, 4)

	// Only populated once the mux has routed the request.
	if p := r.PathValue(LocalePathValue); p != "" {
		preferred = append(preferred, p)
	}

	q := r.URL.Query().Get(LangParam)
	auto := strings.EqualFold(q, "auto")

	if q != "" && !auto {
		preferred = append(preferred, q)
	}

	if !auto {
		if c := untrusted.GetCookie(r, cookie.LangCookie); c != "" {
			preferred = append(preferred, c)
		}
	}

	if al := r.Header.Get("Accept-Language"); al != "" {
		preferred = append(preferred, al)
	}

	return match(preferred...)
}

// WithRequest resolves the locale of r using [FromRequest] and installs it in
// the returned context. It is equivalent to:
//
//	WithLocale(ctx, FromRequest(r))
func WithRequest(ctx context.Context, r *http.Request) context.Context {
	return WithLocale(ctx, FromRequest(r))
}
