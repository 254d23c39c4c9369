// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package i18n negotiates the locale of a request and translates the site's
chrome strings.

# Locale negotiation

The set of locales is the one declared by package content. A request's
preferences are read, in priority order, from the "locale" path value, the
[LangParam] query parameter, the Lang cookie and the Accept-Language header.
Anything that does not match a supported locale resolves to
[content.DefaultLocale]:

	loc := i18n.FromRequest(r)          // always a supported locale
	c := content.Content(loc)

[Normalize] applies the same policy to a single string.

# Chrome strings

Labels that are not part of the content record ("Contact", "Language", the
error page text) are translated with GNU gettext .po catalogues. Use the
original English text as the msgid:

	i18n.Tr(ctx, "Contact")
	i18n.TrN(ctx, "{{.Count}} project", "{{.Count}} projects", n, "Count", n)

Placeholders use text/template syntax. Missing translations return the msgid
unchanged, or wrapped as "⟦...⟧" when StrictMissingKeys is enabled.
*/
package i18n
