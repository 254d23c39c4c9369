// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"codeberg.org/myosh4423/portfolio/content"
)

var (
	// supportedTags holds the tags of content.SupportedLocales with the
	// default locale first, so unmatched preferences resolve to it.
	supportedTags, supportedLocales = buildSupported()

	// matcher is a private [language.Matcher] over supportedTags.
	matcher = language.NewMatcher(supportedTags)

	// localeSegment matches a single path segment shaped like a BCP 47 tag.
	localeSegment = regexp.MustCompile(`^[A-Za-z]{2,3}([-_][A-Za-z0-9]{2,8})*$`)
)

func buildSupported() ([]language.Tag, []content.Locale) {
	locales := []content.Locale{content.DefaultLocale}

	for _, l := range content.SupportedLocales() {
		if l != content.DefaultLocale {
			locales = append(locales, l)
		}
	}

	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = l.Tag()
	}

	return tags, locales
}

// Languages returns the supported language tags in the order declared by
// package content. The returned slice is a copy.
func Languages() []language.Tag {
	locales := content.SupportedLocales()

	out := make([]language.Tag, len(locales))
	for i, l := range locales {
		out[i] = l.Tag()
	}

	return out
}

// DisplayName returns the name of t in its own language, e.g. "日本語" for ja.
func DisplayName(t language.Tag) string {
	if name := display.Self.Name(t); name != "" {
		return name
	}

	return t.String()
}

// Normalize maps a requested locale string to a supported locale.
//
// Matching ignores case and collapses region subtags ("ja-JP" → ja). Values
// that match nothing, including the empty string, resolve to
// content.DefaultLocale.
func Normalize(s string) content.Locale {
	return match(s)
}

// match returns the best supported locale for the given preferences, each of
// which may be a single tag or a whole Accept-Language value. Earlier
// preferences win over later ones.
func match(preferences ...string) content.Locale {
	var desired []language.Tag

	for _, p := range preferences {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			Logger.Debug().Err(err).Str("preference", p).Msg("Ignoring malformed language preference")

			continue
		}

		desired = append(desired, tags...)
	}

	if len(desired) == 0 {
		return content.DefaultLocale
	}

	_, index, confidence := matcher.Match(desired...)
	if confidence == language.No {
		return content.DefaultLocale
	}

	return supportedLocales[index]
}

// IsLocaleSegment reports whether a path segment is shaped like a language
// tag, e.g. "en", "ja-JP" or "xx", whether or not it is supported.
func IsLocaleSegment(segment string) bool {
	return localeSegment.MatchString(segment)
}

// ParsePathLocale resolves a locale path segment to the supported locale
// sharing its base language, ignoring case and region ("EN", "en-US" → en).
// Unlike [Normalize], it reports false instead of substituting the default.
func ParsePathLocale(segment string) (content.Locale, bool) {
	if !IsLocaleSegment(segment) {
		return "", false
	}

	tag, err := language.Parse(segment)
	if err != nil {
		return "", false
	}

	base, _ := tag.Base()

	locale, err := content.ParseLocale(base.String())
	if err != nil {
		return "", false
	}

	return locale, true
}
