// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"text/template"

	"codeberg.org/myosh4423/portfolio/content"
)

// templateCache caches compiled templates per unique template text.
var templateCache sync.Map // key: text, value: *template.Template

type Vars map[string]any

// Tr returns the translated string for a source message id (msgid), which should
// be the original English UI text. If key-value pairs are provided, the translation
// is formatted using text/template-style named placeholders.
//
// If a translation is not found, Tr returns the msgid unchanged, or visibly wrapped
// if strict mode is enabled.
func Tr(ctx context.Context, msgid string, kv ...any) string {
	return translate(ctx, "", msgid, "", 0, false, v(kv...))
}

// TrC translates a msgid with an explicit disambiguating context, similar to
// gettext's pgettext.
func TrC(ctx context.Context, contextKey, msgid string, kv ...any) string {
	return translate(ctx, contextKey, msgid, "", 0, false, v(kv...))
}

// TrN translates a singular or plural message depending on n. If a translation
// is missing, we choose singular when n == 1, otherwise plural.
func TrN(ctx context.Context, singular, plural string, n int, kv ...any) string {
	return translate(ctx, "", singular, plural, n, true, v(kv...))
}

// translate performs the underlying lookup and formatting.
func translate(
	ctx context.Context,
	contextKey, singular, plural string,
	n int,
	pluralMode bool,
	vars Vars,
) string {
	locale := LocaleFrom(ctx)
	loc := catalogs[locale]

	// Fallback message
	base := singular
	if pluralMode && n != 1 {
		base = plural
	}

	finalText := base
	found := false

	if loc != nil {
		switch {
		case pluralMode && contextKey != "":
			found = loc.IsTranslatedNDC(poDomain, singular, n, contextKey)
			if found {
				finalText = loc.GetNDC(poDomain, singular, plural, n, contextKey)
			}
		case pluralMode:
			found = loc.IsTranslatedND(poDomain, singular, n)
			if found {
				finalText = loc.GetND(poDomain, singular, plural, n)
			}
		case contextKey != "":
			found = loc.IsTranslatedDC(poDomain, singular, contextKey)
			if found {
				finalText = loc.GetDC(poDomain, singular, contextKey)
			}
		default:
			found = loc.IsTranslatedD(poDomain, singular)
			if found {
				finalText = loc.GetD(poDomain, singular)
			}
		}
	}

	// English msgids are the source text, so only other locales can miss.
	if !found && locale != content.English && strictMissingKeys() {
		logMissingOnce(locale, buildLogKey(contextKey, singular))

		finalText = "⟦" + base + "⟧"
	}

	return render(locale, finalText, vars)
}

// render formats s as a text/template using the provided data.
func render(locale content.Locale, s string, data Vars) string {
	if !strings.Contains(s, "{{") {
		return s
	}

	var tmpl *template.Template
	if t, ok := templateCache.Load(s); ok {
		tmpl = t.(*template.Template)
	} else {
		var err error

		tmpl, err = template.New("msg").Option("missingkey=error").Parse(s)
		if err != nil {
			if strictMissingKeys() {
				return "⟦" + s + "⟧"
			}

			Logger.Error().Err(err).Str("locale", locale.String()).Str("text", s).Msg("Failed to parse translation template")

			return s
		}

		templateCache.Store(s, tmpl)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(data)); err != nil {
		if strictMissingKeys() {
			return "⟦" + s + "⟧"
		}

		Logger.Error().Err(err).Str("locale", locale.String()).Str("text", s).Msg("Failed to execute translation template")

		return s
	}

	return buf.String()
}

// v builds Vars from alternating key, value pairs.
// Panics on programmer error.
func v(kv ...any) Vars {
	if len(kv)%2 != 0 {
		panic("i18n.V: odd number of arguments, want key, value pairs")
	}

	m := make(Vars, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic("i18n.V: key must be string")
		}

		m[k] = kv[i+1]
	}

	return m
}
