// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import "fmt"

// table is built once and never written afterwards. A duplicated locale key
// in the literal below does not compile.
var table = mustBuild(map[Locale]LocaleContent{
	English:  englishContent,
	Japanese: japaneseContent,
})

func mustBuild(records map[Locale]LocaleContent) map[Locale]LocaleContent {
	if err := ValidateTable(records); err != nil {
		panic(fmt.Errorf("content: malformed content table: %w", err))
	}

	return records
}

// Content returns the record for locale.
//
// locale must be supported; callers normalize it first. Content panics
// with an error wrapping ErrUnsupportedLocale otherwise.
func Content(locale Locale) LocaleContent {
	c, ok := Lookup(locale)
	if !ok {
		panic(fmt.Errorf("content: %w: %q", ErrUnsupportedLocale, locale))
	}

	return c
}

// Lookup returns the record for locale and whether locale is supported.
func Lookup(locale Locale) (LocaleContent, bool) {
	c, ok := table[locale]
	if !ok {
		return LocaleContent{}, false
	}

	return c.clone(), true
}

// DefaultContent returns the record for DefaultLocale.
func DefaultContent() LocaleContent {
	return Content(DefaultLocale)
}
