// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported locale identifier, written as a BCP 47 base tag.
type Locale string

// Supported locales.
const (
	English  Locale = "en"
	Japanese Locale = "ja"
)

// DefaultLocale is the locale served when a request carries no usable preference.
const DefaultLocale = Japanese

// ErrUnsupportedLocale is returned (or panicked with) when a locale is not in
// the supported set.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// supportedLocales lists the supported locales in declaration order.
var supportedLocales = []Locale{English, Japanese}

// SupportedLocales returns the closed set of supported locales in declaration order.
//
// The returned slice is a copy and is safe to retain.
func SupportedLocales() []Locale {
	return slices.Clone(supportedLocales)
}

// IsSupported reports whether l is a member of the supported set.
func IsSupported(l Locale) bool {
	return slices.Contains(supportedLocales, l)
}

// ParseLocale returns the supported locale spelled by s.
//
// Surrounding whitespace and letter case are ignored. Region or script
// subtags are not accepted here; use i18n.Normalize for negotiation.
func ParseLocale(s string) (Locale, error) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	if !IsSupported(l) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, s)
	}

	return l, nil
}

// Tag returns the language tag of l.
func (l Locale) Tag() language.Tag {
	return language.Make(string(l))
}

func (l Locale) String() string {
	return string(l)
}
