// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package content holds the localized content table of the portfolio site.

The table maps every supported [Locale] to one fully authored [LocaleContent]
record. Records are independent: there is no inheritance, merging or fallback
between locales, so every field of every record must be present.

# Lookup

Callers normalize the requested locale first (see package i18n), then look
the record up:

	c := content.Content(content.English)
	fmt.Println(c.SectionTitles.Projects) // "Projects"

[DefaultContent] returns the record of [DefaultLocale]. [Content] panics when
given an unsupported locale; use [Lookup] to branch instead.

# Immutability

The table is built and validated once during package initialization. A
malformed table panics at startup, so it can never be served. Every lookup
returns a deep copy; mutating it does not affect the table.

# Optional fields

Project links, thumbnails and contact links are [Optional]. The zero value
means absent, which consumers render by omitting the dependent element.
A present-but-empty value is a different state and is preserved as such.

[Validate] rejects a present-but-empty href or thumbnail: an empty link would
point back at the page itself and an empty thumbnail names no file, so the
only way to leave them out is to make them absent. thumbnailAlt is the
exception; present and empty marks a decorative image.
*/
package content
