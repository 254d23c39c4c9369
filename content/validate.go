// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// validation errors.
var (
	ErrEmptyField          = errors.New("empty field")
	ErrInvalidURL          = errors.New("invalid url")
	ErrInvalidThumbnail    = errors.New("thumbnail must be a bare file name")
	ErrInvalidLang         = errors.New("invalid html lang")
	ErrNoLocales           = errors.New("no supported locales")
	ErrDefaultNotSupported = errors.New("default locale is not supported")
	ErrMissingLocale       = errors.New("missing record for supported locale")
	ErrExtraLocale         = errors.New("record for unsupported locale")
)

// FieldError locates a validation failure inside a record.
type FieldError struct {
	Locale Locale
	Field  string // e.g. "projects[0].title"
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("content[%s].%s: %v", e.Locale, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Validate checks a single record. It returns every problem found, joined
// with errors.Join; each one is a *FieldError.
func Validate(locale Locale, c LocaleContent) error {
	v := validator{locale: locale}

	v.text("metaTitle", c.MetaTitle)
	v.text("metaDescription", c.MetaDescription)
	v.lang("htmlLang", c.HTMLLang)

	v.text("profile.name", c.Profile.Name)
	v.text("profile.tagline", c.Profile.Tagline)
	v.text("profile.summary", c.Profile.Summary)

	for i, link := range c.ContactLinks {
		field := fmt.Sprintf("contactLinks[%d]", i)

		v.text(field+".title", link.Title)
		v.href(field+".href", link.Href)

		if !link.Icon.Valid() {
			v.fail(field+".icon", fmt.Errorf("%w: %s", ErrUnknownIcon, link.Icon))
		}
	}

	v.texts("aboutParagraphs", c.AboutParagraphs)
	v.texts("specialties", c.Specialties)

	for i, tool := range c.Tools {
		field := fmt.Sprintf("tools[%d]", i)

		v.text(field+".name", tool.Name)
		v.text(field+".note", tool.Note)

		if !tool.IconKey.Valid() {
			v.fail(field+".iconKey", fmt.Errorf("%w: %s", ErrUnknownIcon, tool.IconKey))
		}
	}

	for i, contribution := range c.Contributions {
		field := fmt.Sprintf("contributions[%d]", i)

		v.text(field+".title", contribution.Title)
		v.text(field+".detail", contribution.Detail)
	}

	v.texts("languages", c.Languages)
	v.text("programmingLanguagesNote", c.ProgrammingLanguagesNote)

	for i, project := range c.Projects {
		field := fmt.Sprintf("projects[%d]", i)

		v.text(field+".title", project.Title)
		v.text(field+".role", project.Role)
		v.text(field+".description", project.Description)
		v.href(field+".href", project.Href)
		v.thumbnail(field+".thumbnail", project.Thumbnail)
		// thumbnailAlt may be present and empty: that marks a decorative image.
	}

	v.text("sectionTitles.projects", c.SectionTitles.Projects)
	v.text("sectionTitles.about", c.SectionTitles.About)
	v.text("sectionTitles.specialties", c.SectionTitles.Specialties)
	v.text("sectionTitles.tools", c.SectionTitles.Tools)
	v.text("sectionTitles.contributions", c.SectionTitles.Contributions)
	v.text("sectionTitles.programmingLanguages", c.SectionTitles.ProgrammingLanguages)

	return errors.Join(v.errs...)
}

// ValidateTable checks that records holds exactly one valid record per
// supported locale, and that the supported set and default locale are sound.
func ValidateTable(records map[Locale]LocaleContent) error {
	return validateTable(supportedLocales, DefaultLocale, records)
}

func validateTable(supported []Locale, defaultLocale Locale, records map[Locale]LocaleContent) error {
	var errs []error

	if len(supported) == 0 {
		errs = append(errs, ErrNoLocales)
	} else if !slices.Contains(supported, defaultLocale) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrDefaultNotSupported, defaultLocale))
	}

	for _, locale := range supported {
		record, ok := records[locale]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrMissingLocale, locale))

			continue
		}

		if err := Validate(locale, record); err != nil {
			errs = append(errs, err)
		}
	}

	for _, locale := range slices.Sorted(maps.Keys(records)) {
		if !slices.Contains(supported, locale) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrExtraLocale, locale))
		}
	}

	return errors.Join(errs...)
}

type validator struct {
	locale Locale
	errs   []error
}

func (v *validator) fail(field string, err error) {
	v.errs = append(v.errs, &FieldError{Locale: v.locale, Field: field, Err: err})
}

func (v *validator) text(field, s string) {
	if strings.TrimSpace(s) == "" {
		v.fail(field, ErrEmptyField)
	}
}

func (v *validator) texts(field string, items []string) {
	for i, s := range items {
		v.text(fmt.Sprintf("%s[%d]", field, i), s)
	}
}

// lang requires a well-formed BCP 47 tag whose base language matches the record's locale.
func (v *validator) lang(field, s string) {
	if strings.TrimSpace(s) == "" {
		v.fail(field, ErrEmptyField)

		return
	}

	tag, err := language.Parse(s)
	if err != nil {
		v.fail(field, fmt.Errorf("%w: %w", ErrInvalidLang, err))

		return
	}

	got, _ := tag.Base()
	want, _ := v.locale.Tag().Base()

	if got != want {
		v.fail(field, fmt.Errorf("%w: %q does not match locale %q", ErrInvalidLang, s, v.locale))
	}
}

// href accepts absolute http(s) URLs and root-relative paths. Absent is fine.
func (v *validator) href(field string, o Optional) {
	s, ok := o.Get()
	if !ok {
		return
	}

	if s == "" {
		v.fail(field, fmt.Errorf("%w: present but empty", ErrInvalidURL))

		return
	}

	u, err := url.Parse(s)
	if err != nil {
		v.fail(field, fmt.Errorf("%w: %w", ErrInvalidURL, err))

		return
	}

	switch {
	case (u.Scheme == "http" || u.Scheme == "https") && u.Host != "":
	case u.Scheme == "" && u.Host == "" && strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//"):
	default:
		v.fail(field, fmt.Errorf("%w: %q", ErrInvalidURL, s))
	}
}

func (v *validator) thumbnail(field string, o Optional) {
	s, ok := o.Get()
	if !ok {
		return
	}

	if s == "" || s == "." || s == ".." || path.Base(s) != s || strings.ContainsRune(s, '\\') {
		v.fail(field, fmt.Errorf("%w: %q", ErrInvalidThumbnail, s))
	}
}
