// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"codeberg.org/myosh4423/portfolio/content"
)

var errUnknownFormat = errors.New("unknown export format, expected json or yaml")

func run(w io.Writer, format, locale string) error {
	if err := checkAll(); err != nil {
		return err
	}

	log.Info().
		Int("locales", len(content.SupportedLocales())).
		Str("default", content.DefaultLocale.String()).
		Msg("Content table is valid")

	if format == "" {
		return nil
	}

	doc, err := exportDoc(locale)
	if err != nil {
		return err
	}

	return encode(w, format, doc)
}

// checkAll validates the table served by the site.
func checkAll() error {
	records := make(map[content.Locale]content.LocaleContent)

	for _, l := range content.SupportedLocales() {
		records[l] = content.Content(l)
	}

	return checkRecords(records)
}

// checkRecords validates every record and the table as a whole. Every
// failure is reported, not just the first.
func checkRecords(records map[content.Locale]content.LocaleContent) error {
	if err := content.ValidateTable(records); err != nil {
		return fmt.Errorf("content table is invalid: %w", err)
	}

	return nil
}

// exportDoc returns the record for locale, or the whole table keyed by
// locale when locale is empty.
func exportDoc(locale string) (any, error) {
	if locale != "" {
		l, err := content.ParseLocale(locale)
		if err != nil {
			return nil, err
		}

		return content.Content(l), nil
	}

	table := make(map[string]content.LocaleContent)
	for _, l := range content.SupportedLocales() {
		table[l.String()] = content.Content(l)
	}

	return table, nil
}

func encode(w io.Writer, format string, doc any) error {
	var buf bytes.Buffer

	switch format {
	case "json":
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)

		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	case "yaml":
		if err := yaml.NewEncoder(&buf, yaml.Indent(2)).Encode(doc); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}

	_, err := w.Write(buf.Bytes())

	return err
}
