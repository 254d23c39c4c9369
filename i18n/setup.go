// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"codeberg.org/myosh4423/portfolio/content"
	"codeberg.org/myosh4423/portfolio/server/assets"
)

var (
	// poDomain is the gettext domain to load under each locale.
	poDomain = "portfolio"

	// catalogs maps a supported locale to its loaded gotext.Locale.
	// Locales without a catalogue (en, whose msgids are the source text) are absent.
	catalogs map[content.Locale]*gotext.Locale
)

// Setup loads the gettext catalogues from the embedded assets.
func Setup() error {
	return SetupFS(assets.FS)
}

// SetupFS loads gettext catalogues for the "portfolio" domain from fsys.
// The expected layout is:
//
//	po/<locale>.po
//
// The <locale> part may use hyphens or underscores and may carry a region,
// e.g. "ja.po" or "ja_JP.po"; it must resolve to a supported locale, otherwise
// the file is skipped with a warning. The template "po/portfolio.pot" is ignored.
//
// Calling SetupFS again replaces the previously loaded catalogues.
func SetupFS(fsys fs.FS) error {
	Logger = log.With().Str("sys", "i18n").Logger()

	loaded := make(map[content.Locale]*gotext.Locale)

	entries, err := fs.ReadDir(fsys, "po")
	if err != nil {
		return fmt.Errorf("failed to read po directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".po") {
			continue
		}

		fileName := entry.Name()

		t, err := language.Parse(strings.ReplaceAll(strings.TrimSuffix(fileName, ".po"), "_", "-"))
		if err != nil {
			Logger.Warn().Err(err).Str("file", fileName).Msg("Skipping invalid locale file")

			continue
		}

		base, _ := t.Base()

		locale, err := content.ParseLocale(base.String())
		if err != nil {
			Logger.Warn().Err(err).Str("file", fileName).Msg("Skipping catalogue for unsupported locale")

			continue
		}

		po := gotext.NewPoFS(fsys)
		po.ParseFile(path.Join("po", fileName))

		loc := gotext.NewLocale("", locale.String()) // Base path is unused when manually adding translators.
		loc.AddTranslator(poDomain, po)

		loaded[locale] = loc

		Logger.Info().
			Str("locale", locale.String()).
			Str("domain", poDomain).
			Msg("Loaded locale")
	}

	catalogs = loaded
	missingKeyOnce = sync.Map{}

	return nil
}
