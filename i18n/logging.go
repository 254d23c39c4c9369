// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"sync"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"codeberg.org/myosh4423/portfolio/config"
	"codeberg.org/myosh4423/portfolio/content"
)

var (
	// Logger is the logger used by package i18n.
	Logger zerolog.Logger = log.With().Str("sys", "i18n").Logger()

	// missingKeyOnce deduplicates WARN logs for missing msgids in strict mode.
	// The key is locale+"\x00"+msgid.
	missingKeyOnce sync.Map
)

func strictMissingKeys() bool {
	return config.Global.Internationalization.StrictMissingKeys
}

// logMissingOnce logs a missing translation warning once per (locale, msgid) pair.
func logMissingOnce(locale content.Locale, key string) {
	id := locale.String() + "\x00" + key
	if _, loaded := missingKeyOnce.LoadOrStore(id, struct{}{}); !loaded {
		Logger.Warn().
			Str("locale", locale.String()).
			Str("key", key).
			Msg("Missing i18n translation")
	}
}

// buildLogKey composes the logging key like gettext "ctx<sep>msgid" when context is present.
func buildLogKey(ctxKey, id string) string {
	if ctxKey != "" {
		return ctxKey + gotext.EotSeparator + id
	}

	return id
}
