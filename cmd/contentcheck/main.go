// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command contentcheck validates the localized content table and optionally
// exports it for review.
//
//	go run ./cmd/contentcheck
//	go run ./cmd/contentcheck -format yaml -locale en
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"codeberg.org/myosh4423/portfolio/core/audit"
)

func main() {
	audit.SetDefaultLogger()

	format := flag.String("format", "", "export format after validation: json or yaml (empty to skip export)")
	locale := flag.String("locale", "", "export a single locale instead of the whole table")
	flag.Parse()

	if err := run(os.Stdout, *format, *locale); err != nil {
		log.Fatal().Err(err).Msg("Content check failed")
	}
}
