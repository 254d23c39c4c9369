// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command i18n_extract scans the module for translatable strings and writes
// the gettext template used by the translators of the site chrome.
//
//	go run ./cmd/i18n_extract -o po/portfolio.pot
package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/tools/go/packages"

	"codeberg.org/myosh4423/portfolio/config"
	"codeberg.org/myosh4423/portfolio/core/audit"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

func main() {
	audit.SetDefaultLogger()

	outPath := flag.String("o", "po/portfolio.pot", "output file")
	pattern := flag.String("p", "./...", "package pattern to scan")
	flag.Parse()

	wd, err := os.Getwd()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get working directory")
	}

	pkgs, err := packages.Load(&packages.Config{Mode: packages.LoadAllSyntax, Tests: false}, *pattern)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load packages")
	}

	if packages.PrintErrors(pkgs) > 0 {
		log.Fatal().Msg("Failed to load packages due to errors")
	}

	refs := extractRefs(pkgs, nearestGoModDir(wd), findI18nPkgPaths(pkgs))

	var buf bytes.Buffer
	if err := writePOT(&buf, refs, config.BuildVersion); err != nil {
		log.Fatal().Err(err).Msg("Failed to render template")
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), dirPerm); err != nil {
		log.Fatal().Err(err).Str("path", *outPath).Msg("Failed to create output directory")
	}

	if err := os.WriteFile(*outPath, buf.Bytes(), filePerm); err != nil {
		log.Fatal().Err(err).Str("path", *outPath).Msg("Failed to write output file")
	}

	log.Info().
		Str("path", *outPath).
		Int("messages", len(refs)).
		Msg("Successfully extracted messages")
}

// nearestGoModDir returns the closest parent of start holding a go.mod,
// or start itself when there is none.
func nearestGoModDir(start string) string {
	dir, err := filepath.Abs(start)
	if err != nil {
		return filepath.Clean(start)
	}

	for {
		if fi, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && !fi.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return filepath.Clean(start)
		}

		dir = parent
	}
}
