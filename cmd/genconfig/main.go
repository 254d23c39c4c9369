// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command genconfig writes example configuration files from the server defaults.
//
//	go run ./cmd/genconfig -dir deploy
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"codeberg.org/myosh4423/portfolio/config"
	"codeberg.org/myosh4423/portfolio/core/audit"
)

const (
	envOutputFile  = ".env.example"
	yamlOutputFile = "config.yaml.example"
	tomlOutputFile = "config.toml.example"
	dirPerm        = 0o755
	filePerm       = 0o644
)

func main() {
	audit.SetDefaultLogger()

	dir := flag.String("dir", "deploy", "output directory")
	flag.Parse()

	cfg := &config.ServerConfig{}
	cfg.SetDefaults()

	if err := os.MkdirAll(*dir, dirPerm); err != nil {
		log.Fatal().Err(err).Str("path", *dir).Msg("Failed to create output directory")
	}

	renderers := []struct {
		file   string
		render func(*config.ServerConfig) (string, error)
	}{
		{envOutputFile, renderEnv},
		{yamlOutputFile, renderYAML},
		{tomlOutputFile, renderTOML},
	}

	for _, r := range renderers {
		path := filepath.Join(*dir, r.file)

		out, err := r.render(cfg)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("Failed to render example configuration")
		}

		if err := os.WriteFile(path, []byte(out), filePerm); err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("Failed to write example configuration")
		}

		log.Info().Str("path", path).Msg("Successfully generated example configuration")
	}
}
