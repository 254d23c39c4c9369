// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

// Marshal renders cfg as YAML with human-readable durations.
func (cfg *ServerConfig) Marshal() ([]byte, error) {
	return yaml.MarshalWithOptions(cfg, GetDurationEncoderOption())
}

func (cfg *ServerConfig) print() {
	log.Info().
		Str("version", BuildVersion).
		Str("revision", cfg.Build.Revision()).
		Str("cacheid", cfg.Instance.FileServerCacheID).
		Msg("Starting portfolio")

	configYAML, err := cfg.Marshal()
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal config to YAML for printing")

		return
	}

	log.Info().
		Msg("Application configuration:")
	fmt.Fprintln(os.Stderr, string(configYAML))
}
