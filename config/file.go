// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

var errUnknownConfigFormat = errors.New("unknown configuration file format, expected .yaml, .yml or .toml")

// readFile merges a configuration file into cfg. The format is chosen by
// file extension. A missing file is not an error.
func (cfg *ServerConfig) readFile(configFilePath string) error {
	if configFilePath == "" {
		return nil
	}

	_, err := os.Stat(configFilePath)
	if os.IsNotExist(err) {
		log.Info().
			Str("path", configFilePath).
			Msg("No configuration file found, skipping")

		return nil
	}

	data, err := os.ReadFile(configFilePath) // #nosec G304 -- Only loading a config file
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", configFilePath, err)
	}

	switch ext := strings.ToLower(filepath.Ext(configFilePath)); ext {
	case ".yaml", ".yml":
		err = cfg.decodeYAML(data)
	case ".toml":
		err = cfg.decodeTOML(data)
	default:
		return fmt.Errorf("%w: %s", errUnknownConfigFormat, configFilePath)
	}

	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", configFilePath, err)
	}

	log.Info().
		Str("path", configFilePath).
		Msg("Successfully loaded configuration")

	return nil
}

func (cfg *ServerConfig) decodeYAML(data []byte) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}

	return nil
}

// decodeTOML decodes TOML through the YAML struct tags so that both formats
// share one set of keys.
func (cfg *ServerConfig) decodeTOML(data []byte) error {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid TOML: %w", err)
	}

	normalized, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to re-encode TOML document: %w", err)
	}

	return cfg.decodeYAML(normalized)
}
