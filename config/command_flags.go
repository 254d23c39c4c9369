// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "flag"

// parseCommandLineArgs defines and parses flags, returning the value of the "config" flag.
func parseCommandLineArgs() string {
	var configFilePath string

	if f := flag.Lookup("config"); f != nil {
		configFilePath = f.Value.String()
	} else {
		flag.StringVar(&configFilePath, "config", "./config.yaml", "Path to a portfolio configuration file in YAML or TOML format.")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	return configFilePath
}
