// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"codeberg.org/myosh4423/portfolio/config"
)

const (
	envFileHeader = `# Portfolio configuration (via environment variables)
#
# Copy this file to .env and customize the values below.
#
# This file was auto-generated using go run ./cmd/genconfig.

`
	yamlFileHeader = `# Portfolio configuration (via configuration file)
#
# Copy this file to config.yaml and customize the values below.
#
# This file was auto-generated using go run ./cmd/genconfig.
`
	tomlFileHeader = `# Portfolio configuration (via configuration file)
#
# Copy this file to config.toml and customize the values below.
# Keys match config.yaml.example.
#
# This file was auto-generated using go run ./cmd/genconfig.

`
)

// uncommentedEnv lists the variables written active rather than commented out.
var uncommentedEnv = map[string]bool{
	"PORTFOLIO_HOST": true,
	"PORTFOLIO_PORT": true,
}

// renderEnv lists every PORTFOLIO_* variable grouped by config section.
func renderEnv(cfg *config.ServerConfig) (string, error) {
	var sb strings.Builder

	sb.WriteString(envFileHeader)

	val := reflect.ValueOf(*cfg)
	typ := val.Type()

	for i := range typ.NumField() {
		section := typ.Field(i)
		sectionValue := val.Field(i)

		if sectionValue.Kind() != reflect.Struct || section.Tag.Get("yaml") == "-" {
			continue
		}

		fmt.Fprintf(&sb, "## %s\n", section.Name)

		innerTyp := sectionValue.Type()
		for j := range innerTyp.NumField() {
			field := innerTyp.Field(j)
			value := sectionValue.Field(j)

			tag, ok := field.Tag.Lookup("env")
			if !ok {
				continue
			}

			name, _, _ := strings.Cut(tag, ",")

			switch {
			case uncommentedEnv[name]:
				fmt.Fprintf(&sb, "%s=\"%v\"\n", name, value.Interface())
			case value.Kind() == reflect.Slice || (value.Kind() == reflect.String && value.Len() == 0):
				// Leave the value blank to prompt user input.
				fmt.Fprintf(&sb, "# %s=\n", name)
			default:
				fmt.Fprintf(&sb, "# %s=%v\n", name, value.Interface())
			}
		}

		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// renderYAML marshals the defaults and comments out every value line, keeping
// section headers active.
func renderYAML(cfg *config.ServerConfig) (string, error) {
	var raw strings.Builder

	encoderOpts := []yaml.EncodeOption{
		config.GetDurationEncoderOption(),
		yaml.Indent(2),
	}
	if err := yaml.NewEncoder(&raw, encoderOpts...).Encode(cfg); err != nil {
		return "", fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	var sb strings.Builder

	sb.WriteString(yamlFileHeader)

	for line := range strings.SplitSeq(raw.String(), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		// Top-level keys (e.g., "basic:") are section headers.
		if !strings.HasPrefix(line, " ") {
			fmt.Fprintf(&sb, "\n%s\n", line)

			continue
		}

		indent := len(line) - len(strings.TrimLeft(line, " "))
		fmt.Fprintf(&sb, "%s# %s\n", strings.Repeat(" ", indent), trimmed)
	}

	return sb.String(), nil
}

// renderTOML re-encodes the YAML form of the defaults as TOML so both
// examples share the same keys.
func renderTOML(cfg *config.ServerConfig) (string, error) {
	data, err := yaml.MarshalWithOptions(cfg, config.GetDurationEncoderOption())
	if err != nil {
		return "", fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("failed to decode intermediate YAML: %w", err)
	}

	out, err := toml.Marshal(dropNulls(doc))
	if err != nil {
		return "", fmt.Errorf("failed to marshal config to TOML: %w", err)
	}

	return tomlFileHeader + string(out), nil
}

// dropNulls removes null values, which TOML cannot represent.
func dropNulls(m map[string]any) map[string]any {
	for k, v := range m {
		switch v := v.(type) {
		case nil:
			delete(m, k)
		case map[string]any:
			m[k] = dropNulls(v)
		}
	}

	return m
}
