// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var (
	errExpectedPointerToStruct = errors.New("expected a pointer to a struct")
	errUnsupportedSliceType    = errors.New("unsupported slice type")
	errUnsupportedFieldType    = errors.New("unsupported field type")
)

// readEnv populates the struct pointed to by spec from environment variables
// named in `env:"NAME[,overwrite]"` field tags.
//
// Without the overwrite option, a variable only fills a field that is still
// zero after defaults and the configuration file have been applied.
func readEnv(spec any) error {
	structValue := reflect.ValueOf(spec)
	if structValue.Kind() != reflect.Ptr {
		return fmt.Errorf("%w, got %s", errExpectedPointerToStruct, structValue.Kind())
	}

	structValue = structValue.Elem()
	if structValue.Kind() != reflect.Struct {
		return fmt.Errorf("%w, got a pointer to %s", errExpectedPointerToStruct, structValue.Kind())
	}

	structType := structValue.Type()

	for fieldIndex := range structValue.NumField() {
		field := structValue.Field(fieldIndex)
		fieldType := structType.Field(fieldIndex)

		if !fieldType.IsExported() {
			continue
		}

		tag := fieldType.Tag.Get("env")
		if tag == "" {
			if field.Kind() == reflect.Struct {
				if err := readEnv(field.Addr().Interface()); err != nil {
					return err
				}
			}

			continue
		}

		parts := strings.Split(tag, ",")
		envVarName := parts[0]
		overwrite := slices.Contains(parts[1:], "overwrite")

		envValue, exists := os.LookupEnv(envVarName)
		if !exists || !field.CanSet() {
			continue
		}

		if !overwrite && !field.IsZero() {
			continue
		}

		if err := setFieldValue(field, fieldType, envVarName, envValue); err != nil {
			return err
		}
	}

	return nil
}

// setFieldValue sets the field value based on its type.
func setFieldValue(
	field reflect.Value,
	fieldType reflect.StructField,
	envVarName, envValue string,
) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(envValue)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.Type() == reflect.TypeFor[time.Duration]() {
			parsedDuration, err := time.ParseDuration(envValue)
			if err != nil {
				return fmt.Errorf(
					"failed to parse duration for %s from env var %s (%s): %w",
					fieldType.Name, envVarName, envValue, err)
			}

			field.SetInt(int64(parsedDuration))
		} else {
			intValue, err := strconv.ParseInt(envValue, 10, 64)
			if err != nil {
				return fmt.Errorf(
					"failed to parse int for %s from env var %s (%s): %w",
					fieldType.Name, envVarName, envValue, err)
			}

			field.SetInt(intValue)
		}
	case reflect.Float32, reflect.Float64:
		floatValue, err := strconv.ParseFloat(envValue, 64)
		if err != nil {
			return fmt.Errorf(
				"failed to parse float for %s from env var %s (%s): %w",
				fieldType.Name, envVarName, envValue, err)
		}

		field.SetFloat(floatValue)
	case reflect.Bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			return fmt.Errorf(
				"failed to parse bool for %s from env var %s (%s): %w",
				fieldType.Name, envVarName, envValue, err)
		}

		field.SetBool(boolValue)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("%w for field %s", errUnsupportedSliceType, fieldType.Name)
		}

		values := strings.Split(envValue, ",")
		trimmedValues := make([]string, 0, len(values))

		for _, value := range values {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				trimmedValues = append(trimmedValues, trimmed)
			}
		}

		field.Set(reflect.ValueOf(trimmedValues))
	default:
		return fmt.Errorf("%w for field %s: %s", errUnsupportedFieldType, fieldType.Name, field.Kind())
	}

	return nil
}

// useDotEnv loads environment variables from a .env file, checking
// the current working directory, then the directory of the binary.
//
// Variables that are already set are left untouched. A missing file is not an error.
func useDotEnv() error {
	var candidates []string

	if cwd, err := os.Getwd(); err != nil {
		log.Warn().Err(err).Msg("Could not get current working directory")
	} else {
		candidates = append(candidates, filepath.Join(cwd, ".env"))
	}

	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), ".env"))
	}

	for _, envPath := range candidates {
		loaded, err := tryLoadDotEnv(envPath)
		if err != nil {
			return err
		}

		if loaded {
			return nil
		}
	}

	return nil
}

// tryLoadDotEnv loads the .env file at envPath with godotenv.
//
// It reports whether the file existed. Malformed files are an error.
func tryLoadDotEnv(envPath string) (bool, error) {
	if err := godotenv.Load(envPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().
				Str("path", envPath).
				Msg("No .env file found, skipping")

			return false, nil
		}

		return false, fmt.Errorf("failed to load %s: %w", envPath, err)
	}

	log.Info().
		Str("path", envPath).
		Msg("Loaded configuration from .env file")

	return true, nil
}
