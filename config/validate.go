// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"codeberg.org/myosh4423/portfolio/server/utils"
)

// validation errors.
var (
	errUnixSocketWithHostPort       = errors.New("unix socket configured - cannot specify Host and Port simultaneously")
	errUnixSocketInvalidPermissions = errors.New("invalid Basic.UnixSocketPermissions value")
	errUnixSocketUserDoesNotExist   = errors.New("user does not exist")
	errUnixSocketGroupDoesNotExist  = errors.New("group does not exist")
	errInvalidThumbnailBase         = errors.New("assets.thumbnailBase must be an absolute path or an http(s) URL")
	errInvalidLogLevel              = errors.New("invalid Log.Level, expected one of debug, info, warn, error")
	errInvalidLogFormat             = errors.New("invalid Log.Format, expected console or json")
	errInvalidCompressionMinSize    = errors.New("Response.CompressionMinSize cannot be negative")
	errInvalidIPv4Prefix            = errors.New("IPv4 prefix must be between 0 and 32")
	errInvalidIPv6Prefix            = errors.New("IPv6 prefix must be between 0 and 128")
	errInvalidLimiterRate           = errors.New("Limiter.Rate must be greater than 0")
	errInvalidLimiterBurst          = errors.New("Limiter.Burst must be at least 1")
)

var (
	fileModeOctalRegexp  = regexp.MustCompile(`^0?[0-7]{3}$`)
	fileModeStringRegexp = regexp.MustCompile(`^(?:[r-][w-][x-]){3}$`)
	digitsRegexp         = regexp.MustCompile(`^[0-9]+$`)
)

// validateAndSet validates the server configuration and populates derived fields.
func (cfg *ServerConfig) validateAndSet() error {
	if err := cfg.validateListener(); err != nil {
		return err
	}

	if cfg.Basic.RawSiteURL != "" {
		siteURL, err := utils.ParseURL(cfg.Basic.RawSiteURL, "Site")
		if err != nil {
			return fmt.Errorf("invalid site URL: %w", err)
		}

		cfg.Basic.SiteURL = *siteURL
	}

	if cfg.Instance.RepoURL != "" {
		repoURL, err := utils.ParseURL(cfg.Instance.RepoURL, "Repo")
		if err != nil {
			return fmt.Errorf("invalid repo URL: %w", err)
		}

		cfg.Instance.RepoURL = repoURL.String()
	}

	if err := cfg.validateThumbnailBase(); err != nil {
		return err
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.Log.Level)
	}

	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %q", errInvalidLogFormat, cfg.Log.Format)
	}

	if cfg.Response.CompressionMinSize < 0 {
		return errInvalidCompressionMinSize
	}

	// Skip validating Limiter configuration if it's not enabled
	if !cfg.Limiter.Enabled {
		return nil
	}

	if cfg.Limiter.IPv4Prefix < 0 || cfg.Limiter.IPv4Prefix > 32 {
		return errInvalidIPv4Prefix
	}

	if cfg.Limiter.IPv6Prefix < 0 || cfg.Limiter.IPv6Prefix > 128 {
		return errInvalidIPv6Prefix
	}

	if cfg.Limiter.Rate <= 0 {
		return errInvalidLimiterRate
	}

	if cfg.Limiter.Burst < 1 {
		return errInvalidLimiterBurst
	}

	return nil
}

func (cfg *ServerConfig) validateListener() error {
	if cfg.Basic.UnixSocket == "" {
		if cfg.Basic.Host == "" {
			cfg.Basic.Host = "localhost"
			log.Info().
				Str("host", cfg.Basic.Host).
				Msg("Binding to default host")
		}

		if cfg.Basic.Port == "" {
			cfg.Basic.Port = "8282"
			log.Info().
				Str("port", cfg.Basic.Port).
				Msg("Using default port")
		}

		return nil
	}

	if cfg.Basic.Host != "" || cfg.Basic.Port != "" {
		return errUnixSocketWithHostPort
	}

	switch raw := cfg.Basic.RawUnixSocketPermissions; {
	case raw == "":
		cfg.Basic.UnixSocketPermissions = 0o666
	case fileModeOctalRegexp.MatchString(raw):
		rawModeUint64, _ := strconv.ParseUint(raw, 8, 32)

		cfg.Basic.UnixSocketPermissions = os.FileMode(rawModeUint64)
	case fileModeStringRegexp.MatchString(raw):
		mode := os.FileMode(0)

		for i, c := range raw {
			if c != '-' {
				// Set i-th bit from the end
				const bitsInByte = 8

				mode |= 1 << (bitsInByte - i)
			}
		}

		cfg.Basic.UnixSocketPermissions = mode
	default:
		return errUnixSocketInvalidPermissions
	}

	if name := cfg.Basic.UnixSocketUser; name != "" {
		var err error
		if digitsRegexp.MatchString(name) {
			_, err = user.LookupId(name)
		} else {
			_, err = user.Lookup(name)
		}

		if err != nil {
			return fmt.Errorf("%w: %s", errUnixSocketUserDoesNotExist, name)
		}
	}

	if name := cfg.Basic.UnixSocketGroup; name != "" {
		var err error
		if digitsRegexp.MatchString(name) {
			_, err = user.LookupGroupId(name)
		} else {
			_, err = user.LookupGroup(name)
		}

		if err != nil {
			return fmt.Errorf("%w: %s", errUnixSocketGroupDoesNotExist, name)
		}
	}

	return nil
}

// validateThumbnailBase accepts "/img/projects"-style paths and absolute
// http(s) URLs, trimming any trailing slash.
func (cfg *ServerConfig) validateThumbnailBase() error {
	base := strings.TrimSpace(cfg.Assets.ThumbnailBase)

	switch {
	case base == "":
		cfg.Assets.ThumbnailBase = DefaultThumbnailBase

		return nil
	case strings.HasPrefix(base, "//"):
		return fmt.Errorf("%w: %q", errInvalidThumbnailBase, base)
	case strings.HasPrefix(base, "/"):
		cfg.Assets.ThumbnailBase = strings.TrimRight(base, "/")
		if cfg.Assets.ThumbnailBase == "" {
			cfg.Assets.ThumbnailBase = "/"
		}

		return nil
	}

	u, err := utils.ParseURL(base, "Thumbnail base")
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", errInvalidThumbnailBase, base)
	}

	cfg.Assets.ThumbnailBase = u.String()

	return nil
}
