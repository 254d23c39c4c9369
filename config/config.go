// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package config holds the server configuration.

Values are resolved in this order, later sources winning:

 1. built-in defaults ([ServerConfig.SetDefaults])
 2. a YAML or TOML configuration file
 3. variables from a .env file that are not already set in the environment
 4. PORTFOLIO_* environment variables
*/
package config

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"codeberg.org/myosh4423/portfolio/core/idgen"
)

// Global exposes the server configuration.
var Global ServerConfig

// ServerConfig holds the application configuration.
type ServerConfig struct {
	Build buildInfo `yaml:"-"`

	Basic struct {
		Host                     string      `env:"PORTFOLIO_HOST,overwrite" yaml:"host"`
		Port                     string      `env:"PORTFOLIO_PORT,overwrite" yaml:"port"`
		UnixSocket               string      `env:"PORTFOLIO_UNIXSOCKET" yaml:"unixSocket"`
		RawUnixSocketPermissions string      `env:"PORTFOLIO_UNIXSOCKET_PERMISSIONS" yaml:"unixSocketPermissions"`
		UnixSocketPermissions    os.FileMode `yaml:"-"`
		UnixSocketUser           string      `env:"PORTFOLIO_UNIXSOCKET_USER" yaml:"unixSocketUser"`
		UnixSocketGroup          string      `env:"PORTFOLIO_UNIXSOCKET_GROUP" yaml:"unixSocketGroup"`
		// Public origin of the site, used for canonical and alternate links.
		// When empty, the origin of each request is used.
		RawSiteURL string  `env:"PORTFOLIO_SITE_URL,overwrite" yaml:"siteUrl"`
		SiteURL    url.URL `yaml:"-"`
	} `yaml:"basic"`

	HTTPCache struct {
		MaxAge               time.Duration `env:"PORTFOLIO_CACHE_CONTROL_MAX_AGE,overwrite" yaml:"cacheControlMaxAge"`
		StaleWhileRevalidate time.Duration `env:"PORTFOLIO_CACHE_CONTROL_STALE_WHILE_REVALIDATE,overwrite" yaml:"cacheControlStaleWhileRevalidate"`
	} `yaml:"httpCache"`

	Response struct {
		Compression        bool `env:"PORTFOLIO_COMPRESSION,overwrite" yaml:"compression"`
		CompressionMinSize int  `env:"PORTFOLIO_COMPRESSION_MIN_SIZE,overwrite" yaml:"compressionMinSize"`
	} `yaml:"response"`

	Assets struct {
		// Base path or URL that project thumbnail file names are resolved against.
		ThumbnailBase string `env:"PORTFOLIO_THUMBNAIL_BASE,overwrite" yaml:"thumbnailBase"`
	} `yaml:"assets"`

	Instance struct {
		StartingTime      string `yaml:"-"`
		FileServerCacheID string `yaml:"-"`
		RepoURL           string `env:"PORTFOLIO_REPO_URL,overwrite" yaml:"repoUrl"`
	} `yaml:"instance"`

	Development struct {
		InDevelopment bool `env:"PORTFOLIO_DEV" yaml:"inDevelopment"`
	} `yaml:"development"`

	Log struct {
		Level   string   `env:"PORTFOLIO_LOG_LEVEL,overwrite" yaml:"logLevel"`
		Outputs []string `env:"PORTFOLIO_LOG_OUTPUTS,overwrite" yaml:"logOutputs"`
		Format  string   `env:"PORTFOLIO_LOG_FORMAT,overwrite" yaml:"logFormat"`
	} `yaml:"log"`

	Limiter struct {
		Enabled       bool     `env:"PORTFOLIO_LIMITER,overwrite" yaml:"enabled"`
		StateFilepath string   `env:"PORTFOLIO_LIMITER_STATE_FILEPATH,overwrite" yaml:"stateFilepath"`
		PassIPs       []string `env:"PORTFOLIO_LIMITER_PASS_IPS,overwrite" yaml:"passList"`
		BlockIPs      []string `env:"PORTFOLIO_LIMITER_BLOCK_IPS,overwrite" yaml:"blockList"`
		FilterLocal   bool     `env:"PORTFOLIO_LIMITER_FILTER_LOCAL,overwrite" yaml:"filterLocal"`
		IPv4Prefix    int      `env:"PORTFOLIO_LIMITER_IPV4_PREFIX,overwrite" yaml:"ipv4Prefix"`
		IPv6Prefix    int      `env:"PORTFOLIO_LIMITER_IPV6_PREFIX,overwrite" yaml:"ipv6Prefix"`
		// Tokens refilled per second for each client network.
		Rate  float64 `env:"PORTFOLIO_LIMITER_RATE,overwrite" yaml:"rate"`
		Burst int     `env:"PORTFOLIO_LIMITER_BURST,overwrite" yaml:"burst"`
	} `yaml:"limiter"`

	Internationalization struct {
		// Strict mode for missing keys.
		//
		// When enabled, missing keys are logged (deduplicated per locale+key) and
		// visibly wrapped using markers.
		StrictMissingKeys bool `env:"PORTFOLIO_STRICT_MISSING_KEYS" yaml:"strictMissingKeys"`
	} `yaml:"internationalization"`
}

// configFileFallbacks are tried in order when neither -config nor
// PORTFOLIO_CONFIGFILE names a file and the default does not exist.
var configFileFallbacks = []string{"./config.yml", "./config.toml"}

// LoadConfig loads the configuration from various sources.
func (cfg *ServerConfig) LoadConfig() error {
	parsedConfigFlagValue := parseCommandLineArgs()

	configFlagUserSet := false

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configFlagUserSet = true
		}
	})

	var configFilePath string

	// Determine the config file path with the correct precedence:
	// 1. Command-line flag (-config)
	// 2. Environment variable (PORTFOLIO_CONFIGFILE)
	// 3. Default path with fallback check
	switch envVar := os.Getenv("PORTFOLIO_CONFIGFILE"); {
	case configFlagUserSet:
		configFilePath = parsedConfigFlagValue
	case envVar != "":
		configFilePath = envVar
	default:
		configFilePath = parsedConfigFlagValue
		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			for _, candidate := range configFileFallbacks {
				if _, statErr := os.Stat(candidate); statErr == nil {
					configFilePath = candidate

					break
				}
			}
		}
	}

	if err := cfg.load(configFilePath); err != nil {
		return err
	}

	cfg.setupAudit()

	cfg.print()

	// Heuristically check for containerized environment and warn if host is not a wildcard address.
	if isContainerized() && cfg.Basic.UnixSocket == "" && cfg.Basic.Host != "0.0.0.0" && cfg.Basic.Host != "::" {
		log.Warn().
			Str("host", cfg.Basic.Host).
			Msg("Running in a containerized environment but host is not a wildcard address (e.g., '0.0.0.0' or '::'). This may prevent the service from being accessible outside the container.")
	}

	return nil
}

// load resolves every configuration source except command-line flags and
// validates the result. It does not touch the global logger.
func (cfg *ServerConfig) load(configFilePath string) error {
	cfg.SetDefaults()

	cfg.Build.load()

	cfg.Instance.FileServerCacheID = idgen.Make()
	cfg.Instance.StartingTime = time.Now().UTC().Format("2006-01-02 15:04")

	if err := cfg.readFile(configFilePath); err != nil {
		return fmt.Errorf("error loading config file: %w", err)
	}

	if err := useDotEnv(); err != nil {
		return fmt.Errorf("error using .env file: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validateAndSet(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	return nil
}

var staticSkippedPathPrefixes = []string{"/css/", "/icons/", "/img/", "/robots.txt", "/healthz"}

// ShouldSkipServerLogging determines if a request should bypass request span logging.
//
// Static assets and health checks are skipped unless running in development.
func (cfg *ServerConfig) ShouldSkipServerLogging(path string) bool {
	if cfg.Development.InDevelopment {
		return false
	}

	for _, prefix := range staticSkippedPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// isContainerized checks for common indicators of a containerized environment.
//
// This is a heuristic and may not be 100% accurate.
func isContainerized() bool {
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true
	}

	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}

	if _, err := os.Stat("/.containerenv"); err == nil {
		return true
	}

	// #nosec G304 -- well-known system file read for heuristics only.
	cgroup, err := os.ReadFile("/proc/self/cgroup")
	if err == nil {
		content := string(cgroup)

		return strings.Contains(content, "docker") ||
			strings.Contains(content, "kubepods") ||
			strings.Contains(content, "containerd") ||
			strings.Contains(content, "lxc") ||
			strings.Contains(content, "crio") ||
			// systemd-nspawn containers
			strings.Contains(content, ".machine")
	}

	return false
}

// GetDurationEncoderOption returns a YAML encoder option that marshals
// time.Duration into a human-readable string format (e.g., "30m", "1h").
func GetDurationEncoderOption() yaml.EncodeOption {
	return yaml.CustomMarshaler[time.Duration](
		func(d time.Duration) ([]byte, error) {
			return yaml.Marshal(d.String())
		},
	)
}
