// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "time"

const (
	// Default HTTP cache max age in seconds.
	defaultHTTPCacheMaxAgeSeconds = 300
	// Default HTTP cache stale while revalidate in seconds.
	defaultHTTPCacheStaleWhileRevalidateSeconds = 600

	// DefaultThumbnailBase is where project thumbnails are served from when
	// no other base is configured.
	DefaultThumbnailBase = "/img/projects"
)

// SetDefaults populates the configuration with default values.
func (cfg *ServerConfig) SetDefaults() {
	cfg.Basic.Host = "localhost"
	cfg.Basic.Port = "8282"

	cfg.HTTPCache.MaxAge = defaultHTTPCacheMaxAgeSeconds * time.Second
	cfg.HTTPCache.StaleWhileRevalidate = defaultHTTPCacheStaleWhileRevalidateSeconds * time.Second

	cfg.Response.Compression = true
	cfg.Response.CompressionMinSize = 1024

	cfg.Assets.ThumbnailBase = DefaultThumbnailBase

	cfg.Instance.RepoURL = ""

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"

	cfg.Limiter.Enabled = false
	cfg.Limiter.StateFilepath = ""
	cfg.Limiter.FilterLocal = false
	cfg.Limiter.IPv4Prefix = 24
	cfg.Limiter.IPv6Prefix = 48
	cfg.Limiter.Rate = 2.0
	cfg.Limiter.Burst = 120

	cfg.Internationalization.StrictMissingKeys = false
}
